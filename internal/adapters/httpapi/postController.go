package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	postapp "github.com/8ubble8uddy/yatube-project/internal/core/post/service"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

func (ctl *PostController) ListPosts(c *gin.Context) {
	limit, offset := limitOffset(c)
	posts, total, err := ctl.pc.ListPosts(c.Request.Context(), offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": total, "results": posts})
}

func (ctl *PostController) GetPost(c *gin.Context) {
	post, err := ctl.pc.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		writePostError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost stamps the author from the authenticated session; an author
// field in the payload is simply not part of the accepted input.
func (ctl *PostController) CreatePost(c *gin.Context) {
	var req struct {
		Text  string  `json:"text" binding:"required"`
		Group *string `json:"group"`
		Image string  `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}

	post, err := ctl.pc.CreatePost(c.Request.Context(), req.Text, userID, req.Group, req.Image)
	if err != nil {
		writePostError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (ctl *PostController) UpdatePost(c *gin.Context) {
	var req struct {
		Text  string  `json:"text" binding:"required"`
		Group *string `json:"group"`
		Image string  `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}

	post, err := ctl.pc.UpdatePost(c.Request.Context(), c.Param("id"), userID, req.Text, req.Group, req.Image)
	if err != nil {
		writePostError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// PatchPost merges the supplied fields into the current post state.
func (ctl *PostController) PatchPost(c *gin.Context) {
	var req struct {
		Text  *string `json:"text"`
		Group *string `json:"group"`
		Image string  `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}

	current, err := ctl.pc.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		writePostError(c, err)
		return
	}

	text := current.Text
	if req.Text != nil {
		text = *req.Text
	}
	group := req.Group
	if group == nil && current.Group != nil {
		id := current.Group.ID
		group = &id
	}

	post, err := ctl.pc.UpdatePost(c.Request.Context(), c.Param("id"), userID, text, group, req.Image)
	if err != nil {
		writePostError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}

	if err := ctl.pc.DeletePost(c.Request.Context(), c.Param("id"), userID); err != nil {
		writePostError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writePostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, postapp.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
	case errors.Is(err, postapp.ErrGroupNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "group not found"})
	case errors.Is(err, postapp.ErrTextRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
	case errors.Is(err, postapp.ErrNotAuthor):
		c.JSON(http.StatusForbidden, gin.H{"error": "only the author may modify this post"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
