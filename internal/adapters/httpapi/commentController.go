package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	commentapp "github.com/8ubble8uddy/yatube-project/internal/core/comment/service"
)

type CommentController struct{ cc CommentUseCase }

func NewCommentController(cc CommentUseCase) *CommentController {
	return &CommentController{cc: cc}
}

func (ctl *CommentController) ListComments(c *gin.Context) {
	limit, offset := limitOffset(c)
	comments, total, err := ctl.cc.ListByPost(c.Request.Context(), c.Param("id"), offset, limit)
	if err != nil {
		writeCommentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": total, "results": comments})
}

// AddComment stamps author and target post server-side; neither is accepted
// from the payload.
func (ctl *CommentController) AddComment(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
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

	comment, err := ctl.cc.AddComment(c.Request.Context(), c.Param("id"), userID, req.Text)
	if err != nil {
		writeCommentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (ctl *CommentController) GetComment(c *gin.Context) {
	comment, err := ctl.cc.GetComment(c.Request.Context(), c.Param("comment_id"))
	if err != nil {
		writeCommentError(c, err)
		return
	}
	if comment.PostID != c.Param("id") {
		writeCommentError(c, commentapp.ErrCommentNotFound)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (ctl *CommentController) UpdateComment(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
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

	comment, err := ctl.cc.UpdateComment(c.Request.Context(), c.Param("comment_id"), userID, req.Text)
	if err != nil {
		writeCommentError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (ctl *CommentController) DeleteComment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}

	if err := ctl.cc.DeleteComment(c.Request.Context(), c.Param("comment_id"), userID); err != nil {
		writeCommentError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commentapp.ErrCommentNotFound), errors.Is(err, commentapp.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, commentapp.ErrTextRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
	case errors.Is(err, commentapp.ErrNotAuthor):
		c.JSON(http.StatusForbidden, gin.H{"error": "only the author may modify this comment"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
