package web

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"

	commentapp "github.com/8ubble8uddy/yatube-project/internal/core/comment/service"
	postapp "github.com/8ubble8uddy/yatube-project/internal/core/post/service"
)

func (h *Handlers) postView(c *gin.Context) {
	post, err := h.posts.GetPostByAuthor(c.Request.Context(), c.Param("username"), c.Param("post_id"))
	if err != nil {
		h.notFound(c)
		return
	}

	comments, _, err := h.comments.ListByPost(c.Request.Context(), post.ID, 0, 0)
	if err != nil {
		h.serverError(c)
		return
	}

	h.render(c, http.StatusOK, "post.html", PostViewData{
		Post:     post,
		Comments: comments,
		Form:     CommentFormData{Post: post},
	})
}

func (h *Handlers) newPostForm(c *gin.Context) {
	h.render(c, http.StatusOK, "postform.html", h.postFormData(c, PostFormData{}))
}

// newPost creates a post for the session user. Whatever author value a client
// might smuggle into the form is ignored: identity comes from the session.
func (h *Handlers) newPost(c *gin.Context) {
	userID := c.GetString("userID")
	text := c.PostForm("text")
	groupID := c.PostForm("group")

	image, err := h.saveImage(c)
	if err != nil {
		h.serverError(c)
		return
	}

	_, err = h.posts.CreatePost(c.Request.Context(), text, userID, optional(groupID), image)
	if err != nil {
		data, ok := h.postFormErrors(c, err, PostFormData{Text: text, GroupID: groupID})
		if !ok {
			h.serverError(c)
			return
		}
		h.render(c, http.StatusOK, "postform.html", data)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handlers) postEditForm(c *gin.Context) {
	post, err := h.posts.GetPostByAuthor(c.Request.Context(), c.Param("username"), c.Param("post_id"))
	if err != nil {
		h.notFound(c)
		return
	}
	if post.AuthorID != c.GetString("userID") {
		h.redirectToPost(c)
		return
	}

	data := PostFormData{Edit: true, Post: post, Text: post.Text}
	if post.Group != nil {
		data.GroupID = post.Group.ID
	}
	h.render(c, http.StatusOK, "postform.html", h.postFormData(c, data))
}

// postEdit mutates a post. A non-author lands back on the read view with
// nothing changed and no error page.
func (h *Handlers) postEdit(c *gin.Context) {
	post, err := h.posts.GetPostByAuthor(c.Request.Context(), c.Param("username"), c.Param("post_id"))
	if err != nil {
		h.notFound(c)
		return
	}

	text := c.PostForm("text")
	groupID := c.PostForm("group")

	image, err := h.saveImage(c)
	if err != nil {
		h.serverError(c)
		return
	}

	_, err = h.posts.UpdatePost(c.Request.Context(), post.ID, c.GetString("userID"), text, optional(groupID), image)
	if err != nil {
		if errors.Is(err, postapp.ErrNotAuthor) {
			h.redirectToPost(c)
			return
		}
		data, ok := h.postFormErrors(c, err, PostFormData{Edit: true, Post: post, Text: text, GroupID: groupID})
		if !ok {
			h.serverError(c)
			return
		}
		h.render(c, http.StatusOK, "postform.html", data)
		return
	}
	h.redirectToPost(c)
}

// addComment attaches a comment to the addressed post. Invalid text
// redisplays the comment form with field errors.
func (h *Handlers) addComment(c *gin.Context) {
	post, err := h.posts.GetPostByAuthor(c.Request.Context(), c.Param("username"), c.Param("post_id"))
	if err != nil {
		h.notFound(c)
		return
	}

	text := c.PostForm("text")
	_, err = h.comments.AddComment(c.Request.Context(), post.ID, c.GetString("userID"), text)
	if err != nil {
		if errors.Is(err, commentapp.ErrTextRequired) {
			h.render(c, http.StatusOK, "comments.html", CommentFormData{
				Post:   post,
				Text:   text,
				Errors: map[string]string{"text": "Comment text is required"},
			})
			return
		}
		h.serverError(c)
		return
	}
	h.redirectToPost(c)
}

// saveImage stores an optional multipart upload under the media dir and
// returns the stored file name; no upload is not an error.
func (h *Handlers) saveImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	name := uuid.Must(uuid.NewV4()).String() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.mediaDir, name)); err != nil {
		return "", err
	}
	return name, nil
}

// postFormData fills the group choices for the post form.
func (h *Handlers) postFormData(c *gin.Context, data PostFormData) PostFormData {
	groups, _, err := h.groups.ListGroups(c.Request.Context(), 0, 0)
	if err == nil {
		data.Groups = groups
	}
	return data
}

// postFormErrors maps validation failures to field errors; ok is false for
// anything that is not a validation failure.
func (h *Handlers) postFormErrors(c *gin.Context, err error, data PostFormData) (PostFormData, bool) {
	data.Errors = map[string]string{}
	switch {
	case errors.Is(err, postapp.ErrTextRequired):
		data.Errors["text"] = "Post text is required"
	case errors.Is(err, postapp.ErrGroupNotFound):
		data.Errors["group"] = "Unknown group"
	default:
		return data, false
	}
	return h.postFormData(c, data), true
}

func (h *Handlers) redirectToPost(c *gin.Context) {
	c.Redirect(http.StatusFound, "/"+c.Param("username")+"/"+c.Param("post_id"))
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
