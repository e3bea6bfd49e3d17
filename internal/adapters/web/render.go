package web

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/8ubble8uddy/yatube-project/internal/config"
	commentPort "github.com/8ubble8uddy/yatube-project/internal/ports/comment"
	groupPort "github.com/8ubble8uddy/yatube-project/internal/ports/group"
	postPort "github.com/8ubble8uddy/yatube-project/internal/ports/post"
	userPort "github.com/8ubble8uddy/yatube-project/internal/ports/user"
)

// View data passed to the templates.

type IndexViewData struct {
	Page *postPort.Page
}

type GroupViewData struct {
	Group *groupPort.GroupDTO
	Page  *postPort.Page
}

type ProfileViewData struct {
	Author    *userPort.UserDTO
	Page      *postPort.Page
	Following bool
}

type FollowViewData struct {
	Page *postPort.Page
}

type PostViewData struct {
	Post     *postPort.PostDTO
	Comments []*commentPort.CommentDTO
	Form     CommentFormData
}

type CommentFormData struct {
	Post   *postPort.PostDTO
	Text   string
	Errors map[string]string
}

type PostFormData struct {
	Edit    bool
	Post    *postPort.PostDTO
	Text    string
	GroupID string
	Groups  []*groupPort.GroupDTO
	Errors  map[string]string
}

type AuthFormData struct {
	Username  string
	FirstName string
	LastName  string
	Next      string
	Errors    map[string]string
}

type NotFoundViewData struct {
	Path string
}

func (h *Handlers) render(c *gin.Context, status int, name string, data interface{}) {
	c.Writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.Writer.WriteHeader(status)
	if err := h.templates.ExecuteTemplate(c.Writer, name, data); err != nil {
		config.Logger.Error("Template render failed", zap.String("template", name), zap.Error(err))
	}
}

// renderToString renders into a buffer so the result can be cached verbatim.
func (h *Handlers) renderToString(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (h *Handlers) writeHTML(c *gin.Context, body string) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body))
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	return page
}
