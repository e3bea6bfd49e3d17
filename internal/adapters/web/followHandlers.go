package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	followapp "github.com/8ubble8uddy/yatube-project/internal/core/follow/service"
)

// profileFollow subscribes the session user to the author. It is idempotent
// and a self-follow is skipped; either way the visitor lands on the profile.
func (h *Handlers) profileFollow(c *gin.Context) {
	username := c.Param("username")
	err := h.follows.Follow(c.Request.Context(), c.GetString("userID"), username)
	if err != nil && !errors.Is(err, followapp.ErrSelfFollow) {
		if errors.Is(err, followapp.ErrUserNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c)
		return
	}
	c.Redirect(http.StatusFound, "/"+username)
}

// profileUnfollow removes the subscription; a missing one is not an error.
func (h *Handlers) profileUnfollow(c *gin.Context) {
	username := c.Param("username")
	if err := h.follows.Unfollow(c.Request.Context(), c.GetString("userID"), username); err != nil {
		if errors.Is(err, followapp.ErrUserNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c)
		return
	}
	c.Redirect(http.StatusFound, "/"+username)
}
