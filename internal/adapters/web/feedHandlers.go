package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	postapp "github.com/8ubble8uddy/yatube-project/internal/core/post/service"
)

// index is the global feed. The rendered page is cached verbatim; a post
// created after the first render stays invisible until the entry expires or
// the cache is cleared.
func (h *Handlers) index(c *gin.Context) {
	page := pageParam(c)
	key := fmt.Sprintf("index:p%d", page)

	body, _, err := h.cache.GetOrRender(c.Request.Context(), key, h.cacheTTL, func() (string, error) {
		pg, err := h.posts.Feed(c.Request.Context(), page)
		if err != nil {
			return "", err
		}
		return h.renderToString("index.html", IndexViewData{Page: pg})
	})
	if err != nil {
		h.serverError(c)
		return
	}
	h.writeHTML(c, body)
}

func (h *Handlers) groupPosts(c *gin.Context) {
	g, pg, err := h.posts.GroupFeed(c.Request.Context(), c.Param("slug"), pageParam(c))
	if err != nil {
		if errors.Is(err, postapp.ErrGroupNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c)
		return
	}
	h.render(c, http.StatusOK, "group.html", GroupViewData{Group: g, Page: pg})
}

func (h *Handlers) profile(c *gin.Context) {
	username := c.Param("username")
	author, pg, err := h.posts.ProfileFeed(c.Request.Context(), username, pageParam(c))
	if err != nil {
		if errors.Is(err, postapp.ErrAuthorNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c)
		return
	}

	following := false
	if userID, ok := h.currentUserID(c); ok {
		following, _ = h.follows.IsFollowing(c.Request.Context(), userID, username)
	}

	h.render(c, http.StatusOK, "profile.html", ProfileViewData{
		Author:    author,
		Page:      pg,
		Following: following,
	})
}

// followIndex is the personalized feed of followed authors.
func (h *Handlers) followIndex(c *gin.Context) {
	pg, err := h.posts.FollowFeed(c.Request.Context(), c.GetString("userID"), pageParam(c))
	if err != nil {
		h.serverError(c)
		return
	}
	h.render(c, http.StatusOK, "follow.html", FollowViewData{Page: pg})
}

func (h *Handlers) aboutAuthor(c *gin.Context) {
	h.render(c, http.StatusOK, "about_author.html", nil)
}

func (h *Handlers) aboutTech(c *gin.Context) {
	h.render(c, http.StatusOK, "about_tech.html", nil)
}
