package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	followapp "github.com/8ubble8uddy/yatube-project/internal/core/follow/service"
)

type FollowController struct{ fc FollowUseCase }

func NewFollowController(fc FollowUseCase) *FollowController {
	return &FollowController{fc: fc}
}

// ListFollows returns only the caller's outgoing follows, searchable by the
// followed author's username.
func (ctl *FollowController) ListFollows(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}

	limit, offset := limitOffset(c)
	follows, total, err := ctl.fc.ListFollows(c.Request.Context(), userID, c.Query("search"), offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list follows"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": total, "results": follows})
}

func (ctl *FollowController) Follow(c *gin.Context) {
	var req struct {
		Author string `json:"author" binding:"required"`
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

	if err := ctl.fc.Follow(c.Request.Context(), userID, req.Author); err != nil {
		switch {
		case errors.Is(err, followapp.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "author not found"})
		case errors.Is(err, followapp.ErrSelfFollow):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot follow yourself"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not follow author"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"author": req.Author})
}
