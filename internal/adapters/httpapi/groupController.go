package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	groupapp "github.com/8ubble8uddy/yatube-project/internal/core/group/service"
)

// GroupController is read-only: groups are managed by operators, not by the
// API.
type GroupController struct{ gc GroupUseCase }

func NewGroupController(gc GroupUseCase) *GroupController { return &GroupController{gc: gc} }

func (ctl *GroupController) ListGroups(c *gin.Context) {
	limit, offset := limitOffset(c)
	groups, total, err := ctl.gc.ListGroups(c.Request.Context(), offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list groups"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": total, "results": groups})
}

func (ctl *GroupController) GetGroup(c *gin.Context) {
	g, err := ctl.gc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, groupapp.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, g)
}
