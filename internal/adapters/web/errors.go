package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/8ubble8uddy/yatube-project/internal/config"
)

func (h *Handlers) notFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "404.html", NotFoundViewData{Path: c.Request.URL.Path})
}

func (h *Handlers) serverError(c *gin.Context) {
	h.render(c, http.StatusInternalServerError, "500.html", nil)
}

// recovered turns a panic into the dedicated 500 page.
func (h *Handlers) recovered(c *gin.Context, err interface{}) {
	config.Logger.Error("Recovered from panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))
	h.serverError(c)
	c.Abort()
}
