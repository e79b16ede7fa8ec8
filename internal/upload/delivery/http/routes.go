package http

import (
	"github.com/gin-gonic/gin"

	"confluence-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/uploads", mw.Auth(), h.Upload)
}
