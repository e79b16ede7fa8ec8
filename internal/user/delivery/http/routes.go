package http

import (
	"github.com/gin-gonic/gin"

	"confluence-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", mw.Auth(), h.Logout)
	}

	users := rg.Group("/users")
	{
		users.GET("/me", mw.Auth(), h.Me)
		users.GET("/settings", mw.Auth(), h.GetSettings)
		users.PUT("/settings", mw.Auth(), h.UpdateSettings)
	}
}
