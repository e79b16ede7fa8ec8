package http

import (
	"github.com/gin-gonic/gin"

	"confluence-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every
// chat route requires an authenticated session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("/chat", mw.Auth())
	{
		chat.POST("/messages", h.Send)
		chat.GET("/conversations", h.ListConversations)
		chat.GET("/conversations/:id/messages", h.History)
		chat.DELETE("/conversations/:id", h.DeleteConversation)
	}
}
