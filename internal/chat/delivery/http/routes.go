package http

import (
	"github.com/gin-gonic/gin"

	"reminder-ai/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The chat
// endpoints are rate limited since each one triggers a generation call.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
	rg.POST("/general-chat", mw.RateLimit(), h.GeneralChat)
	rg.GET("/conversations/:id", h.Conversation)
}
