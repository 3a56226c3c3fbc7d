package http

import (
	"github.com/gin-gonic/gin"

	"reminder-ai/internal/chat"
	pkgLog "reminder-ai/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	GeneralChat(c *gin.Context)
	Conversation(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l pkgLog.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
