package http

import (
	"github.com/gin-gonic/gin"

	"reminder-ai/internal/reminder"
	pkgLog "reminder-ai/pkg/log"
)

// Handler is the public interface for the reminder HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Complete(c *gin.Context)
	Delete(c *gin.Context)
	Upcoming(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc reminder.UseCase
}

// New creates a new HTTP handler for the reminder domain.
func New(l pkgLog.Logger, uc reminder.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
