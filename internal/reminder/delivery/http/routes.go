package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/reminder", h.Create)
	rg.GET("/reminders", h.List)
	rg.GET("/reminders/upcoming", h.Upcoming)
	rg.POST("/reminder/:id/complete", h.Complete)
	rg.DELETE("/reminder/:id", h.Delete)
}
