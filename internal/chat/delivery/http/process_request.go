package http

import (
	"github.com/gin-gonic/gin"

	"reminder-ai/pkg/response"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, response.NewHTTPError(400, "message cannot be empty")
	}
	return req, nil
}
