package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"reminder-ai/pkg/response"
)

// processCreateReq binds and validates the create reminder request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds the list reminders query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processIDParam parses the reminder id path parameter.
func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, response.NewHTTPError(400, "invalid reminder id")
	}
	return id, nil
}
