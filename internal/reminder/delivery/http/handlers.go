package http

import (
	"github.com/gin-gonic/gin"

	"reminder-ai/pkg/response"
)

// Create godoc
// @Summary     Create a new reminder
// @Description Creates a reminder. Relative dates like "tomorrow" or "April 15" are normalized to YYYY-MM-DD.
// @Tags        Reminders
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Reminder data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/reminder [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List reminders
// @Description Returns reminders filtered by completion state and, optionally, an exact date.
// @Tags        Reminders
// @Produce     json
// @Param       date      query string false "Exact date filter (YYYY-MM-DD)"
// @Param       completed query bool   false "Show completed reminders (default: false)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/reminders [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output.Reply, output.Reminders))
}

// Complete godoc
// @Summary     Complete a reminder
// @Description Marks a reminder as completed. Completing twice is a success and reports the state.
// @Tags        Reminders
// @Produce     json
// @Param       id path int true "Reminder ID"
// @Success     200 {object} completeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/reminder/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Complete(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCompleteResp(output))
}

// Delete godoc
// @Summary     Delete a reminder
// @Description Permanently removes a reminder by ID.
// @Tags        Reminders
// @Produce     json
// @Param       id path int true "Reminder ID"
// @Success     200 {object} deleteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/reminder/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Delete(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDeleteResp(output))
}

// Upcoming godoc
// @Summary     List upcoming reminders
// @Description Returns uncompleted reminders dated today or tomorrow.
// @Tags        Reminders
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/reminders/upcoming [GET]
func (h *handler) Upcoming(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Upcoming(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Upcoming: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output.Reply, output.Reminders))
}
