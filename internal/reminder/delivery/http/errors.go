package http

import (
	"reminder-ai/internal/reminder"
	"reminder-ai/pkg/response"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case reminder.ErrReminderNotFound:
		return response.NewHTTPError(404, "reminder not found")
	case reminder.ErrEmptyMessage:
		return response.NewHTTPError(400, "message cannot be empty")
	case reminder.ErrEmptyDate:
		return response.NewHTTPError(400, "date cannot be empty")
	default:
		return response.NewHTTPError(500, "internal server error")
	}
}
