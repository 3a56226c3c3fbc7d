package http

import (
	"reminder-ai/internal/chat"
	"reminder-ai/pkg/response"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case chat.ErrEmptyMessage:
		return response.NewHTTPError(400, "message cannot be empty")
	default:
		return response.NewHTTPError(500, "internal server error")
	}
}
