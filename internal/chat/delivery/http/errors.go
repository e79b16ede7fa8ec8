package http

import (
	"confluence-assistant/internal/chat"
	pkgErrors "confluence-assistant/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case chat.ErrEmptyMessage:
		return pkgErrors.NewHTTPError(400, "message is empty")
	case chat.ErrConversationNotFound:
		return pkgErrors.NewHTTPError(404, "conversation not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
