package http

import (
	"confluence-assistant/internal/upload"
	pkgErrors "confluence-assistant/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case upload.ErrFileTooLarge:
		return pkgErrors.NewHTTPError(413, "file exceeds the 50KB limit")
	case upload.ErrUnsupportedType:
		return pkgErrors.NewHTTPError(415, "only text files are supported")
	case upload.ErrEmptyFile:
		return pkgErrors.NewHTTPError(400, "file is empty")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
