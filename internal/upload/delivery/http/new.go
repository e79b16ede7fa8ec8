package http

import (
	"confluence-assistant/internal/upload"
	pkgLog "confluence-assistant/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc upload.UseCase
}

// New creates a new HTTP handler for the upload domain.
func New(l pkgLog.Logger, uc upload.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
