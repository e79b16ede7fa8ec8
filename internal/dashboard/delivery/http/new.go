package http

import (
	"confluence-assistant/internal/dashboard"
	pkgLog "confluence-assistant/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc dashboard.UseCase
}

// New creates a new HTTP handler for the dashboard domain.
func New(l pkgLog.Logger, uc dashboard.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
