package http

import (
	"confluence-assistant/internal/middleware"
	"confluence-assistant/internal/user"
	pkgLog "confluence-assistant/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc user.UseCase
	mw middleware.Middleware
}

// New creates a new HTTP handler for the user domain.
func New(l pkgLog.Logger, uc user.UseCase, mw middleware.Middleware) *handler {
	return &handler{
		l:  l,
		uc: uc,
		mw: mw,
	}
}
