package http

import (
	"confluence-assistant/internal/user"
	pkgErrors "confluence-assistant/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case user.ErrDuplicateUsername:
		return pkgErrors.NewHTTPError(409, "username already taken")
	case user.ErrDuplicateEmail:
		return pkgErrors.NewHTTPError(409, "email already registered")
	case user.ErrWeakPassword:
		return pkgErrors.NewHTTPError(400, "password must be at least 8 characters")
	case user.ErrInvalidCredentials:
		return pkgErrors.NewHTTPError(401, "invalid username or password")
	case user.ErrSessionNotFound:
		return pkgErrors.NewHTTPError(401, "session not found or expired")
	case user.ErrUserNotFound:
		return pkgErrors.NewHTTPError(404, "user not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
