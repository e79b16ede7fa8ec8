package usecase

import (
	"time"

	"confluence-assistant/internal/user/repository"
	pkgLog "confluence-assistant/pkg/log"
)

const (
	sessionTTL        = 7 * 24 * time.Hour
	minPasswordLength = 8
	bcryptCost        = 12
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

// New creates a new user UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
