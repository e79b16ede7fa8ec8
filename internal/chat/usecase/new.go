package usecase

import (
	"confluence-assistant/internal/chat/repository"
	"confluence-assistant/internal/intent"
	"confluence-assistant/internal/user"
	"confluence-assistant/pkg/confluence"
	pkgLog "confluence-assistant/pkg/log"
)

// ConfluenceFactory builds a Confluence client for one set of
// credentials. Clients are cheap, so one is built per request.
type ConfluenceFactory func(cfg confluence.Config) (confluence.IConfluence, error)

// Defaults are service-level credentials used when a user has not
// configured their own. Any empty field simply has no fallback.
type Defaults struct {
	ConfluenceBaseURL string
	ConfluenceEmail   string
	ConfluenceToken   string
	AIAPIKey          string
	DefaultSpace      string
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	userUC   user.UseCase
	resolver *intent.Resolver

	newConfluence ConfluenceFactory
	defaults      Defaults
}

// New creates a new chat UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, userUC user.UseCase, resolver *intent.Resolver, factory ConfluenceFactory, defaults Defaults) *implUseCase {
	if factory == nil {
		factory = func(cfg confluence.Config) (confluence.IConfluence, error) {
			return confluence.New(cfg)
		}
	}
	return &implUseCase{
		l:             l,
		repo:          repo,
		userUC:        userUC,
		resolver:      resolver,
		newConfluence: factory,
		defaults:      defaults,
	}
}
