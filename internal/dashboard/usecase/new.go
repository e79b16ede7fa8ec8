package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	chatRepo "confluence-assistant/internal/chat/repository"
	"confluence-assistant/internal/dashboard"
	"confluence-assistant/internal/user"
	"confluence-assistant/pkg/confluence"
	pkgLog "confluence-assistant/pkg/log"
)

const (
	cacheSize = 512
	cacheTTL  = time.Minute

	activityWindow = 7 * 24 * time.Hour

	maxSurveySpaces = 10
	pagesPerSpace   = 50
	topContributors = 5
	recentlyUpdated = 5
)

// ConfluenceFactory builds a Confluence client for one set of
// credentials.
type ConfluenceFactory func(cfg confluence.Config) (confluence.IConfluence, error)

type implUseCase struct {
	l        pkgLog.Logger
	chatRepo chatRepo.Repository
	userUC   user.UseCase

	newConfluence ConfluenceFactory
	cache         *expirable.LRU[string, dashboard.Stats]
}

// New creates a new dashboard UseCase instance.
func New(l pkgLog.Logger, repo chatRepo.Repository, userUC user.UseCase, factory ConfluenceFactory) *implUseCase {
	if factory == nil {
		factory = func(cfg confluence.Config) (confluence.IConfluence, error) {
			return confluence.New(cfg)
		}
	}
	return &implUseCase{
		l:             l,
		chatRepo:      repo,
		userUC:        userUC,
		newConfluence: factory,
		cache:         expirable.NewLRU[string, dashboard.Stats](cacheSize, nil, cacheTTL),
	}
}
