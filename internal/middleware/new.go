package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"confluence-assistant/internal/model"
	"confluence-assistant/internal/user"
	pkgLog "confluence-assistant/pkg/log"
)

const (
	sessionCacheSize = 1024
	sessionCacheTTL  = time.Minute

	limiterCacheSize = 4096
	limiterCacheTTL  = 10 * time.Minute

	// Per-client budget: 10 requests per second with bursts of 30.
	limiterRate  = rate.Limit(10)
	limiterBurst = 30
)

type Middleware struct {
	l      pkgLog.Logger
	userUC user.UseCase

	sessionCache *expirable.LRU[string, model.Scope]
	limiters     *expirable.LRU[string, *rate.Limiter]
}

func New(l pkgLog.Logger, userUC user.UseCase) Middleware {
	return Middleware{
		l:            l,
		userUC:       userUC,
		sessionCache: expirable.NewLRU[string, model.Scope](sessionCacheSize, nil, sessionCacheTTL),
		limiters:     expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterCacheTTL),
	}
}
