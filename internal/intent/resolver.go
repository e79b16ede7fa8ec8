package intent

import (
	"context"
	"strings"

	"confluence-assistant/pkg/log"
)

// Resolver is the single entry point for the rest of the application.
type Resolver struct {
	delegate *Delegate
	l        log.Logger
}

// NewResolver creates a new resolver facade.
func NewResolver(delegate *Delegate, l log.Logger) *Resolver {
	return &Resolver{delegate: delegate, l: l}
}

// Resolve classifies a message. With a usable API key the AI delegate is
// tried in parse mode; on any delegate error the rule matcher takes over
// on the original message. The degradation is silent: callers only see
// the result's Source/Confidence differ. This method never fails.
func (r *Resolver) Resolve(ctx context.Context, message, apiKey string) ParsedIntent {
	if strings.TrimSpace(apiKey) == "" {
		return MatchRules(message)
	}

	parsed, err := r.delegate.Resolve(ctx, message, apiKey, ModeParse)
	if err != nil {
		r.l.Warnf(ctx, "intent resolver: AI delegate failed, using rules: %v", err)
		return MatchRules(message)
	}
	return parsed
}

// Chat answers an open-ended question. There is no rule-based
// equivalent, so delegate errors surface to the caller.
func (r *Resolver) Chat(ctx context.Context, message, apiKey string) (ParsedIntent, error) {
	return r.delegate.Resolve(ctx, message, apiKey, ModeChat)
}
