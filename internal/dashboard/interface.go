package dashboard

import (
	"context"

	"confluence-assistant/internal/model"
)

type UseCase interface {
	// Stats aggregates the user's chat activity and Confluence reach.
	// Results are cached briefly; callers may see up to a minute of lag.
	Stats(ctx context.Context, sc model.Scope) (Stats, error)
}
