package confluence

import "context"

// IConfluence defines the interface for the Confluence REST client.
type IConfluence interface {
	ListSpaces(ctx context.Context, limit int) ([]Space, error)
	GetSpace(ctx context.Context, key string) (Space, error)
	CreatePage(ctx context.Context, input CreatePageInput) (Page, error)
	SearchPages(ctx context.Context, input SearchPagesInput) ([]Page, error)
	ListPages(ctx context.Context, input ListPagesInput) ([]Page, error)
}
