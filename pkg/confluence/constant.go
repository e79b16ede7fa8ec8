package confluence

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultLimit is the default page size for list/search calls.
	DefaultLimit = 25

	// MaxLimit is the hard cap Confluence Cloud accepts per request.
	MaxLimit = 100
)
