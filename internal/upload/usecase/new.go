package usecase

import (
	pkgLog "confluence-assistant/pkg/log"
)

const (
	// MaxFileSize bounds how much extracted text one upload may carry.
	MaxFileSize = 50 * 1024

	previewLimit = 200
)

// textExtensions are the file types treated as plain text. Anything
// else is rejected rather than garbled.
var textExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".json":     true,
	".yaml":     true,
	".yml":      true,
	".xml":      true,
	".html":     true,
	".log":      true,
}

type implUseCase struct {
	l pkgLog.Logger
}

// New creates a new upload UseCase instance.
func New(l pkgLog.Logger) *implUseCase {
	return &implUseCase{l: l}
}
