package upload

import (
	"context"

	"confluence-assistant/internal/model"
)

// UseCase turns an uploaded file into the extracted document the chat
// pipeline consumes.
type UseCase interface {
	Extract(ctx context.Context, fileName string, data []byte) (model.UploadedDocument, error)
}
