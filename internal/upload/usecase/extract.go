package usecase

import (
	"context"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"confluence-assistant/internal/model"
	"confluence-assistant/internal/upload"
)

// Extract validates the file and produces the document the chat
// pipeline consumes. Only text-like files are accepted; binary blobs
// and oversized files are rejected up front.
func (uc *implUseCase) Extract(ctx context.Context, fileName string, data []byte) (model.UploadedDocument, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !textExtensions[ext] {
		return model.UploadedDocument{}, upload.ErrUnsupportedType
	}
	if len(data) > MaxFileSize {
		return model.UploadedDocument{}, upload.ErrFileTooLarge
	}

	content := strings.TrimSpace(sanitizeText(data))
	if content == "" {
		return model.UploadedDocument{}, upload.ErrEmptyFile
	}

	uc.l.Debugf(ctx, "Extract: %s (%d bytes)", fileName, len(content))
	return model.UploadedDocument{
		FileName: filepath.Base(fileName),
		Content:  content,
		Preview:  preview(content),
	}, nil
}

// sanitizeText normalizes line endings and drops bytes that are not
// valid UTF-8, so a mislabeled binary file degrades instead of
// corrupting the conversation.
func sanitizeText(data []byte) string {
	s := strings.ToValidUTF8(string(data), "")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

// preview is the first 200 runes, cut on a rune boundary.
func preview(content string) string {
	if utf8.RuneCountInString(content) <= previewLimit {
		return content
	}
	runes := []rune(content)
	return string(runes[:previewLimit]) + "…"
}
