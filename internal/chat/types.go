package chat

import (
	"confluence-assistant/internal/intent"
	"confluence-assistant/internal/model"
	"confluence-assistant/pkg/confluence"
)

// --- UseCase Inputs ---

type SendInput struct {
	ConversationID string // empty starts a new conversation
	Message        string
	Document       *model.UploadedDocument
}

// --- UseCase Outputs ---

// SendOutput is everything one chat turn produced: the persisted
// messages, the resolved intent, and whatever the Confluence action
// returned.
type SendOutput struct {
	Conversation model.Conversation
	UserMessage  model.Message
	Reply        model.Message
	Intent       intent.ParsedIntent

	// Populated depending on Intent.Kind.
	Page   *confluence.Page   // create
	Pages  []confluence.Page  // search
	Spaces []confluence.Space // spaces
}

type HistoryOutput struct {
	Conversation model.Conversation
	Messages     []model.Message
}
