package chat

import (
	"context"

	"confluence-assistant/internal/model"
)

type UseCase interface {
	// Send runs one chat turn: persists the user message, resolves the
	// intent, executes the Confluence action it names, and persists the
	// assistant reply. Confluence failures become assistant replies,
	// not errors.
	Send(ctx context.Context, sc model.Scope, input SendInput) (SendOutput, error)

	ListConversations(ctx context.Context, sc model.Scope) ([]model.Conversation, error)
	History(ctx context.Context, sc model.Scope, conversationID string) (HistoryOutput, error)
	DeleteConversation(ctx context.Context, sc model.Scope, conversationID string) error
}
