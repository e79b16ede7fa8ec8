package repository

import (
	"context"

	"confluence-assistant/internal/model"
)

// Repository is the composed interface for the chat domain data store.
type Repository interface {
	ConversationRepository
	MessageRepository
}

// ConversationRepository defines data access for conversations. All
// reads and writes are scoped to the owning user.
type ConversationRepository interface {
	CreateConversation(ctx context.Context, conversation model.Conversation) error
	GetConversation(ctx context.Context, opt GetConversationOptions) (model.Conversation, error)
	ListConversations(ctx context.Context, userID string) ([]model.Conversation, error)
	TouchConversation(ctx context.Context, opt TouchConversationOptions) error
	DeleteConversation(ctx context.Context, opt GetConversationOptions) error
}

// MessageRepository defines data access for messages.
type MessageRepository interface {
	CreateMessage(ctx context.Context, message model.Message) error
	ListMessages(ctx context.Context, conversationID string) ([]model.Message, error)
	CountMessages(ctx context.Context, opt CountMessagesOptions) (MessageStats, error)
}
