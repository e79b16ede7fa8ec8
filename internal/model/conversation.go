package model

import "time"

// MessageRole identifies who authored a chat message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Conversation is one chat thread owned by a user.
type Conversation struct {
	ID        string
	UserID    string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is a single entry in a conversation. Assistant messages carry
// the resolved intent kind and confidence for later inspection.
type Message struct {
	ID             string
	ConversationID string
	Role           MessageRole
	Content        string
	IntentKind     string
	Confidence     float64
	CreatedAt      time.Time
}
