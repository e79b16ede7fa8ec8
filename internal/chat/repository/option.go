package repository

import "time"

// GetConversationOptions identifies one conversation scoped to its
// owner. Both fields are required.
type GetConversationOptions struct {
	ID     string
	UserID string
}

// TouchConversationOptions bumps a conversation's UpdatedAt and
// optionally renames it.
type TouchConversationOptions struct {
	ID        string
	UserID    string
	Title     string // empty keeps the current title
	UpdatedAt time.Time
}

// CountMessagesOptions filters message statistics.
type CountMessagesOptions struct {
	UserID string
	Since  time.Time // zero counts everything
}

// MessageStats is an aggregate over assistant messages.
type MessageStats struct {
	Total  int
	ByKind map[string]int
}
