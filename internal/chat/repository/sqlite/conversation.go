package sqlite

import (
	"context"
	"database/sql"

	repo "confluence-assistant/internal/chat/repository"
	"confluence-assistant/internal/model"
)

// CreateConversation inserts a new conversation row.
func (r *implRepository) CreateConversation(ctx context.Context, conversation model.Conversation) error {
	const query = `
		INSERT INTO conversations (id, user_id, title, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		conversation.ID, conversation.UserID, conversation.Title,
		conversation.CreatedAt, conversation.UpdatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateConversation"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// GetConversation retrieves one conversation owned by the given user.
// Returns a zero-value Conversation (ID == "") when not found.
func (r *implRepository) GetConversation(ctx context.Context, opt repo.GetConversationOptions) (model.Conversation, error) {
	const query = `
		SELECT id, user_id, title, created_at, updated_at
		FROM conversations WHERE id = ? AND user_id = ? LIMIT 1`

	var c model.Conversation
	err := r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID).Scan(
		&c.ID, &c.UserID, &c.Title, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Conversation{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetConversation"), err)
		return model.Conversation{}, repo.ErrFailedToGet
	}
	return c, nil
}

// ListConversations returns the user's conversations, most recently
// active first.
func (r *implRepository) ListConversations(ctx context.Context, userID string) ([]model.Conversation, error) {
	const query = `
		SELECT id, user_id, title, created_at, updated_at
		FROM conversations WHERE user_id = ? ORDER BY updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListConversations"), err)
		return nil, repo.ErrFailedToGet
	}
	defer rows.Close()

	conversations := []model.Conversation{}
	for rows.Next() {
		var c model.Conversation
		if err := rows.Scan(&c.ID, &c.UserID, &c.Title, &c.CreatedAt, &c.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListConversations"), err)
			return nil, repo.ErrFailedToGet
		}
		conversations = append(conversations, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("ListConversations"), err)
		return nil, repo.ErrFailedToGet
	}
	return conversations, nil
}

// TouchConversation bumps UpdatedAt and optionally renames.
func (r *implRepository) TouchConversation(ctx context.Context, opt repo.TouchConversationOptions) error {
	const query = `
		UPDATE conversations
		SET updated_at = ?, title = CASE WHEN ? = '' THEN title ELSE ? END
		WHERE id = ? AND user_id = ?`

	_, err := r.db.ExecContext(ctx, query,
		opt.UpdatedAt, opt.Title, opt.Title, opt.ID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TouchConversation"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteConversation removes a conversation and, via the foreign key
// cascade, its messages.
func (r *implRepository) DeleteConversation(ctx context.Context, opt repo.GetConversationOptions) error {
	const query = `DELETE FROM conversations WHERE id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteConversation"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
