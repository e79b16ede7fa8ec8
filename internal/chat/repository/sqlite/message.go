package sqlite

import (
	"context"

	repo "confluence-assistant/internal/chat/repository"
	"confluence-assistant/internal/model"
)

// CreateMessage inserts a new message row.
func (r *implRepository) CreateMessage(ctx context.Context, message model.Message) error {
	const query = `
		INSERT INTO messages (id, conversation_id, role, content, intent_kind, confidence, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		message.ID, message.ConversationID, string(message.Role),
		message.Content, message.IntentKind, message.Confidence, message.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMessage"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// ListMessages returns a conversation's messages in chronological order.
func (r *implRepository) ListMessages(ctx context.Context, conversationID string) ([]model.Message, error) {
	const query = `
		SELECT id, conversation_id, role, content, intent_kind, confidence, created_at
		FROM messages WHERE conversation_id = ? ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMessages"), err)
		return nil, repo.ErrFailedToGet
	}
	defer rows.Close()

	messages := []model.Message{}
	for rows.Next() {
		var m model.Message
		var role string
		if err := rows.Scan(&m.ID, &m.ConversationID, &role, &m.Content,
			&m.IntentKind, &m.Confidence, &m.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListMessages"), err)
			return nil, repo.ErrFailedToGet
		}
		m.Role = model.MessageRole(role)
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("ListMessages"), err)
		return nil, repo.ErrFailedToGet
	}
	return messages, nil
}

// CountMessages aggregates assistant messages for the user, optionally
// bounded to a starting time, grouped by resolved intent kind.
func (r *implRepository) CountMessages(ctx context.Context, opt repo.CountMessagesOptions) (repo.MessageStats, error) {
	query := `
		SELECT m.intent_kind, COUNT(*)
		FROM messages m
		JOIN conversations c ON c.id = m.conversation_id
		WHERE c.user_id = ? AND m.role = ?`
	args := []any{opt.UserID, string(model.RoleAssistant)}

	if !opt.Since.IsZero() {
		query += ` AND m.created_at >= ?`
		args = append(args, opt.Since)
	}
	query += ` GROUP BY m.intent_kind`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountMessages"), err)
		return repo.MessageStats{}, repo.ErrFailedToGet
	}
	defer rows.Close()

	stats := repo.MessageStats{ByKind: map[string]int{}}
	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("CountMessages"), err)
			return repo.MessageStats{}, repo.ErrFailedToGet
		}
		stats.ByKind[kind] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("CountMessages"), err)
		return repo.MessageStats{}, repo.ErrFailedToGet
	}
	return stats, nil
}
