package sqlite

import (
	"context"
	"database/sql"
	"time"

	"confluence-assistant/internal/model"
	repo "confluence-assistant/internal/user/repository"
)

// CreateSession inserts a new session row.
func (r *implRepository) CreateSession(ctx context.Context, session model.Session) error {
	const query = `
		INSERT INTO sessions (token, user_id, created_at, expires_at)
		VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		session.Token, session.UserID, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSession"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// GetSession retrieves a session by token. Returns a zero-value Session
// (Token == "") when not found.
func (r *implRepository) GetSession(ctx context.Context, token string) (model.Session, error) {
	const query = `SELECT token, user_id, created_at, expires_at FROM sessions WHERE token = ? LIMIT 1`

	var s model.Session
	err := r.db.QueryRowContext(ctx, query, token).Scan(
		&s.Token, &s.UserID, &s.CreatedAt, &s.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return model.Session{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSession"), err)
		return model.Session{}, repo.ErrFailedToGet
	}
	return s, nil
}

// DeleteSession removes a session by token.
func (r *implRepository) DeleteSession(ctx context.Context, token string) error {
	const query = `DELETE FROM sessions WHERE token = ?`
	if _, err := r.db.ExecContext(ctx, query, token); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSession"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// DeleteExpiredSessions removes all sessions past their expiry and
// returns the number deleted.
func (r *implRepository) DeleteExpiredSessions(ctx context.Context) (int, error) {
	const query = `DELETE FROM sessions WHERE expires_at < ?`
	res, err := r.db.ExecContext(ctx, query, time.Now().UTC())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteExpiredSessions"), err)
		return 0, repo.ErrFailedToDelete
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}
