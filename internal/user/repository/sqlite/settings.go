package sqlite

import (
	"context"
	"database/sql"

	"confluence-assistant/internal/model"
	repo "confluence-assistant/internal/user/repository"
)

// GetSettings retrieves a user's settings. Returns zero-value Settings
// with the UserID filled when the user has never saved any.
func (r *implRepository) GetSettings(ctx context.Context, userID string) (model.Settings, error) {
	const query = `
		SELECT user_id, confluence_base_url, confluence_email, confluence_token, ai_api_key, default_space, updated_at
		FROM settings WHERE user_id = ? LIMIT 1`

	var s model.Settings
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&s.UserID, &s.ConfluenceBaseURL, &s.ConfluenceEmail, &s.ConfluenceToken,
		&s.AIAPIKey, &s.DefaultSpace, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Settings{UserID: userID}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSettings"), err)
		return model.Settings{}, repo.ErrFailedToGet
	}
	return s, nil
}

// UpsertSettings writes a user's settings, inserting on first save.
func (r *implRepository) UpsertSettings(ctx context.Context, settings model.Settings) error {
	const query = `
		INSERT INTO settings (user_id, confluence_base_url, confluence_email, confluence_token, ai_api_key, default_space, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			confluence_base_url = excluded.confluence_base_url,
			confluence_email    = excluded.confluence_email,
			confluence_token    = excluded.confluence_token,
			ai_api_key          = excluded.ai_api_key,
			default_space       = excluded.default_space,
			updated_at          = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		settings.UserID, settings.ConfluenceBaseURL, settings.ConfluenceEmail,
		settings.ConfluenceToken, settings.AIAPIKey, settings.DefaultSpace, settings.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertSettings"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
