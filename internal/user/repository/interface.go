package repository

import (
	"context"

	"confluence-assistant/internal/model"
)

// Repository is the composed interface for the user domain data store.
type Repository interface {
	UserRepository
	SessionRepository
	SettingsRepository
}

// UserRepository defines data access for the User entity.
type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
}

// SessionRepository defines data access for sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, session model.Session) error
	GetSession(ctx context.Context, token string) (model.Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context) (int, error)
}

// SettingsRepository defines data access for per-user settings.
type SettingsRepository interface {
	GetSettings(ctx context.Context, userID string) (model.Settings, error)
	UpsertSettings(ctx context.Context, settings model.Settings) error
}
