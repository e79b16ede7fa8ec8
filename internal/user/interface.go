package user

import (
	"context"

	"confluence-assistant/internal/model"
)

type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	Logout(ctx context.Context, token string) error

	// ValidateSession resolves a bearer token into a Scope. Returns
	// ErrSessionNotFound for unknown or expired tokens.
	ValidateSession(ctx context.Context, token string) (model.Scope, error)

	Me(ctx context.Context, sc model.Scope) (model.User, error)
	GetSettings(ctx context.Context, sc model.Scope) (SettingsOutput, error)
	UpdateSettings(ctx context.Context, sc model.Scope, input UpdateSettingsInput) (SettingsOutput, error)
}
