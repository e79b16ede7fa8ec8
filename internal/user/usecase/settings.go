package usecase

import (
	"context"
	"strings"
	"time"

	"confluence-assistant/internal/model"
	"confluence-assistant/internal/user"
)

// GetSettings returns the user's settings, zero-valued when none were
// ever saved.
func (uc *implUseCase) GetSettings(ctx context.Context, sc model.Scope) (user.SettingsOutput, error) {
	settings, err := uc.repo.GetSettings(ctx, sc.UserID)
	if err != nil {
		return user.SettingsOutput{}, err
	}
	if settings.UserID == "" {
		settings.UserID = sc.UserID
	}
	return user.SettingsOutput{Settings: settings}, nil
}

// UpdateSettings applies the non-nil fields of the input over the
// stored settings. A nil field keeps the stored value; an empty string
// clears it.
func (uc *implUseCase) UpdateSettings(ctx context.Context, sc model.Scope, input user.UpdateSettingsInput) (user.SettingsOutput, error) {
	settings, err := uc.repo.GetSettings(ctx, sc.UserID)
	if err != nil {
		return user.SettingsOutput{}, err
	}
	settings.UserID = sc.UserID

	if input.ConfluenceBaseURL != nil {
		settings.ConfluenceBaseURL = strings.TrimRight(strings.TrimSpace(*input.ConfluenceBaseURL), "/")
	}
	if input.ConfluenceEmail != nil {
		settings.ConfluenceEmail = strings.TrimSpace(*input.ConfluenceEmail)
	}
	if input.ConfluenceToken != nil {
		settings.ConfluenceToken = strings.TrimSpace(*input.ConfluenceToken)
	}
	if input.AIAPIKey != nil {
		settings.AIAPIKey = strings.TrimSpace(*input.AIAPIKey)
	}
	if input.DefaultSpace != nil {
		settings.DefaultSpace = strings.ToUpper(strings.TrimSpace(*input.DefaultSpace))
	}
	settings.UpdatedAt = time.Now().UTC()

	if err := uc.repo.UpsertSettings(ctx, settings); err != nil {
		return user.SettingsOutput{}, err
	}

	uc.l.Debugf(ctx, "UpdateSettings: saved for user %s", sc.UserID)
	return user.SettingsOutput{Settings: settings}, nil
}
