package user

import "confluence-assistant/internal/model"

// --- UseCase Inputs ---

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

type UpdateSettingsInput struct {
	ConfluenceBaseURL *string
	ConfluenceEmail   *string
	ConfluenceToken   *string
	AIAPIKey          *string
	DefaultSpace      *string
}

// --- UseCase Outputs ---

type RegisterOutput struct {
	User model.User
}

type LoginOutput struct {
	User    model.User
	Session model.Session
}

type SettingsOutput struct {
	Settings model.Settings
}
