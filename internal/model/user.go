package model

import "time"

// User is a registered account.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session is an opaque bearer token bound to a user.
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Settings holds per-user integration preferences. Secrets are stored
// as-is; the API layer redacts them on read.
type Settings struct {
	UserID            string
	ConfluenceBaseURL string
	ConfluenceEmail   string
	ConfluenceToken   string
	AIAPIKey          string
	DefaultSpace      string
	UpdatedAt         time.Time
}
