package http

import (
	"strings"
	"time"

	"confluence-assistant/internal/user"
)

// --- Request DTOs ---

type registerReq struct {
	Username string `json:"username" binding:"required,min=3,max=64,alphanum"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Username: r.Username,
		Password: r.Password,
	}
}

type updateSettingsReq struct {
	ConfluenceBaseURL *string `json:"confluence_base_url"`
	ConfluenceEmail   *string `json:"confluence_email"`
	ConfluenceToken   *string `json:"confluence_token"`
	AIAPIKey          *string `json:"ai_api_key"`
	DefaultSpace      *string `json:"default_space"`
}

func (r updateSettingsReq) toInput() user.UpdateSettingsInput {
	return user.UpdateSettingsInput{
		ConfluenceBaseURL: r.ConfluenceBaseURL,
		ConfluenceEmail:   r.ConfluenceEmail,
		ConfluenceToken:   r.ConfluenceToken,
		AIAPIKey:          r.AIAPIKey,
		DefaultSpace:      r.DefaultSpace,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type registerResp struct {
	User userResp `json:"user"`
}

func (h *handler) newRegisterResp(out user.RegisterOutput) registerResp {
	return registerResp{
		User: userResp{
			ID:        out.User.ID,
			Username:  out.User.Username,
			Email:     out.User.Email,
			CreatedAt: out.User.CreatedAt,
		},
	}
}

type loginResp struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      userResp  `json:"user"`
}

func (h *handler) newLoginResp(out user.LoginOutput) loginResp {
	return loginResp{
		Token:     out.Session.Token,
		ExpiresAt: out.Session.ExpiresAt,
		User: userResp{
			ID:        out.User.ID,
			Username:  out.User.Username,
			Email:     out.User.Email,
			CreatedAt: out.User.CreatedAt,
		},
	}
}

type settingsResp struct {
	ConfluenceBaseURL string `json:"confluence_base_url"`
	ConfluenceEmail   string `json:"confluence_email"`
	ConfluenceToken   string `json:"confluence_token"`
	AIAPIKey          string `json:"ai_api_key"`
	DefaultSpace      string `json:"default_space"`
}

// redactSecret keeps the last four characters so users can recognize
// which credential is stored without the API ever echoing it back.
func redactSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", 8) + s[len(s)-4:]
}

func (h *handler) newSettingsResp(out user.SettingsOutput) settingsResp {
	return settingsResp{
		ConfluenceBaseURL: out.Settings.ConfluenceBaseURL,
		ConfluenceEmail:   out.Settings.ConfluenceEmail,
		ConfluenceToken:   redactSecret(out.Settings.ConfluenceToken),
		AIAPIKey:          redactSecret(out.Settings.AIAPIKey),
		DefaultSpace:      out.Settings.DefaultSpace,
	}
}
