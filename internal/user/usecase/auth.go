package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"confluence-assistant/internal/model"
	"confluence-assistant/internal/user"
	"confluence-assistant/internal/user/repository"
)

// Register creates a new account with a bcrypt-hashed password.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.RegisterOutput, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if len(input.Password) < minPasswordLength {
		return user.RegisterOutput{}, user.ErrWeakPassword
	}

	// Pre-check for friendlier duplicate errors; the unique index is
	// the real guard.
	if existing, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Username: username}); err == nil && existing.ID != "" {
		return user.RegisterOutput{}, user.ErrDuplicateUsername
	}
	if existing, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Email: email}); err == nil && existing.ID != "" {
		return user.RegisterOutput{}, user.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		uc.l.Errorf(ctx, "Register: bcrypt failed: %v", err)
		return user.RegisterOutput{}, err
	}

	created, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if err == repository.ErrDuplicate {
			return user.RegisterOutput{}, user.ErrDuplicateUsername
		}
		return user.RegisterOutput{}, err
	}

	uc.l.Infof(ctx, "Register: created user %s", created.ID)
	return user.RegisterOutput{User: created}, nil
}

// Login verifies credentials and opens a new session.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	found, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Username: strings.TrimSpace(input.Username)})
	if err != nil {
		return user.LoginOutput{}, err
	}
	if found.ID == "" {
		// Burn a comparison anyway so missing users cost the same as
		// wrong passwords.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$12$invalidinvalidinvalidinvalidinvalidinvalidinvalidinva"), []byte(input.Password))
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(input.Password)); err != nil {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	session := model.Session{
		Token:     uuid.NewString(),
		UserID:    found.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}
	if err := uc.repo.CreateSession(ctx, session); err != nil {
		return user.LoginOutput{}, err
	}

	uc.l.Infof(ctx, "Login: user %s", found.ID)
	return user.LoginOutput{User: found, Session: session}, nil
}

// Logout deletes the session. Unknown tokens are not an error.
func (uc *implUseCase) Logout(ctx context.Context, token string) error {
	return uc.repo.DeleteSession(ctx, token)
}

// ValidateSession resolves a bearer token into a Scope.
func (uc *implUseCase) ValidateSession(ctx context.Context, token string) (model.Scope, error) {
	if token == "" {
		return model.Scope{}, user.ErrSessionNotFound
	}

	session, err := uc.repo.GetSession(ctx, token)
	if err != nil {
		return model.Scope{}, err
	}
	if session.Token == "" || session.Expired(time.Now().UTC()) {
		return model.Scope{}, user.ErrSessionNotFound
	}

	found, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{ID: session.UserID})
	if err != nil {
		return model.Scope{}, err
	}
	if found.ID == "" {
		return model.Scope{}, user.ErrSessionNotFound
	}

	return model.Scope{UserID: found.ID, Username: found.Username}, nil
}

// Me returns the authenticated user.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	found, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		return model.User{}, err
	}
	if found.ID == "" {
		return model.User{}, user.ErrUserNotFound
	}
	return found, nil
}
