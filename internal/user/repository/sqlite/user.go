package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"confluence-assistant/internal/model"
	repo "confluence-assistant/internal/user/repository"
)

// CreateUser inserts a new User row and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	const query = `
		INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, opt.ID, opt.Username, opt.Email, opt.PasswordHash, now, now)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return model.User{}, repo.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}

	return model.User{
		ID:           opt.ID,
		Username:     opt.Username,
		Email:        opt.Email,
		PasswordHash: opt.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == "") when not found — no error for not-found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	var conds []string
	var args []any
	if opt.ID != "" {
		conds = append(conds, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Username != "" {
		conds = append(conds, "username = ?")
		args = append(args, opt.Username)
	}
	if opt.Email != "" {
		conds = append(conds, "email = ?")
		args = append(args, opt.Email)
	}
	if len(conds) == 0 {
		return model.User{}, repo.ErrFailedToGet
	}

	query := fmt.Sprintf(
		`SELECT id, username, email, password_hash, created_at, updated_at FROM users WHERE %s LIMIT 1`,
		strings.Join(conds, " AND "),
	)

	var u model.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}
