package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"spendwise/internal/auth"
	"spendwise/internal/core"
)

// CreateUser stores a new account. A duplicate email surfaces as the
// driver's unique-constraint error.
func (r *SQLiteRepository) CreateUser(ctx context.Context, user auth.User) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO users (id, email, full_name, password_hash, created_at) VALUES (?, ?, ?, ?, ?)",
		user.ID, user.Email, user.FullName, user.PasswordHash, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetUserByEmail(ctx context.Context, email string) (auth.User, error) {
	return r.getUser(ctx, "email = ?", email)
}

func (r *SQLiteRepository) GetUserByID(ctx context.Context, id string) (auth.User, error) {
	return r.getUser(ctx, "id = ?", id)
}

func (r *SQLiteRepository) getUser(ctx context.Context, where string, arg any) (auth.User, error) {
	var u auth.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, email, full_name, password_hash, created_at FROM users WHERE "+where, arg).
		Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return auth.User{}, fmt.Errorf("user: %w", core.ErrNotFound)
	}
	if err != nil {
		return auth.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *SQLiteRepository) CreateSession(ctx context.Context, session auth.Session) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO sessions (token, user_id, expires_at) VALUES (?, ?, ?)",
		session.Token, session.UserID, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetSession(ctx context.Context, token string) (auth.Session, error) {
	var s auth.Session
	err := r.db.QueryRowContext(ctx,
		"SELECT token, user_id, expires_at FROM sessions WHERE token = ?", token).
		Scan(&s.Token, &s.UserID, &s.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return auth.Session{}, fmt.Errorf("session: %w", core.ErrNotFound)
	}
	if err != nil {
		return auth.Session{}, fmt.Errorf("get session: %w", err)
	}
	return s, nil
}

func (r *SQLiteRepository) DeleteSession(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at < ?", now)
	if err != nil {
		return fmt.Errorf("delete expired sessions: %w", err)
	}
	return nil
}
