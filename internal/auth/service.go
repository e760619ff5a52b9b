package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"spendwise/internal/core"
	"spendwise/internal/log"
)

// Store is the persistence surface the auth service needs.
type Store interface {
	CreateUser(ctx context.Context, user User) error
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByID(ctx context.Context, id string) (User, error)
	CreateSession(ctx context.Context, session Session) error
	GetSession(ctx context.Context, token string) (Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) error
}

type Service struct {
	store      Store
	sessionTTL time.Duration
	logger     *log.Logger
}

func NewService(store Store, sessionTTL time.Duration, logger *log.Logger) *Service {
	return &Service{
		store:      store,
		sessionTTL: sessionTTL,
		logger:     logger.WithComponent(log.ComponentAuth),
	}
}

// Register creates an account and an initial session.
func (s *Service) Register(ctx context.Context, email, fullName, password string) (User, Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return User{}, Session{}, errors.New("invalid email address")
	}
	if len(password) < 8 {
		return User{}, Session{}, errors.New("password must be at least 8 characters")
	}

	if _, err := s.store.GetUserByEmail(ctx, email); err == nil {
		return User{}, Session{}, ErrEmailTaken
	} else if !errors.Is(err, core.ErrNotFound) {
		return User{}, Session{}, fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, Session{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     strings.TrimSpace(fullName),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return User{}, Session{}, fmt.Errorf("create user: %w", err)
	}

	session, err := s.newSession(ctx, user.ID)
	if err != nil {
		return User{}, Session{}, err
	}

	s.logger.InfoContext(ctx, "User registered", log.FieldOwnerID, user.ID)
	return user, session, nil
}

// Login verifies the password and opens a new session.
func (s *Service) Login(ctx context.Context, email, password string) (User, Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.store.GetUserByEmail(ctx, email)
	if errors.Is(err, core.ErrNotFound) {
		return User{}, Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, Session{}, fmt.Errorf("get user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return User{}, Session{}, ErrInvalidCredentials
	}

	session, err := s.newSession(ctx, user.ID)
	if err != nil {
		return User{}, Session{}, err
	}

	s.logger.InfoContext(ctx, "User logged in", log.FieldOwnerID, user.ID)
	return user, session, nil
}

// Logout deletes the session; an unknown token is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.store.DeleteSession(ctx, token); err != nil && !errors.Is(err, core.ErrNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Authenticate resolves a session token to its user. Unknown or expired
// tokens yield ErrNotAuthenticated; expired sessions are removed.
func (s *Service) Authenticate(ctx context.Context, token string) (User, error) {
	if token == "" {
		return User{}, ErrNotAuthenticated
	}

	session, err := s.store.GetSession(ctx, token)
	if errors.Is(err, core.ErrNotFound) {
		return User{}, ErrNotAuthenticated
	}
	if err != nil {
		return User{}, fmt.Errorf("get session: %w", err)
	}

	if session.Expired(time.Now()) {
		_ = s.store.DeleteSession(ctx, token)
		return User{}, ErrNotAuthenticated
	}

	user, err := s.store.GetUserByID(ctx, session.UserID)
	if errors.Is(err, core.ErrNotFound) {
		return User{}, ErrNotAuthenticated
	}
	if err != nil {
		return User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// PurgeExpiredSessions removes sessions past their expiry.
func (s *Service) PurgeExpiredSessions(ctx context.Context) error {
	return s.store.DeleteExpiredSessions(ctx, time.Now())
}

func (s *Service) newSession(ctx context.Context, userID string) (Session, error) {
	token, err := generateToken()
	if err != nil {
		return Session{}, fmt.Errorf("generate token: %w", err)
	}
	session := Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.store.CreateSession(ctx, session); err != nil {
		return Session{}, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
