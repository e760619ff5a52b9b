package auth

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendwise/internal/core"
	"spendwise/internal/log"
)

// memStore is a map-backed Store for service tests.
type memStore struct {
	mu       sync.Mutex
	users    map[string]User // by id
	sessions map[string]Session
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[string]User),
		sessions: make(map[string]Session),
	}
}

func (m *memStore) CreateUser(_ context.Context, user User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return fmt.Errorf("email already exists")
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, fmt.Errorf("user: %w", core.ErrNotFound)
}

func (m *memStore) GetUserByID(_ context.Context, id string) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return User{}, fmt.Errorf("user: %w", core.ErrNotFound)
}

func (m *memStore) CreateSession(_ context.Context, session Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.Token] = session
	return nil
}

func (m *memStore) GetSession(_ context.Context, token string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[token]; ok {
		return s, nil
	}
	return Session{}, fmt.Errorf("session: %w", core.ErrNotFound)
}

func (m *memStore) DeleteSession(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

func (m *memStore) DeleteExpiredSessions(_ context.Context, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for token, s := range m.sessions {
		if s.ExpiresAt.Before(now) {
			delete(m.sessions, token)
		}
	}
	return nil
}

func newTestService(store Store, ttl time.Duration) *Service {
	return NewService(store, ttl, log.New(log.DefaultConfig()))
}

func TestRegister(t *testing.T) {
	svc := newTestService(newMemStore(), time.Hour)
	ctx := context.Background()

	user, session, err := svc.Register(ctx, " Alex@Example.COM ", "Alex Doe", "correct-horse")
	require.NoError(t, err)

	assert.Equal(t, "alex@example.com", user.Email, "email is normalized")
	assert.Equal(t, "Alex Doe", user.FullName)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)
	assert.NotEmpty(t, session.Token)
	assert.True(t, session.ExpiresAt.After(time.Now()))
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(newMemStore(), time.Hour)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "no-at-sign", "", "correct-horse")
	assert.Error(t, err)

	_, _, err = svc.Register(ctx, "a@b.com", "", "short")
	assert.Error(t, err)
}

func TestRegisterEmailTaken(t *testing.T) {
	svc := newTestService(newMemStore(), time.Hour)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alex@example.com", "", "correct-horse")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "ALEX@example.com", "", "other-password")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc := newTestService(newMemStore(), time.Hour)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, "alex@example.com", "", "correct-horse")
	require.NoError(t, err)

	user, session, err := svc.Login(ctx, "alex@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, session.Token)

	_, _, err = svc.Login(ctx, "alex@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate(t *testing.T) {
	svc := newTestService(newMemStore(), time.Hour)
	ctx := context.Background()

	registered, session, err := svc.Register(ctx, "alex@example.com", "", "correct-horse")
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = svc.Authenticate(ctx, "unknown-token")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestAuthenticateExpiredSession(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, -time.Minute)
	ctx := context.Background()

	_, session, err := svc.Register(ctx, "alex@example.com", "", "correct-horse")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, session.Token)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, found := store.sessions[session.Token]
	assert.False(t, found, "expired session is removed on use")
}

func TestLogout(t *testing.T) {
	svc := newTestService(newMemStore(), time.Hour)
	ctx := context.Background()

	_, session, err := svc.Register(ctx, "alex@example.com", "", "correct-horse")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, session.Token))
	_, err = svc.Authenticate(ctx, session.Token)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	assert.NoError(t, svc.Logout(ctx, "unknown-token"))
}
