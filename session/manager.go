package session

import (
	"context"
	"log/slog"

	"github.com/ngoclaithe/camerental/domain/user"
	"github.com/ngoclaithe/camerental/pkg/clock"
	"github.com/ngoclaithe/camerental/pkg/errs"
)

var (
	ErrNotAuthenticated = errs.New("not authenticated")
)

// Authenticator is the slice of the API client the manager needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*user.User, string, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*user.User, error)
}

// TokenSink is implemented by authenticators that can carry a bearer token on
// later requests. Restored sessions need it; fresh cookie-backed logins work
// without it.
type TokenSink interface {
	SetAuthToken(token string)
}

// Manager holds the current session and routes persistence to the store the
// remember-me choice selected. It replaces a process-wide user singleton:
// whoever needs identity gets the manager injected.
type Manager struct {
	auth      Authenticator
	ephemeral Store
	durable   Store
	clock     clock.Clock
	logger    *slog.Logger

	current *Session
	store   Store
}

func NewManager(auth Authenticator, ephemeral, durable Store, clk clock.Clock, logger *slog.Logger) *Manager {
	return &Manager{
		auth:      auth,
		ephemeral: ephemeral,
		durable:   durable,
		clock:     clk,
		logger:    logger,
	}
}

// Login authenticates against the API and creates the session. remember picks
// the durable store; either way the other store is cleared so at most one
// copy of the session exists.
func (m *Manager) Login(ctx context.Context, email, password string, remember bool) (*Session, error) {
	u, token, err := m.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	now := m.clock.Now()
	s := Session{
		User:      *u,
		Token:     token,
		IssuedAt:  now,
		ExpiresAt: tokenExpiry(token),
	}

	store, other := m.ephemeral, m.durable
	if remember {
		store, other = m.durable, m.ephemeral
	}
	if err := other.Clear(); err != nil {
		return nil, err
	}
	if err := store.Save(s); err != nil {
		return nil, err
	}

	m.current = &s
	m.store = store
	m.pushToken(token)
	m.logger.Info("session created", "user", u.Email, "remembered", remember)
	return &s, nil
}

func (m *Manager) pushToken(token string) {
	if sink, ok := m.auth.(TokenSink); ok {
		sink.SetAuthToken(token)
	}
}

// Logout destroys the session locally even when the API call fails; there is
// nothing useful to do with a half-dead session.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.auth.Logout(ctx)

	if m.store != nil {
		if clearErr := m.store.Clear(); clearErr != nil && err == nil {
			err = clearErr
		}
	}
	m.current = nil
	m.store = nil
	m.pushToken("")
	m.logger.Info("session destroyed")
	return err
}

// Current returns the active session or ErrNotAuthenticated. Expiry is
// checked on every read so an expired session never leaks back out.
func (m *Manager) Current() (*Session, error) {
	if m.current == nil {
		return nil, ErrNotAuthenticated
	}
	if m.current.HasExpired(m.clock.Now()) {
		if m.store != nil {
			_ = m.store.Clear()
		}
		m.current = nil
		m.store = nil
		m.pushToken("")
		return nil, ErrNotAuthenticated
	}
	return m.current, nil
}

// Restore reloads a remembered session at startup. Expired or absent
// sessions come back as ErrNotAuthenticated; a stored session is refreshed
// against /auth/me so a server-side revocation is noticed immediately.
func (m *Manager) Restore(ctx context.Context) (*Session, error) {
	stored, err := m.durable.Load()
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.HasExpired(m.clock.Now()) {
		if stored != nil {
			_ = m.durable.Clear()
		}
		return nil, ErrNotAuthenticated
	}

	m.pushToken(stored.Token)
	u, err := m.auth.Me(ctx)
	if err != nil {
		m.logger.Warn("stored session rejected by api", "error", err)
		_ = m.durable.Clear()
		m.pushToken("")
		return nil, ErrNotAuthenticated
	}
	stored.User = *u

	m.current = stored
	m.store = m.durable
	return stored, nil
}
