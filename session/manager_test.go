//go:build unit

package session_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ngoclaithe/camerental/domain/user"
	"github.com/ngoclaithe/camerental/pkg/clock"
	"github.com/ngoclaithe/camerental/pkg/errs"
	"github.com/ngoclaithe/camerental/session"
	sessionmock "github.com/ngoclaithe/camerental/tests/mock/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// sinkAuthenticator records the token pushes a bearer-capable client would
// receive.
type sinkAuthenticator struct {
	*sessionmock.MockAuthenticator
	tokens []string
}

func (s *sinkAuthenticator) SetAuthToken(token string) {
	s.tokens = append(s.tokens, token)
}

type ManagerTestSuite struct {
	suite.Suite
	ctx context.Context

	mockCtrl *gomock.Controller
	auth     *sinkAuthenticator
	clock    *clock.FakeClock

	ephemeral *session.MemoryStore
	durable   *session.MemoryStore
	manager   *session.Manager
}

func (s *ManagerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.rebuild()
}

// SetupSubTest gives every subtest its own stores and manager so sessions
// never leak between cases.
func (s *ManagerTestSuite) SetupSubTest() {
	s.rebuild()
}

func (s *ManagerTestSuite) rebuild() {
	s.auth = &sinkAuthenticator{MockAuthenticator: sessionmock.NewMockAuthenticator(s.mockCtrl)}
	s.clock = clock.NewFakeClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	s.ephemeral = session.NewMemoryStore()
	s.durable = session.NewMemoryStore()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.manager = session.NewManager(s.auth, s.ephemeral, s.durable, s.clock, logger)
}

func (s *ManagerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}

func (s *ManagerTestSuite) testUser() *user.User {
	return &user.User{
		ID:    uuid.New(),
		Name:  "Le Van C",
		Email: "levanc@example.com",
		Role:  user.RoleAdmin,
	}
}

// signedToken mints a real JWT whose exp claim the manager reads back.
func (s *ManagerTestSuite) signedToken(expiresAt time.Time) string {
	claims := jwt.RegisteredClaims{
		Subject:   "levanc@example.com",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-side-secret"))
	s.Require().NoError(err)
	return token
}

func (s *ManagerTestSuite) TestLogin() {
	s.Run("non-remembered login stays in the ephemeral store", func() {
		u := s.testUser()
		s.auth.EXPECT().Login(gomock.Any(), u.Email, "password123").Return(u, "tok-abc", nil)

		sess, err := s.manager.Login(s.ctx, u.Email, "password123", false)

		s.Require().NoError(err)
		s.Equal(*u, sess.User)
		s.Equal(s.clock.Now(), sess.IssuedAt)

		stored, _ := s.ephemeral.Load()
		s.NotNil(stored)
		durable, _ := s.durable.Load()
		s.Nil(durable)
	})

	s.Run("remembered login lands in the durable store and evicts the other", func() {
		u := s.testUser()
		s.auth.EXPECT().Login(gomock.Any(), u.Email, "password123").Return(u, "tok-abc", nil)

		_, err := s.manager.Login(s.ctx, u.Email, "password123", true)

		s.Require().NoError(err)
		stored, _ := s.durable.Load()
		s.NotNil(stored)
		ephemeral, _ := s.ephemeral.Load()
		s.Nil(ephemeral)
	})

	s.Run("token is pushed to the client on success", func() {
		u := s.testUser()
		s.auth.EXPECT().Login(gomock.Any(), u.Email, "password123").Return(u, "tok-abc", nil)

		_, err := s.manager.Login(s.ctx, u.Email, "password123", false)

		s.Require().NoError(err)
		s.Contains(s.auth.tokens, "tok-abc")
	})

	s.Run("expiry is read from the token's exp claim", func() {
		u := s.testUser()
		expiresAt := s.clock.Now().Add(24 * time.Hour)
		s.auth.EXPECT().Login(gomock.Any(), u.Email, "password123").
			Return(u, s.signedToken(expiresAt), nil)

		sess, err := s.manager.Login(s.ctx, u.Email, "password123", false)

		s.Require().NoError(err)
		s.WithinDuration(expiresAt, sess.ExpiresAt, time.Second)
	})

	s.Run("API rejection leaves no session behind", func() {
		s.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, "", errs.New("invalid credentials"))

		_, err := s.manager.Login(s.ctx, "x@example.com", "wrong", false)

		s.Error(err)
		_, currentErr := s.manager.Current()
		s.ErrorIs(currentErr, session.ErrNotAuthenticated)
	})
}

func (s *ManagerTestSuite) TestCurrent() {
	s.Run("without login there is no session", func() {
		_, err := s.manager.Current()
		s.ErrorIs(err, session.ErrNotAuthenticated)
	})

	s.Run("opaque token never expires locally", func() {
		u := s.testUser()
		s.auth.EXPECT().Login(gomock.Any(), u.Email, "password123").Return(u, "opaque", nil)
		_, err := s.manager.Login(s.ctx, u.Email, "password123", false)
		s.Require().NoError(err)

		s.clock.Advance(1000 * time.Hour)

		sess, err := s.manager.Current()
		s.Require().NoError(err)
		s.Equal(*u, sess.User)
	})

	s.Run("expired session is dropped on read", func() {
		u := s.testUser()
		s.auth.EXPECT().Login(gomock.Any(), u.Email, "password123").
			Return(u, s.signedToken(s.clock.Now().Add(time.Hour)), nil)
		_, err := s.manager.Login(s.ctx, u.Email, "password123", true)
		s.Require().NoError(err)

		s.clock.Advance(2 * time.Hour)

		_, err = s.manager.Current()
		s.ErrorIs(err, session.ErrNotAuthenticated)

		stored, _ := s.durable.Load()
		s.Nil(stored)
		s.Equal("", s.auth.tokens[len(s.auth.tokens)-1])
	})
}

func (s *ManagerTestSuite) TestLogout() {
	s.Run("clears the session even when the API call fails", func() {
		u := s.testUser()
		s.auth.EXPECT().Login(gomock.Any(), u.Email, "password123").Return(u, "tok", nil)
		_, err := s.manager.Login(s.ctx, u.Email, "password123", true)
		s.Require().NoError(err)

		s.auth.EXPECT().Logout(gomock.Any()).Return(errs.New("network down"))

		err = s.manager.Logout(s.ctx)

		s.Error(err)
		_, currentErr := s.manager.Current()
		s.ErrorIs(currentErr, session.ErrNotAuthenticated)
		stored, _ := s.durable.Load()
		s.Nil(stored)
	})
}

func (s *ManagerTestSuite) TestRestore() {
	storedSession := func(token string) session.Session {
		return session.Session{
			User:      *s.testUser(),
			Token:     token,
			IssuedAt:  s.clock.Now().Add(-24 * time.Hour),
			ExpiresAt: s.clock.Now().Add(24 * time.Hour),
		}
	}

	s.Run("valid stored session is refreshed against the API", func() {
		stored := storedSession("tok-restored")
		s.Require().NoError(s.durable.Save(stored))

		refreshed := s.testUser()
		s.auth.EXPECT().Me(gomock.Any()).Return(refreshed, nil)

		sess, err := s.manager.Restore(s.ctx)

		s.Require().NoError(err)
		s.Equal(*refreshed, sess.User)
		s.Contains(s.auth.tokens, "tok-restored")

		current, err := s.manager.Current()
		s.Require().NoError(err)
		s.Equal(sess, current)
	})

	s.Run("nothing stored is not authenticated", func() {
		_, err := s.manager.Restore(s.ctx)
		s.ErrorIs(err, session.ErrNotAuthenticated)
	})

	s.Run("expired stored session is purged without calling the API", func() {
		stored := storedSession("tok-old")
		stored.ExpiresAt = s.clock.Now().Add(-time.Hour)
		s.Require().NoError(s.durable.Save(stored))

		_, err := s.manager.Restore(s.ctx)

		s.ErrorIs(err, session.ErrNotAuthenticated)
		left, _ := s.durable.Load()
		s.Nil(left)
	})

	s.Run("server-side rejection purges the stored session", func() {
		stored := storedSession("tok-revoked")
		s.Require().NoError(s.durable.Save(stored))

		s.auth.EXPECT().Me(gomock.Any()).Return(nil, errs.New("401"))

		_, err := s.manager.Restore(s.ctx)

		s.ErrorIs(err, session.ErrNotAuthenticated)
		left, _ := s.durable.Load()
		s.Nil(left)
		s.Equal("", s.auth.tokens[len(s.auth.tokens)-1])
	})
}
