//go:build unit

package session_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ngoclaithe/camerental/domain/user"
	"github.com/ngoclaithe/camerental/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSession() session.Session {
	return session.Session{
		User: user.User{
			ID:    uuid.New(),
			Name:  "Le Van C",
			Email: "levanc@example.com",
			Role:  user.RoleStaff,
		},
		Token:     "tok-abc",
		IssuedAt:  time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		ExpiresAt: time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestMemoryStore(t *testing.T) {
	t.Run("save then load returns a copy", func(t *testing.T) {
		store := session.NewMemoryStore()
		saved := sampleSession()
		require.NoError(t, store.Save(saved))

		loaded, err := store.Load()
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, saved, *loaded)

		loaded.Token = "mutated"
		again, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, "tok-abc", again.Token)
	})

	t.Run("empty store loads nil without error", func(t *testing.T) {
		store := session.NewMemoryStore()
		loaded, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("clear removes the session", func(t *testing.T) {
		store := session.NewMemoryStore()
		require.NoError(t, store.Save(sampleSession()))
		require.NoError(t, store.Clear())

		loaded, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})
}

func TestFileStore(t *testing.T) {
	t.Run("session survives a roundtrip through disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "session.json")
		store := session.NewFileStore(path)

		saved := sampleSession()
		require.NoError(t, store.Save(saved))

		reopened := session.NewFileStore(path)
		loaded, err := reopened.Load()
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, saved.User.Email, loaded.User.Email)
		assert.Equal(t, saved.Token, loaded.Token)
		assert.True(t, saved.ExpiresAt.Equal(loaded.ExpiresAt))
	})

	t.Run("session file is private to the user", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		store := session.NewFileStore(path)
		require.NoError(t, store.Save(sampleSession()))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("absent file loads nil without error", func(t *testing.T) {
		store := session.NewFileStore(filepath.Join(t.TempDir(), "missing.json"))
		loaded, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("corrupt file surfaces an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(path, []byte("not-json"), 0o600))

		store := session.NewFileStore(path)
		_, err := store.Load()
		assert.Error(t, err)
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		store := session.NewFileStore(path)
		require.NoError(t, store.Save(sampleSession()))

		require.NoError(t, store.Clear())
		require.NoError(t, store.Clear())

		loaded, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})
}
