package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/ngoclaithe/camerental/pkg/errs"
)

// Store is the persistence strategy behind a session. The remember-me choice
// picks a strategy at login time; there is no runtime branching inside one
// adapter.
type Store interface {
	Save(s Session) error
	// Load returns nil without error when no session is stored.
	Load() (*Session, error)
	Clear() error
}

// MemoryStore keeps the session for the lifetime of the process. Used for
// non-remembered logins and tests.
type MemoryStore struct {
	session *Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(s Session) error {
	m.session = &s
	return nil
}

func (m *MemoryStore) Load() (*Session, error) {
	if m.session == nil {
		return nil, nil
	}
	s := *m.session
	return &s, nil
}

func (m *MemoryStore) Clear() error {
	m.session = nil
	return nil
}

// FileStore persists the session as JSON on disk so a remembered login
// survives process restarts.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Save(s Session) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return errs.Wrap(err, "failed to create session directory")
	}
	buf, err := json.Marshal(s)
	if err != nil {
		return errs.Wrap(err, "failed to encode session")
	}
	if err := os.WriteFile(f.path, buf, 0o600); err != nil {
		return errs.Wrap(err, "failed to write session file")
	}
	return nil
}

func (f *FileStore) Load() (*Session, error) {
	buf, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to read session file")
	}
	var s Session
	if err := json.Unmarshal(buf, &s); err != nil {
		return nil, errs.Wrap(err, "failed to decode session file")
	}
	return &s, nil
}

func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errs.Wrap(err, "failed to remove session file")
	}
	return nil
}
