package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// Persisted is the locally stored copy of the session.
type Persisted struct {
	Token string `json:"token,omitempty"`
	User  *User  `json:"user,omitempty"`
}

// TokenStore keeps the token and user between runs.
type TokenStore interface {
	// Load returns an empty Persisted when nothing is stored.
	Load() (Persisted, error)
	Save(p Persisted) error
	Clear() error
}

// MemoryStore is a TokenStore that lives as long as the process.
type MemoryStore struct {
	mu    sync.Mutex
	state Persisted
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (Persisted, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state, nil
}

func (s *MemoryStore) Save(p Persisted) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = p

	return nil
}

func (s *MemoryStore) Clear() error {
	return s.Save(Persisted{})
}

// FileStore persists the session as a JSON file readable only by the owner.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore stores the session at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (Persisted, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Persisted{}, nil
		}

		return Persisted{}, errors.Wrap(err, "failed to read session file")
	}

	var p Persisted
	if err := json.Unmarshal(raw, &p); err != nil {
		return Persisted{}, errors.Wrap(err, "failed to decode session file")
	}

	return p, nil
}

func (s *FileStore) Save(p Persisted) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(p)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "failed to create session directory")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return errors.Wrap(err, "failed to write session file")
	}

	return errors.WithStack(os.Rename(tmp, s.path))
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "failed to remove session file")
	}

	return nil
}
