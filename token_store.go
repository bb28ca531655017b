package backoffice

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var _ TokenStore = (*FileTokenStore)(nil)
var _ TokenStore = (*MemoryTokenStore)(nil)

// FileTokenStore persists the credential to a single file so it survives
// process restarts. The file is scoped to the local user (0600), the way a
// browser scopes localStorage to the origin.
type FileTokenStore struct {
	mu     sync.Mutex
	path   string
	logger Logger
}

// NewFileTokenStore returns a store backed by the file at path. The parent
// directory is created on first save.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path, logger: defLogger{}}
}

func (s *FileTokenStore) WithLogger(logger Logger) *FileTokenStore {
	s.logger = logger
	return s
}

// Save overwrites any previously stored credential. The write goes through a
// temp file renamed into place so a crash never leaves a half-written token.
func (s *FileTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(token), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Load returns the stored credential if present. A read failure is reported as
// absent so a corrupted store degrades to an unauthenticated session instead of
// failing the bootstrap.
func (s *FileTokenStore) Load() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Error("token store read: %v", err)
		}
		return "", false
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", false
	}
	return token, true
}

// Clear removes the stored credential. Clearing an empty store is a no-op.
func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemoryTokenStore keeps the credential in memory only. Used by tests and by
// tools that should not persist a session.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
	return nil
}

func (s *MemoryTokenStore) Load() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set || s.token == "" {
		return "", false
	}
	return s.token, true
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
	return nil
}
