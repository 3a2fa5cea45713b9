package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// Keys persisted by the dashboard. Their names are shared with the browser
// dashboard and must not change.
const (
	KeyAccessToken  = "login-accessToken"
	KeyUser         = "USER"
	KeyAdminProfile = "adminProfile"
	KeyRefreshToken = "refreshToken"

	// Legacy transfer keys. Nothing writes them anymore; they are cleared on
	// logout so stale state left by older dashboards is purged.
	KeySelectedInstructor = "selectedInstructor"
	KeySelectedStudent    = "selectedStudent"
	KeySelectedAffiliate  = "selectedAffiliate"
	KeySelectedMission    = "selectedMission"
)

// IdentityKeys are removed whenever the backend rejects the stored token.
var IdentityKeys = []string{KeyAccessToken, KeyUser, KeyAdminProfile, KeyRefreshToken}

// AllKeys is every key the dashboard has ever written.
var AllKeys = []string{
	KeyAccessToken,
	KeyUser,
	KeyAdminProfile,
	KeyRefreshToken,
	KeySelectedInstructor,
	KeySelectedStudent,
	KeySelectedAffiliate,
	KeySelectedMission,
}

// Storage is a small string key-value store holding the dashboard identity.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(keys ...string) error
}

// MemoryStorage keeps values for the lifetime of the process.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]

	return value, ok
}

func (s *MemoryStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	return nil
}

func (s *MemoryStorage) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.values, key)
	}

	return nil
}

// FileStorage persists values as a JSON object in a single file. The file is
// re-read on every Get so edits by another process are picked up.
type FileStorage struct {
	mu   sync.Mutex
	path string
}

// NewFileStorage creates a storage backed by path. The file is created on the first write.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// DefaultStoragePath returns the per-user location of the adminctl state file.
func DefaultStoragePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "os.UserConfigDir")
	}

	return filepath.Join(dir, "mutant-admin", "storage.json"), nil
}

// Path returns the backing file.
func (s *FileStorage) Path() string {
	return s.path
}

func (s *FileStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", false
	}
	value, ok := values[key]

	return value, ok
}

func (s *FileStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value

	return s.save(values)
}

func (s *FileStorage) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	for _, key := range keys {
		delete(values, key)
	}

	return s.save(values)
}

func (s *FileStorage) load() (map[string]string, error) {
	values := make(map[string]string)

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", s.path)
	}
	if len(raw) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, errors.Wrapf(err, "decode %s", s.path)
	}

	return values, nil
}

func (s *FileStorage) save(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrapf(err, "create %s", filepath.Dir(s.path))
	}

	raw, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}

	return errors.Wrapf(os.Rename(tmp, s.path), "rename %s", tmp)
}
