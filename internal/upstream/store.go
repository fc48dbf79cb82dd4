package upstream

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/minjaekim/sportsmate-web/internal/pkg/logger"
)

// Storage keys, fixed for compatibility with earlier releases.
const (
	tokenKey           = "auth_token"
	rememberedEmailKey = "remembered_email"
)

// TokenStore holds zero or one bearer token for the current session.
// Get returns an empty string when no token is held; it never fails.
type TokenStore interface {
	Set(token string)
	Get() string
	Clear()
}

// MemoryStore is an in-memory TokenStore for tests and ephemeral sessions.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *MemoryStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// FileStore keeps the token in memory and mirrors it into a small JSON
// key-value file so it survives restarts. The file is read lazily on first
// access; a missing or unreadable file behaves like an empty store.
//
// The same file carries the optional remembered login email.
type FileStore struct {
	mu     sync.Mutex
	path   string
	log    *logger.Logger
	loaded bool
	values map[string]string
}

func NewFileStore(path string, log *logger.Logger) *FileStore {
	if log == nil {
		log = logger.Default()
	}
	return &FileStore{
		path:   path,
		log:    log,
		values: make(map[string]string),
	}
}

func (s *FileStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(tokenKey, token)
}

func (s *FileStore) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	return s.values[tokenKey]
}

func (s *FileStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(tokenKey)
}

// RememberEmail persists the login email for the "keep me logged in" flow.
func (s *FileStore) RememberEmail(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(rememberedEmailKey, email)
}

func (s *FileStore) RememberedEmail() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	return s.values[rememberedEmailKey]
}

func (s *FileStore) ForgetEmail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(rememberedEmailKey)
}

func (s *FileStore) put(key, value string) {
	s.load()
	s.values[key] = value
	s.flush()
}

func (s *FileStore) remove(key string) {
	s.load()
	delete(s.values, key)
	s.flush()
}

func (s *FileStore) load() {
	if s.loaded {
		return
	}
	s.loaded = true

	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		s.log.Warn("state file %s is corrupt, starting empty: %v", s.path, err)
		s.values = make(map[string]string)
	}
}

func (s *FileStore) flush() {
	data, err := json.Marshal(s.values)
	if err != nil {
		s.log.Error("failed to encode state: %v", err)
		return
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			s.log.Error("failed to create state dir %s: %v", dir, err)
			return
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		s.log.Error("failed to write state file %s: %v", s.path, err)
	}
}
