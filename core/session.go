package core

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// SessionStore owns the bearer credential for the current identity. At most
// one token is live at a time; presence of a token means "believed
// authenticated", not proven valid.
//
// Epoch supports the stale-401 guard: a request captures the epoch when it
// reads the token, and a 401 clears the session only if no Set has happened
// since. A logout racing an in-flight request therefore cannot clobber a
// token written after that request started.
type SessionStore interface {
	// Token returns the current token and whether one is present.
	Token() (string, bool)
	// Set stores a new token, superseding any previous one.
	Set(token string)
	// Clear removes the token unconditionally. Idempotent.
	Clear()
	// Epoch returns a counter bumped on every Set.
	Epoch() uint64
	// CompareAndClear clears the token only if the epoch still matches.
	// Reports whether the session was cleared.
	CompareAndClear(epoch uint64) bool
}

// MemorySession is a mutex-guarded in-process SessionStore.
type MemorySession struct {
	mu    sync.Mutex
	token string
	epoch uint64
}

// NewMemorySession returns an empty in-memory session store.
func NewMemorySession() *MemorySession { return &MemorySession{} }

func (s *MemorySession) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

func (s *MemorySession) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.epoch++
}

func (s *MemorySession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

func (s *MemorySession) Epoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

func (s *MemorySession) CompareAndClear(epoch uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return false
	}
	s.token = ""
	return true
}

type sessionFile struct {
	Token    string `json:"token"`
	UserType string `json:"user_type,omitempty"`
}

// FileSession persists the token under a fixed path so separate process
// invocations share one session, mirroring browser-local storage semantics.
type FileSession struct {
	mu       sync.Mutex
	path     string
	token    string
	userType string
	epoch    uint64
}

// NewFileSession loads (or lazily creates) the session file at path.
func NewFileSession(path string) (*FileSession, error) {
	s := &FileSession{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	var f sessionFile
	if err := json.Unmarshal(data, &f); err != nil {
		// Corrupt session files are treated as logged out.
		return s, nil
	}
	s.token = f.Token
	s.userType = f.UserType
	return s, nil
}

// DefaultSessionPath returns the conventional per-user session location.
func DefaultSessionPath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, ".gebeya", "session.json")
}

func (s *FileSession) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

func (s *FileSession) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.epoch++
	s.persist()
}

// SetUserType records the user-type marker persisted alongside the token.
func (s *FileSession) SetUserType(userType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userType = userType
	s.persist()
}

// UserType returns the persisted user-type marker, if any.
func (s *FileSession) UserType() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userType
}

func (s *FileSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.userType = ""
	s.persist()
}

func (s *FileSession) Epoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

func (s *FileSession) CompareAndClear(epoch uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return false
	}
	s.token = ""
	s.userType = ""
	s.persist()
	return true
}

func (s *FileSession) persist() {
	if s.token == "" && s.userType == "" {
		_ = os.Remove(s.path)
		return
	}
	data, err := json.Marshal(sessionFile{Token: s.token, UserType: s.userType})
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o600)
}
