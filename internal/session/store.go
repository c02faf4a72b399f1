package session

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"onlinemart-client/internal/domain"
)

// Session is the authenticated identity. All four fields are present
// together or the session is absent; a partial session is never exposed.
type Session struct {
	Token    string      `json:"token"`
	Role     domain.Role `json:"role"`
	Username string      `json:"username"`
	UserID   int         `json:"userId"`
}

// IsAuthenticated reports whether a user is signed in.
func (s Session) IsAuthenticated() bool { return s.Token != "" }

func (s Session) complete() bool {
	return s.Token != "" && s.Role != "" && s.Username != "" && s.UserID != 0
}

// Store owns the current session and its persisted record. It is the sole
// source of truth for "is a user logged in" and "what role do they have".
type Store struct {
	mu       sync.Mutex
	path     string
	logger   *log.Logger
	current  Session
	onChange []func(Session)
}

// NewStore restores a previously persisted session from path. A record that
// is unreadable, malformed, or missing any field restores to fully absent
// and the stale record is removed.
func NewStore(path string, logger *log.Logger) *Store {
	s := &Store{path: path, logger: logger}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var restored Session
	if err := json.Unmarshal(data, &restored); err != nil || !restored.complete() {
		if logger != nil {
			logger.Printf("discarding incomplete session record at %s", path)
		}
		_ = os.Remove(path)
		return s
	}
	s.current = restored
	return s
}

// Snapshot returns an immutable copy of the current session.
func (s *Store) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SignIn atomically sets and persists all four session fields.
func (s *Store) SignIn(auth domain.AuthResponse) error {
	s.mu.Lock()
	s.current = Session{
		Token:    auth.Token,
		Role:     auth.Role,
		Username: auth.Username,
		UserID:   auth.UserID,
	}
	snapshot := s.current
	s.mu.Unlock()

	s.notify(snapshot)
	return s.persist(snapshot)
}

// SignOut atomically clears the session and removes the persisted record.
func (s *Store) SignOut() error {
	s.mu.Lock()
	s.current = Session{}
	s.mu.Unlock()

	s.notify(Session{})
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session record: %w", err)
	}
	return nil
}

// OnChange registers a callback invoked after every sign-in and sign-out.
// Callbacks receive a snapshot and run outside the store lock.
func (s *Store) OnChange(fn func(Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

func (s *Store) notify(snapshot Session) {
	s.mu.Lock()
	callbacks := make([]func(Session), len(s.onChange))
	copy(callbacks, s.onChange)
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(snapshot)
	}
}

func (s *Store) persist(snapshot Session) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session record: %w", err)
	}
	return nil
}
