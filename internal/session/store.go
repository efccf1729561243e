// Package session holds the current viewer identity and persists it across
// runs. It is the single source of truth for "who is the current viewer":
// a session is either fully authenticated or fully anonymous, never partial.
// The store performs no network calls of its own.
package session

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"retrolog/internal/models"
	"retrolog/internal/observability"
)

// TTL is the fixed expiry window applied to persisted sessions.
const TTL = 7 * 24 * time.Hour

// State is a snapshot of the current session.
type State struct {
	User            models.Identity
	IsAuthenticated bool
}

// storedSession is the on-disk envelope for a persisted identity.
type storedSession struct {
	Identity  models.Identity `json:"identity"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

// Store persists the viewer identity to a credentials file and exposes
// login/logout. Zero value is not usable; construct with NewStore.
type Store struct {
	mu    sync.RWMutex
	path  string
	state State
}

// NewStore creates a session store backed by the given credentials file and
// restores any previously persisted identity. Absent, malformed, or expired
// stored data yields an anonymous session; it never fails startup.
func NewStore(path string) *Store {
	s := &Store{path: path}
	s.restore()
	return s
}

// Current returns a snapshot of the session state.
func (s *Store) Current() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Login makes the session authenticated as the given identity and persists it
// with the fixed expiry window. The identity is expected to be fully populated
// from a successful backend auth call; the token content is not inspected.
func (s *Store) Login(identity models.Identity) error {
	s.mu.Lock()
	s.state = State{User: identity, IsAuthenticated: true}
	s.mu.Unlock()

	envelope := storedSession{
		Identity:  identity,
		ExpiresAt: time.Now().Add(TTL),
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Logout clears the persisted credentials and resets the session to
// anonymous. Calling it when already anonymous is a no-op.
func (s *Store) Logout() error {
	s.mu.Lock()
	s.state = State{}
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// restore loads the persisted identity, treating anything unreadable,
// unparsable, or expired as "no session".
func (s *Store) restore() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}

	var envelope storedSession
	if err := json.Unmarshal(data, &envelope); err != nil {
		observability.Logger.Warn("ignoring malformed session file",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		return
	}
	if envelope.Identity.Token == "" {
		return
	}
	if !envelope.ExpiresAt.IsZero() && time.Now().After(envelope.ExpiresAt) {
		return
	}

	s.mu.Lock()
	s.state = State{User: envelope.Identity, IsAuthenticated: true}
	s.mu.Unlock()
}
