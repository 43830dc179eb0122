// pkg/memcache/sessions.go
package mem

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type SessionStore interface {
	// Create opens a session for accountID and returns its id.
	Create(accountID int64, ttl time.Duration) string

	// Get returns the accountID bound to sessionID, or false if the
	// session is missing or expired.
	Get(sessionID string) (int64, bool)

	// Delete removes the session. Deleting a missing session is a no-op.
	Delete(sessionID string)

	// SetOAuthState stores a pending OAuth state token on the session.
	SetOAuthState(sessionID string, state string) bool

	// ConsumeOAuthState returns the pending state and removes it
	// (single-use). Returns "" if missing or the session expired.
	ConsumeOAuthState(sessionID string) string
}

type sessionEntry struct {
	accountID  int64
	oauthState string
	expiresAt  time.Time
}

type Sessions struct {
	mu   sync.RWMutex
	data map[string]sessionEntry
}

func NewSessions() *Sessions {
	return &Sessions{
		data: make(map[string]sessionEntry),
	}
}

func (s *Sessions) Create(accountID int64, ttl time.Duration) string {
	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = sessionEntry{
		accountID: accountID,
		expiresAt: time.Now().Add(ttl),
	}
	return id
}

func (s *Sessions) Get(sessionID string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[sessionID]
	if !ok {
		return 0, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, sessionID) // cleanup expired
		return 0, false
	}
	return e.accountID, true
}

func (s *Sessions) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
}

func (s *Sessions) SetOAuthState(sessionID string, state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[sessionID]
	if !ok || time.Now().After(e.expiresAt) {
		return false
	}
	e.oauthState = state
	s.data[sessionID] = e
	return true
}

func (s *Sessions) ConsumeOAuthState(sessionID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[sessionID]
	if !ok || time.Now().After(e.expiresAt) {
		return ""
	}
	state := e.oauthState
	e.oauthState = "" // single-use
	s.data[sessionID] = e
	return state
}
