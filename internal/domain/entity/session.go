package entity

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionID uniquely identifies a browsing session (a UUID string).
type SessionID string

// NewSessionID returns a fresh random session id.
func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

// Session is the single browsing context owned by the shell for the process lifetime.
// CurrentURL only follows what the engine reports; typing in the address bar
// never changes it.
type Session struct {
	ID        SessionID
	StartURL  string
	StartedAt time.Time
	EndedAt   *time.Time

	mu         sync.RWMutex
	currentURL string
}

// NewSession creates an active session that will open startURL.
func NewSession(id SessionID, startURL string, startedAt time.Time) *Session {
	return &Session{
		ID:        id,
		StartURL:  startURL,
		StartedAt: startedAt.UTC(),
	}
}

func (s *Session) ShortID() string {
	id := string(s.ID)
	if len(id) < 4 {
		return id
	}
	return id[len(id)-4:]
}

// CurrentURL returns the last URI reported by the engine.
func (s *Session) CurrentURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentURL
}

// SetCurrentURL records a URI reported by the engine.
func (s *Session) SetCurrentURL(uri string) {
	s.mu.Lock()
	s.currentURL = uri
	s.mu.Unlock()
}

func (s *Session) IsActive() bool {
	return s != nil && s.EndedAt == nil
}

func (s *Session) End(endedAt time.Time) {
	endedAt = endedAt.UTC()
	s.EndedAt = &endedAt
}

func (s *Session) Validate() error {
	if s == nil {
		return ErrInvalidSession
	}
	if s.ID == "" {
		return ErrInvalidSession
	}
	if s.StartedAt.IsZero() {
		return ErrInvalidSession
	}
	return nil
}

var ErrInvalidSession = errors.New("invalid session")
