// Package storage provides the seed fixture and the abstraction for holding
// browser sessions in memory.
package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mmynk/friendsplit/internal/app"
)

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore defines the operations for holding per-browser application state.
// This abstraction keeps the HTTP layer independent of how sessions are kept.
type SessionStore interface {
	// CreateSession registers state under a newly generated session id.
	CreateSession(ctx context.Context, state *app.State) (*Session, error)

	// GetSession retrieves a session by id and marks it as recently used.
	// Returns ErrSessionNotFound if the session does not exist.
	GetSession(ctx context.Context, id string) (*Session, error)

	// DeleteSession removes a session. Unknown ids are not an error.
	DeleteSession(ctx context.Context, id string) error

	// SweepSessions removes sessions not used since idleSince and returns how
	// many were removed.
	SweepSessions(ctx context.Context, idleSince time.Time) (int, error)

	// CountSessions returns the number of live sessions.
	CountSessions(ctx context.Context) (int, error)

	// Close releases any resources held by the store.
	Close() error
}

// Session is one browser session. Its State is only reachable through Do,
// which serializes access.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	state    *app.State
	lastSeen time.Time
}

// NewSession wraps state in a session.
func NewSession(id string, state *app.State, now time.Time) *Session {
	return &Session{ID: id, CreatedAt: now, state: state, lastSeen: now}
}

// Do runs fn with exclusive access to the session's state.
func (s *Session) Do(fn func(*app.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

// Touch records use of the session at now.
func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.After(s.lastSeen) {
		s.lastSeen = now
	}
}

// LastSeen returns the time the session was last used.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
