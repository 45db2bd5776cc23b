// Package memory provides an in-process implementation of storage.SessionStore.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/friendsplit/internal/app"
	"github.com/mmynk/friendsplit/internal/storage"
)

// Ensure Store implements storage.SessionStore
var _ storage.SessionStore = (*Store)(nil)

// Store keeps sessions in a map guarded by a mutex. Everything is lost when
// the process exits.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*storage.Session
	now      func() time.Time
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		sessions: make(map[string]*storage.Session),
		now:      time.Now,
	}
}

// WithClock replaces the time source. Intended for tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// CreateSession registers state under a new random id.
func (s *Store) CreateSession(ctx context.Context, state *app.State) (*storage.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if state == nil {
		return nil, fmt.Errorf("failed to create session: nil state")
	}

	sess := storage.NewSession(uuid.NewString(), state, s.now())

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions == nil {
		return nil, fmt.Errorf("failed to create session: store closed")
	}
	s.sessions[sess.ID] = sess
	return sess, nil
}

// GetSession retrieves a session by id and touches it.
func (s *Store) GetSession(ctx context.Context, id string) (*storage.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, storage.ErrSessionNotFound)
	}
	sess.Touch(s.now())
	return sess, nil
}

// DeleteSession removes a session.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// SweepSessions removes sessions idle since before idleSince.
func (s *Store) SweepSessions(ctx context.Context, idleSince time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.LastSeen().Before(idleSince) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// CountSessions returns the number of live sessions.
func (s *Store) CountSessions(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions), nil
}

// Close drops all sessions. The store rejects new sessions afterwards.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = nil
	return nil
}
