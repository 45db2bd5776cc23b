package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmynk/friendsplit/internal/app"
	"github.com/mmynk/friendsplit/internal/metrics"
	"github.com/mmynk/friendsplit/internal/storage"
)

// SessionCookie is the name of the cookie carrying the browser session id.
const SessionCookie = "friendsplit_session"

// session returns the browser session for r, creating a fresh one seeded from
// the fixture when the cookie is missing or the session expired.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*storage.Session, error) {
	ctx := r.Context()
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		sess, err := s.store.GetSession(ctx, c.Value)
		if err == nil {
			s.setSessionCookie(w, sess.ID)
			return sess, nil
		}
		if !errors.Is(err, storage.ErrSessionNotFound) {
			return nil, err
		}
		slog.Debug("Session expired, starting a new one", "session_id", c.Value)
	}

	sess, err := s.store.CreateSession(ctx, app.New(s.seed, s.appOpts))
	if err != nil {
		return nil, err
	}
	s.setSessionCookie(w, sess.ID)
	slog.Info("Session created", "session_id", sess.ID)
	s.refreshSessionGauge(ctx)
	return sess, nil
}

// setSessionCookie (re)issues the session cookie so its expiry follows the
// server-side idle timer.
func (s *Server) setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) refreshSessionGauge(ctx context.Context) {
	if n, err := s.store.CountSessions(ctx); err == nil {
		metrics.ActiveSessions.Set(float64(n))
	}
}

// Sweep removes sessions idle for longer than the session TTL.
func (s *Server) Sweep(ctx context.Context) (int, error) {
	removed, err := s.store.SweepSessions(ctx, s.now().Add(-s.sessionTTL))
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		slog.Info("Expired idle sessions", "count", removed)
	}
	s.refreshSessionGauge(ctx)
	return removed, nil
}

// RunSweeper calls Sweep every interval until ctx is cancelled.
func (s *Server) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil && ctx.Err() == nil {
				slog.Warn("Session sweep failed", "error", err)
			}
		}
	}
}
