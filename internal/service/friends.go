package service

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mmynk/friendsplit/internal/app"
	"github.com/mmynk/friendsplit/internal/metrics"
)

// handleToggleAddFriend opens or closes the add-friend form.
func (s *Server) handleToggleAddFriend(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(w, r)
	if err != nil {
		s.internalError(w, "Failed to load session", err)
		return
	}
	_ = sess.Do(func(st *app.State) error {
		st.ToggleAddFriend()
		return nil
	})
	backToPage(w, r)
}

// handleAddFriend validates the submitted name and appends the new friend.
// A rejected name leaves the form open for another try.
func (s *Server) handleAddFriend(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(w, r)
	if err != nil {
		s.internalError(w, "Failed to load session", err)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	name := r.PostForm.Get("name")

	err = sess.Do(func(st *app.State) error {
		friend, err := st.AddFriend(name)
		if err != nil {
			return err
		}
		slog.Info("Friend added", "session_id", sess.ID, "friend_id", friend.ID, "name", friend.Name)
		metrics.FriendsAdded.Inc()
		return nil
	})
	switch {
	case err == nil:
	case errors.Is(err, app.ErrEmptyName), errors.Is(err, app.ErrAddFriendClosed):
		slog.Debug("Add friend rejected", "session_id", sess.ID, "error", err)
		metrics.ValidationFailures.WithLabelValues("name").Inc()
	default:
		s.internalError(w, "Add friend failed", err)
		return
	}
	backToPage(w, r)
}

// handleSelect toggles the selection of a friend.
func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(w, r)
	if err != nil {
		s.internalError(w, "Failed to load session", err)
		return
	}
	id := chi.URLParam(r, "id")

	err = sess.Do(func(st *app.State) error {
		selected, err := st.Select(id)
		if err != nil {
			return err
		}
		slog.Debug("Selection changed", "session_id", sess.ID, "friend_id", id, "selected", selected)
		return nil
	})
	if errors.Is(err, app.ErrUnknownFriend) {
		slog.Warn("Select failed", "session_id", sess.ID, "friend_id", id, "error", err)
		http.Error(w, "friend not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.internalError(w, "Select failed", err)
		return
	}
	backToPage(w, r)
}

// handleDismissMessage hides the notification.
func (s *Server) handleDismissMessage(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(w, r)
	if err != nil {
		s.internalError(w, "Failed to load session", err)
		return
	}
	_ = sess.Do(func(st *app.State) error {
		st.DismissMessage()
		return nil
	})
	backToPage(w, r)
}
