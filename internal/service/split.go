package service

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mmynk/friendsplit/internal/app"
	"github.com/mmynk/friendsplit/internal/calculator"
	"github.com/mmynk/friendsplit/internal/metrics"
)

// parseAmount converts a numeric form field the way a browser's Number() does:
// blank is 0 and anything unparsable is NaN, which every setter rejects.
func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

// applySplitFields feeds the posted fields through the split setters in form
// order: bill, then expense, then payer. Rejected values are counted and
// skipped; only a missing split session is returned as an error.
func applySplitFields(st *app.State, form url.Values, sessionID string) error {
	if _, ok := st.Split(); !ok {
		return app.ErrNoSelection
	}

	reject := func(field string, err error) {
		slog.Debug("Split field rejected", "session_id", sessionID, "field", field, "error", err)
		metrics.ValidationFailures.WithLabelValues(field).Inc()
	}

	if form.Has("bill") {
		if err := st.SetBill(parseAmount(form.Get("bill"))); err != nil {
			reject("bill", err)
		}
	}
	if form.Has("paid_by_user") {
		if err := st.SetPaidByUser(parseAmount(form.Get("paid_by_user"))); err != nil {
			reject("paid_by_user", err)
		}
	}
	if form.Has("who_is_paying") {
		payer, err := calculator.ParsePayer(form.Get("who_is_paying"))
		if err == nil {
			err = st.SetPayer(payer)
		}
		if err != nil {
			reject("who_is_paying", err)
		}
	}
	return nil
}

// handleSplitFields updates the split form without submitting it.
func (s *Server) handleSplitFields(w http.ResponseWriter, r *http.Request) {
	s.splitAction(w, r, false)
}

// handleSubmitSplit updates the split form and submits it.
func (s *Server) handleSubmitSplit(w http.ResponseWriter, r *http.Request) {
	s.splitAction(w, r, true)
}

func (s *Server) splitAction(w http.ResponseWriter, r *http.Request, submit bool) {
	sess, err := s.session(w, r)
	if err != nil {
		s.internalError(w, "Failed to load session", err)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	err = sess.Do(func(st *app.State) error {
		if err := applySplitFields(st, r.PostForm, sess.ID); err != nil {
			return err
		}
		if !submit {
			return nil
		}

		out, err := st.SubmitSplit()
		if err != nil {
			return err
		}
		if out.Noop {
			slog.Info("Split left balance unchanged", "session_id", sess.ID, "friend_id", out.FriendID)
			metrics.Splits.WithLabelValues(metrics.OutcomeNoop).Inc()
			return nil
		}
		slog.Info("Bill split",
			"session_id", sess.ID,
			"friend_id", out.FriendID,
			"delta", out.Delta,
		)
		metrics.Splits.WithLabelValues(metrics.OutcomeApplied).Inc()
		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, app.ErrBillRequired):
		slog.Debug("Split rejected", "session_id", sess.ID, "error", err)
		metrics.ValidationFailures.WithLabelValues("bill").Inc()
	case errors.Is(err, app.ErrBalanceOverflow):
		slog.Warn("Split rejected", "session_id", sess.ID, "error", err)
		metrics.ValidationFailures.WithLabelValues("balance").Inc()
	case errors.Is(err, app.ErrNoSelection):
		slog.Warn("Split without a selected friend", "session_id", sess.ID)
		http.Error(w, "no friend selected", http.StatusConflict)
		return
	default:
		s.internalError(w, "Split failed", err)
		return
	}
	backToPage(w, r)
}
