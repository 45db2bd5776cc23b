package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggingLevels(t *testing.T) {
	tests := []struct {
		status  int
		wantMsg string
		wantLvl string
	}{
		{status: http.StatusOK, wantMsg: "Request completed", wantLvl: "level=INFO"},
		{status: http.StatusSeeOther, wantMsg: "Request completed", wantLvl: "level=INFO"},
		{status: http.StatusNotFound, wantMsg: "Request rejected", wantLvl: "level=WARN"},
		{status: http.StatusInternalServerError, wantMsg: "Request failed", wantLvl: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			buf := captureLogs(t)
			handler := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/friends", nil))

			out := buf.String()
			if !strings.Contains(out, tt.wantMsg) || !strings.Contains(out, tt.wantLvl) {
				t.Errorf("log = %q, want %q at %q", out, tt.wantMsg, tt.wantLvl)
			}
			if !strings.Contains(out, "path=/friends") {
				t.Errorf("log missing path: %q", out)
			}
		})
	}
}

func TestLoggingImplicitStatus(t *testing.T) {
	buf := captureLogs(t)
	handler := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if !strings.Contains(buf.String(), "status=200") {
		t.Errorf("log = %q, want status=200", buf.String())
	}
}

func TestMetricsPassesThrough(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Post("/friends/{id}/select", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/friends/abc/select", nil))
	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusAccepted)
	}
}
