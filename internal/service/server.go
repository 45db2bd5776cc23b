// Package service serves the friendsplit page and routes form posts into the
// per-browser application state.
package service

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/friendsplit/internal/app"
	"github.com/mmynk/friendsplit/internal/middleware"
	"github.com/mmynk/friendsplit/internal/models"
	"github.com/mmynk/friendsplit/internal/storage"
)

//go:embed templates/*.html
var templateFS embed.FS

// Options configures a Server.
type Options struct {
	// Store holds the browser sessions.
	Store storage.SessionStore

	// Seed is the initial friend list of every new session.
	Seed []models.Friend

	// App configures each session's state.
	App app.Options

	// Currency is the fixed symbol appended to amounts.
	Currency string

	// SessionTTL is how long an idle session is kept.
	SessionTTL time.Duration
}

// Server implements the friendsplit HTTP surface.
type Server struct {
	store      storage.SessionStore
	seed       []models.Friend
	appOpts    app.Options
	currency   string
	sessionTTL time.Duration
	tmpl       *template.Template
	now        func() time.Time
}

// New creates a Server with the given options.
func New(opts Options) (*Server, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 30 * time.Minute
	}
	if opts.Currency == "" {
		opts.Currency = "€"
	}

	tmpl, err := template.New("index.html").
		Funcs(template.FuncMap{"amount": models.FormatAmount}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Server{
		store:      opts.Store,
		seed:       opts.Seed,
		appOpts:    opts.App,
		currency:   opts.Currency,
		sessionTTL: opts.SessionTTL,
		tmpl:       tmpl,
		now:        time.Now,
	}, nil
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics)
	r.Use(chimw.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/api/state", s.handleState)

	r.Route("/friends", func(r chi.Router) {
		r.Post("/", s.handleAddFriend)
		r.Post("/form", s.handleToggleAddFriend)
		r.Post("/{id}/select", s.handleSelect)
	})

	r.Route("/split", func(r chi.Router) {
		r.Post("/", s.handleSubmitSplit)
		r.Post("/fields", s.handleSplitFields)
	})

	r.Post("/message/dismiss", s.handleDismissMessage)
	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// page loads the session and snapshots its view.
func (s *Server) page(w http.ResponseWriter, r *http.Request) (pageView, error) {
	sess, err := s.session(w, r)
	if err != nil {
		return pageView{}, err
	}
	var page pageView
	err = sess.Do(func(st *app.State) error {
		page = buildPage(st, s.currency)
		return nil
	})
	return page, err
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := s.page(w, r)
	if err != nil {
		s.internalError(w, "Failed to load session", err)
		return
	}

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "index.html", page); err != nil {
		s.internalError(w, "Failed to render page", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	page, err := s.page(w, r)
	if err != nil {
		s.internalError(w, "Failed to load session", err)
		return
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(page); err != nil {
		s.internalError(w, "Failed to encode state", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = buf.WriteTo(w)
}

func (s *Server) internalError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// backToPage sends the browser back to the page after a form post.
func backToPage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
