// Package api serves the local HTTP control surface used by the CLI and
// the terminal preferences UI.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/bnema/toggley/internal/application/port"
	"github.com/bnema/toggley/internal/application/usecase"
	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/infrastructure/bridge"
	"github.com/bnema/toggley/internal/logging"
)

// DefaultListenAddr is the loopback address the daemon binds by default.
const DefaultListenAddr = "127.0.0.1:7878"

// Backend is the daemon state the API exposes. The Client implements it
// over HTTP.
type Backend interface {
	Status(ctx context.Context) (*entity.Status, error)
	ListThemes(ctx context.Context) ([]entity.ThemeEntry, error)
	LoadPreferences(ctx context.Context) (entity.Preferences, error)
	SavePreferences(ctx context.Context, prefs entity.Preferences) (entity.Preferences, error)
	RestoreDefaults(ctx context.Context) (entity.Preferences, error)
	LoadSchedule(ctx context.Context) (entity.Schedule, error)
	SaveSchedule(ctx context.Context, schedule entity.Schedule) error
	Toggle(ctx context.Context) (*usecase.SwitchResult, error)
	ClickMenu(ctx context.Context, item entity.MenuItem, checked bool) (entity.MenuState, error)
	Icon(ctx context.Context) (*entity.Icon, error)
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error    string   `json:"error"`
	Messages []string `json:"messages,omitempty"`
}

// Server routes HTTP requests to a Backend.
type Server struct {
	backend Backend
	baseCtx context.Context
	http    *http.Server
}

// NewServer creates a server for backend.
func NewServer(ctx context.Context, backend Backend) *Server {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Server{
		backend: backend,
		baseCtx: logging.WithComponent(ctx, "api"),
	}
}

// Register installs the routes on mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /api/themes", s.handleThemes)
	mux.HandleFunc("GET /api/preferences", s.handleGetPreferences)
	mux.HandleFunc("PUT /api/preferences", s.handlePutPreferences)
	mux.HandleFunc("POST /api/preferences/defaults", s.handleRestoreDefaults)
	mux.HandleFunc("GET /api/schedule", s.handleGetSchedule)
	mux.HandleFunc("PUT /api/schedule", s.handlePutSchedule)
	mux.HandleFunc("POST /api/toggle", s.handleToggle)
	mux.HandleFunc("POST /api/menu/{item}", s.handleMenu)
	mux.HandleFunc("GET /api/icon", s.handleIcon)
}

// Handler returns the API routes with the given extra routes mounted.
func (s *Server) Handler(extra map[string]http.Handler) http.Handler {
	mux := http.NewServeMux()
	s.Register(mux)
	for pattern, h := range extra {
		mux.Handle(pattern, h)
	}
	return mux
}

// ListenAndServe serves handler on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	log := logging.FromContext(s.baseCtx)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.http = &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return s.baseCtx },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.http.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", ln.Addr().String()).Msg("control API listening")
	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.backend.Status(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	themes, err := s.backend.ListThemes(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, themes)
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := s.backend.LoadPreferences(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

func (s *Server) handlePutPreferences(w http.ResponseWriter, r *http.Request) {
	var prefs entity.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return
	}
	saved, err := s.backend.SavePreferences(r.Context(), prefs)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleRestoreDefaults(w http.ResponseWriter, r *http.Request) {
	prefs, err := s.backend.RestoreDefaults(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

func (s *Server) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := s.backend.LoadSchedule(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schedule)
}

func (s *Server) handlePutSchedule(w http.ResponseWriter, r *http.Request) {
	var schedule entity.Schedule
	if err := json.NewDecoder(r.Body).Decode(&schedule); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return
	}
	if err := s.backend.SaveSchedule(r.Context(), schedule); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schedule)
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	result, err := s.backend.Toggle(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	item := entity.MenuItem(r.PathValue("item"))
	checked := false
	if v := r.URL.Query().Get("checked"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "checked must be true or false"})
			return
		}
		checked = b
	}

	state, err := s.backend.ClickMenu(r.Context(), item, checked)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleIcon(w http.ResponseWriter, r *http.Request) {
	icon, err := s.backend.Icon(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if r.URL.Query().Get("format") == "json" {
		writeJSON(w, http.StatusOK, icon)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(icon.SVG))
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, entity.ErrInvalidMode),
		errors.Is(err, entity.ErrScheduleIncomplete),
		errors.Is(err, entity.ErrScheduleSameTime),
		errors.Is(err, entity.ErrUnknownMenuItem):
		return http.StatusBadRequest
	case errors.Is(err, port.ErrThemeNotFound):
		return http.StatusNotFound
	case errors.Is(err, bridge.ErrNotConnected):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	resp := ErrorResponse{Error: err.Error()}
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		resp.Messages = verr.Messages
	}
	if status >= http.StatusInternalServerError {
		logging.FromContext(s.baseCtx).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
