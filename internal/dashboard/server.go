// Package dashboard serves the launch-records dashboard: the HTML page, the
// chart-spec JSON API, and the event dispatcher tying control changes to the
// chart reducers.
package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/smithmum/final-project/internal/launch"
	"github.com/smithmum/final-project/internal/observability"
)

// Server owns the read-only dataset and the HTTP surface built on it.
type Server struct {
	ds     *launch.Dataset
	layout Layout
	logger *slog.Logger
	events *observability.Recorder
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithRecorder enables render-event recording and the /api/stats endpoint.
func WithRecorder(rec *observability.Recorder) ServerOption {
	return func(s *Server) { s.events = rec }
}

// New creates a dashboard Server over an already-loaded dataset.
func New(ds *launch.Dataset, logger *slog.Logger, opts ...ServerOption) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		ds:     ds,
		layout: BuildLayout(ds),
		logger: logger,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// RegisterHTTP mounts the dashboard routes on r.
func (s *Server) RegisterHTTP(r chi.Router) {
	r.Get("/", s.handlePage)
	r.Get("/healthz", s.handleHealth)
	r.Get("/api/layout", s.handleLayout)
	r.Get("/api/charts/pie", s.handlePie)
	r.Get("/api/charts/scatter", s.handleScatter)
	r.Get("/api/stats", s.handleStats)
}

// Handler returns the complete handler: chi router, middleware stack, routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))
	r.Use(securityHeaders(defaultHeaders()))
	s.RegisterHTTP(r)
	return r
}
