// Package site serves the static receipt page locally so the capture engine
// has a document to render. It also mounts the metrics handler when
// telemetry is enabled.
package site

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"finaltabs/internal/logging"
)

// Config controls the listener and the served directory.
type Config struct {
	Port string
	Dir  string
}

// Server is the local static file server for the receipt page.
type Server struct {
	cfg    Config
	logger *slog.Logger
	http   *http.Server
	ln     net.Listener
}

// New constructs the server. metricsHandler may be nil.
func New(cfg Config, logger *slog.Logger, metricsHandler http.Handler) *Server {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}
	r.Handle("/*", http.FileServer(http.Dir(cfg.Dir)))

	return &Server{
		cfg:    cfg,
		logger: logger,
		http:   &http.Server{Handler: r},
	}
}

// Start binds the listener and serves in the background. It returns once the
// port is bound so callers can immediately point a browser at URL().
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", net.JoinHostPort("", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("bind site server: %w", err)
	}
	s.ln = ln

	go func() {
		if err := s.http.Serve(ln); err != nil && err != http.ErrServerClosed {
			logging.Error(s.logger, "site server stopped", err)
		}
	}()

	logging.Info(s.logger, "site server started", "addr", ln.Addr().String())
	return nil
}

// URL returns the local base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return "http://localhost:" + s.cfg.Port
	}
	_, port, err := net.SplitHostPort(s.ln.Addr().String())
	if err != nil {
		return "http://localhost:" + s.cfg.Port
	}
	return "http://localhost:" + port
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
