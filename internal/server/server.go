// Package server implements the starter's minimal HTTP backend: two
// static JSON routes behind a composable middleware chain.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/kindling-dev/kindling/internal/config"
	"github.com/kindling-dev/kindling/internal/logging"
)

// Server owns the HTTP listener lifecycle and route registration.
type Server struct {
	config *config.Config
	logger logging.Logger
	mux    *http.ServeMux

	mu         sync.Mutex
	httpServer *http.Server
	isShutdown bool
}

// New creates a server for the given configuration. Routes and the
// middleware stack are registered up front; nothing listens until
// Start is called.
func New(cfg *config.Config, logger logging.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("server: config cannot be nil")
	}
	if logger == nil {
		logger = logging.NewLogger(nil)
	}

	s := &Server{
		config: cfg,
		logger: logger.WithComponent("server"),
		mux:    http.NewServeMux(),
	}

	handlers := NewHandlers(cfg)
	s.mux.HandleFunc("GET /{$}", handlers.HandleIndex)
	s.mux.HandleFunc("GET /api/health", handlers.HandleHealth)

	return s, nil
}

// Handler returns the fully wrapped root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.buildChain().Apply(s.mux)
}

// buildChain assembles the middleware stack named in configuration.
// Unknown names are ignored; the starter ships with "logger" only.
func (s *Server) buildChain() *Chain {
	chain := NewChain()
	for _, name := range s.config.Server.Middleware {
		if name == "logger" {
			chain.Add(LoggingMiddleware(s.logger))
		}
	}
	return chain
}

// Start runs the HTTP server until the context is cancelled or the
// listener fails.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	s.mu.Lock()
	if s.isShutdown {
		s.mu.Unlock()
		return fmt.Errorf("server: already shut down")
	}
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	s.mu.Unlock()

	s.logger.Info(ctx, "server listening", "addr", addr, "project", s.config.Name)

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err, ok := <-errCh:
		if ok && err != nil {
			return fmt.Errorf("server: listen on %s: %w", addr, err)
		}
		return nil
	}
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isShutdown || s.httpServer == nil {
		return nil
	}
	s.isShutdown = true

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}
