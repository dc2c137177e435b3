// Package server binds the listener and routes requests to the handlers.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Alarion239/devops-webapp/internal/config"
	constants "github.com/Alarion239/devops-webapp/internal/constants"
	"github.com/Alarion239/devops-webapp/internal/handlers"
	"github.com/Alarion239/devops-webapp/internal/logger"
	"github.com/go-chi/chi/v5"
)

const shutdownTimeout = 10 * time.Second

// NewRouter registers the two routes. Anything else gets chi's default
// 404 or 405.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Get(constants.ROUTE_HOME, handlers.Home)
	r.Get(constants.ROUTE_HEALTH, handlers.Health)
	return r
}

type Server struct {
	cfg    config.Config
	router http.Handler
}

func New(cfg config.Config) *Server {
	return &Server{
		cfg:    cfg,
		router: NewRouter(),
	}
}

// Listen binds the configured port. The returned error wraps the
// underlying syscall error.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", s.cfg.Addr(), err)
	}
	return ln, nil
}

// Serve announces the bound port and serves on ln until ctx is cancelled.
// A cancelled ctx is a clean stop and yields nil.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	if err := ctx.Err(); err != nil {
		ln.Close()
		return fmt.Errorf("context cancelled: %w", err)
	}

	srv := &http.Server{Handler: s.router}

	port := s.cfg.Port
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}
	logger.LogInfo(fmt.Sprintf("App running on port %d", port), "port", port)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.LogInfo("Server stopped")
	return nil
}

// Run binds and serves. Bind failures are returned before anything is
// logged as running.
func (s *Server) Run(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}
