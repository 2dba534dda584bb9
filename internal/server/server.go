// Package server defines the Server struct that composes the app's
// main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger
//   - metrics registry
//   - http.Server
//
// and provides constructors plus start/shutdown logic to run the
// application cleanly.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kyrelabs/items-api/internal/config"
	"github.com/kyrelabs/items-api/internal/metrics"
	"github.com/rs/zerolog"
)

// Server is the application container that holds shared resources.
// It is not the HTTP server itself; it configures and runs one.
type Server struct {
	// Config holds all environment/config values for the app.
	Config *config.Config

	// Logger is the application's main structured logger.
	Logger *zerolog.Logger

	// Metrics holds the Prometheus instruments and registry.
	Metrics *metrics.Metrics

	// httpServer is the standard library HTTP server instance,
	// configured in SetupHTTPServer and started in Start.
	httpServer *http.Server

	// startedAt is when the container was constructed; the health
	// endpoint reports uptime relative to it.
	startedAt time.Time
}

// New constructs a Server with its shared dependencies initialized.
// It does not start listening; that is SetupHTTPServer + Start.
func New(cfg *config.Config, logger *zerolog.Logger) *Server {
	return &Server{
		Config:    cfg,
		Logger:    logger,
		Metrics:   metrics.New(),
		startedAt: time.Now(),
	}
}

// Uptime reports how long the server container has existed.
func (s *Server) Uptime() time.Duration {
	return time.Since(s.startedAt)
}

// SetupHTTPServer configures the internal net/http server with the
// router/middleware stack as its handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: handler,

		// Timeouts protect against slow clients and resource
		// exhaustion. Config stores seconds.
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It requires SetupHTTPServer to have been
// called first, and blocks until the server stops or errors.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server, letting in-flight
// requests finish until ctx's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	return nil
}
