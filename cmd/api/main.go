package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kyrelabs/items-api/internal/config"
	"github.com/kyrelabs/items-api/internal/logger"
	"github.com/kyrelabs/items-api/internal/router"
	"github.com/kyrelabs/items-api/internal/server"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// shutdownTimeout is how long in-flight requests get to finish after a
// termination signal.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config failed, so there is no configured logger yet; use a
		// minimal console logger to report and exit.
		fallback := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		fallback.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg)

	s := server.New(cfg, &log)
	s.SetupHTTPServer(router.New(s))

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("server error")
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
