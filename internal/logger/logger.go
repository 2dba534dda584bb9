// Package logger constructs the application's structured logger.
//
// It uses zerolog, configured from LoggingConfig: JSON output for log
// pipelines or a human-friendly console format for local development.
package logger

import (
	"io"
	"os"

	"github.com/kyrelabs/items-api/internal/config"
	"github.com/rs/zerolog"
)

// New builds a zerolog logger from the logging config.
//
// Unknown level strings fall back to info rather than failing: the
// config layer validates the level before this runs, so the fallback
// only matters for hand-constructed configs in tests.
func New(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if cfg.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "items-api").
		Str("env", cfg.Primary.Env).
		Logger()
}
