// Package config manages application configuration.
//
// Configuration comes from environment variables with the ITEMS_
// prefix (a .env file is loaded automatically when present), is
// unmarshaled into structured Go types on top of defaults, and is
// validated so the app fails fast on bad values.
//
// Env keys map onto nested config fields with the first underscore
// acting as the nesting separator:
//
//	ITEMS_SERVER_PORT          -> server.port          -> Config.Server.Port
//	ITEMS_LOGGING_LEVEL        -> logging.level        -> Config.Logging.Level
//	ITEMS_SERVER_READ_TIMEOUT  -> server.read_timeout  -> Config.Server.ReadTimeout
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Loads a .env file into the process environment before any env
	// vars are read. No explicit call needed.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envPrefix is the prefix every configuration env var must carry.
const envPrefix = "ITEMS_"

// Config is the root configuration object for the application.
//
// The koanf tags drive unmarshaling; the validate tags are enforced by
// go-playground/validator after loading.
type Config struct {
	Primary Primary       `koanf:"primary" validate:"required"`
	Server  ServerConfig  `koanf:"server" validate:"required"`
	Logging LoggingConfig `koanf:"logging" validate:"required"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and the health endpoint.
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=development staging production"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level" validate:"required,oneof=trace debug info warn error"`

	// Format selects the log output format: "json" for machines,
	// "console" for humans.
	Format string `koanf:"format" validate:"required,oneof=json console"`
}

// Default returns the configuration used when no env vars are set.
// Defaults target local development; deployments override via env.
func Default() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:               "8000",
			ReadTimeout:        10,
			WriteTimeout:       10,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from defaults overlaid with ITEMS_
// env vars and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	// The key-mapping func turns ITEMS_SERVER_READ_TIMEOUT into
	// server.read_timeout: trim the prefix, lowercase, and replace
	// only the first underscore with the nesting delimiter.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env variables: %w", err)
	}

	// Unmarshal on top of the defaults so env vars only override the
	// keys they actually set.
	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}
