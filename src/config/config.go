package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// AllowListKey is the configuration entry holding the JSON array of allowed PSKs.
const AllowListKey = "PSK"

// DefaultListenAddr is the loopback address the API server binds to.
const DefaultListenAddr = "127.0.0.1:8080"

// Config holds the server settings read once at startup. The PSK allow-list is not
// part of it; that value is read through a Provider on every request.
type Config struct {
	ListenAddr      string        `envconfig:"LISTEN_ADDR" default:"127.0.0.1:8080"` // ListenAddr is the host:port the server listens on.
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`             // LogLevel is a zerolog level name.
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

// Init reads MASQR_* variables from the environment.
func Init() (Config, error) {
	var cfg Config
	if err := envconfig.Process("masqr", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read config from environment: %w", err)
	}

	if cfg.ListenAddr == "" {
		return Config{}, fmt.Errorf("MASQR_LISTEN_ADDR cannot be empty")
	}

	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid MASQR_LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
