// Package config loads and validates application configuration from a YAML
// file with environment variable overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/bissquit/status-garden/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "STATUSGARDEN_"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig            `koanf:"server"`
	Log       LogConfig               `koanf:"log"`
	CORS      CORSConfig              `koanf:"cors"`
	Poller    PollerConfig            `koanf:"poller"`
	Providers []domain.StatusProvider `koanf:"providers" validate:"required,min=1,dive"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              string        `koanf:"port"`
	MetricsPort       string        `koanf:"metrics_port"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"omitempty,oneof=json text"`
}

// CORSConfig contains CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// PollerConfig contains status poller settings.
type PollerConfig struct {
	Interval      time.Duration `koanf:"interval" validate:"required,min=1s"`
	FetchTimeout  time.Duration `koanf:"fetch_timeout" validate:"required,min=1s"`
	FetchesPerSec float64       `koanf:"fetches_per_sec" validate:"gte=0"`
}

// Default returns the configuration defaults. File and environment values
// are layered on top.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              "8080",
			MetricsPort:       "9090",
			ReadTimeout:       10 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Poller: PollerConfig{
			Interval:      60 * time.Second,
			FetchTimeout:  15 * time.Second,
			FetchesPerSec: 10,
		},
	}
}

// Load reads configuration from the given YAML file (optional) and
// STATUSGARDEN_* environment variables, then validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	// STATUSGARDEN_SERVER_PORT=8081 overrides server.port. Provider list
	// entries are file-only; overriding a slice through env is not supported.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load env config: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
