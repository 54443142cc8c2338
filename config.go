package civic

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/emmayyque/community-issue-tracker-app/internal/store"
)

// Config holds the SDK settings parsed from CIVIC_-prefixed environment
// variables. Example: CIVIC_SERVICE_URL, CIVIC_HTTP_TIMEOUT.
type Config struct {
	ServiceURL  string        `envconfig:"SERVICE_URL" default:"https://server-community-issues-tracker.vercel.app"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// StateHome overrides where the local state file lives. Empty means
	// the default ~/.civic-tracker directory.
	StateHome string `envconfig:"STATE_HOME" default:""`

	Debug bool `envconfig:"DEBUG" default:"false"`
}

// ConfigFromEnv creates a Config by parsing environment variables.
func ConfigFromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("CIVIC", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return &cfg, nil
}

// NewFromEnv builds a Client from the environment-derived Config.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithHTTPTimeout(cfg.HTTPTimeout),
		WithDebugLogging(cfg.Debug),
	}
	if cfg.StateHome != "" {
		kv, err := store.Open(filepath.Join(cfg.StateHome, "state.db"))
		if err != nil {
			return nil, err
		}
		base = append(base, WithStore(kv))
	}

	return New(cfg.ServiceURL, append(base, opts...)...)
}
