package civic

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to
// discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/emmayyque/community-issue-tracker-app/internal/store"
)

// Option configures a Client during construction in New.
//
// Options are applied before the auth transport wrapper is installed,
// so transport-related options (like debug logging) end up underneath
// the token-attaching wrapper. Options must be deterministic and
// side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the
// SDK. Prefer per-request context deadlines where possible; this is a
// coarse safety net bounding the total time of a single HTTP request.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the http.Client the SDK uses. The auth
// wrapper is still installed on top of the supplied client's transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request and
// response is dumped to the log when enabled is true. Not for
// production use; dumps include headers and bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithStore replaces the default on-disk key-value store. Tests use
// this with an in-memory store; callers may supply any KV
// implementation.
func WithStore(kv store.KV) Option {
	return func(c *Client) error {
		if kv == nil {
			return fmt.Errorf("store cannot be nil")
		}
		c.store = kv
		return nil
	}
}

// WithLogger replaces the client's default logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = log
		return nil
	}
}
