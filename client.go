// Package civic is the client SDK for the community issue tracker
// backend. It owns the device's authentication state, the local view of
// the citizen's reports, and the persistent key-value state that
// survives restarts.
package civic

import (
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/emmayyque/community-issue-tracker-app/internal/logger"
	"github.com/emmayyque/community-issue-tracker-app/internal/store"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client carries the HTTP plumbing shared by the session and report
// managers: base URL, authenticated transport and the persistent store.
type Client struct {
	baseURL string
	http    *http.Client
	store   store.KV
	log     zerolog.Logger

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the given service base URL. Additional
// options can be provided via functional arguments; when no store is
// supplied the default on-disk state file is opened.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     logger.New("civic-client"),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.store == nil {
		s, err := store.OpenDefault()
		if err != nil {
			return nil, err
		}
		c.store = s
	}

	// Wrap the transport so every request picks up the stored bearer
	// token and a correlation ID.
	c.wrapTransportWithAuth()

	return c, nil
}

// Close releases the client's persistent store. Safe to call more than
// once.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	return c.store.Close()
}

// BaseURL returns the service URL the client was constructed with.
func (c *Client) BaseURL() string { return c.baseURL }

// wrapTransportWithAuth installs the token-attaching transport above
// whatever transport the options built (so debug logging sees the final
// request, headers included).
func (c *Client) wrapTransportWithAuth() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &authTransport{base: base, tokens: c.store}
}

// authTransport attaches the stored bearer token, when one exists, and
// an X-Request-Id to every outgoing request.
type authTransport struct {
	base   http.RoundTripper
	tokens store.KV
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Per-request lookup: the token changes at runtime on login/logout
	// and the transport must always send the current one.
	token, ok, err := t.tokens.Get(req.Context(), store.KeyAuthToken)
	if err == nil && ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	return t.base.RoundTrip(req)
}
