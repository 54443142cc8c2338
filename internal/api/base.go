// Package api implements the HTTP calls to the issue-tracker backend.
// Each endpoint gets one function taking the caller's context, the
// authenticated http.Client and the service base URL; authorization is
// handled by the transport the client package installs.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	apierrors "github.com/emmayyque/community-issue-tracker-app/internal/errors"
)

// HTTPClient interface for dependency injection in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const (
	maxRetries  = 2 // total attempts = maxRetries + 1
	baseBackoff = 200 * time.Millisecond
)

// doJSON performs one JSON exchange: marshal in (when non-nil), issue
// the request, require wantStatus, and decode into out (when non-nil).
// Recoverable failures are retried with exponential backoff; anything
// classified irrecoverable is returned immediately.
func doJSON(ctx context.Context, hc *http.Client, method, url string, in, out any, wantStatus int, op string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return err
		}
	}

	attempt := func() error {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, body)
		if err != nil {
			return backoff.Permanent(err)
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := hc.Do(req)
		if err != nil {
			requestFailuresTotal.WithLabelValues(op).Inc()
			return apierrors.NewNetworkError(op, err)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != wantStatus {
			requestFailuresTotal.WithLabelValues(op).Inc()
			respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			ce := apierrors.NewHTTPError(resp.StatusCode, string(respBody), op)
			if apierrors.IsIrrecoverable(ce) {
				return backoff.Permanent(error(ce))
			}
			return ce
		}

		if out != nil {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return backoff.Permanent(fmt.Errorf("%s: decode response: %w", op, err))
			}
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = baseBackoff
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, maxRetries), ctx)

	err := backoff.Retry(func() error {
		requestsTotal.WithLabelValues(op).Inc()
		return attempt()
	}, policy)
	return err
}

// isStatus reports whether err is a classified HTTP failure with the
// given status code.
func isStatus(err error, code int) bool {
	var ce *apierrors.ClassifiedError
	if stderrors.As(err, &ce) {
		return ce.StatusCode == code
	}
	return false
}
