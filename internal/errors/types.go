// Package errors classifies remote-call failures so the transport layer
// can decide which ones are worth retrying.
package errors

import "fmt"

// ErrorCategory determines how a failure is handled by retry logic.
type ErrorCategory int

const (
	// Recoverable failures may succeed on a later attempt: 5xx responses,
	// timeouts, connection resets.
	Recoverable ErrorCategory = iota

	// Irrecoverable failures will not improve with retries: rejected
	// credentials, validation rejections, missing resources.
	Irrecoverable
)

func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ClassifiedError wraps a failure with its category and, for HTTP
// failures, the status code and response body.
type ClassifiedError struct {
	Category   ErrorCategory
	StatusCode int    // 0 for non-HTTP failures
	Body       string // response body, for diagnostics
	Underlying error
}

func (e *ClassifiedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Category, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("[%s] %v", e.Category, e.Underlying)
}

// Unwrap exposes the underlying error to errors.Is / errors.As chains.
func (e *ClassifiedError) Unwrap() error { return e.Underlying }

// IsIrrecoverable reports whether err is classified as not worth retrying.
func IsIrrecoverable(err error) bool {
	if classified, ok := err.(*ClassifiedError); ok {
		return classified.Category == Irrecoverable
	}
	return false
}

// IsAuthRejection reports whether err is an HTTP 401 or 403, meaning the
// bearer token itself was refused rather than the request content.
func IsAuthRejection(err error) bool {
	classified, ok := err.(*ClassifiedError)
	if !ok {
		return false
	}
	return classified.StatusCode == 401 || classified.StatusCode == 403
}
