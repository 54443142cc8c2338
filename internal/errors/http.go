package errors

import "fmt"

// NewHTTPError classifies a non-success HTTP response for operation op.
func NewHTTPError(statusCode int, body string, op string) *ClassifiedError {
	return &ClassifiedError{
		Category:   categoryForStatus(statusCode),
		StatusCode: statusCode,
		Body:       body,
		Underlying: fmt.Errorf("%s failed: HTTP %d", op, statusCode),
	}
}

// NewNetworkError classifies a transport-level failure for operation op.
// Network failures are always treated as recoverable since they may be
// transient.
func NewNetworkError(op string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Recoverable,
		Underlying: fmt.Errorf("%s network error: %w", op, err),
	}
}

// categoryForStatus maps HTTP status codes onto retry categories:
// 4xx is final (except 408 and 429), 5xx and anything unexpected is
// retried.
func categoryForStatus(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	default:
		return Recoverable
	}
}
