package civic

import (
	"errors"

	"github.com/emmayyque/community-issue-tracker-app/internal/types"
)

// ErrNotAuthenticated is returned by operations that require an
// authenticated session when none exists.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrEditNotAllowed is returned when a report's workflow state forbids
// editing (anything past Pending, or already assigned).
var ErrEditNotAllowed = errors.New("report can no longer be edited")

// ErrDeleteNotAllowed is returned when a report's workflow state
// forbids withdrawal (anything past Pending).
var ErrDeleteNotAllowed = errors.New("report can no longer be deleted")

// Re-export shared SDK error so callers compare against a single symbol.
var ErrNotFound = types.ErrNotFound

// AsValidation extracts field-level validation failures from err.
// Validation failures never reach the network.
func AsValidation(err error) (ValidationErrors, bool) {
	var verrs types.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}
