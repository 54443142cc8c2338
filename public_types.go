package civic

import "github.com/emmayyque/community-issue-tracker-app/internal/types"

// Public type aliases so SDK consumers can import only the civic package.
type (
	// Domain entities
	User         = types.User
	Report       = types.Report
	StatusUpdate = types.StatusUpdate
	AssignedTo   = types.AssignedTo
	Notice       = types.Notice

	// Enumerations
	Category = types.Category
	Priority = types.Priority
	Status   = types.Status

	// Requests
	SignupRequest = types.SignupRequest
	ReportDraft   = types.ReportDraft
	ReportPatch   = types.ReportPatch
	UserPatch     = types.UserPatch

	// Validation
	FieldError       = types.FieldError
	ValidationErrors = types.ValidationErrors
)

// Categories
const (
	CategoryWASA         = types.CategoryWASA
	CategoryIESCO        = types.CategoryIESCO
	CategoryMunicipality = types.CategoryMunicipality
	CategoryOthers       = types.CategoryOthers
)

// Priorities
const (
	PriorityLow      = types.PriorityLow
	PriorityMedium   = types.PriorityMedium
	PriorityHigh     = types.PriorityHigh
	PriorityCritical = types.PriorityCritical
)

// Statuses. StatusAll is only meaningful as a list filter.
const (
	StatusPending    = types.StatusPending
	StatusForwarded  = types.StatusForwarded
	StatusInProgress = types.StatusInProgress
	StatusResolved   = types.StatusResolved
	StatusAll        = types.StatusAll
)

// SubcategoriesFor exposes the fixed category lookup table, e.g. for
// building form pickers.
func SubcategoriesFor(category Category) []string {
	return types.SubcategoriesFor(category)
}
