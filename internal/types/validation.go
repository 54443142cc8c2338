package types

import "strings"

const (
	minTitleLen       = 5
	minDescriptionLen = 20
)

// FieldError is a single field-scoped validation failure.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

// ValidationErrors aggregates every failing field so a form can surface
// all problems at once.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ByField returns the message for field, or "" when the field passed.
func (v ValidationErrors) ByField(field string) string {
	for _, e := range v {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// ValidateDraft checks a new report before it is sent anywhere.
// A non-nil result is always a ValidationErrors value.
func ValidateDraft(d ReportDraft) error {
	errs := validateReportFields(d.Title, d.Description, d.Category, d.SubCategory)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidatePatch checks an edit against the same rules as submission.
// The category comes from the stored report since edits cannot move a
// report between authorities.
func ValidatePatch(category Category, p ReportPatch) error {
	errs := validateReportFields(p.Title, p.Description, category, p.SubCategory)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateReportFields(title, description string, category Category, subCategory string) ValidationErrors {
	var errs ValidationErrors

	switch {
	case strings.TrimSpace(title) == "":
		errs = append(errs, FieldError{"title", "Title is required"})
	case len(strings.TrimSpace(title)) < minTitleLen:
		errs = append(errs, FieldError{"title", "Title must be at least 5 characters long"})
	}

	switch {
	case strings.TrimSpace(description) == "":
		errs = append(errs, FieldError{"description", "Description is required"})
	case len(strings.TrimSpace(description)) < minDescriptionLen:
		errs = append(errs, FieldError{"description", "Description must be at least 20 characters long"})
	}

	switch {
	case subCategory == "":
		errs = append(errs, FieldError{"subCategory", "Please select a subcategory"})
	case !ValidSubcategory(category, subCategory):
		errs = append(errs, FieldError{"subCategory", "Subcategory is not valid for the selected category"})
	}

	return errs
}
