package types

// ------------------------------
// Request Types
// ------------------------------

// LoginRequest holds the credentials for an authentication exchange.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest holds parameters for a new account.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// ReportDraft holds the citizen-entered fields of a new report.
type ReportDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	SubCategory string   `json:"subCategory"`
	Priority    Priority `json:"priority"`
}

// ReportPatch holds the mutable fields of an existing report. The
// category is fixed at submission time and status transitions are
// server-driven, so neither appears here.
type ReportPatch struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	SubCategory string   `json:"subCategory"`
	Priority    Priority `json:"priority"`
}

// UserPatch is a partial profile update. Empty fields are left as-is
// when the patch is merged into the current user.
type UserPatch struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// MergeUser applies patch on top of u and returns the merged record.
func MergeUser(u User, patch UserPatch) User {
	if patch.Name != "" {
		u.Name = patch.Name
	}
	if patch.Email != "" {
		u.Email = patch.Email
	}
	if patch.Avatar != "" {
		u.Avatar = patch.Avatar
	}
	return u
}
