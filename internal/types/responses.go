package types

import "fmt"

// ------------------------------
// Response Types
// ------------------------------

// TokenResponse carries the opaque bearer token issued by the auth
// endpoints. The client never inspects the token's contents.
type TokenResponse struct {
	Token string `json:"token"`
}

// ------------------------------
// Shared Errors
// ------------------------------

// ErrNotFound is returned when the requested report does not exist.
var ErrNotFound = fmt.Errorf("report not found")
