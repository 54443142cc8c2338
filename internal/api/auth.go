package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emmayyque/community-issue-tracker-app/internal/types"
)

// Login exchanges credentials for an opaque bearer token.
func Login(ctx context.Context, hc *http.Client, baseURL string, req types.LoginRequest) (string, error) {
	var resp types.TokenResponse
	url := fmt.Sprintf("%s/api/auth/login", baseURL)
	if err := doJSON(ctx, hc, http.MethodPost, url, req, &resp, http.StatusOK, "login"); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Register creates a new account and returns its bearer token.
func Register(ctx context.Context, hc *http.Client, baseURL string, req types.SignupRequest) (string, error) {
	var resp types.TokenResponse
	url := fmt.Sprintf("%s/api/auth/register", baseURL)
	if err := doJSON(ctx, hc, http.MethodPost, url, req, &resp, http.StatusCreated, "register"); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// GetInfo fetches the profile of the token's owner.
func GetInfo(ctx context.Context, hc *http.Client, baseURL string) (*types.User, error) {
	var user types.User
	url := fmt.Sprintf("%s/api/auth/getInfo", baseURL)
	if err := doJSON(ctx, hc, http.MethodGet, url, nil, &user, http.StatusOK, "get_info"); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile replaces the profile of the token's owner with user.
func UpdateProfile(ctx context.Context, hc *http.Client, baseURL string, user types.User) error {
	url := fmt.Sprintf("%s/api/auth/updateProfile", baseURL)
	return doJSON(ctx, hc, http.MethodPut, url, user, nil, http.StatusOK, "update_profile")
}
