package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emmayyque/community-issue-tracker-app/internal/types"
)

// ListActiveNotices fetches the announcements currently published by
// the authorities.
func ListActiveNotices(ctx context.Context, hc *http.Client, baseURL string) ([]types.Notice, error) {
	var notices []types.Notice
	url := fmt.Sprintf("%s/api/notice/getAllActive", baseURL)
	if err := doJSON(ctx, hc, http.MethodGet, url, nil, &notices, http.StatusOK, "list_notices"); err != nil {
		return nil, err
	}
	return notices, nil
}
