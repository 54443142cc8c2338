package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emmayyque/community-issue-tracker-app/internal/types"
)

// AddReport submits a validated draft and returns the stored report.
func AddReport(ctx context.Context, hc *http.Client, baseURL string, draft types.ReportDraft) (*types.Report, error) {
	var report types.Report
	url := fmt.Sprintf("%s/api/report/add", baseURL)
	if err := doJSON(ctx, hc, http.MethodPost, url, draft, &report, http.StatusCreated, "add_report"); err != nil {
		return nil, err
	}
	return &report, nil
}

// ListByUser fetches all reports owned by the token's owner, in
// server-provided order.
func ListByUser(ctx context.Context, hc *http.Client, baseURL string) ([]types.Report, error) {
	var reports []types.Report
	url := fmt.Sprintf("%s/api/report/getAllByUser", baseURL)
	if err := doJSON(ctx, hc, http.MethodGet, url, nil, &reports, http.StatusOK, "list_reports"); err != nil {
		return nil, err
	}
	return reports, nil
}

// GetReport fetches one report by ID, including its status history.
func GetReport(ctx context.Context, hc *http.Client, baseURL, id string) (*types.Report, error) {
	var report types.Report
	url := fmt.Sprintf("%s/api/report/getOne/%s", baseURL, id)
	err := doJSON(ctx, hc, http.MethodGet, url, nil, &report, http.StatusOK, "get_report")
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, fmt.Errorf("report %s: %w", id, types.ErrNotFound)
		}
		return nil, err
	}
	return &report, nil
}

// UpdateReport replaces the mutable fields of a pending report.
func UpdateReport(ctx context.Context, hc *http.Client, baseURL, id string, patch types.ReportPatch) error {
	url := fmt.Sprintf("%s/api/report/update/%s", baseURL, id)
	return doJSON(ctx, hc, http.MethodPut, url, patch, nil, http.StatusOK, "update_report")
}

// SoftDeleteReport withdraws a report. The backend implements deletion
// as a flag update, hence the PUT verb.
func SoftDeleteReport(ctx context.Context, hc *http.Client, baseURL, id string) error {
	url := fmt.Sprintf("%s/api/report/delete/%s", baseURL, id)
	return doJSON(ctx, hc, http.MethodPut, url, nil, nil, http.StatusOK, "delete_report")
}
