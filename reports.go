package civic

import (
	"context"
	"sync"

	"github.com/emmayyque/community-issue-tracker-app/internal/api"
	"github.com/emmayyque/community-issue-tracker-app/internal/latest"
	"github.com/emmayyque/community-issue-tracker-app/internal/types"
)

// Reports is the client-side view of the citizen's submitted reports.
// Server data is the truth for report contents and status; this layer
// adds the local mutation gates (Editable/Deletable) and keeps a
// consistent list across submit, edit and delete.
type Reports struct {
	c *Client

	mu   sync.Mutex
	list []types.Report

	guard latest.Guard
}

// NewReports returns an empty report manager for the current session's
// user. The list fills on the first ListMine call.
func NewReports(c *Client) *Reports {
	return &Reports{c: c}
}

// ListMine fetches all reports owned by the authenticated user, in
// server-provided order. If a newer ListMine began while this one was
// in flight, the stale response is discarded and the newer view is
// returned instead.
func (r *Reports) ListMine(ctx context.Context) ([]types.Report, error) {
	seq := r.guard.Begin()

	reports, err := api.ListByUser(ctx, r.c.http, r.c.baseURL)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.guard.Current(seq) {
		staleResponsesTotal.WithLabelValues("list_reports").Inc()
		return cloneReports(r.list), nil
	}
	r.list = reports
	return cloneReports(r.list), nil
}

// Cached returns the last fetched list without a network call.
func (r *Reports) Cached() []types.Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneReports(r.list)
}

// FilterByStatus returns the subset of reports matching status, in the
// original order. StatusAll matches everything. Pure function; the
// input slice is never modified.
func FilterByStatus(reports []types.Report, status types.Status) []types.Report {
	if status == types.StatusAll {
		return cloneReports(reports)
	}
	out := make([]types.Report, 0, len(reports))
	for _, rep := range reports {
		if rep.CurrentStatus == status {
			out = append(out, rep)
		}
	}
	return out
}

// Submit validates a draft locally and, only if every field passes,
// sends it to the backend. Validation failures come back as
// ValidationErrors without any network traffic. An omitted priority
// defaults to Medium, matching the reporting form.
func (r *Reports) Submit(ctx context.Context, draft types.ReportDraft) (*types.Report, error) {
	if draft.Priority == "" {
		draft.Priority = types.PriorityMedium
	}
	if err := types.ValidateDraft(draft); err != nil {
		return nil, err
	}

	report, err := api.AddReport(ctx, r.c.http, r.c.baseURL, draft)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.list = append(r.list, *report)
	r.mu.Unlock()
	return report, nil
}

// Edit applies patch to an existing report. The edit is rejected
// locally, with no network call, when the report is no longer editable
// or the patch fails field validation. Status and history are never
// touched by an edit; those only change server-side.
func (r *Reports) Edit(ctx context.Context, report types.Report, patch types.ReportPatch) (*types.Report, error) {
	if !report.Editable() {
		return nil, ErrEditNotAllowed
	}
	if patch.Priority == "" {
		patch.Priority = report.Priority
	}
	if err := types.ValidatePatch(report.Category, patch); err != nil {
		return nil, err
	}

	if err := api.UpdateReport(ctx, r.c.http, r.c.baseURL, report.ID, patch); err != nil {
		return nil, err
	}

	updated := report
	updated.Title = patch.Title
	updated.Description = patch.Description
	updated.SubCategory = patch.SubCategory
	updated.Priority = patch.Priority

	r.mu.Lock()
	for i := range r.list {
		if r.list[i].ID == updated.ID {
			r.list[i] = updated
			break
		}
	}
	r.mu.Unlock()
	return &updated, nil
}

// Delete withdraws a report. Rejected locally when the report is no
// longer deletable; on success the report disappears from the local
// list. The backend soft-deletes, so the ID may still resolve for
// officials.
func (r *Reports) Delete(ctx context.Context, report types.Report) error {
	if !report.Deletable() {
		return ErrDeleteNotAllowed
	}

	if err := api.SoftDeleteReport(ctx, r.c.http, r.c.baseURL, report.ID); err != nil {
		return err
	}

	r.mu.Lock()
	for i := range r.list {
		if r.list[i].ID == report.ID {
			r.list = append(r.list[:i], r.list[i+1:]...)
			break
		}
	}
	r.mu.Unlock()
	return nil
}

// Get fetches one report by ID, including its status history.
func (r *Reports) Get(ctx context.Context, reportID string) (*types.Report, error) {
	return api.GetReport(ctx, r.c.http, r.c.baseURL, reportID)
}

// StatusHistory fetches the ordered audit trail for a report. A report
// with no updates yet yields an empty, non-nil slice.
func (r *Reports) StatusHistory(ctx context.Context, reportID string) ([]types.StatusUpdate, error) {
	report, err := api.GetReport(ctx, r.c.http, r.c.baseURL, reportID)
	if err != nil {
		return nil, err
	}
	if report.Status == nil {
		return []types.StatusUpdate{}, nil
	}
	return report.Status, nil
}

func cloneReports(in []types.Report) []types.Report {
	out := make([]types.Report, len(in))
	copy(out, in)
	return out
}
