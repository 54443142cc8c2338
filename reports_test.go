package civic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/gorilla/mux"
)

// reportBackend fakes the report endpoints over an in-memory slice.
type reportBackend struct {
	reports []Report
	calls   atomic.Int32
	nextID  int
}

func (b *reportBackend) router() *mux.Router {
	r := mux.NewRouter()
	count := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			b.calls.Add(1)
			next(w, req)
		}
	}

	r.HandleFunc("/api/report/getAllByUser", count(func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode(b.reports)
	})).Methods(http.MethodGet)

	r.HandleFunc("/api/report/add", count(func(w http.ResponseWriter, req *http.Request) {
		var draft ReportDraft
		_ = json.NewDecoder(req.Body).Decode(&draft)
		b.nextID++
		report := Report{
			ID:            "r" + strconv.Itoa(b.nextID),
			Title:         draft.Title,
			Description:   draft.Description,
			Category:      draft.Category,
			SubCategory:   draft.SubCategory,
			Priority:      draft.Priority,
			CurrentStatus: StatusPending,
		}
		b.reports = append(b.reports, report)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(report)
	})).Methods(http.MethodPost)

	r.HandleFunc("/api/report/getOne/{id}", count(func(w http.ResponseWriter, req *http.Request) {
		id := mux.Vars(req)["id"]
		for _, rep := range b.reports {
			if rep.ID == id {
				_ = json.NewEncoder(w).Encode(rep)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})).Methods(http.MethodGet)

	r.HandleFunc("/api/report/update/{id}", count(func(w http.ResponseWriter, req *http.Request) {
		id := mux.Vars(req)["id"]
		var patch ReportPatch
		_ = json.NewDecoder(req.Body).Decode(&patch)
		for i := range b.reports {
			if b.reports[i].ID == id {
				b.reports[i].Title = patch.Title
				b.reports[i].Description = patch.Description
				b.reports[i].SubCategory = patch.SubCategory
				b.reports[i].Priority = patch.Priority
				w.WriteHeader(http.StatusOK)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})).Methods(http.MethodPut)

	r.HandleFunc("/api/report/delete/{id}", count(func(w http.ResponseWriter, req *http.Request) {
		id := mux.Vars(req)["id"]
		for i := range b.reports {
			if b.reports[i].ID == id {
				b.reports = append(b.reports[:i], b.reports[i+1:]...)
				w.WriteHeader(http.StatusOK)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})).Methods(http.MethodPut)

	return r
}

func pendingReport(id, title string) Report {
	return Report{
		ID:            id,
		Title:         title,
		Description:   "The drainage near the park overflows every evening and floods the walkway.",
		Category:      CategoryWASA,
		SubCategory:   "Drainage",
		Priority:      PriorityMedium,
		CurrentStatus: StatusPending,
	}
}

func TestReports_ListMinePreservesServerOrder(t *testing.T) {
	t.Parallel()
	backend := &reportBackend{reports: []Report{
		pendingReport("r1", "First report about drainage"),
		pendingReport("r2", "Second report about drainage"),
		pendingReport("r3", "Third report about drainage"),
	}}
	c, _ := newTestClient(t, backend.router())

	reports := NewReports(c)
	list, err := reports.ListMine(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 || list[0].ID != "r1" || list[1].ID != "r2" || list[2].ID != "r3" {
		t.Fatalf("server order not preserved: %+v", list)
	}
}

func TestFilterByStatus_AllIsIdentity(t *testing.T) {
	t.Parallel()
	input := []Report{
		pendingReport("r1", "First report about drainage"),
		{ID: "r2", CurrentStatus: StatusResolved},
		{ID: "r3", CurrentStatus: StatusInProgress},
	}
	got := FilterByStatus(input, StatusAll)
	if len(got) != len(input) {
		t.Fatalf("expected %d reports, got %d", len(input), len(got))
	}
	for i := range input {
		if got[i].ID != input[i].ID {
			t.Fatalf("order changed at %d: %s != %s", i, got[i].ID, input[i].ID)
		}
	}
}

func TestFilterByStatus_Subset(t *testing.T) {
	t.Parallel()
	input := []Report{
		{ID: "r1", CurrentStatus: StatusPending},
		{ID: "r2", CurrentStatus: StatusResolved},
		{ID: "r3", CurrentStatus: StatusPending},
	}
	got := FilterByStatus(input, StatusPending)
	if len(got) != 2 || got[0].ID != "r1" || got[1].ID != "r3" {
		t.Fatalf("unexpected subset %+v", got)
	}
	// Pure function: input untouched.
	if len(input) != 3 {
		t.Fatalf("input slice was modified")
	}
}

func TestReports_SubmitShortTitleNoNetwork(t *testing.T) {
	t.Parallel()
	backend := &reportBackend{}
	c, _ := newTestClient(t, backend.router())

	reports := NewReports(c)
	_, err := reports.Submit(context.Background(), ReportDraft{
		Title:       "Pipe",
		Description: "A long enough description of the problem with the pipe.",
		Category:    CategoryWASA,
		SubCategory: "Water Supply",
	})
	verrs, ok := AsValidation(err)
	if !ok {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if verrs.ByField("title") == "" {
		t.Fatalf("expected a title-specific error, got %v", verrs)
	}
	if got := backend.calls.Load(); got != 0 {
		t.Fatalf("validation failure must not reach the network, saw %d calls", got)
	}
}

func TestReports_SubmitCrossCategorySubcategory(t *testing.T) {
	t.Parallel()
	backend := &reportBackend{}
	c, _ := newTestClient(t, backend.router())

	reports := NewReports(c)
	_, err := reports.Submit(context.Background(), ReportDraft{
		Title:       "No electricity in sector G-9",
		Description: "Complete power outage since last night across the whole sector.",
		Category:    CategoryWASA,
		SubCategory: "Power Outage", // IESCO subcategory under WASA
	})
	verrs, ok := AsValidation(err)
	if !ok {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if verrs.ByField("subCategory") == "" {
		t.Fatalf("expected a subcategory error, got %v", verrs)
	}
	if got := backend.calls.Load(); got != 0 {
		t.Fatalf("validation failure must not reach the network, saw %d calls", got)
	}
}

func TestReports_SubmitDefaultsPriorityAndAppends(t *testing.T) {
	t.Parallel()
	backend := &reportBackend{}
	c, _ := newTestClient(t, backend.router())

	reports := NewReports(c)
	report, err := reports.Submit(context.Background(), ReportDraft{
		Title:       "Streetlight out on Main Boulevard",
		Description: "The light opposite house 42 has been dark for over a week now.",
		Category:    CategoryMunicipality,
		SubCategory: "Street Lights",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if report.Priority != PriorityMedium {
		t.Fatalf("expected default Medium priority, got %s", report.Priority)
	}
	if cached := reports.Cached(); len(cached) != 1 || cached[0].ID != report.ID {
		t.Fatalf("submitted report missing from local list: %+v", cached)
	}
}

func TestReports_EditInProgressRejectedLocally(t *testing.T) {
	t.Parallel()
	backend := &reportBackend{}
	c, _ := newTestClient(t, backend.router())

	report := pendingReport("r1", "Drainage overflow near park")
	report.CurrentStatus = StatusInProgress

	reports := NewReports(c)
	_, err := reports.Edit(context.Background(), report, ReportPatch{
		Title:       "Completely valid new title",
		Description: "A completely valid replacement description with enough detail.",
		SubCategory: "Drainage",
	})
	if !errors.Is(err, ErrEditNotAllowed) {
		t.Fatalf("expected ErrEditNotAllowed, got %v", err)
	}
	if got := backend.calls.Load(); got != 0 {
		t.Fatalf("locally rejected edit must not reach the network, saw %d calls", got)
	}
}

func TestReports_EditAssignedRejectedLocally(t *testing.T) {
	t.Parallel()
	backend := &reportBackend{}
	c, _ := newTestClient(t, backend.router())

	report := pendingReport("r1", "Drainage overflow near park")
	report.AssignedTo = &AssignedTo{ID: "o1", Name: "Inspector"}
	// A stale server flag must not matter.
	report.CanEdit = true

	reports := NewReports(c)
	_, err := reports.Edit(context.Background(), report, ReportPatch{
		Title:       "Completely valid new title",
		Description: "A completely valid replacement description with enough detail.",
		SubCategory: "Drainage",
	})
	if !errors.Is(err, ErrEditNotAllowed) {
		t.Fatalf("expected ErrEditNotAllowed, got %v", err)
	}
	if got := backend.calls.Load(); got != 0 {
		t.Fatalf("locally rejected edit must not reach the network, saw %d calls", got)
	}
}

func TestReports_EditKeepsStatusAndHistory(t *testing.T) {
	t.Parallel()
	original := pendingReport("r1", "Drainage overflow near park")
	original.Status = []StatusUpdate{{StatusType: StatusPending, Description: "Report received"}}
	backend := &reportBackend{reports: []Report{original}}
	c, _ := newTestClient(t, backend.router())

	reports := NewReports(c)
	if _, err := reports.ListMine(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}

	updated, err := reports.Edit(context.Background(), original, ReportPatch{
		Title:       "Drainage overflow near the east gate",
		Description: "The drainage near the east gate overflows every evening and floods the walkway.",
		SubCategory: "Sewerage",
		Priority:    PriorityHigh,
	})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if updated.Title != "Drainage overflow near the east gate" || updated.SubCategory != "Sewerage" {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.CurrentStatus != StatusPending || len(updated.Status) != 1 {
		t.Fatalf("edit must not touch status or history: %+v", updated)
	}
}

func TestReports_DeletePrunesLocalList(t *testing.T) {
	t.Parallel()
	backend := &reportBackend{reports: []Report{
		pendingReport("r1", "First report about drainage"),
		pendingReport("r2", "Second report about drainage"),
	}}
	c, _ := newTestClient(t, backend.router())

	reports := NewReports(c)
	list, err := reports.ListMine(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if err := reports.Delete(context.Background(), list[0]); err != nil {
		t.Fatalf("delete: %v", err)
	}
	cached := reports.Cached()
	if len(cached) != 1 || cached[0].ID != "r2" {
		t.Fatalf("deleted report still in local list: %+v", cached)
	}
}

func TestReports_DeleteNonPendingRejectedLocally(t *testing.T) {
	t.Parallel()
	backend := &reportBackend{}
	c, _ := newTestClient(t, backend.router())

	report := pendingReport("r1", "Drainage overflow near park")
	report.CurrentStatus = StatusForwarded

	reports := NewReports(c)
	err := reports.Delete(context.Background(), report)
	if !errors.Is(err, ErrDeleteNotAllowed) {
		t.Fatalf("expected ErrDeleteNotAllowed, got %v", err)
	}
	if got := backend.calls.Load(); got != 0 {
		t.Fatalf("locally rejected delete must not reach the network, saw %d calls", got)
	}
}

func TestReports_StatusHistoryToleratesEmpty(t *testing.T) {
	t.Parallel()
	fresh := pendingReport("r1", "Brand new report, no updates")
	fresh.Status = nil
	backend := &reportBackend{reports: []Report{fresh}}
	c, _ := newTestClient(t, backend.router())

	reports := NewReports(c)
	history, err := reports.StatusHistory(context.Background(), "r1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if history == nil || len(history) != 0 {
		t.Fatalf("expected empty non-nil history, got %#v", history)
	}
}

func TestReports_StatusHistoryNotFound(t *testing.T) {
	t.Parallel()
	backend := &reportBackend{}
	c, _ := newTestClient(t, backend.router())

	reports := NewReports(c)
	_, err := reports.StatusHistory(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
