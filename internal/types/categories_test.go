package types

import (
	"reflect"
	"testing"
)

func TestSubcategoriesFor_Table(t *testing.T) {
	t.Parallel()
	expected := map[Category][]string{
		CategoryWASA:         {"Water Supply", "Sewerage", "Drainage", "Water Quality", "Billing Issue"},
		CategoryIESCO:        {"Power Outage", "Billing Issue", "Meter Problem", "Line Fault", "Load Shedding"},
		CategoryMunicipality: {"Road Maintenance", "Street Lights", "Garbage Collection", "Park Maintenance", "Traffic Signal"},
		CategoryOthers:       {"General Complaint", "Public Safety", "Environment", "Noise Pollution", "Other"},
	}
	for cat, want := range expected {
		if got := SubcategoriesFor(cat); !reflect.DeepEqual(got, want) {
			t.Fatalf("%s: got %v", cat, got)
		}
	}
}

func TestSubcategoriesFor_UnknownAndCopy(t *testing.T) {
	t.Parallel()
	if got := SubcategoriesFor("Unknown"); got != nil {
		t.Fatalf("expected nil for unknown category, got %v", got)
	}

	// Returned slice is a copy; mutating it must not poison the table.
	subs := SubcategoriesFor(CategoryWASA)
	subs[0] = "tampered"
	if !ValidSubcategory(CategoryWASA, "Water Supply") {
		t.Fatalf("lookup table was mutated through returned slice")
	}
}

func TestReportGates(t *testing.T) {
	t.Parallel()
	assigned := &AssignedTo{ID: "o1", Name: "Inspector"}
	cases := []struct {
		name     string
		report   Report
		editable bool
		deletable bool
	}{
		{"pending unassigned", Report{CurrentStatus: StatusPending}, true, true},
		{"pending assigned", Report{CurrentStatus: StatusPending, AssignedTo: assigned}, false, true},
		{"forwarded", Report{CurrentStatus: StatusForwarded}, false, false},
		{"in-progress", Report{CurrentStatus: StatusInProgress}, false, false},
		{"resolved assigned", Report{CurrentStatus: StatusResolved, AssignedTo: assigned}, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.report.Editable(); got != c.editable {
				t.Fatalf("Editable() = %v, want %v", got, c.editable)
			}
			if got := c.report.Deletable(); got != c.deletable {
				t.Fatalf("Deletable() = %v, want %v", got, c.deletable)
			}
		})
	}
}

func TestReportGates_IgnoreServerHint(t *testing.T) {
	t.Parallel()
	// A stale server flag must not unlock a locked report.
	r := Report{CurrentStatus: StatusInProgress, CanEdit: true}
	if r.Editable() || r.Deletable() {
		t.Fatalf("server hint overrode the client-side gate")
	}
}
