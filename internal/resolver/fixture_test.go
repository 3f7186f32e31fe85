package resolver

import (
	"path/filepath"
	"testing"

	"leadsweep/internal/loader"
	"leadsweep/internal/logging"
)

// TestResolveSampleDocument runs the full pipeline against the checked-in
// sample document and pins the exact expected survivors.
func TestResolveSampleDocument(t *testing.T) {
	path := filepath.Join("..", "..", "testdata", "leads.json")

	leads, err := loader.Load(path, logging.NewDiscardLogger())
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	if len(leads) != 10 {
		t.Fatalf("fixture has %d leads, want 10", len(leads))
	}

	result := Resolve(leads)

	wantIDs := []string{
		"wabaj238238jdsnfsj23",
		"vug789238jdsnfsj23",
		"wuj08238jdsnfsj23",
		"belr28238jdsnfsj23",
		"jkj238238jdsnfsj23",
	}
	if len(result.Leads) != len(wantIDs) {
		t.Fatalf("kept %d leads, want %d", len(result.Leads), len(wantIDs))
	}
	for i, want := range wantIDs {
		if result.Leads[i].ID != want {
			t.Errorf("Leads[%d].ID = %q, want %q", i, result.Leads[i].ID, want)
		}
	}

	// The surviving jkj record must be the last-in-input one.
	last := result.Leads[len(result.Leads)-1]
	if last.Email != "bill@bar.com" {
		t.Errorf("surviving jkj record has email %q, want bill@bar.com", last.Email)
	}

	if result.Duplicates != 5 {
		t.Errorf("Duplicates = %d, want 5", result.Duplicates)
	}
	if result.Incomplete != 0 {
		t.Errorf("Incomplete = %d, want 0", result.Incomplete)
	}
	assertUnique(t, result.Leads)
}
