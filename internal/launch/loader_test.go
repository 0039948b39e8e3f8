package launch_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/smithmum/final-project/internal/launch"
)

func TestLoad(t *testing.T) {
	ds, err := launch.Load(filepath.Join("testdata", "launches.csv"))
	if err != nil {
		t.Fatal(err)
	}

	if got := ds.Len(); got != 5 {
		t.Fatalf("Len = %d, want 5", got)
	}

	wantSites := []string{"CCAFS LC-40", "KSC LC-39A", "VAFB SLC-4E"}
	if diff := cmp.Diff(wantSites, ds.Sites()); diff != "" {
		t.Errorf("Sites mismatch (-want +got):\n%s", diff)
	}

	min, max := ds.PayloadBounds()
	if min != 500 || max != 6100 {
		t.Errorf("PayloadBounds = (%v, %v), want (500, 6100)", min, max)
	}

	if !ds.HasBoosterCategory() {
		t.Error("HasBoosterCategory = false, want true")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := launch.Load(filepath.Join("testdata", "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadBadPayload(t *testing.T) {
	_, err := launch.Load(filepath.Join("testdata", "bad_payload.csv"))
	if !errors.Is(err, launch.ErrBadDataset) {
		t.Fatalf("expected ErrBadDataset, got: %v", err)
	}
}

func TestReadMissingRequiredColumn(t *testing.T) {
	// WHAT: A CSV without the payload column is rejected at load.
	// WHY: Startup must fail fast instead of serving a half-broken dashboard.
	in := "Flight Number,Launch Site,class\n1,CCAFS LC-40,1\n"
	_, err := launch.Read(strings.NewReader(in))
	if !errors.Is(err, launch.ErrBadDataset) {
		t.Fatalf("expected ErrBadDataset, got: %v", err)
	}
}

func TestReadHeaderOnly(t *testing.T) {
	in := "Flight Number,Launch Site,class,Payload Mass (kg)\n"
	_, err := launch.Read(strings.NewReader(in))
	if !errors.Is(err, launch.ErrBadDataset) {
		t.Fatalf("expected ErrBadDataset, got: %v", err)
	}
}

func TestReadBadClass(t *testing.T) {
	// WHAT: Outcome class outside {0,1} is rejected.
	// WHY: The scatter Y axis and the pie counts both assume a binary class.
	in := "Launch Site,class,Payload Mass (kg)\nCCAFS LC-40,2,500\n"
	_, err := launch.Read(strings.NewReader(in))
	if !errors.Is(err, launch.ErrBadDataset) {
		t.Fatalf("expected ErrBadDataset, got: %v", err)
	}
}

func TestReadOptionalColumnsAbsent(t *testing.T) {
	// Flight number and booster category may be missing entirely.
	in := "Launch Site,class,Payload Mass (kg)\nCCAFS LC-40,1,500\n"
	ds, err := launch.Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if ds.HasBoosterCategory() {
		t.Error("HasBoosterCategory = true for dataset without the column")
	}
	rec := ds.Records()[0]
	if rec.FlightNumber != 0 || rec.BoosterCategory != "" {
		t.Errorf("optional fields not zero: %+v", rec)
	}
}

func TestReadHeaderCaseInsensitive(t *testing.T) {
	in := "launch site,CLASS,Payload Mass (KG)\nCCAFS LC-40,1,500\n"
	ds, err := launch.Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if ds.Len() != 1 {
		t.Fatalf("Len = %d, want 1", ds.Len())
	}
}

func TestFromRecordsCopies(t *testing.T) {
	recs := []launch.Record{{Site: "siteA", Payload: 500, Class: 1}}
	ds := launch.FromRecords(recs)
	recs[0].Site = "mutated"
	if ds.Records()[0].Site != "siteA" {
		t.Error("Dataset shares backing array with caller slice")
	}
}
