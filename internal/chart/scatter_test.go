package chart

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/smithmum/final-project/internal/launch"
)

func TestPayloadScatterRangeFilter(t *testing.T) {
	// WHAT: Only rows with payload inside [lo, hi] survive; the 3000 kg row
	// is excluded by the [0, 1000] range.
	spec := PayloadScatter(threeRowDataset(), AllSites, 0, 1000)

	if spec.Kind != KindScatter {
		t.Fatalf("Kind = %q, want scatter", spec.Kind)
	}
	want := []Point{
		{Payload: 500, Class: 1, FlightNumber: 1, Site: "siteA"},
		{Payload: 1000, Class: 1, FlightNumber: 3, Site: "siteB"},
	}
	if diff := cmp.Diff(want, spec.Points); diff != "" {
		t.Errorf("Points mismatch (-want +got):\n%s", diff)
	}
}

func TestPayloadScatterInclusiveBounds(t *testing.T) {
	// Both endpoints are inside the range.
	spec := PayloadScatter(threeRowDataset(), AllSites, 500, 3000)
	if len(spec.Points) != 3 {
		t.Fatalf("points = %d, want 3", len(spec.Points))
	}
}

func TestPayloadScatterSiteFilter(t *testing.T) {
	spec := PayloadScatter(threeRowDataset(), "siteA", 0, 10000)
	for _, p := range spec.Points {
		if p.Site != "siteA" {
			t.Errorf("point from %q leaked through the siteA filter", p.Site)
		}
	}
	if len(spec.Points) != 2 {
		t.Fatalf("points = %d, want 2", len(spec.Points))
	}
}

func TestPayloadScatterEmptyResult(t *testing.T) {
	// WHAT: A range matching nothing is a valid empty chart, not an error.
	spec := PayloadScatter(threeRowDataset(), AllSites, 4000, 5000)
	if len(spec.Points) != 0 {
		t.Fatalf("points = %v, want none", spec.Points)
	}
	if spec.Title != "Payload vs. Launch Outcome" {
		t.Errorf("Title = %q", spec.Title)
	}
}

func TestPayloadScatterUnknownSite(t *testing.T) {
	spec := PayloadScatter(threeRowDataset(), "siteZ", 0, 10000)
	if len(spec.Points) != 0 {
		t.Fatalf("points = %v, want none", spec.Points)
	}
}

func TestPayloadScatterCategoryColoring(t *testing.T) {
	// WHAT: Points carry the booster category only when the dataset has one.
	// WHY: The frontend decides coloring from Category being set.
	withCat := launch.FromRecords([]launch.Record{
		{Site: "siteA", Payload: 500, Class: 1, BoosterCategory: "FT"},
	})
	spec := PayloadScatter(withCat, AllSites, 0, 1000)
	if spec.Points[0].Category != "FT" {
		t.Errorf("Category = %q, want FT", spec.Points[0].Category)
	}

	noCat := launch.FromRecords([]launch.Record{
		{Site: "siteA", Payload: 500, Class: 1},
	})
	spec = PayloadScatter(noCat, AllSites, 0, 1000)
	if spec.Points[0].Category != "" {
		t.Errorf("Category = %q, want empty for uncolored dataset", spec.Points[0].Category)
	}
}

func TestPayloadScatterWithinPieRowCount(t *testing.T) {
	// WHAT: Over the full payload span with the same site filter, the scatter
	// never has more points than the pie has underlying rows.
	ds := threeRowDataset()
	min, max := ds.PayloadBounds()

	for _, site := range []string{AllSites, "siteA", "siteB"} {
		scatter := PayloadScatter(ds, site, min, max)

		var pieRows float64
		for _, seg := range SuccessPie(ds, site).Segments {
			pieRows += seg.Value
		}
		if site == AllSites {
			// ALL pie counts successes only; the scatter over the full span
			// holds every row, so compare against the dataset size instead.
			pieRows = float64(ds.Len())
		}
		if float64(len(scatter.Points)) > pieRows {
			t.Errorf("site %q: scatter points %d > pie rows %v", site, len(scatter.Points), pieRows)
		}
	}
}

func TestPayloadScatterIdempotent(t *testing.T) {
	ds := threeRowDataset()
	first := PayloadScatter(ds, "siteA", 0, 10000)
	for i := 0; i < 3; i++ {
		if diff := cmp.Diff(first, PayloadScatter(ds, "siteA", 0, 10000)); diff != "" {
			t.Fatalf("call %d differs (-first +got):\n%s", i+2, diff)
		}
	}
}
