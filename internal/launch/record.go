// Package launch holds the immutable launch-record dataset backing the
// dashboard. The dataset is loaded once at startup and never mutated;
// reducers share it by reference for the process lifetime.
package launch

import "sort"

// Outcome class values for Record.Class.
const (
	Failure = 0
	Success = 1
)

// Record is one launch attempt.
type Record struct {
	FlightNumber    int
	Site            string
	Payload         float64 // kg
	Class           int     // 1 success, 0 failure
	BoosterCategory string  // optional, empty when the dataset lacks the column
}

// Dataset is a read-only table of launch records with precomputed bounds.
type Dataset struct {
	records       []Record
	sites         []string
	minPayload    float64
	maxPayload    float64
	hasBoosterCat bool
}

// FromRecords builds a Dataset from already-parsed records.
// The slice is copied, so later mutation by the caller is harmless.
func FromRecords(records []Record) *Dataset {
	ds := &Dataset{records: append([]Record(nil), records...)}
	ds.index()
	return ds
}

func (ds *Dataset) index() {
	seen := make(map[string]bool)
	for i, r := range ds.records {
		if !seen[r.Site] {
			seen[r.Site] = true
			ds.sites = append(ds.sites, r.Site)
		}
		if r.BoosterCategory != "" {
			ds.hasBoosterCat = true
		}
		if i == 0 || r.Payload < ds.minPayload {
			ds.minPayload = r.Payload
		}
		if i == 0 || r.Payload > ds.maxPayload {
			ds.maxPayload = r.Payload
		}
	}
	sort.Strings(ds.sites)
}

// Len returns the number of records.
func (ds *Dataset) Len() int { return len(ds.records) }

// Records returns the records for iteration. Callers must not modify the
// returned slice.
func (ds *Dataset) Records() []Record { return ds.records }

// Sites returns the sorted distinct site names.
func (ds *Dataset) Sites() []string { return ds.sites }

// HasSite reports whether site appears in the dataset.
func (ds *Dataset) HasSite(site string) bool {
	for _, s := range ds.sites {
		if s == site {
			return true
		}
	}
	return false
}

// PayloadBounds returns the minimum and maximum payload mass across all
// records. Both are zero for an empty dataset.
func (ds *Dataset) PayloadBounds() (min, max float64) {
	return ds.minPayload, ds.maxPayload
}

// HasBoosterCategory reports whether any record carries a booster version
// category. When false the scatter reducer leaves points uncolored.
func (ds *Dataset) HasBoosterCategory() bool { return ds.hasBoosterCat }
