package chart

import (
	"github.com/smithmum/final-project/internal/launch"
)

// SuccessPie computes the launch-outcome pie for a site selection.
//
// For AllSites the chart shows successful launches grouped by site: one
// segment per site with at least one success, ordered by site name. For a
// specific site it shows that site's Success/Failure counts, Success first,
// zero-count outcomes omitted. A site absent from the dataset produces a
// spec with no segments rather than an error.
func SuccessPie(ds *launch.Dataset, site string) Spec {
	if site == AllSites {
		return successBySite(ds)
	}
	return outcomesForSite(ds, site)
}

func successBySite(ds *launch.Dataset) Spec {
	counts := make(map[string]float64)
	for _, r := range ds.Records() {
		if r.Class == launch.Success {
			counts[r.Site]++
		}
	}

	spec := Spec{Kind: KindPie, Title: "Total Successful Launches by Site"}
	for _, site := range ds.Sites() {
		if n := counts[site]; n > 0 {
			spec.Segments = append(spec.Segments, Segment{Label: site, Value: n})
		}
	}
	return spec
}

func outcomesForSite(ds *launch.Dataset, site string) Spec {
	var success, failure float64
	for _, r := range ds.Records() {
		if r.Site != site {
			continue
		}
		if r.Class == launch.Success {
			success++
		} else {
			failure++
		}
	}

	spec := Spec{Kind: KindPie, Title: "Launch Outcomes for " + site}
	if success > 0 {
		spec.Segments = append(spec.Segments, Segment{Label: "Success", Value: success})
	}
	if failure > 0 {
		spec.Segments = append(spec.Segments, Segment{Label: "Failure", Value: failure})
	}
	return spec
}
