package chart

import (
	"github.com/smithmum/final-project/internal/launch"
)

// PayloadScatter computes the payload-vs-outcome scatter for a site selection
// and a payload range. Bounds are inclusive on both ends; callers normalize
// lo ≤ hi before calling. Records are filtered to the range first, then to
// the site unless the selection is AllSites. Points keep dataset order. An
// empty point set is a valid empty chart.
func PayloadScatter(ds *launch.Dataset, site string, lo, hi float64) Spec {
	spec := Spec{Kind: KindScatter, Title: "Payload vs. Launch Outcome"}
	colored := ds.HasBoosterCategory()

	for _, r := range ds.Records() {
		if r.Payload < lo || r.Payload > hi {
			continue
		}
		if site != AllSites && r.Site != site {
			continue
		}
		p := Point{
			Payload:      r.Payload,
			Class:        r.Class,
			FlightNumber: r.FlightNumber,
			Site:         r.Site,
		}
		if colored {
			p.Category = r.BoosterCategory
		}
		spec.Points = append(spec.Points, p)
	}
	return spec
}
