package dashboard

import (
	"math"

	"github.com/smithmum/final-project/internal/chart"
	"github.com/smithmum/final-project/internal/launch"
)

// Control and output identifiers wired through the dispatcher and the page.
const (
	ControlSite    = "site-dropdown"
	ControlPayload = "payload-slider"

	OutputPie     = "success-pie-chart"
	OutputScatter = "success-payload-scatter-chart"
)

// SiteOption is one dropdown entry.
type SiteOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Layout is the static description of the dashboard controls, built once
// from the dataset at startup.
type Layout struct {
	Title       string       `json:"title"`
	SiteOptions []SiteOption `json:"site_options"`
	PayloadMin  int          `json:"payload_min"`
	PayloadMax  int          `json:"payload_max"`
	PayloadStep int          `json:"payload_step"`
	DefaultSite string       `json:"default_site"`
}

// BuildLayout derives the control parameters from the dataset: the site
// dropdown gets the "All Sites" sentinel first, then the sorted site names;
// the payload slider spans the dataset bounds rounded outward to whole kg.
func BuildLayout(ds *launch.Dataset) Layout {
	l := Layout{
		Title:       "SpaceX Launch Records Dashboard",
		SiteOptions: []SiteOption{{Label: "All Sites", Value: chart.AllSites}},
		PayloadStep: 100,
		DefaultSite: chart.AllSites,
	}
	for _, site := range ds.Sites() {
		l.SiteOptions = append(l.SiteOptions, SiteOption{Label: site, Value: site})
	}

	min, max := ds.PayloadBounds()
	l.PayloadMin = int(math.Floor(min))
	l.PayloadMax = int(math.Ceil(max))
	return l
}
