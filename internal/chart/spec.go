// Package chart computes renderer-agnostic chart specifications from the
// launch dataset. The two reducers are pure: they never mutate the dataset,
// never fail on a valid selection, and return a fresh Spec on every call.
// Selections that match nothing yield a titled spec with no data, which the
// frontend renders as an empty chart.
package chart

// AllSites is the sentinel selection meaning no site filter is applied.
const AllSites = "ALL"

// Kind identifies the chart family a Spec describes.
type Kind string

const (
	KindPie     Kind = "pie"
	KindScatter Kind = "scatter"
)

// Segment is one slice of a pie chart.
type Segment struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Point is one marker of a scatter chart. X is payload mass in kg, Y is the
// outcome class. Category colors the marker by booster version and is empty
// when the dataset has no booster categories. FlightNumber and Site are
// hover annotations.
type Point struct {
	Payload      float64 `json:"payload"`
	Class        int     `json:"class"`
	Category     string  `json:"category,omitempty"`
	FlightNumber int     `json:"flight_number"`
	Site         string  `json:"site"`
}

// Spec is an abstract description of a renderable chart. Exactly one of
// Segments or Points is populated, matching Kind.
type Spec struct {
	Kind     Kind      `json:"kind"`
	Title    string    `json:"title"`
	Segments []Segment `json:"segments,omitempty"`
	Points   []Point   `json:"points,omitempty"`
}
