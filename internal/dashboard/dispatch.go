package dashboard

import (
	"github.com/smithmum/final-project/internal/chart"
	"github.com/smithmum/final-project/internal/launch"
)

// Selection is the transient control state: a site (or the ALL sentinel)
// and a closed payload-mass interval with Lo ≤ Hi.
type Selection struct {
	Site string
	Lo   float64
	Hi   float64
}

// defaultSelection is the state before any user interaction: all sites,
// full payload range.
func defaultSelection(ds *launch.Dataset) Selection {
	lo, hi := ds.PayloadBounds()
	return Selection{Site: chart.AllSites, Lo: lo, Hi: hi}
}

// normalizeRange enforces the selection invariants against the dataset:
// swapped bounds are reordered and each bound is clamped into the dataset
// span. A range lying entirely outside the span collapses onto the nearest
// edge, keeping lo ≤ hi.
func normalizeRange(ds *launch.Dataset, lo, hi float64) (float64, float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	min, max := ds.PayloadBounds()
	lo = clamp(lo, min, max)
	hi = clamp(hi, min, max)
	return lo, hi
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Event is a control value change: the site dropdown carries Site, the
// payload slider carries Lo/Hi.
type Event struct {
	Control string
	Site    string
	Lo, Hi  float64
}

// RenderSink receives chart specifications for an output placeholder.
type RenderSink interface {
	Render(output string, spec chart.Spec)
}

// RenderFunc adapts a function to the RenderSink interface.
type RenderFunc func(output string, spec chart.Spec)

func (f RenderFunc) Render(output string, spec chart.Spec) { f(output, spec) }

type binding struct {
	control string
	output  string
	reduce  func(*launch.Dataset, Selection) chart.Spec
}

// Dispatcher maps control value-change events to the registered chart
// reducers and pushes resulting specifications into a RenderSink. It holds
// the current Selection, normalized on every event; reducers stay pure and
// see only the dataset and the selection.
type Dispatcher struct {
	ds       *launch.Dataset
	sink     RenderSink
	sel      Selection
	bindings []binding
}

func reducePie(ds *launch.Dataset, sel Selection) chart.Spec {
	return chart.SuccessPie(ds, sel.Site)
}

func reduceScatter(ds *launch.Dataset, sel Selection) chart.Spec {
	return chart.PayloadScatter(ds, sel.Site, sel.Lo, sel.Hi)
}

// NewDispatcher wires the dashboard's bindings: the site dropdown drives
// both charts, the payload slider drives the scatter only.
func NewDispatcher(ds *launch.Dataset, sink RenderSink) *Dispatcher {
	return &Dispatcher{
		ds:   ds,
		sink: sink,
		sel:  defaultSelection(ds),
		bindings: []binding{
			{ControlSite, OutputPie, reducePie},
			{ControlSite, OutputScatter, reduceScatter},
			{ControlPayload, OutputScatter, reduceScatter},
		},
	}
}

// Selection returns the current normalized selection.
func (d *Dispatcher) Selection() Selection { return d.sel }

// Dispatch applies a control event to the selection and invokes every
// binding registered for that control. Unknown controls render nothing.
func (d *Dispatcher) Dispatch(ev Event) {
	switch ev.Control {
	case ControlSite:
		d.sel.Site = ev.Site
		if d.sel.Site == "" {
			d.sel.Site = chart.AllSites
		}
	case ControlPayload:
		d.sel.Lo, d.sel.Hi = normalizeRange(d.ds, ev.Lo, ev.Hi)
	default:
		return
	}

	for _, b := range d.bindings {
		if b.control == ev.Control {
			d.sink.Render(b.output, b.reduce(d.ds, d.sel))
		}
	}
}

// RenderAll pushes every output once with the current selection. Used for
// the initial page render before any event arrives.
func (d *Dispatcher) RenderAll() {
	done := make(map[string]bool, len(d.bindings))
	for _, b := range d.bindings {
		if done[b.output] {
			continue
		}
		done[b.output] = true
		d.sink.Render(b.output, b.reduce(d.ds, d.sel))
	}
}
