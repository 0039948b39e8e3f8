package dashboard

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/smithmum/final-project/internal/chart"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en"><head><meta charset="UTF-8"><meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Layout.Title}}</title>
<script src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>
<style>
body{font-family:system-ui,sans-serif;max-width:1000px;margin:2rem auto;padding:0 1rem;color:#222;background:#fafafa}
h1{text-align:center;color:#503D36;font-size:2.2rem}
.controls{display:flex;flex-direction:column;gap:.8rem;margin:1rem auto;width:80%}
select{padding:.4rem;font-size:1rem}
.range-row{display:flex;align-items:center;gap:.6rem}
.range-row input[type=range]{flex:1}
.range-row span{min-width:5.5rem;font-variant-numeric:tabular-nums}
.chart{background:#fff;border:1px solid #e0e0e0;border-radius:6px;margin-bottom:1.5rem;min-height:420px}
p.hint{text-align:center;color:#666}
</style></head><body>
<h1>{{.Layout.Title}}</h1>
<div class="controls">
<select id="{{.ControlSite}}">
{{- range .Layout.SiteOptions}}
<option value="{{.Value}}">{{.Label}}</option>
{{- end}}
</select>
</div>
<div id="{{.OutputPie}}" class="chart"></div>
<p class="hint">Payload range (kg):</p>
<div class="controls">
<div class="range-row"><span>min <b id="lo-val">{{.Layout.PayloadMin}}</b></span>
<input type="range" id="payload-lo" min="{{.Layout.PayloadMin}}" max="{{.Layout.PayloadMax}}" step="{{.Layout.PayloadStep}}" value="{{.Layout.PayloadMin}}"></div>
<div class="range-row"><span>max <b id="hi-val">{{.Layout.PayloadMax}}</b></span>
<input type="range" id="payload-hi" min="{{.Layout.PayloadMin}}" max="{{.Layout.PayloadMax}}" step="{{.Layout.PayloadStep}}" value="{{.Layout.PayloadMax}}"></div>
</div>
<div id="{{.OutputScatter}}" class="chart"></div>
<script>
const initial = {{.InitialSpecs}};
const pieDiv = "{{.OutputPie}}", scatterDiv = "{{.OutputScatter}}";
const siteSel = document.getElementById("{{.ControlSite}}");
const loInput = document.getElementById("payload-lo");
const hiInput = document.getElementById("payload-hi");

function render(divId, spec) {
  if (spec.kind === "pie") {
    const segs = spec.segments || [];
    Plotly.newPlot(divId, [{type: "pie", labels: segs.map(s => s.label), values: segs.map(s => s.value)}],
      {title: spec.title});
    return;
  }
  const pts = spec.points || [];
  const byCat = new Map();
  for (const p of pts) {
    const k = p.category || "";
    if (!byCat.has(k)) byCat.set(k, []);
    byCat.get(k).push(p);
  }
  const traces = [];
  for (const [cat, ps] of byCat) {
    traces.push({
      type: "scatter", mode: "markers", name: cat,
      x: ps.map(p => p.payload), y: ps.map(p => p.class),
      text: ps.map(p => "Flight " + p.flight_number + " / " + p.site),
    });
  }
  Plotly.newPlot(divId, traces, {
    title: spec.title, showlegend: byCat.size > 1 || !byCat.has(""),
    xaxis: {title: "Payload Mass (kg)"}, yaxis: {title: "class", tickvals: [0, 1]},
  });
}

function payloadRange() {
  let lo = Number(loInput.value), hi = Number(hiInput.value);
  if (lo > hi) { const t = lo; lo = hi; hi = t; }
  document.getElementById("lo-val").textContent = lo;
  document.getElementById("hi-val").textContent = hi;
  return [lo, hi];
}

async function fetchSpec(url, divId) {
  const resp = await fetch(url);
  if (resp.ok) render(divId, await resp.json());
}

function updatePie() {
  fetchSpec("/api/charts/pie?site=" + encodeURIComponent(siteSel.value), pieDiv);
}
function updateScatter() {
  const [lo, hi] = payloadRange();
  fetchSpec("/api/charts/scatter?site=" + encodeURIComponent(siteSel.value) + "&lo=" + lo + "&hi=" + hi, scatterDiv);
}

siteSel.addEventListener("change", () => { updatePie(); updateScatter(); });
loInput.addEventListener("change", updateScatter);
hiInput.addEventListener("change", updateScatter);

render(pieDiv, initial[pieDiv]);
render(scatterDiv, initial[scatterDiv]);
</script>
</body></html>`))

type pageData struct {
	Layout        Layout
	ControlSite   string
	OutputPie     string
	OutputScatter string
	InitialSpecs  template.JS
}

// handlePage renders the dashboard with the default selection already
// applied server-side: the dispatcher pushes every chart once into a
// collecting sink and the specs are embedded in the page, so the first
// paint needs no API round-trip.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	specs := make(map[string]chart.Spec)
	d := NewDispatcher(s.ds, RenderFunc(func(output string, spec chart.Spec) {
		specs[output] = spec
	}))
	d.RenderAll()

	raw, err := json.Marshal(specs)
	if err != nil {
		s.logger.Error("page render failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	pageTmpl.Execute(w, pageData{
		Layout:        s.layout,
		ControlSite:   ControlSite,
		OutputPie:     OutputPie,
		OutputScatter: OutputScatter,
		InitialSpecs:  template.JS(raw),
	})
}
