package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/smithmum/final-project/internal/chart"
	"github.com/smithmum/final-project/internal/observability"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLayout(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.layout)
}

// handlePie serves the outcome pie for ?site= (ALL when absent). Unknown
// sites are not an error: the reducer returns an empty spec.
func (s *Server) handlePie(w http.ResponseWriter, r *http.Request) {
	site := r.URL.Query().Get("site")
	if site == "" {
		site = chart.AllSites
	}

	start := time.Now()
	spec := chart.SuccessPie(s.ds, site)

	lo, hi := s.ds.PayloadBounds()
	s.record(r.Context(), spec, Selection{Site: site, Lo: lo, Hi: hi}, len(spec.Segments), time.Since(start))
	writeJSON(w, http.StatusOK, spec)
}

// handleScatter serves the payload scatter for ?site=&lo=&hi=. Absent bounds
// default to the dataset span; malformed numbers are a 400; swapped or
// out-of-bounds values are normalized, matching the slider contract.
func (s *Server) handleScatter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	site := q.Get("site")
	if site == "" {
		site = chart.AllSites
	}

	lo, hi := s.ds.PayloadBounds()
	var err error
	if v := q.Get("lo"); v != "" {
		if lo, err = strconv.ParseFloat(v, 64); err != nil {
			writeError(w, http.StatusBadRequest, "lo must be a number")
			return
		}
	}
	if v := q.Get("hi"); v != "" {
		if hi, err = strconv.ParseFloat(v, 64); err != nil {
			writeError(w, http.StatusBadRequest, "hi must be a number")
			return
		}
	}
	lo, hi = normalizeRange(s.ds, lo, hi)

	start := time.Now()
	spec := chart.PayloadScatter(s.ds, site, lo, hi)

	s.record(r.Context(), spec, Selection{Site: site, Lo: lo, Hi: hi}, len(spec.Points), time.Since(start))
	writeJSON(w, http.StatusOK, spec)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.events == nil {
		writeJSON(w, http.StatusOK, []observability.KindStats{})
		return
	}
	stats, err := s.events.Stats(r.Context())
	if err != nil {
		s.logger.Error("stats query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) record(ctx context.Context, spec chart.Spec, sel Selection, points int, elapsed time.Duration) {
	if s.events == nil {
		return
	}
	s.events.RecordRender(ctx, observability.RenderEvent{
		ChartKind:  string(spec.Kind),
		Site:       sel.Site,
		PayloadLo:  sel.Lo,
		PayloadHi:  sel.Hi,
		DataPoints: points,
		Elapsed:    elapsed,
	})
}
