// Package observability records chart renders into a SQLite events database
// and answers the /api/stats aggregation. A failing events store never blocks
// a chart request: insert errors are logged and dropped.
package observability

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/smithmum/final-project/internal/idgen"
)

// Schema creates the render-event table. Pass to dbopen.WithSchema.
const Schema = `
CREATE TABLE IF NOT EXISTS chart_render_events (
	event_id    TEXT PRIMARY KEY,
	chart_kind  TEXT NOT NULL,
	site        TEXT NOT NULL,
	payload_lo  REAL NOT NULL,
	payload_hi  REAL NOT NULL,
	data_points INTEGER NOT NULL,
	elapsed_us  INTEGER NOT NULL,
	created_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_render_events_kind ON chart_render_events(chart_kind);
CREATE INDEX IF NOT EXISTS idx_render_events_created ON chart_render_events(created_at);
`

// RenderEvent describes one chart computation.
type RenderEvent struct {
	ChartKind  string
	Site       string
	PayloadLo  float64
	PayloadHi  float64
	DataPoints int
	Elapsed    time.Duration
}

// Recorder writes render events and manages retention cleanup.
type Recorder struct {
	db    *sql.DB
	newID idgen.Generator
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithEventIDGenerator sets a custom ID generator for event IDs.
func WithEventIDGenerator(gen idgen.Generator) RecorderOption {
	return func(r *Recorder) { r.newID = gen }
}

// NewRecorder creates a Recorder backed by the given events database.
func NewRecorder(db *sql.DB, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		db:    db,
		newID: idgen.Prefixed("evt_", idgen.Default),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// RecordRender stores a render event. Non-blocking: errors are logged via
// slog but do not propagate.
func (r *Recorder) RecordRender(ctx context.Context, ev RenderEvent) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO chart_render_events (
			event_id, chart_kind, site, payload_lo, payload_hi,
			data_points, elapsed_us, created_at
		) VALUES (?,?,?,?,?,?,?,?)`,
		r.newID(), ev.ChartKind, ev.Site, ev.PayloadLo, ev.PayloadHi,
		ev.DataPoints, ev.Elapsed.Microseconds(), time.Now().Unix())
	if err != nil {
		slog.Error("render event log failed", "error", err, "chart_kind", ev.ChartKind)
	}
}

// KindStats aggregates render events of one chart kind.
type KindStats struct {
	ChartKind string `json:"chart_kind"`
	Renders   int64  `json:"renders"`
	AvgPoints int64  `json:"avg_points"`
	LastAt    int64  `json:"last_at"` // unix seconds, 0 when never rendered
}

// Stats returns per-kind render aggregates, ordered by kind.
func (r *Recorder) Stats(ctx context.Context) ([]KindStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT chart_kind, COUNT(*), CAST(AVG(data_points) AS INTEGER), MAX(created_at)
		FROM chart_render_events
		GROUP BY chart_kind
		ORDER BY chart_kind`)
	if err != nil {
		return nil, fmt.Errorf("observability: stats: %w", err)
	}
	defer rows.Close()

	stats := []KindStats{}
	for rows.Next() {
		var s KindStats
		if err := rows.Scan(&s.ChartKind, &s.Renders, &s.AvgPoints, &s.LastAt); err != nil {
			return nil, fmt.Errorf("observability: stats scan: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// Cleanup deletes events older than the retention threshold. Zero or
// negative days means no cleanup.
func (r *Recorder) Cleanup(ctx context.Context, days int) error {
	if days <= 0 {
		return nil
	}
	cutoff := time.Now().Unix() - int64(days)*86400
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM chart_render_events WHERE created_at < ?", cutoff); err != nil {
		return fmt.Errorf("observability: cleanup: %w", err)
	}
	return nil
}
