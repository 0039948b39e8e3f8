// Command launchdash serves the launch-records dashboard over HTTP.
// It loads the dataset once at startup and fails fast when the file is
// missing or malformed; after that the process holds no mutable state
// beyond the render-event log.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	"github.com/smithmum/final-project/internal/config"
	"github.com/smithmum/final-project/internal/dashboard"
	"github.com/smithmum/final-project/internal/dbopen"
	"github.com/smithmum/final-project/internal/launch"
	"github.com/smithmum/final-project/internal/observability"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG"))
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ds, err := launch.Load(cfg.DatasetPath)
	if err != nil {
		slog.Error("load dataset", "error", err)
		os.Exit(1)
	}
	min, max := ds.PayloadBounds()
	slog.Info("dataset loaded",
		"path", cfg.DatasetPath,
		"records", ds.Len(),
		"sites", len(ds.Sites()),
		"payload_min", min,
		"payload_max", max,
	)

	eventsDB, err := dbopen.Open(cfg.EventsDB,
		dbopen.WithMkdirAll(),
		dbopen.WithSchema(observability.Schema),
	)
	if err != nil {
		slog.Error("events db", "error", err)
		os.Exit(1)
	}
	defer eventsDB.Close()
	recorder := observability.NewRecorder(eventsDB)

	// Retention: prune old render events at startup, then daily.
	if cfg.RetentionDays > 0 {
		if err := recorder.Cleanup(ctx, cfg.RetentionDays); err != nil {
			slog.Warn("events cleanup", "error", err)
		}
		go cleanupLoop(ctx, recorder, cfg.RetentionDays)
	}

	srv := dashboard.New(ds, logger, dashboard.WithRecorder(recorder))

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown", "error", err)
		}
	}()

	slog.Info("dashboard listening", "addr", cfg.Addr)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server", "error", err)
		os.Exit(1)
	}
	slog.Info("dashboard stopped")
}

// cleanupLoop re-runs retention cleanup once a day until ctx is cancelled.
func cleanupLoop(ctx context.Context, recorder *observability.Recorder, days int) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := recorder.Cleanup(ctx, days); err != nil {
				slog.Warn("events cleanup", "error", err)
			}
		}
	}
}
