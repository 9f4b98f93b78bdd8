package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/thdelmas/PPP-Price-Converter/internal/rates"
)

// DefaultInterval is used when a non-positive refresh interval is given.
const DefaultInterval = time.Hour

// RateRefresher fetches exchange rates bypassing the freshness window.
type RateRefresher interface {
	Refresh(ctx context.Context) rates.Result
}

// RateWorker periodically refreshes the cached exchange rates.
type RateWorker struct {
	refresher RateRefresher
	interval  time.Duration
}

// NewRateWorker creates a new RateWorker.
func NewRateWorker(refresher RateRefresher, interval time.Duration) *RateWorker {
	if interval <= 0 {
		slog.Warn("RateWorker: non-positive interval, using default", "interval", interval, "default", DefaultInterval)
		interval = DefaultInterval
	}
	return &RateWorker{
		refresher: refresher,
		interval:  interval,
	}
}

// Run starts the refresh loop. It blocks until the context is cancelled.
func (w *RateWorker) Run(ctx context.Context) {
	slog.Info("RateWorker: starting", "interval", w.interval)

	// Refresh immediately on startup
	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("RateWorker: shutting down")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *RateWorker) refresh(ctx context.Context) {
	res := w.refresher.Refresh(ctx)
	if res.Degraded() {
		slog.Error("RateWorker: refresh failed", "origin", res.Origin, "error", res.Err)
		return
	}
	slog.Info("RateWorker: refresh completed", "base", res.Snapshot.Base, "currencies", len(res.Snapshot.Rates))
}
