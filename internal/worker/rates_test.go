package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thdelmas/PPP-Price-Converter/internal/rates"
)

type mockRefresher struct {
	callCount atomic.Int32
	result    rates.Result
}

func (m *mockRefresher) Refresh(_ context.Context) rates.Result {
	m.callCount.Add(1)
	return m.result
}

func TestRateWorkerRunsAndShutdown(t *testing.T) {
	mock := &mockRefresher{result: rates.Result{Origin: rates.OriginNetwork}}
	w := NewRateWorker(mock, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	w.Run(ctx)

	// Should have run at least the initial refresh + some ticks
	if got := mock.callCount.Load(); got < 2 {
		t.Errorf("call count = %d, want >= 2", got)
	}
}

func TestRateWorkerKeepsRunningAfterFailure(t *testing.T) {
	mock := &mockRefresher{result: rates.Result{Origin: rates.OriginStale, Err: errors.New("network down")}}
	w := NewRateWorker(mock, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	w.Run(ctx)

	if got := mock.callCount.Load(); got < 2 {
		t.Errorf("call count = %d, want >= 2 despite failures", got)
	}
}

func TestRateWorkerNonPositiveInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		mock := &mockRefresher{result: rates.Result{Origin: rates.OriginNetwork}}
		w := NewRateWorker(mock, interval)
		if w.interval != DefaultInterval {
			t.Errorf("interval %v: got %v, want %v", interval, w.interval, DefaultInterval)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		w.Run(ctx)

		if got := mock.callCount.Load(); got != 1 {
			t.Errorf("interval %v: call count = %d, want 1", interval, got)
		}
	}
}
