package rates

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thdelmas/PPP-Price-Converter/internal/domain"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, err := s.Load(ctx); !errors.Is(err, domain.ErrCacheMiss) {
		t.Fatalf("err = %v, want ErrCacheMiss", err)
	}

	snap := cachedSnapshot(0)
	if err := s.Save(ctx, snap); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Base != "USD" || got.Rates["EUR"] != 0.9 {
		t.Errorf("loaded %+v", got)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "rates.json")
	s := NewFileStore(path)

	if _, err := s.Load(ctx); !errors.Is(err, domain.ErrCacheMiss) {
		t.Fatalf("err = %v, want ErrCacheMiss", err)
	}

	snap := cachedSnapshot(0)
	if err := s.Save(ctx, snap); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.Timestamp.Equal(snap.Timestamp) || got.LastUpdated != snap.LastUpdated || got.Rates["EUR"] != 0.9 {
		t.Errorf("loaded %+v, want %+v", got, snap)
	}

	// Saving again overwrites rather than merging.
	next := domain.ExchangeRateSnapshot{Base: "EUR", Rates: map[string]float64{"GBP": 0.85}, Timestamp: fixedNow.Add(time.Hour)}
	if err := s.Save(ctx, next); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, _ = s.Load(ctx)
	if got.Base != "EUR" || len(got.Rates) != 1 {
		t.Errorf("loaded %+v after overwrite", got)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileStore(path).Load(context.Background())
	if err == nil || errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("err = %v, want decode error", err)
	}
}
