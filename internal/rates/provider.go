// Package rates fetches, caches and applies currency exchange rates.
package rates

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thdelmas/PPP-Price-Converter/internal/domain"
)

// DefaultTTL is how long a cached snapshot is served without a network call.
const DefaultTTL = time.Hour

// Origin tells where a snapshot came from.
type Origin string

const (
	OriginCache   Origin = "cache"
	OriginNetwork Origin = "network"
	OriginStale   Origin = "stale-cache"
	OriginStatic  Origin = "static"
)

// Fetcher retrieves current rates from a remote source.
type Fetcher interface {
	FetchLatest(ctx context.Context, base string) (Payload, error)
}

// Result is a usable snapshot plus the soft failure absorbed to produce it, if any.
type Result struct {
	Snapshot domain.ExchangeRateSnapshot
	Origin   Origin
	Err      error
}

// Degraded reports whether the snapshot was served after a failed fetch.
func (r Result) Degraded() bool {
	return r.Origin == OriginStale || r.Origin == OriginStatic
}

// Provider resolves exchange rates through cache, network and fallbacks.
type Provider struct {
	fetcher Fetcher
	store   Store
	base    string
	ttl     time.Duration
	now     func() time.Time
}

// Option configures a Provider.
type Option func(*Provider)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) { p.now = now }
}

// WithTTL sets the freshness window.
func WithTTL(ttl time.Duration) Option {
	return func(p *Provider) { p.ttl = ttl }
}

// NewProvider creates a Provider fetching rates relative to base.
func NewProvider(fetcher Fetcher, store Store, base string, opts ...Option) *Provider {
	if fetcher == nil {
		panic("rates.NewProvider: fetcher is nil")
	}
	if store == nil {
		panic("rates.NewProvider: store is nil")
	}
	p := &Provider{
		fetcher: fetcher,
		store:   store,
		base:    base,
		ttl:     DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FetchExchangeRates returns a fresh cached snapshot when available, otherwise
// fetches one. On fetch failure it falls back to the stale cache, then to the
// static table. It never fails.
func (p *Provider) FetchExchangeRates(ctx context.Context) Result {
	now := p.now()

	cached, hasCache := p.loadCache(ctx)
	if hasCache && cached.Age(now) < p.ttl {
		slog.Debug("using cached exchange rates", "age", cached.Age(now).Round(time.Second))
		return Result{Snapshot: cached, Origin: OriginCache}
	}

	return p.refresh(ctx, now, cached, hasCache)
}

// Refresh skips the freshness check and fetches from the network, applying
// the same fallbacks as FetchExchangeRates.
func (p *Provider) Refresh(ctx context.Context) Result {
	cached, hasCache := p.loadCache(ctx)
	return p.refresh(ctx, p.now(), cached, hasCache)
}

func (p *Provider) refresh(ctx context.Context, now time.Time, cached domain.ExchangeRateSnapshot, hasCache bool) Result {
	snap, err := p.fetch(ctx, now)
	if err == nil {
		if err := p.store.Save(ctx, snap); err != nil {
			slog.Warn("failed to cache exchange rates", "error", err)
		}
		slog.Info("fetched exchange rates", "base", snap.Base, "currencies", len(snap.Rates), "date", snap.LastUpdated)
		return Result{Snapshot: snap, Origin: OriginNetwork}
	}

	if hasCache {
		slog.Warn("exchange rate fetch failed, using stale cache",
			"error", err, "age", cached.Age(now).Round(time.Second))
		return Result{Snapshot: cached, Origin: OriginStale, Err: err}
	}

	slog.Warn("exchange rate fetch failed, using static rates", "error", err)
	return Result{Snapshot: StaticSnapshot(now), Origin: OriginStatic, Err: err}
}

// Fetcher errors of any kind are returned as-is; the caller decides the fallback.
func (p *Provider) fetch(ctx context.Context, now time.Time) (domain.ExchangeRateSnapshot, error) {
	payload, err := p.fetcher.FetchLatest(ctx, p.base)
	if err != nil {
		return domain.ExchangeRateSnapshot{}, fmt.Errorf("fetching exchange rates: %w", err)
	}

	lastUpdated := payload.Date
	if lastUpdated == "" {
		lastUpdated = now.Format(time.DateOnly)
	}

	return domain.ExchangeRateSnapshot{
		Base:        payload.Base,
		Rates:       payload.Rates,
		Timestamp:   now,
		LastUpdated: lastUpdated,
	}, nil
}

func (p *Provider) loadCache(ctx context.Context) (domain.ExchangeRateSnapshot, bool) {
	snap, err := p.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			slog.Warn("ignoring unreadable exchange rate cache", "error", err)
		}
		return domain.ExchangeRateSnapshot{}, false
	}
	if snap.Base == "" || len(snap.Rates) == 0 {
		slog.Warn("ignoring empty exchange rate cache")
		return domain.ExchangeRateSnapshot{}, false
	}
	return snap, true
}
