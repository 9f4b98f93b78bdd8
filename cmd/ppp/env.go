package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"

	"github.com/thdelmas/PPP-Price-Converter/internal/config"
	"github.com/thdelmas/PPP-Price-Converter/internal/database"
	"github.com/thdelmas/PPP-Price-Converter/internal/ppp"
	"github.com/thdelmas/PPP-Price-Converter/internal/rates"
	"github.com/thdelmas/PPP-Price-Converter/internal/session"
)

// env builds the services a command needs from configuration.
type env struct {
	cfg  config.Config
	pool *pgxpool.Pool
}

func (e *env) applyFlags(c *cli.Context) error {
	if c.IsSet("year") {
		e.cfg.ReferenceYear = c.String("year")
	}
	if c.IsSet("dataset") {
		src := c.String("dataset")
		if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
			e.cfg.DatasetURL, e.cfg.DatasetPath = src, ""
		} else {
			e.cfg.DatasetURL, e.cfg.DatasetPath = "", src
		}
	}
	if c.IsSet("cache") {
		switch v := c.String("cache"); v {
		case config.CacheFile, config.CacheMemory, config.CachePostgres:
			e.cfg.RatesCache = v
		default:
			return fmt.Errorf("unknown cache %q", v)
		}
	}
	return nil
}

func (e *env) loader() *ppp.Loader {
	var src ppp.Source
	switch {
	case e.cfg.DatasetPath != "":
		src = ppp.NewFileSource(e.cfg.DatasetPath)
	case e.cfg.DatasetURL != "":
		src = ppp.NewHTTPSource(e.cfg.DatasetURL, e.cfg.DatasetTimeout)
	default:
		src = ppp.EmbeddedSource{}
	}
	return ppp.NewLoader(src, e.cfg.ReferenceYear)
}

func (e *env) store(ctx context.Context) (rates.Store, error) {
	switch e.cfg.RatesCache {
	case config.CacheMemory:
		return rates.NewMemoryStore(), nil
	case config.CachePostgres:
		if e.cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres cache")
		}
		if e.pool == nil {
			pool, err := database.Open(ctx, e.cfg.DatabaseURL)
			if err != nil {
				return nil, err
			}
			e.pool = pool
		}
		return rates.NewPgStore(e.pool), nil
	default:
		path := e.cfg.RatesCachePath
		if path == "" {
			path = rates.DefaultCachePath()
		}
		return rates.NewFileStore(path), nil
	}
}

func (e *env) provider(ctx context.Context) (*rates.Provider, error) {
	store, err := e.store(ctx)
	if err != nil {
		return nil, err
	}
	client := rates.NewClient(e.cfg.RatesURL, e.cfg.RatesTimeout, e.cfg.RatesRetryBaseDelay, e.cfg.RatesRetryMax)
	return rates.NewProvider(client, store, e.cfg.RatesBase, rates.WithTTL(e.cfg.RatesTTL)), nil
}

func (e *env) session(ctx context.Context) (*session.Session, error) {
	provider, err := e.provider(ctx)
	if err != nil {
		return nil, err
	}
	return session.Load(ctx, e.loader(), provider)
}

func (e *env) close() {
	if e.pool != nil {
		e.pool.Close()
		e.pool = nil
	}
}
