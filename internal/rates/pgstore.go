package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thdelmas/PPP-Price-Converter/internal/domain"
)

// PgStore keeps the snapshot in the rate_snapshots table.
type PgStore struct {
	pool *pgxpool.Pool
}

// NewPgStore creates a PostgreSQL snapshot store.
func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

func (s *PgStore) Load(ctx context.Context) (domain.ExchangeRateSnapshot, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM rate_snapshots WHERE cache_key = $1`, CacheKey).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ExchangeRateSnapshot{}, domain.ErrCacheMiss
		}
		return domain.ExchangeRateSnapshot{}, fmt.Errorf("loading cached rates: %w", err)
	}

	var snap domain.ExchangeRateSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.ExchangeRateSnapshot{}, fmt.Errorf("decoding cached rates: %w", err)
	}
	return snap, nil
}

func (s *PgStore) Save(ctx context.Context, snap domain.ExchangeRateSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding rates: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO rate_snapshots (cache_key, data, updated_at)
		 VALUES ($1, $2::jsonb, NOW())
		 ON CONFLICT (cache_key) DO UPDATE SET data = $2::jsonb, updated_at = NOW()`,
		CacheKey, json.RawMessage(data))
	if err != nil {
		return fmt.Errorf("saving cached rates: %w", err)
	}
	return nil
}
