package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/thdelmas/PPP-Price-Converter/internal/domain"
)

// CacheKey is the fixed key under which the snapshot is stored.
const CacheKey = "exchangeRates"

// Store persists the latest exchange rate snapshot. Load returns
// domain.ErrCacheMiss when nothing is stored. Writes are last-writer-wins.
type Store interface {
	Load(ctx context.Context) (domain.ExchangeRateSnapshot, error)
	Save(ctx context.Context, snap domain.ExchangeRateSnapshot) error
}

// MemoryStore keeps the snapshot in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	snap *domain.ExchangeRateSnapshot
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (domain.ExchangeRateSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snap == nil {
		return domain.ExchangeRateSnapshot{}, domain.ErrCacheMiss
	}
	return *s.snap, nil
}

func (s *MemoryStore) Save(_ context.Context, snap domain.ExchangeRateSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = &snap
	return nil
}

// FileStore keeps the snapshot as a JSON document on disk.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultCachePath returns the per-user cache file location.
func DefaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "ppp-price-converter", CacheKey+".json")
}

func (s *FileStore) Load(_ context.Context) (domain.ExchangeRateSnapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ExchangeRateSnapshot{}, domain.ErrCacheMiss
		}
		return domain.ExchangeRateSnapshot{}, fmt.Errorf("reading rates cache: %w", err)
	}

	var snap domain.ExchangeRateSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.ExchangeRateSnapshot{}, fmt.Errorf("decoding rates cache: %w", err)
	}
	return snap, nil
}

func (s *FileStore) Save(_ context.Context, snap domain.ExchangeRateSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding rates cache: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating rates cache dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing rates cache: %w", err)
	}
	return nil
}
