package config

import (
	"os"
	"testing"
	"time"
)

var allKeys = []string{
	"PPP_DATASET_URL", "PPP_DATASET_PATH", "PPP_REFERENCE_YEAR", "RATES_URL", "RATES_BASE",
	"RATES_TTL", "RATES_RETRY_MAX", "RATES_RETRY_BASE_DELAY", "RATES_CACHE", "DATABASE_URL",
}

func TestLoadDefaults(t *testing.T) {
	// Clear any env vars that might affect defaults
	for _, key := range allKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.DatasetURL != "" {
		t.Errorf("DatasetURL = %q, want empty", cfg.DatasetURL)
	}
	if cfg.ReferenceYear != "2024" {
		t.Errorf("ReferenceYear = %q, want 2024", cfg.ReferenceYear)
	}
	if cfg.RatesURL != "https://api.exchangerate-api.com/v4/latest" {
		t.Errorf("RatesURL = %q, want default", cfg.RatesURL)
	}
	if cfg.RatesBase != "USD" {
		t.Errorf("RatesBase = %q, want USD", cfg.RatesBase)
	}
	if cfg.RatesTTL != time.Hour {
		t.Errorf("RatesTTL = %v, want 1h", cfg.RatesTTL)
	}
	if cfg.RatesRetryMax != 2 {
		t.Errorf("RatesRetryMax = %d, want 2", cfg.RatesRetryMax)
	}
	if cfg.RatesCache != CacheFile {
		t.Errorf("RatesCache = %q, want file", cfg.RatesCache)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PPP_DATASET_URL", "https://example.com/ppp.csv")
	t.Setenv("PPP_REFERENCE_YEAR", "2023")
	t.Setenv("RATES_BASE", "EUR")
	t.Setenv("RATES_TTL", "30m")
	t.Setenv("RATES_RETRY_MAX", "5")
	t.Setenv("RATES_CACHE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/ppp")

	cfg := Load()

	if cfg.DatasetURL != "https://example.com/ppp.csv" {
		t.Errorf("DatasetURL = %q, want override", cfg.DatasetURL)
	}
	if cfg.ReferenceYear != "2023" {
		t.Errorf("ReferenceYear = %q, want 2023", cfg.ReferenceYear)
	}
	if cfg.RatesBase != "EUR" {
		t.Errorf("RatesBase = %q, want EUR", cfg.RatesBase)
	}
	if cfg.RatesTTL != 30*time.Minute {
		t.Errorf("RatesTTL = %v, want 30m", cfg.RatesTTL)
	}
	if cfg.RatesRetryMax != 5 {
		t.Errorf("RatesRetryMax = %d, want 5", cfg.RatesRetryMax)
	}
	if cfg.RatesCache != CachePostgres {
		t.Errorf("RatesCache = %q, want postgres", cfg.RatesCache)
	}
	if cfg.DatabaseURL != "postgres://localhost/ppp" {
		t.Errorf("DatabaseURL = %q, want override", cfg.DatabaseURL)
	}
}

func TestLoadInvalidEnvFallsBackToDefault(t *testing.T) {
	t.Setenv("RATES_RETRY_MAX", "not-a-number")
	t.Setenv("RATES_TTL", "invalid-duration")
	t.Setenv("RATES_CACHE", "redis")

	cfg := Load()

	if cfg.RatesRetryMax != 2 {
		t.Errorf("RatesRetryMax = %d, want default 2 on invalid input", cfg.RatesRetryMax)
	}
	if cfg.RatesTTL != time.Hour {
		t.Errorf("RatesTTL = %v, want default 1h on invalid input", cfg.RatesTTL)
	}
	if cfg.RatesCache != CacheFile {
		t.Errorf("RatesCache = %q, want default file on invalid input", cfg.RatesCache)
	}
}

func TestLoadNonPositiveEnvFallsBackToDefault(t *testing.T) {
	t.Setenv("RATES_WATCH_INTERVAL", "0s")
	t.Setenv("RATES_TTL", "-5m")
	t.Setenv("RATES_RETRY_MAX", "-1")

	cfg := Load()

	if cfg.RatesWatchInterval != time.Hour {
		t.Errorf("RatesWatchInterval = %v, want default 1h", cfg.RatesWatchInterval)
	}
	if cfg.RatesTTL != time.Hour {
		t.Errorf("RatesTTL = %v, want default 1h", cfg.RatesTTL)
	}
	if cfg.RatesRetryMax != 2 {
		t.Errorf("RatesRetryMax = %d, want default 2", cfg.RatesRetryMax)
	}
}

func TestLoadZeroRetryMaxAllowed(t *testing.T) {
	t.Setenv("RATES_RETRY_MAX", "0")

	if cfg := Load(); cfg.RatesRetryMax != 0 {
		t.Errorf("RatesRetryMax = %d, want 0", cfg.RatesRetryMax)
	}
}
