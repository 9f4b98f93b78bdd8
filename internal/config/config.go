package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Cache backends.
const (
	CacheFile     = "file"
	CacheMemory   = "memory"
	CachePostgres = "postgres"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	DatasetURL          string
	DatasetPath         string
	ReferenceYear       string
	DatasetTimeout      time.Duration
	RatesURL            string
	RatesBase           string
	RatesTTL            time.Duration
	RatesTimeout        time.Duration
	RatesRetryMax       int
	RatesRetryBaseDelay time.Duration
	RatesCache          string
	RatesCachePath      string
	RatesWatchInterval  time.Duration
	DatabaseURL         string
	GoogleCredentials   string
}

// Load reads configuration from environment variables (and an optional .env
// file) with sensible defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DatasetURL:          envOrDefault("PPP_DATASET_URL", ""),
		DatasetPath:         envOrDefault("PPP_DATASET_PATH", ""),
		ReferenceYear:       envOrDefault("PPP_REFERENCE_YEAR", "2024"),
		DatasetTimeout:      envOrDefaultDuration("PPP_DATASET_TIMEOUT", 30*time.Second),
		RatesURL:            envOrDefault("RATES_URL", "https://api.exchangerate-api.com/v4/latest"),
		RatesBase:           envOrDefault("RATES_BASE", "USD"),
		RatesTTL:            envOrDefaultDuration("RATES_TTL", time.Hour),
		RatesTimeout:        envOrDefaultDuration("RATES_HTTP_TIMEOUT", 15*time.Second),
		RatesRetryMax:       envOrDefaultInt("RATES_RETRY_MAX", 2),
		RatesRetryBaseDelay: envOrDefaultDuration("RATES_RETRY_BASE_DELAY", time.Second),
		RatesCache:          envOrDefaultChoice("RATES_CACHE", CacheFile, CacheFile, CacheMemory, CachePostgres),
		RatesCachePath:      envOrDefault("RATES_CACHE_PATH", ""),
		RatesWatchInterval:  envOrDefaultDuration("RATES_WATCH_INTERVAL", time.Hour),
		DatabaseURL:         envOrDefault("DATABASE_URL", ""),
		GoogleCredentials:   envOrDefault("GOOGLE_CREDENTIALS_JSON", ""),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultChoice(key, defaultVal string, allowed ...string) string {
	v := envOrDefault(key, defaultVal)
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	slog.Warn("invalid env var value, using default", "key", key, "value", v, "default", defaultVal)
	return defaultVal
}

func envOrDefaultInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			slog.Warn("invalid integer env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return n
	}
	return defaultVal
}

func envOrDefaultDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}
