package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for configuration values.
const (
	DefaultCachePath         = "data/statcast.db"
	DefaultOutputDir         = "charts"
	DefaultHTTPTimeout       = 30 * time.Second
	DefaultRequestsPerMinute = 25
	DefaultMaxRetries        = 3
	// Ordinal of the statcast pitching table on a Savant player page.
	// Savant renders dozens of unlabeled tables per page; the scraper
	// verifies headers before trusting this index.
	DefaultSavantTableIndex = 45
)

// Config holds all application configuration.
type Config struct {
	CachePath         string
	OutputDir         string
	HTTPTimeout       time.Duration
	RequestsPerMinute int
	MaxRetries        int
	SavantTableIndex  int
}

// Load reads configuration from environment variables (and .env file if present).
func Load() Config {
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	cfg := Config{
		CachePath:         DefaultCachePath,
		OutputDir:         DefaultOutputDir,
		HTTPTimeout:       DefaultHTTPTimeout,
		RequestsPerMinute: DefaultRequestsPerMinute,
		MaxRetries:        DefaultMaxRetries,
		SavantTableIndex:  DefaultSavantTableIndex,
	}

	if v := os.Getenv("STATCAST_CACHE_PATH"); v != "" {
		cfg.CachePath = v
	}

	if v := os.Getenv("CHART_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}

	if v := os.Getenv("HTTP_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.HTTPTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	if v := os.Getenv("REQUESTS_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RequestsPerMinute = n
		}
	}

	if v := os.Getenv("MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxRetries = n
		}
	}

	if v := os.Getenv("SAVANT_TABLE_INDEX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SavantTableIndex = n
		}
	}

	return cfg
}

// Validate checks that configuration values are within acceptable ranges.
func Validate(cfg Config) error {
	if cfg.CachePath == "" {
		return fmt.Errorf("STATCAST_CACHE_PATH must not be empty")
	}
	if cfg.OutputDir == "" {
		return fmt.Errorf("CHART_OUTPUT_DIR must not be empty")
	}
	if cfg.HTTPTimeout < time.Second {
		return fmt.Errorf("HTTP_TIMEOUT_MS must be at least 1000, got %v", cfg.HTTPTimeout)
	}
	if cfg.RequestsPerMinute < 1 {
		return fmt.Errorf("REQUESTS_PER_MINUTE must be positive, got %d", cfg.RequestsPerMinute)
	}
	if cfg.MaxRetries < 0 {
		return fmt.Errorf("MAX_RETRIES must be non-negative, got %d", cfg.MaxRetries)
	}
	if cfg.SavantTableIndex < 0 {
		return fmt.Errorf("SAVANT_TABLE_INDEX must be non-negative, got %d", cfg.SavantTableIndex)
	}
	return nil
}
