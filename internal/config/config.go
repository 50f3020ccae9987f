package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds the environment-driven configuration for the pricing API.
type Config struct {
	Stage          string
	Port           string
	DatabaseURL    string
	TaxJarAPIKey   string
	TaxJarBaseURL  string
	StoreTimezone  *time.Location
	TaxCallTimeout time.Duration
	StoreTxTimeout time.Duration
}

// Load reads configuration from environment variables. DATABASE_URL is the
// only hard requirement; everything else has a sensible default.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	tzName := getEnvWithDefault("STORE_TIMEZONE", "America/New_York")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_TIMEZONE %q: %w", tzName, err)
	}

	cfg := &Config{
		Stage:          getEnvWithDefault("STAGE", "dev"),
		Port:           getEnvWithDefault("API_PORT", "8000"),
		DatabaseURL:    dbURL,
		TaxJarAPIKey:   os.Getenv("TAXJAR_API_KEY"),
		TaxJarBaseURL:  getEnvWithDefault("TAXJAR_API_URL", "https://api.taxjar.com"),
		StoreTimezone:  loc,
		TaxCallTimeout: getDurationWithDefault("TAX_CALL_TIMEOUT", 5*time.Second),
		StoreTxTimeout: getDurationWithDefault("STORE_TX_TIMEOUT", 10*time.Second),
	}

	return cfg, nil
}

func getEnvWithDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationWithDefault(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
