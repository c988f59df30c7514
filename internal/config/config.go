// Package config loads and validates application configuration from
// environment variables, with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/pkordes/travelops/backend/internal/rakuten"
)

// Config holds all configuration values for the travelops server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string for study progress
	// persistence. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins for
	// the study JSON endpoints. Defaults to ["http://localhost:5173"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// WordsFile is the path of the vocabulary CSV file.
	// Defaults to "data/words.csv".
	WordsFile string

	// Rakuten holds the hotel lookup service credentials. Both values may
	// be empty: the server still boots, and the facility resolver reports a
	// configuration error on the first conversion instead. This mirrors how
	// the lookup feature is optional while the rest of the toolbox is not.
	Rakuten rakuten.Credentials
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory is applied first when present, but
// never overrides variables already set in the environment.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	// Best-effort: a missing .env file is the normal case in production.
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		WordsFile:   getEnv("WORDS_FILE", "data/words.csv"),
		Rakuten: rakuten.Credentials{
			ApplicationID: os.Getenv("RAKUTEN_APP_ID"),
			AffiliateID:   os.Getenv("RAKUTEN_AFFILIATE_ID"),
		},
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
