// Package config handles loading and validating configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultMarkets is the player-prop market set fetched when ODDS_MARKETS is unset.
var DefaultMarkets = []string{
	"player_points_rebounds_assists",
	"player_points",
	"player_assists",
	"player_threes",
}

// Config holds all configuration values for a pipeline run.
type Config struct {
	// The Odds API
	APIKey  string
	BaseURL string

	// Scope of the run
	Sport     string
	Regions   string
	Bookmaker string
	Markets   []string

	// HTTP
	RequestTimeout time.Duration

	// Output
	OutputDir string

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables with fallback to .env file.
// Priority order: Environment variables > .env file > hardcoded defaults
func Load() (*Config, error) {
	// Attempt to load .env file (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:  os.Getenv("ODDS_API_KEY"),
		BaseURL: getEnv("ODDS_API_BASE_URL", "https://api.the-odds-api.com"),

		Sport:     getEnv("ODDS_SPORT", "basketball_nba"),
		Regions:   getEnv("ODDS_REGIONS", "us"),
		Bookmaker: getEnv("ODDS_BOOKMAKER", "fanduel"),
		Markets:   getEnvList("ODDS_MARKETS", DefaultMarkets),

		RequestTimeout: time.Duration(getEnvInt("ODDS_REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,

		OutputDir: getEnv("OUTPUT_DIR", "."),

		LogLevel: getEnv("LOG_LEVEL", "INFO"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set and valid.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("ODDS_API_KEY is required")
	}

	if c.BaseURL == "" {
		return fmt.Errorf("ODDS_API_BASE_URL must not be empty")
	}

	if c.Sport == "" {
		return fmt.Errorf("ODDS_SPORT must not be empty")
	}

	if c.Bookmaker == "" {
		return fmt.Errorf("ODDS_BOOKMAKER must not be empty")
	}

	if len(c.Markets) == 0 {
		return fmt.Errorf("ODDS_MARKETS must list at least one market")
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("ODDS_REQUEST_TIMEOUT_SECONDS must be positive")
	}

	return nil
}

// MaskedAPIKey returns the API key with most characters hidden for logging.
func (c *Config) MaskedAPIKey() string {
	return maskSecret(c.APIKey)
}

// maskSecret hides all but the first and last 4 characters of a secret.
func maskSecret(s string) string {
	if len(s) <= 8 {
		if len(s) == 0 {
			return "(not set)"
		}
		return "****"
	}
	return s[:4] + "****" + s[len(s)-4:]
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an environment variable as an integer or returns a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvList retrieves a comma-separated environment variable or returns a default.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}

	if len(items) == 0 {
		return defaultValue
	}
	return items
}
