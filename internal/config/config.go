package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port            int
	DevMode         bool
	DatabasePath    string
	LogLevel        string
	LiveData        bool    // When false, serve fixture data only (classroom mode)
	QuoteTTLMinutes int     // How long cached quotes count as fresh
	RefreshSchedule string  // Cron expression for the quote refresh job
	QuoteRatePerSec float64 // Upstream quote API request budget
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnvAsInt("PORT", 8080),
		DevMode:         getEnvAsBool("DEV_MODE", false),
		DatabasePath:    getEnv("DATABASE_PATH", "./data/edufolio.db"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LiveData:        getEnvAsBool("LIVE_DATA", true),
		QuoteTTLMinutes: getEnvAsInt("QUOTE_TTL_MINUTES", 15),
		RefreshSchedule: getEnv("REFRESH_SCHEDULE", "*/15 * * * *"),
		QuoteRatePerSec: getEnvAsFloat("QUOTE_RATE_PER_SEC", 2),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}

	if c.QuoteTTLMinutes <= 0 {
		return fmt.Errorf("QUOTE_TTL_MINUTES must be positive, got %d", c.QuoteTTLMinutes)
	}

	if c.QuoteRatePerSec <= 0 {
		return fmt.Errorf("QUOTE_RATE_PER_SEC must be positive, got %v", c.QuoteRatePerSec)
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
