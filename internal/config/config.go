package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultPrices is the fixed seed table for the last-known-good price cache.
// These values keep the app usable on a very first run, before any live quote
// has ever been observed; they are overwritten as soon as a live fetch succeeds.
var DefaultPrices = map[string]float64{
	"AAPL":  190.50,
	"MSFT":  425.00,
	"GOOGL": 175.00,
	"AMZN":  185.00,
	"TSLA":  240.00,
	"META":  500.00,
	"NVDA":  900.00,
	"INTC":  30.00,
	"AMD":   160.00,
	"NFLX":  600.00,
}

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Upstream quote source
	QuoteAPIKey  string
	QuoteBaseURL string
	QuoteTimeout time.Duration

	// Stock reference catalog
	CatalogMaxAge      time.Duration
	CatalogRefreshCron string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "papertrade"),
		DBPassword: getEnv("DB_PASSWORD", "papertrade"),
		DBName:     getEnv("DB_NAME", "papertrade"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		// Quote source
		QuoteAPIKey:  getEnv("QUOTE_API_KEY", ""),
		QuoteBaseURL: getEnv("QUOTE_BASE_URL", "https://api.twelvedata.com"),

		// Catalog refresh: 03:30 every day, before US pre-market.
		CatalogRefreshCron: getEnv("CATALOG_REFRESH_CRON", "30 3 * * *"),
	}

	config.JWTExpirationDur = getDurationEnv("JWT_EXPIRES_IN", 24*time.Hour)
	config.QuoteTimeout = getDurationEnv("QUOTE_TIMEOUT", 10*time.Second)
	config.CatalogMaxAge = getDurationEnv("CATALOG_MAX_AGE", 24*time.Hour)

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv parses a duration environment variable, falling back to the
// default when unset or invalid.
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}
