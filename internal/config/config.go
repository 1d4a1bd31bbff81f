package config

import (
	"log"
	"os"
)

// Driver names accepted for DB_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds application configuration
type Config struct {
	// Environment ("development" or "production")
	Env string

	// Database
	DBDriver   string
	SQLitePath string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := loadDotenv(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		Env: getEnv("ENV", "development"),

		// Database: local SQLite file unless a Postgres DSN is configured
		DBDriver:   getEnv("DB_DRIVER", DriverSQLite),
		SQLitePath: getEnv("SQLITE_PATH", "data/spendwise.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "spendwise"),
		DBPassword: getEnv("DB_PASSWORD", "spendwise"),
		DBName:     getEnv("DB_NAME", "spendwise"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
