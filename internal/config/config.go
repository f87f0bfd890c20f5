package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	DatabaseType    string // sqlite, postgres or mysql
	DatabasePath    string // for sqlite
	DatabaseURL     string // for postgres/mysql
	MigrationsPath  string
	BaseURL         string // public base URL used in share links and QR codes
	SessionDuration time.Duration
	LoginRateLimit  int // login attempts per minute per IP

	// Email notifications via Amazon SES; disabled when SESFromEmail is empty
	SESRegion    string
	SESFromEmail string
	SESFromName  string
	AdminEmail   string
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		ServerPort:      getEnv("PORT", "8080"),
		DatabaseType:    getEnv("DB_TYPE", "sqlite"),
		DatabasePath:    getEnv("DB_PATH", "./data/vielseitig.db"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "./migrations"),
		BaseURL:         getEnv("BASE_URL", "https://vielseitig.zumgugger.ch"),
		SessionDuration: getEnvDuration("SESSION_DURATION", 48*time.Hour),
		LoginRateLimit:  getEnvInt("LOGIN_RATE_LIMIT", 10),
		SESRegion:       getEnv("SES_REGION", "eu-central-1"),
		SESFromEmail:    getEnv("SES_FROM_EMAIL", ""),
		SESFromName:     getEnv("SES_FROM_NAME", "Vielseitig"),
		AdminEmail:      getEnv("ADMIN_EMAIL", ""),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvDuration reads a duration environment variable or returns a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
