// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Store drivers.
const (
	StoreMemory    = "memory"
	StoreSQLite    = "sqlite"
	StorePostgres  = "postgres"
	StoreFirestore = "firestore"
)

// Config holds application configuration
type Config struct {
	Port            string
	Env             string
	LogLevel        string
	StoreDriver     string
	SQLitePath      string
	DatabaseURL     string
	ProjectID       string
	CredentialsFile string
	SentryDSN       string
	ForecastCron    string
	AllowedOrigins  []string
}

// Load reads a .env file if one exists, then the environment.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8111"),
		Env:             getEnv("ENV", "local"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		StoreDriver:     strings.ToLower(getEnv("STORE_DRIVER", StoreMemory)),
		SQLitePath:      getEnv("SQLITE_PATH", "cloudcost.db"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		ProjectID:       getEnv("GOOGLE_CLOUD_PROJECT", ""),
		CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		SentryDSN:       getEnv("SENTRY_DSN", ""),
		ForecastCron:    getEnv("FORECAST_CRON", "0 3 * * *"),
		AllowedOrigins:  splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:1420")),
	}

	switch cfg.StoreDriver {
	case StoreMemory:
	case StoreSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("SQLITE_PATH is required for the sqlite store")
		}
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres store")
		}
	case StoreFirestore:
		if cfg.ProjectID == "" {
			return nil, fmt.Errorf("GOOGLE_CLOUD_PROJECT is required for the firestore store")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
