package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Config holds the whole application configuration.
// It is built once at startup from environment variables and passed down
// explicitly; nothing reads the environment after Load returns.
type Config struct {
	App      AppConfig
	API      APIConfig
	Database DatabaseConfig
	External ExternalConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	Debug       bool
}

type APIConfig struct {
	Prefix string // path prefix for all routes, e.g. "/api"
}

type DatabaseConfig struct {
	Driver          string // "sqlite3" or "pgx"
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MaxRetries      int
	RetryDelay      time.Duration
	ConnectTimeout  time.Duration
}

type ExternalConfig struct {
	// FetchTimeout bounds each outbound HTTP call made by the demo
	// concurrency endpoints.
	FetchTimeout time.Duration
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Itemstore API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Debug:       getEnvBool("DEBUG", false),
		},
		API: APIConfig{
			Prefix: getEnv("API_PREFIX", "/api"),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DATABASE_DRIVER", "sqlite3"),
			DSN:             getEnv("DATABASE_URL", "file:itemstore.db?_fk=1"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			MaxRetries:      getEnvInt("DB_MAX_RETRIES", 3),
			RetryDelay:      getEnvDuration("DB_RETRY_DELAY", time.Second),
			ConnectTimeout:  getEnvDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		},
		External: ExternalConfig{
			FetchTimeout: getEnvDuration("EXTERNAL_API_TIMEOUT", 10*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the loaded config is usable.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite3", "pgx":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q (want sqlite3 or pgx)", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if c.App.Environment == "production" && c.Database.Driver == "sqlite3" {
		log.Warn().Msg("running production on sqlite3 - set DATABASE_DRIVER=pgx for PostgreSQL")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
