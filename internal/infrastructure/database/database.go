package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // postgres driver, registered as "pgx"
	_ "github.com/mattn/go-sqlite3"    // sqlite driver, registered as "sqlite3"
	"github.com/rs/zerolog/log"

	"itemstore-backend/internal/config"
)

// DB wraps *sql.DB together with the driver it was opened with so callers
// can pick dialect-specific behavior (schema bootstrap, error mapping).
type DB struct {
	SQL    *sql.DB
	Config *config.DatabaseConfig
}

// NewDB creates an unconnected DB. Call Connect before use.
func NewDB(cfg *config.DatabaseConfig) *DB {
	return &DB{Config: cfg}
}

// Connect opens the connection pool and verifies connectivity, retrying
// with exponential backoff on failure.
func (db *DB) Connect(ctx context.Context) error {
	sqldb, err := sql.Open(db.Config.Driver, db.Config.DSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	sqldb.SetMaxOpenConns(db.Config.MaxOpenConns)
	sqldb.SetMaxIdleConns(db.Config.MaxIdleConns)
	sqldb.SetConnMaxLifetime(db.Config.ConnMaxLifetime)

	var lastErr error
	for attempt := 1; attempt <= db.Config.MaxRetries; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
		lastErr = sqldb.PingContext(pingCtx)
		cancel()

		if lastErr == nil {
			db.SQL = sqldb
			log.Info().
				Str("driver", db.Config.Driver).
				Int("attempt", attempt).
				Msg("database connected")
			return nil
		}

		log.Warn().
			Err(lastErr).
			Int("attempt", attempt).
			Int("max_attempts", db.Config.MaxRetries).
			Msg("database connection attempt failed")

		if attempt < db.Config.MaxRetries {
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				_ = sqldb.Close()
				return fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	_ = sqldb.Close()
	return fmt.Errorf("failed to connect after %d attempts: %w", db.Config.MaxRetries, lastErr)
}

// HealthCheck verifies the database is reachable. Intended for the health
// endpoint; bounded to 5 seconds regardless of the caller's context.
func (db *DB) HealthCheck(ctx context.Context) error {
	if db.SQL == nil {
		return fmt.Errorf("database is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.SQL.PingContext(healthCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close closes all pooled connections.
func (db *DB) Close() error {
	if db.SQL == nil {
		return nil
	}
	return db.SQL.Close()
}
