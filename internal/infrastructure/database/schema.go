package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// sqliteSchema mirrors migrations/ for the embedded sqlite database.
// Postgres deployments run cmd/migrate instead.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	username   TEXT      NOT NULL,
	email      TEXT      NOT NULL,
	full_name  TEXT,
	is_active  BOOLEAN   NOT NULL DEFAULT 1,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users (username);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email    ON users (email);

CREATE TABLE IF NOT EXISTS items (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	title        TEXT      NOT NULL,
	description  TEXT,
	is_published BOOLEAN   NOT NULL DEFAULT 0,
	owner_id     INTEGER   NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	created_at   TIMESTAMP NOT NULL,
	updated_at   TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_items_owner_id ON items (owner_id);
`

// EnsureSchema creates the tables on startup when running on sqlite.
// For postgres it is a no-op; schema management belongs to cmd/migrate.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if db.Config.Driver != "sqlite3" {
		log.Debug().Str("driver", db.Config.Driver).Msg("skipping schema bootstrap, use cmd/migrate")
		return nil
	}

	if _, err := db.SQL.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	log.Info().Msg("sqlite schema ensured")
	return nil
}
