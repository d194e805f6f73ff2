package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "/api", cfg.API.Prefix)
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, "file:itemstore.db?_fk=1", cfg.Database.DSN)
	assert.Equal(t, 10*time.Second, cfg.External.FetchTimeout)
	assert.False(t, cfg.App.Debug)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("DATABASE_DRIVER", "pgx")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/itemstore")
	t.Setenv("EXTERNAL_API_TIMEOUT", "3s")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, "pgx", cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost:5432/itemstore", cfg.Database.DSN)
	assert.Equal(t, 3*time.Second, cfg.External.FetchTimeout)
	assert.True(t, cfg.App.Debug)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "oracle")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_DRIVER")
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "lots")
	t.Setenv("EXTERNAL_API_TIMEOUT", "soon")
	t.Setenv("DEBUG", "yep")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 10*time.Second, cfg.External.FetchTimeout)
	assert.False(t, cfg.App.Debug)
}
