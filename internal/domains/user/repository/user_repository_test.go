package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemstore-backend/internal/config"
	"itemstore-backend/internal/domains/user"
	"itemstore-backend/internal/infrastructure/database"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite3", "file::memory:?_fk=1")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	db := &database.DB{
		SQL:    sqlDB,
		Config: &config.DatabaseConfig{Driver: "sqlite3"},
	}
	require.NoError(t, db.EnsureSchema(context.Background()))

	return sqlDB
}

func newUser(username, email string) *user.User {
	return &user.User{Username: username, Email: email, IsActive: true}
}

func TestCreateAndGet(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newUser("alice", "a@x.com"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.True(t, created.IsActive)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetByUniqueFields(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, newUser("alice", "a@x.com"))
	require.NoError(t, err)

	byName, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, byName)

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, byName.ID, byEmail.ID)

	missing, err := repo.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCreateDuplicateUsername(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, newUser("alice", "a@x.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newUser("alice", "other@x.com"))
	require.Error(t, err)
	assert.True(t, database.IsDuplicateKey(err))
}

func TestUpdatePartial(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newUser("alice", "a@x.com"))
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	updated, err := repo.Update(ctx, created.ID, map[string]any{"full_name": "Alice A", "is_active": false})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, updated.FullName)
	assert.Equal(t, "Alice A", *updated.FullName)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "alice", updated.Username)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt), "updated_at advances on every mutation")
}

func TestWithTxRollsBackOnError(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	sentinel := errors.New("boom")
	err := repo.WithTx(ctx, func(r user.Repository) error {
		_, err := r.Create(ctx, newUser("alice", "a@x.com"))
		require.NoError(t, err)
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, got, "rolled back row must not be visible")
}

func TestWithTxCommits(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	err := repo.WithTx(ctx, func(r user.Repository) error {
		_, err := r.Create(ctx, newUser("alice", "a@x.com"))
		return err
	})
	require.NoError(t, err)

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotNil(t, got)
}
