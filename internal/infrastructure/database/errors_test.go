package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePgError struct {
	code string
}

func (e *fakePgError) Error() string    { return "pg error " + e.code }
func (e *fakePgError) SQLState() string { return e.code }

func TestMapErrorNil(t *testing.T) {
	assert.NoError(t, MapError(nil))
}

func TestMapErrorNoRows(t *testing.T) {
	err := MapError(sql.ErrNoRows)
	assert.True(t, IsNotFound(err))
}

func TestMapErrorIdempotent(t *testing.T) {
	err := MapError(MapError(sql.ErrNoRows))
	assert.True(t, IsNotFound(err))
}

func TestMapErrorPostgresCodes(t *testing.T) {
	tests := []struct {
		code  string
		check func(error) bool
	}{
		{"23505", IsDuplicateKey},
		{"23503", IsForeignKeyViolation},
	}
	for _, tt := range tests {
		err := MapError(&fakePgError{code: tt.code})
		assert.True(t, tt.check(err), "code %s", tt.code)
	}

	// Unrelated SQLSTATE passes through unmapped.
	raw := &fakePgError{code: "42P01"}
	assert.Equal(t, error(raw), MapError(raw))
}

func TestMapErrorSqliteMessages(t *testing.T) {
	dup := MapError(errors.New("UNIQUE constraint failed: users.username"))
	assert.True(t, IsDuplicateKey(dup))

	fk := MapError(errors.New("FOREIGN KEY constraint failed"))
	assert.True(t, IsForeignKeyViolation(fk))
}

func TestMappedErrorKeepsCause(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed: users.email")
	err := MapError(cause)

	require.True(t, IsDuplicateKey(err))
	assert.ErrorIs(t, err, cause)

	// Classification survives further wrapping.
	wrapped := fmt.Errorf("create user: %w", err)
	assert.True(t, IsDuplicateKey(wrapped))
}
