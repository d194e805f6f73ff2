package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by every repository. Storage-level constraint
// violations are translated into these so the service layer never inspects
// driver-specific error types.
var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrCheckViolation      = errors.New("check constraint violation")
)

func IsNotFound(err error) bool            { return errors.Is(err, ErrNotFound) }
func IsDuplicateKey(err error) bool        { return errors.Is(err, ErrDuplicateKey) }
func IsForeignKeyViolation(err error) bool { return errors.Is(err, ErrForeignKeyViolation) }

// Error wraps a sentinel with the original driver error, so callers can use
// errors.Is for classification and still reach the raw cause.
type Error struct {
	Sentinel error
	Cause    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (cause: %v)", e.Sentinel, e.Cause)
}

func (e *Error) Is(target error) bool { return errors.Is(e.Sentinel, target) }
func (e *Error) Unwrap() error        { return e.Cause }

// MapError translates driver errors into sentinel errors. Covers pgx
// (SQLSTATE codes) and sqlite (message matching; the driver does not export
// typed errors). Unknown errors pass through unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return &Error{Sentinel: ErrNotFound, Cause: err}
	}

	var mapped *Error
	if errors.As(err, &mapped) {
		return err
	}

	// pgx v5 surfaces *pgconn.PgError; match on the interface to keep this
	// file driver-agnostic.
	var pge interface{ SQLState() string }
	if errors.As(err, &pge) {
		switch pge.SQLState() {
		case "23505":
			return &Error{Sentinel: ErrDuplicateKey, Cause: err}
		case "23503":
			return &Error{Sentinel: ErrForeignKeyViolation, Cause: err}
		case "23514":
			return &Error{Sentinel: ErrCheckViolation, Cause: err}
		}
		return err
	}

	s := err.Error()
	switch {
	case strings.Contains(s, "UNIQUE constraint failed"):
		return &Error{Sentinel: ErrDuplicateKey, Cause: err}
	case strings.Contains(s, "FOREIGN KEY constraint failed"):
		return &Error{Sentinel: ErrForeignKeyViolation, Cause: err}
	case strings.Contains(s, "CHECK constraint failed"):
		return &Error{Sentinel: ErrCheckViolation, Cause: err}
	}

	return err
}
