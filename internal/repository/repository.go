// Package repository provides a generic CRUD layer shared by every entity.
//
// Each domain describes its table once in a Model and gets uniform
// get/list/create/update/delete behavior; domain repositories wrap the
// generic one and add their own lookups on top.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"itemstore-backend/internal/infrastructure/database"
)

// Querier is satisfied by both *sql.DB and *sql.Tx, so repositories work
// unchanged inside and outside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Scanner abstracts *sql.Row and *sql.Rows for a shared scan function.
type Scanner interface {
	Scan(dest ...any) error
}

// Model describes how an entity maps to its table.
type Model[T any] struct {
	// Table is the table name.
	Table string

	// InsertColumns are the columns written on create, in the order
	// Values returns them. Excludes id and timestamps, which the
	// repository manages, and any columns injected via Create's extra map.
	InsertColumns []string

	// SelectColumns is the full column list, in the order Scan reads them.
	SelectColumns []string

	// Values extracts the insert-column values from an entity.
	Values func(*T) []any

	// Scan reads one full row into a new entity.
	Scan func(Scanner) (*T, error)
}

// Repository implements generic CRUD for one entity type.
type Repository[T any] struct {
	q Querier
	m Model[T]
}

// New builds a Repository over q, which may be a *sql.DB or a *sql.Tx.
func New[T any](q Querier, m Model[T]) *Repository[T] {
	return &Repository[T]{q: q, m: m}
}

// WithQuerier returns a copy of the repository bound to a different Querier.
// Used to rebind a repository to a transaction.
func (r *Repository[T]) WithQuerier(q Querier) *Repository[T] {
	return &Repository[T]{q: q, m: r.m}
}

// Get fetches an entity by id. Returns (nil, nil) when no row matches.
func (r *Repository[T]) Get(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE id = $1 LIMIT 1",
		strings.Join(r.m.SelectColumns, ", "), r.m.Table,
	)
	return r.scanOne(r.q.QueryRowContext(ctx, query, id))
}

// GetByField fetches an entity by equality on a named column. Returns
// (nil, nil) when no row matches. The column name is not validated; callers
// pass known column names only.
func (r *Repository[T]) GetByField(ctx context.Context, column string, value any) (*T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1 LIMIT 1",
		strings.Join(r.m.SelectColumns, ", "), r.m.Table, column,
	)
	return r.scanOne(r.q.QueryRowContext(ctx, query, value))
}

// List returns entities ordered by creation time, newest first. The id
// tie-break keeps pagination stable when timestamps collide.
func (r *Repository[T]) List(ctx context.Context, offset, limit int) ([]*T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2",
		strings.Join(r.m.SelectColumns, ", "), r.m.Table,
	)
	return r.scanAll(ctx, query, limit, offset)
}

// ListByField returns entities matching an equality filter, with the same
// ordering and pagination contract as List.
func (r *Repository[T]) ListByField(ctx context.Context, column string, value any, offset, limit int) ([]*T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3",
		strings.Join(r.m.SelectColumns, ", "), r.m.Table, column,
	)
	return r.scanAll(ctx, query, value, limit, offset)
}

// Create inserts a new row built from the entity's insert columns merged
// with extra columns (foreign keys injected by the caller, e.g. owner_id).
// Both timestamps are set to the same instant. Returns the persisted entity
// including generated fields.
func (r *Repository[T]) Create(ctx context.Context, e *T, extra map[string]any) (*T, error) {
	now := time.Now().UTC()

	columns := append([]string{}, r.m.InsertColumns...)
	args := append([]any{}, r.m.Values(e)...)
	for _, k := range sortedKeys(extra) {
		columns = append(columns, k)
		args = append(args, extra[k])
	}
	columns = append(columns, "created_at", "updated_at")
	args = append(args, now, now)

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		r.m.Table,
		strings.Join(columns, ", "),
		placeholders(len(columns)),
		strings.Join(r.m.SelectColumns, ", "),
	)

	created, err := r.m.Scan(r.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, database.MapError(err)
	}
	return created, nil
}

// Update applies the given column changes to the entity and refreshes
// updated_at. Field presence in the changes map decides what is written;
// unmentioned columns are untouched. An empty map still refreshes
// updated_at. Returns (nil, nil) when no row matches.
func (r *Repository[T]) Update(ctx context.Context, id int64, changes map[string]any) (*T, error) {
	now := time.Now().UTC()

	sets := make([]string, 0, len(changes)+1)
	args := make([]any, 0, len(changes)+2)
	for _, k := range sortedKeys(changes) {
		sets = append(sets, fmt.Sprintf("%s = $%d", k, len(args)+1))
		args = append(args, changes[k])
	}
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(args)+1))
	args = append(args, now)
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		r.m.Table,
		strings.Join(sets, ", "),
		len(args),
		strings.Join(r.m.SelectColumns, ", "),
	)

	return r.scanOne(r.q.QueryRowContext(ctx, query, args...))
}

// Delete removes the entity by id. Returns false when no row matched.
func (r *Repository[T]) Delete(ctx context.Context, id int64) (bool, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.m.Table)

	res, err := r.q.ExecContext(ctx, query, id)
	if err != nil {
		return false, database.MapError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, database.MapError(err)
	}
	return affected > 0, nil
}

func (r *Repository[T]) scanOne(row *sql.Row) (*T, error) {
	e, err := r.m.Scan(row)
	if err != nil {
		err = database.MapError(err)
		if database.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func (r *Repository[T]) scanAll(ctx context.Context, query string, args ...any) ([]*T, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, database.MapError(err)
	}
	defer rows.Close()

	var out []*T
	for rows.Next() {
		e, err := r.m.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s row: %w", r.m.Table, err)
		}
		out = append(out, e)
	}
	return out, database.MapError(rows.Err())
}

// sortedKeys keeps generated SQL deterministic across runs.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}
