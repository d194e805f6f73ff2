package repository

import (
	"context"
	"database/sql"

	"itemstore-backend/internal/domains/user"
	repo "itemstore-backend/internal/repository"
	"itemstore-backend/pkg/database"
)

// userModel maps the User entity onto the "users" table for the generic
// repository. id and the timestamps are storage-managed, so they appear in
// the select list but not the insert list.
var userModel = repo.Model[user.User]{
	Table:         "users",
	InsertColumns: []string{"username", "email", "full_name", "is_active"},
	SelectColumns: []string{"id", "username", "email", "full_name", "is_active", "created_at", "updated_at"},
	Values: func(u *user.User) []any {
		return []any{u.Username, u.Email, u.FullName, u.IsActive}
	},
	Scan: func(s repo.Scanner) (*user.User, error) {
		var u user.User
		if err := s.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		return &u, nil
	},
}

type userRepository struct {
	db   *sql.DB // nil when bound to a transaction
	base *repo.Repository[user.User]
}

// NewUserRepository creates a user repository backed by database/sql.
func NewUserRepository(db *sql.DB) user.Repository {
	return &userRepository{
		db:   db,
		base: repo.New(db, userModel),
	}
}

func (r *userRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	return r.base.Create(ctx, u, nil)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return r.base.Get(ctx, id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.base.GetByField(ctx, "username", username)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.base.GetByField(ctx, "email", email)
}

func (r *userRepository) List(ctx context.Context, offset, limit int) ([]*user.User, error) {
	return r.base.List(ctx, offset, limit)
}

func (r *userRepository) Update(ctx context.Context, id int64, changes map[string]any) (*user.User, error) {
	return r.base.Update(ctx, id, changes)
}

func (r *userRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.base.Delete(ctx, id)
}

func (r *userRepository) WithTx(ctx context.Context, fn func(user.Repository) error) error {
	if r.db == nil {
		// Already transaction-bound, reuse the current binding.
		return fn(r)
	}
	return database.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		return fn(&userRepository{base: r.base.WithQuerier(tx)})
	})
}
