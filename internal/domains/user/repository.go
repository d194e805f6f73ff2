package user

import "context"

// Repository defines the contract for user persistence operations.
//
// Absence is communicated through nil returns, never errors: the data layer
// only reports storage faults. Constraint violations (duplicate username or
// email) surface as mapped storage errors for the service layer to handle.
type Repository interface {
	// Create persists a new user and returns it with generated fields set.
	Create(ctx context.Context, u *User) (*User, error)

	// GetByID returns the user with the given id, or nil when absent.
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByUsername returns the user with the given username, or nil.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetByEmail returns the user with the given email, or nil.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// List returns users ordered by creation time, newest first.
	List(ctx context.Context, offset, limit int) ([]*User, error)

	// Update applies the given column changes and refreshes updated_at.
	// Returns nil when no user matches.
	Update(ctx context.Context, id int64, changes map[string]any) (*User, error)

	// Delete removes the user. Owned items are removed by the storage
	// cascade. Returns false when no user matches.
	Delete(ctx context.Context, id int64) (bool, error)

	// WithTx runs fn against a repository bound to a single transaction.
	// Commits when fn returns nil, rolls back otherwise.
	WithTx(ctx context.Context, fn func(Repository) error) error
}
