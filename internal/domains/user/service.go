package user

import "context"

// Service defines the business logic layer contract for users.
type Service interface {
	// Create validates uniqueness of username and email before persisting.
	// Returns ErrUsernameTaken or ErrEmailTaken when the pre-check fails.
	Create(ctx context.Context, req CreateUserRequest) (*User, error)

	// Get returns ErrUserNotFound when no user matches.
	Get(ctx context.Context, id int64) (*User, error)

	// List returns a page of users, newest first.
	List(ctx context.Context, req ListUsersRequest) ([]*User, error)

	// Update applies a partial update. Re-checks uniqueness when username
	// or email change. Returns ErrUserNotFound when no user matches.
	Update(ctx context.Context, id int64, req UpdateUserRequest) (*User, error)

	// Delete returns ErrUserNotFound when no user matches.
	Delete(ctx context.Context, id int64) error
}
