package user

import "errors"

var (
	// Not Found
	ErrUserNotFound = errors.New("user not found")

	// Uniqueness pre-check failures
	ErrUsernameTaken = errors.New("username already registered")
	ErrEmailTaken    = errors.New("email already registered")
)
