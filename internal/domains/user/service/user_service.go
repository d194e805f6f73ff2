package service

import (
	"context"
	"fmt"

	"itemstore-backend/internal/domains/user"
)

type userService struct {
	repo user.Repository
}

// NewUserService creates the user business logic layer.
func NewUserService(repo user.Repository) user.Service {
	return &userService{repo: repo}
}

// Create checks username and email uniqueness before inserting. The check
// and the insert run in one transaction so concurrent requests cannot both
// pass the pre-check and commit; the loser fails on the unique constraint,
// which the storage layer maps to a duplicate-key error.
func (s *userService) Create(ctx context.Context, req user.CreateUserRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var created *user.User
	err := s.repo.WithTx(ctx, func(r user.Repository) error {
		existing, err := r.GetByUsername(ctx, req.Username)
		if err != nil {
			return fmt.Errorf("check username: %w", err)
		}
		if existing != nil {
			return user.ErrUsernameTaken
		}

		existing, err = r.GetByEmail(ctx, req.Email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if existing != nil {
			return user.ErrEmailTaken
		}

		created, err = r.Create(ctx, req.ToUser())
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*user.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (s *userService) List(ctx context.Context, req user.ListUsersRequest) ([]*user.User, error) {
	req.SetDefaults()
	users, err := s.repo.List(ctx, req.Skip, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Update applies a partial update. When username or email change, their
// uniqueness is re-checked, excluding the user being updated.
func (s *userService) Update(ctx context.Context, id int64, req user.UpdateUserRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var updated *user.User
	err := s.repo.WithTx(ctx, func(r user.Repository) error {
		if req.Username != nil {
			existing, err := r.GetByUsername(ctx, *req.Username)
			if err != nil {
				return fmt.Errorf("check username: %w", err)
			}
			if existing != nil && existing.ID != id {
				return user.ErrUsernameTaken
			}
		}
		if req.Email != nil {
			existing, err := r.GetByEmail(ctx, *req.Email)
			if err != nil {
				return fmt.Errorf("check email: %w", err)
			}
			if existing != nil && existing.ID != id {
				return user.ErrEmailTaken
			}
		}

		u, err := r.Update(ctx, id, req.Changes())
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		if u == nil {
			return user.ErrUserNotFound
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !deleted {
		return user.ErrUserNotFound
	}
	return nil
}
