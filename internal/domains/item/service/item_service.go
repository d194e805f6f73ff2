package service

import (
	"context"
	"fmt"

	"itemstore-backend/internal/domains/item"
	"itemstore-backend/internal/domains/user"
	"itemstore-backend/internal/infrastructure/database"
)

type itemService struct {
	repo     item.Repository
	userRepo user.Repository
}

// NewItemService creates the item business logic layer. It needs the user
// repository to verify owners exist before inserting.
func NewItemService(repo item.Repository, userRepo user.Repository) item.Service {
	return &itemService{repo: repo, userRepo: userRepo}
}

// Create verifies the owner exists, then inserts. The foreign key constraint
// backs up the check: if the owner is deleted between the check and the
// insert, the storage layer reports a foreign key violation, which is mapped
// to the same ErrOwnerNotFound.
func (s *itemService) Create(ctx context.Context, req item.CreateItemRequest, ownerID int64) (*item.Item, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}
	if owner == nil {
		return nil, item.ErrOwnerNotFound
	}

	created, err := s.repo.Create(ctx, req.ToItem(), ownerID)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, item.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("create item: %w", err)
	}
	return created, nil
}

func (s *itemService) Get(ctx context.Context, id int64) (*item.Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if it == nil {
		return nil, item.ErrItemNotFound
	}
	return it, nil
}

func (s *itemService) List(ctx context.Context, req item.ListItemsRequest) ([]*item.Item, error) {
	req.SetDefaults()

	var (
		items []*item.Item
		err   error
	)
	if req.OwnerID != nil {
		items, err = s.repo.ListByOwner(ctx, *req.OwnerID, req.Skip, req.Limit)
	} else {
		items, err = s.repo.List(ctx, req.Skip, req.Limit)
	}
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (s *itemService) Update(ctx context.Context, id int64, req item.UpdateItemRequest) (*item.Item, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	it, err := s.repo.Update(ctx, id, req.Changes())
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	if it == nil {
		return nil, item.ErrItemNotFound
	}
	return it, nil
}

func (s *itemService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if !deleted {
		return item.ErrItemNotFound
	}
	return nil
}
