package item

import "context"

// Service defines the business logic layer contract for items.
type Service interface {
	// Create verifies the owner exists before persisting. Returns
	// ErrOwnerNotFound when it does not.
	Create(ctx context.Context, req CreateItemRequest, ownerID int64) (*Item, error)

	// Get returns ErrItemNotFound when no item matches.
	Get(ctx context.Context, id int64) (*Item, error)

	// List returns a page of items, newest first, optionally filtered by
	// owner.
	List(ctx context.Context, req ListItemsRequest) ([]*Item, error)

	// Update applies a partial update. Returns ErrItemNotFound when no
	// item matches.
	Update(ctx context.Context, id int64, req UpdateItemRequest) (*Item, error)

	// Delete returns ErrItemNotFound when no item matches.
	Delete(ctx context.Context, id int64) error
}
