package item

import "context"

// Repository defines the contract for item persistence operations.
// Absence is communicated through nil returns; errors mean storage faults.
type Repository interface {
	// Create persists a new item for the given owner and returns it with
	// generated fields set.
	Create(ctx context.Context, it *Item, ownerID int64) (*Item, error)

	// GetByID returns the item with the given id, or nil when absent.
	GetByID(ctx context.Context, id int64) (*Item, error)

	// List returns items ordered by creation time, newest first.
	List(ctx context.Context, offset, limit int) ([]*Item, error)

	// ListByOwner returns the owner's items with the same ordering and
	// pagination contract as List.
	ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]*Item, error)

	// Update applies the given column changes and refreshes updated_at.
	// Returns nil when no item matches.
	Update(ctx context.Context, id int64, changes map[string]any) (*Item, error)

	// Delete removes the item. Returns false when no item matches.
	Delete(ctx context.Context, id int64) (bool, error)
}
