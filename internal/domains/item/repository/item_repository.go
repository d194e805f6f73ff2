package repository

import (
	"context"
	"database/sql"

	"itemstore-backend/internal/domains/item"
	repo "itemstore-backend/internal/repository"
)

// itemModel maps the Item entity onto the "items" table. owner_id is not in
// the insert list; it is injected through the create call's extra fields so
// the public input schema never carries it.
var itemModel = repo.Model[item.Item]{
	Table:         "items",
	InsertColumns: []string{"title", "description", "is_published"},
	SelectColumns: []string{"id", "title", "description", "is_published", "owner_id", "created_at", "updated_at"},
	Values: func(it *item.Item) []any {
		return []any{it.Title, it.Description, it.IsPublished}
	},
	Scan: func(s repo.Scanner) (*item.Item, error) {
		var it item.Item
		if err := s.Scan(&it.ID, &it.Title, &it.Description, &it.IsPublished, &it.OwnerID, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		return &it, nil
	},
}

type itemRepository struct {
	base *repo.Repository[item.Item]
}

// NewItemRepository creates an item repository backed by database/sql.
func NewItemRepository(db *sql.DB) item.Repository {
	return &itemRepository{base: repo.New(db, itemModel)}
}

func (r *itemRepository) Create(ctx context.Context, it *item.Item, ownerID int64) (*item.Item, error) {
	return r.base.Create(ctx, it, map[string]any{"owner_id": ownerID})
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*item.Item, error) {
	return r.base.Get(ctx, id)
}

func (r *itemRepository) List(ctx context.Context, offset, limit int) ([]*item.Item, error) {
	return r.base.List(ctx, offset, limit)
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]*item.Item, error) {
	return r.base.ListByField(ctx, "owner_id", ownerID, offset, limit)
}

func (r *itemRepository) Update(ctx context.Context, id int64, changes map[string]any) (*item.Item, error) {
	return r.base.Update(ctx, id, changes)
}

func (r *itemRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.base.Delete(ctx, id)
}
