package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemstore-backend/internal/domains/item"
	"itemstore-backend/internal/domains/user"
	"itemstore-backend/internal/infrastructure/database"
)

type fakeItemRepo struct {
	items       map[int64]*item.Item
	nextID      int64
	createCalls int
	createErr   error

	listByOwnerCalls int
	listCalls        int
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[int64]*item.Item{}}
}

func (f *fakeItemRepo) Create(_ context.Context, it *item.Item, ownerID int64) (*item.Item, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	now := time.Now().UTC()
	stored := *it
	stored.ID = f.nextID
	stored.OwnerID = ownerID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	f.items[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeItemRepo) GetByID(_ context.Context, id int64) (*item.Item, error) {
	return f.items[id], nil
}

func (f *fakeItemRepo) List(_ context.Context, offset, limit int) ([]*item.Item, error) {
	f.listCalls++
	return nil, nil
}

func (f *fakeItemRepo) ListByOwner(_ context.Context, ownerID int64, offset, limit int) ([]*item.Item, error) {
	f.listByOwnerCalls++
	var out []*item.Item
	for _, it := range f.items {
		if it.OwnerID == ownerID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) Update(_ context.Context, id int64, changes map[string]any) (*item.Item, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	for k, v := range changes {
		switch k {
		case "title":
			it.Title = v.(string)
		case "description":
			desc := v.(string)
			it.Description = &desc
		case "is_published":
			it.IsPublished = v.(bool)
		}
	}
	it.UpdatedAt = time.Now().UTC()
	return it, nil
}

func (f *fakeItemRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

// ownerLookup stubs the only user.Repository method the item service uses.
type ownerLookup struct {
	owners map[int64]*user.User
}

func (o *ownerLookup) GetByID(_ context.Context, id int64) (*user.User, error) {
	return o.owners[id], nil
}

func (o *ownerLookup) Create(context.Context, *user.User) (*user.User, error) { return nil, nil }
func (o *ownerLookup) GetByUsername(context.Context, string) (*user.User, error) {
	return nil, nil
}
func (o *ownerLookup) GetByEmail(context.Context, string) (*user.User, error) { return nil, nil }
func (o *ownerLookup) List(context.Context, int, int) ([]*user.User, error)   { return nil, nil }
func (o *ownerLookup) Update(context.Context, int64, map[string]any) (*user.User, error) {
	return nil, nil
}
func (o *ownerLookup) Delete(context.Context, int64) (bool, error) { return false, nil }
func (o *ownerLookup) WithTx(_ context.Context, fn func(user.Repository) error) error {
	return fn(o)
}

func newOwnerLookup(ids ...int64) *ownerLookup {
	o := &ownerLookup{owners: map[int64]*user.User{}}
	for _, id := range ids {
		o.owners[id] = &user.User{ID: id, IsActive: true}
	}
	return o
}

func TestCreateItem(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewItemService(repo, newOwnerLookup(1))

	created, err := svc.Create(context.Background(), item.CreateItemRequest{Title: "book"}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.OwnerID)
	assert.False(t, created.IsPublished, "is_published defaults to false")
}

func TestCreateItemRejectsAbsentOwner(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewItemService(repo, newOwnerLookup())

	_, err := svc.Create(context.Background(), item.CreateItemRequest{Title: "book"}, 42)
	require.ErrorIs(t, err, item.ErrOwnerNotFound)
	assert.Zero(t, repo.createCalls, "owner check failure must not attempt a write")
}

func TestCreateItemMapsForeignKeyRace(t *testing.T) {
	repo := newFakeItemRepo()
	repo.createErr = &database.Error{Sentinel: database.ErrForeignKeyViolation}
	svc := NewItemService(repo, newOwnerLookup(1))

	// Owner existed at check time but was deleted before the insert landed.
	_, err := svc.Create(context.Background(), item.CreateItemRequest{Title: "book"}, 1)
	assert.ErrorIs(t, err, item.ErrOwnerNotFound)
}

func TestCreateItemValidation(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewItemService(repo, newOwnerLookup(1))

	_, err := svc.Create(context.Background(), item.CreateItemRequest{Title: ""}, 1)
	require.Error(t, err)
	assert.Zero(t, repo.createCalls)
}

func TestGetItem(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewItemService(repo, newOwnerLookup(1))

	created, err := svc.Create(context.Background(), item.CreateItemRequest{Title: "book"}, 1)
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, item.ErrItemNotFound)
}

func TestListItemsRoutesOnOwnerFilter(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewItemService(repo, newOwnerLookup(1))

	_, err := svc.List(context.Background(), item.ListItemsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)
	assert.Equal(t, 0, repo.listByOwnerCalls)

	ownerID := int64(1)
	_, err = svc.List(context.Background(), item.ListItemsRequest{OwnerID: &ownerID})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listByOwnerCalls)
}

func TestUpdateItem(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewItemService(repo, newOwnerLookup(1))

	created, err := svc.Create(context.Background(), item.CreateItemRequest{Title: "draft"}, 1)
	require.NoError(t, err)

	published := true
	updated, err := svc.Update(context.Background(), created.ID, item.UpdateItemRequest{IsPublished: &published})
	require.NoError(t, err)
	assert.True(t, updated.IsPublished)
	assert.Equal(t, "draft", updated.Title)

	_, err = svc.Update(context.Background(), 999, item.UpdateItemRequest{IsPublished: &published})
	assert.ErrorIs(t, err, item.ErrItemNotFound)
}

func TestDeleteItem(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewItemService(repo, newOwnerLookup(1))

	created, err := svc.Create(context.Background(), item.CreateItemRequest{Title: "book"}, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), item.ErrItemNotFound)
}
