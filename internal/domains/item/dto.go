package item

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MaxPageSize is the hard cap on list page sizes.
const MaxPageSize = 100

// CreateItemRequest - POST /items
// The owner is not part of the body; it arrives as a query parameter and is
// injected by the service.
type CreateItemRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description,omitempty"`
	IsPublished *bool   `json:"is_published,omitempty"`
}

func (r CreateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 100).Error("title must be 1-100 characters"),
		),
	)
}

// ToItem builds the entity to persist. is_published defaults to false.
func (r CreateItemRequest) ToItem() *Item {
	published := false
	if r.IsPublished != nil {
		published = *r.IsPublished
	}
	return &Item{
		Title:       r.Title,
		Description: r.Description,
		IsPublished: published,
	}
}

// UpdateItemRequest - PATCH /items/:id
// Pointer fields so only the fields present in the body are applied. The
// owner reference is immutable after creation.
type UpdateItemRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPublished *bool   `json:"is_published,omitempty"`
}

func (r UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil, validation.Length(1, 100).Error("title must be 1-100 characters")),
		),
	)
}

// Changes returns the column changes for the fields present in the request.
func (r UpdateItemRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.Title != nil {
		changes["title"] = *r.Title
	}
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	if r.IsPublished != nil {
		changes["is_published"] = *r.IsPublished
	}
	return changes
}

// ListItemsRequest - GET /items query parameters. OwnerID filters the page
// to a single owner when set.
type ListItemsRequest struct {
	Skip    int    `form:"skip"`
	Limit   int    `form:"limit"`
	OwnerID *int64 `form:"owner_id"`
}

// SetDefaults applies the default page size and clamps out-of-range values.
func (r *ListItemsRequest) SetDefaults() {
	if r.Skip < 0 {
		r.Skip = 0
	}
	if r.Limit <= 0 || r.Limit > MaxPageSize {
		r.Limit = MaxPageSize
	}
}
