package item

import "time"

// Item represents a row in the "items" table. Every item belongs to exactly
// one user; deleting that user removes the item through the storage cascade.
type Item struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	IsPublished bool      `json:"is_published"`
	OwnerID     int64     `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
