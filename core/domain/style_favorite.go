package domain

import "time"

// Favorite is an item a user bookmarked from a recommendation page.
type Favorite struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"user_id"`
	ItemName string    `json:"item_name"`
	ItemType string    `json:"item_type"`
	Link     string    `json:"link,omitempty"`
	AddedAt  time.Time `json:"added_at"`
}
