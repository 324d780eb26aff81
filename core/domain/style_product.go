package domain

import "time"

// Product is a shoppable item from the store catalog.
type Product struct {
	ID          int64     `json:"product_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Category    string    `json:"category,omitempty"`
	Brand       string    `json:"brand,omitempty"`
	Style       string    `json:"style,omitempty"`
	Colors      []string  `json:"colors"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
