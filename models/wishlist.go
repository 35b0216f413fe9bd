package models

import "time"

// WishlistItem is a product snapshot taken at the moment it was liked.
// The snapshot is intentionally denormalized: later catalog edits do not
// rewrite wishlist entries.
type WishlistItem struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         int       `json:"price"`
	OriginalPrice int       `json:"originalPrice,omitempty"`
	Image         string    `json:"image,omitempty"`
	ImageKeyword  string    `json:"imageKeyword,omitempty"`
	Category      string    `json:"category,omitempty"`
	Rating        float64   `json:"rating,omitempty"`
	Reviews       int       `json:"reviews,omitempty"`
	Colors        []string  `json:"colors,omitempty"`
	InStock       bool      `json:"inStock,omitempty"`
	OnSale        bool      `json:"onSale,omitempty"`
	AddedAt       time.Time `json:"addedAt"`
}
