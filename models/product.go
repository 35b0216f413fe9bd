package models

import "time"

// Product is a catalog entry managed from the admin panel.
type Product struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Price          int                    `json:"price"`
	ImageKeyword   string                 `json:"imageKeyword,omitempty"`
	Category       string                 `json:"category"`
	HairType       string                 `json:"hairType,omitempty"`
	Length         string                 `json:"length,omitempty"`
	Texture        string                 `json:"texture,omitempty"`
	Rating         float64                `json:"rating"`
	Reviews        int                    `json:"reviews"`
	Colors         []string               `json:"colors,omitempty"`
	InStock        bool                   `json:"inStock"`
	OnSale         bool                   `json:"onSale"`
	Description    string                 `json:"description,omitempty"`
	Specifications map[string]interface{} `json:"specifications,omitempty"`
	Images         []string               `json:"images,omitempty"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

// ProductUpdate carries a partial edit. Nil fields are left untouched.
type ProductUpdate struct {
	Name           *string                 `json:"name"`
	Price          *int                    `json:"price"`
	ImageKeyword   *string                 `json:"imageKeyword"`
	Category       *string                 `json:"category"`
	HairType       *string                 `json:"hairType"`
	Length         *string                 `json:"length"`
	Texture        *string                 `json:"texture"`
	Rating         *float64                `json:"rating"`
	Reviews        *int                    `json:"reviews"`
	Colors         *[]string               `json:"colors"`
	InStock        *bool                   `json:"inStock"`
	OnSale         *bool                   `json:"onSale"`
	Description    *string                 `json:"description"`
	Specifications *map[string]interface{} `json:"specifications"`
	Images         *[]string               `json:"images"`
}
