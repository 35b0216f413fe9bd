package models

import "time"

type CustomerPreferences struct {
	HairType           string   `json:"hairType,omitempty"`
	PreferredLength    string   `json:"preferredLength,omitempty"`
	FavoriteCategories []string `json:"favoriteCategories"`
}

// Customer is an admin-managed customer record. TotalOrders, TotalSpent and
// LastOrderDate are maintained by the order mutations, not by callers.
type Customer struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Email         string              `json:"email"`
	Phone         string              `json:"phone,omitempty"`
	Address       ShippingAddress     `json:"address"`
	JoinDate      time.Time           `json:"joinDate"`
	TotalOrders   int                 `json:"totalOrders"`
	TotalSpent    int                 `json:"totalSpent"`
	LastOrderDate *time.Time          `json:"lastOrderDate,omitempty"`
	IsActive      bool                `json:"isActive"`
	Preferences   CustomerPreferences `json:"preferences"`
}

// CustomerUpdate carries a partial edit. Nil fields are left untouched.
// Aggregate fields are deliberately absent; they cannot be set directly.
type CustomerUpdate struct {
	Name        *string              `json:"name"`
	Email       *string              `json:"email"`
	Phone       *string              `json:"phone"`
	Address     *ShippingAddress     `json:"address"`
	IsActive    *bool                `json:"isActive"`
	Preferences *CustomerPreferences `json:"preferences"`
}
