package models

// CartItem is one line in the cart. Prices are whole naira.
type CartItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Price        int    `json:"price"`
	Image        string `json:"image,omitempty"`
	ImageKeyword string `json:"imageKeyword,omitempty"`
	Quantity     int    `json:"quantity"`
}

// Subtotal returns price x quantity for this line.
func (c CartItem) Subtotal() int {
	return c.Price * c.Quantity
}
