package store

import (
	"encoding/json"
	"log"
	"sync"

	"lushlocks-backend/models"
	"lushlocks-backend/storage"
)

// cartSnapshot is the persisted shape of the cart blob.
type cartSnapshot struct {
	Items []models.CartItem `json:"items"`
}

// Cart holds the storefront cart: at most one line per product id.
// Every mutation persists the full collection before returning.
type Cart struct {
	mu      sync.Mutex
	items   []models.CartItem
	backend storage.Backend
	key     string
}

// NewCart restores the cart from its snapshot. A missing or unreadable
// snapshot starts the cart empty rather than failing.
func NewCart(backend storage.Backend) *Cart {
	c := &Cart{backend: backend, key: storage.CartKey}

	data, err := backend.Load(c.key)
	if err != nil {
		log.Printf("WARNING: could not load cart snapshot, starting empty: %v", err)
		return c
	}
	if data == nil {
		return c
	}

	var snap cartSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("WARNING: malformed cart snapshot, starting empty: %v", err)
		return c
	}
	c.items = snap.Items
	return c
}

func (c *Cart) persist() {
	data, err := json.Marshal(cartSnapshot{Items: c.items})
	if err != nil {
		log.Printf("ERROR: failed to serialize cart: %v", err)
		return
	}
	if err := c.backend.Save(c.key, data); err != nil {
		log.Printf("ERROR: failed to persist cart: %v", err)
	}
}

// Add appends item to the cart. If a line with the same id already exists
// its quantity is incremented instead of duplicating the line. A quantity
// of 0 or less on the incoming item counts as 1.
func (c *Cart) Add(item models.CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	qty := item.Quantity
	if qty <= 0 {
		qty = 1
	}

	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity += qty
			c.persist()
			return
		}
	}

	item.Quantity = qty
	c.items = append(c.items, item)
	c.persist()
}

// UpdateQuantity sets the quantity of the line with the given id. A
// quantity of 0 or less removes the line.
func (c *Cart) UpdateQuantity(id string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID != id {
			continue
		}
		if quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = quantity
		}
		c.persist()
		return nil
	}

	return &NotFoundError{Entity: "cart item", ID: id}
}

// Remove drops the line with the given id. Removing an absent id is a
// no-op.
func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.persist()
}

// Total returns the sum of price x quantity over all lines.
func (c *Cart) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

// ItemCount returns the number of distinct lines, for the cart badge.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// TotalQuantity returns the summed quantity across all lines.
func (c *Cart) TotalQuantity() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Items returns a copy of the current lines.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}
