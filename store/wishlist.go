package store

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"lushlocks-backend/models"
	"lushlocks-backend/storage"
)

type wishlistSnapshot struct {
	Items []models.WishlistItem `json:"items"`
}

// Wishlist holds liked products, unique by product id.
type Wishlist struct {
	mu      sync.Mutex
	items   []models.WishlistItem
	backend storage.Backend
	key     string

	// now is swappable so tests can pin AddedAt.
	now func() time.Time
}

func NewWishlist(backend storage.Backend) *Wishlist {
	w := &Wishlist{backend: backend, key: storage.WishlistKey, now: time.Now}

	data, err := backend.Load(w.key)
	if err != nil {
		log.Printf("WARNING: could not load wishlist snapshot, starting empty: %v", err)
		return w
	}
	if data == nil {
		return w
	}

	var snap wishlistSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("WARNING: malformed wishlist snapshot, starting empty: %v", err)
		return w
	}
	w.items = snap.Items
	return w
}

func (w *Wishlist) persist() {
	data, err := json.Marshal(wishlistSnapshot{Items: w.items})
	if err != nil {
		log.Printf("ERROR: failed to serialize wishlist: %v", err)
		return
	}
	if err := w.backend.Save(w.key, data); err != nil {
		log.Printf("ERROR: failed to persist wishlist: %v", err)
	}
}

// Add stores a product snapshot with the current time. Adding an id that
// is already present is a no-op.
func (w *Wishlist) Add(item models.WishlistItem) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, existing := range w.items {
		if existing.ID == item.ID {
			return
		}
	}

	item.AddedAt = w.now()
	w.items = append(w.items, item)
	w.persist()
}

// Remove drops the entry with the given product id. Idempotent.
func (w *Wishlist) Remove(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i := range w.items {
		if w.items[i].ID == id {
			w.items = append(w.items[:i], w.items[i+1:]...)
			w.persist()
			return
		}
	}
}

// Contains reports whether the product id is in the wishlist.
func (w *Wishlist) Contains(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, item := range w.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Clear empties the wishlist.
func (w *Wishlist) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.items = nil
	w.persist()
}

// Count returns the number of liked products.
func (w *Wishlist) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.items)
}

// Items returns a copy of the current entries.
func (w *Wishlist) Items() []models.WishlistItem {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]models.WishlistItem, len(w.items))
	copy(out, w.items)
	return out
}
