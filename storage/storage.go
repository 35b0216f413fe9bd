package storage

import "sync"

// Default storage keys. These match the blobs the storefront has always
// persisted, so existing data stays readable.
const (
	CartKey     = "cart-storage"
	WishlistKey = "wishlist-storage"
	CRUDKey     = "crud-storage"
	AuthKey     = "auth-storage"
)

// Backend persists one JSON snapshot per storage key. Load returns
// (nil, nil) when the key has never been written.
type Backend interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
	Delete(key string) error
}

// MemoryBackend keeps snapshots in a map. Used by tests and available as a
// throwaway backend for local experiments.
type MemoryBackend struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{blobs: make(map[string][]byte)}
}

func (m *MemoryBackend) Load(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.blobs[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemoryBackend) Save(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	m.blobs[key] = stored
	return nil
}

func (m *MemoryBackend) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.blobs, key)
	return nil
}
