package storage

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func backends(t *testing.T) map[string]Backend {
	t.Helper()

	fb, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&StoreSnapshot{}); err != nil {
		t.Fatal(err)
	}

	return map[string]Backend{
		"memory": NewMemoryBackend(),
		"file":   fb,
		"gorm":   NewGormBackend(db),
	}
}

func TestBackendRoundTrip(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := b.Save(CartKey, []byte(`{"items":[]}`)); err != nil {
				t.Fatalf("save failed: %v", err)
			}

			data, err := b.Load(CartKey)
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}
			if string(data) != `{"items":[]}` {
				t.Errorf("round trip mismatch: %q", data)
			}
		})
	}
}

func TestBackendLoadMissingKey(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			data, err := b.Load("never-written")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if data != nil {
				t.Errorf("expected nil for missing key, got %q", data)
			}
		})
	}
}

func TestBackendOverwrite(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := b.Save(WishlistKey, []byte("v1")); err != nil {
				t.Fatal(err)
			}
			if err := b.Save(WishlistKey, []byte("v2")); err != nil {
				t.Fatal(err)
			}

			data, err := b.Load(WishlistKey)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != "v2" {
				t.Errorf("expected last write to win, got %q", data)
			}
		})
	}
}

func TestBackendDelete(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := b.Save(AuthKey, []byte("x")); err != nil {
				t.Fatal(err)
			}
			if err := b.Delete(AuthKey); err != nil {
				t.Fatalf("delete failed: %v", err)
			}

			data, err := b.Load(AuthKey)
			if err != nil {
				t.Fatal(err)
			}
			if data != nil {
				t.Error("expected key gone after delete")
			}

			// Deleting again is a no-op.
			if err := b.Delete(AuthKey); err != nil {
				t.Errorf("second delete should be a no-op, got %v", err)
			}
		})
	}
}

func TestMemoryBackendCopiesData(t *testing.T) {
	b := NewMemoryBackend()
	buf := []byte("original")
	if err := b.Save(CRUDKey, buf); err != nil {
		t.Fatal(err)
	}
	buf[0] = 'X'

	data, err := b.Load(CRUDKey)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "original" {
		t.Errorf("backend must not alias caller buffers, got %q", data)
	}
}
