package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestNewBackend_Memory(t *testing.T) {
	b, err := NewBackend("memory", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := b.(*MemorySource); !ok {
		t.Fatalf("expected *MemorySource, got %T", b)
	}
	if err := b.Ping(context.Background()); err != nil {
		t.Errorf("ping failed: %v", err)
	}
}

func TestNewBackend_MemoryFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `{"products":[{"name":"A","category":"Eyeglasses"},{"name":"B","category":"Bags"}]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	b, err := NewBackend("mem", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	products, err := b.ListProducts(context.Background(), "")
	if err != nil || len(products) != 2 {
		t.Errorf("expected 2 products, got %d (%v)", len(products), err)
	}
}

func TestNewBackend_Errors(t *testing.T) {
	if _, err := NewBackend("cassandra", ""); err == nil {
		t.Error("expected error for unknown kind")
	}
	if _, err := NewBackend("memory", filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing catalog file")
	}
}
