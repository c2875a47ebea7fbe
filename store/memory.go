// Package store provides the product sources the catalog engine reads from.
package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/digitalbuddiesspune/stylishtouches-sub000/catalog"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/models"
	"github.com/google/uuid"
)

// MemorySource is a thread-safe in-memory catalog.Source
type MemorySource struct {
	mu       sync.RWMutex
	products []models.Product
}

// compile-time assertion that MemorySource implements catalog.Source
var _ catalog.Source = (*MemorySource)(nil)

// NewMemorySource constructs a MemorySource holding products
func NewMemorySource(products []models.Product) *MemorySource {
	s := &MemorySource{}
	s.Replace(products)
	return s
}

// Replace swaps the whole catalog. Products without an id get a UUID v7.
func (s *MemorySource) Replace(products []models.Product) {
	next := prepare(products)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = next
}

func prepare(products []models.Product) []models.Product {
	next := make([]models.Product, len(products))
	copy(next, products)
	for i := range next {
		if next[i].ID == "" {
			next[i].ID = uuid.Must(uuid.NewV7()).String()
		}
	}
	sortByStoreOrder(next)
	return next
}

func (s *MemorySource) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	want := catalog.NormalizeCategory(category)
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if want == "" || catalog.NormalizeCategory(p.Category) == want {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemorySource) Import(ctx context.Context, products []models.Product, truncate bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if truncate {
		s.Replace(products)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	merged := make([]models.Product, 0, len(s.products)+len(products))
	merged = append(merged, s.products...)
	s.products = prepare(append(merged, products...))
	return nil
}

func (s *MemorySource) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemorySource) Close() error { return nil }

// sortByStoreOrder applies the order every source returns: newest first, then id.
func sortByStoreOrder(products []models.Product) {
	slices.SortStableFunc(products, func(a, b models.Product) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
