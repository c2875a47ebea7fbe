package catalog_cache

import (
	"sync"
	"time"

	"github.com/digitalbuddiesspune/stylishtouches-sub000/catalog"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/models"
)

// TTL bounds how long a snapshot is served without hitting the store.
var TTL = 5 * time.Minute

// ── Per-category product snapshots ───────────────────────────────────────────
// Snapshots are shared by concurrent requests and must be treated as read-only.
// The whole-catalog snapshot is stored under the empty key.

type snapshotEntry struct {
	products  []models.Product
	fetchedAt time.Time
}

var (
	snapshotMu sync.RWMutex
	snapshots  = make(map[string]*snapshotEntry)
	// generation is bumped by every invalidation
	generation uint64
)

func GetSnapshot(category string) ([]models.Product, bool) {
	key := catalog.NormalizeCategory(category)

	snapshotMu.RLock()
	defer snapshotMu.RUnlock()
	entry, ok := snapshots[key]
	if ok && time.Since(entry.fetchedAt) < TTL {
		return entry.products, true
	}
	return nil, false
}

func SetSnapshot(category string, products []models.Product) {
	key := catalog.NormalizeCategory(category)

	snapshotMu.Lock()
	defer snapshotMu.Unlock()
	snapshots[key] = &snapshotEntry{
		products:  products,
		fetchedAt: time.Now(),
	}
}

// Generation returns the current invalidation generation. Read it before
// fetching from the store and pass it to StoreSnapshot.
func Generation() uint64 {
	snapshotMu.RLock()
	defer snapshotMu.RUnlock()
	return generation
}

// StoreSnapshot caches products fetched under gen. The snapshot is discarded
// when an invalidation happened since gen was read, because the fetch may
// predate the change.
func StoreSnapshot(category string, products []models.Product, gen uint64) bool {
	key := catalog.NormalizeCategory(category)

	snapshotMu.Lock()
	defer snapshotMu.Unlock()
	if gen != generation {
		return false
	}
	snapshots[key] = &snapshotEntry{
		products:  products,
		fetchedAt: time.Now(),
	}
	return true
}

// ── Invalidation (called on catalog change events) ───────────────────────────

// Invalidate drops the category's snapshot and the whole-catalog snapshot,
// which also contains that category's products.
func Invalidate(category string) {
	key := catalog.NormalizeCategory(category)
	if key == "" {
		InvalidateAll()
		return
	}

	snapshotMu.Lock()
	defer snapshotMu.Unlock()
	generation++
	delete(snapshots, key)
	delete(snapshots, "")
}

func InvalidateAll() {
	snapshotMu.Lock()
	defer snapshotMu.Unlock()
	generation++
	snapshots = make(map[string]*snapshotEntry)
}
