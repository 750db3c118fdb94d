// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"sync"
	"time"

	"watchlist_backend/internal/feature/prices/domain/entity"
	"watchlist_backend/internal/feature/prices/usecase"
)

// SnapshotCache is a mutex-guarded in-memory store of price snapshots with a
// TTL evaluated at read time. Entries live for the process lifetime only and
// are replaced in place on refresh; there is no capacity bound, which is
// acceptable for the small watch-list sizes this system targets.
type SnapshotCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]snapshotEntry
	now     func() time.Time // injectable clock for testing
}

type snapshotEntry struct {
	snap       entity.PriceSnapshot
	insertedAt time.Time
}

var _ usecase.SnapshotCache = (*SnapshotCache)(nil)

// NewSnapshotCache creates a SnapshotCache. If ttl is 0 or negative it
// defaults to the metrics usecase TTL.
func NewSnapshotCache(ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = usecase.CacheTTL
	}
	return &SnapshotCache{
		ttl:     ttl,
		entries: make(map[string]snapshotEntry),
		now:     time.Now,
	}
}

// Get returns the cached snapshot for a ticker while its entry is younger
// than the TTL. An expired entry is reported as a miss but left in place;
// it is overwritten by the next Put.
func (c *SnapshotCache) Get(ticker string) (entity.PriceSnapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[ticker]
	if !ok || c.now().Sub(e.insertedAt) >= c.ttl {
		return entity.PriceSnapshot{}, false
	}
	return e.snap, true
}

// Put stores a snapshot with the current time as its insertion timestamp.
func (c *SnapshotCache) Put(ticker string, snap entity.PriceSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[ticker] = snapshotEntry{snap: snap, insertedAt: c.now()}
}
