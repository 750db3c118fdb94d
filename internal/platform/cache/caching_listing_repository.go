package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"watchlist_backend/internal/feature/resolve/domain/entity"
	"watchlist_backend/internal/feature/resolve/usecase"
)

// CachingListingRepository decorates a ListingRepository with Redis caching.
// The exchange listing is a bulk snapshot that changes at most daily, so the
// full table is cached under a single key. Caching is best effort: with a
// nil client, or on any Redis error, calls pass straight through.
type CachingListingRepository struct {
	inner usecase.ListingRepository
	rdb   *redis.Client
	ttl   time.Duration
	key   string
}

var _ usecase.ListingRepository = (*CachingListingRepository)(nil)

// NewCachingListingRepository decorates a ListingRepository with Redis caching.
// If ttl is 0, it defaults to 1 hour. If key is empty, it uses "krx:listing".
func NewCachingListingRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ListingRepository, key string) *CachingListingRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if key == "" {
		key = "krx:listing"
	}
	return &CachingListingRepository{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
		key:   key,
	}
}

// Listing retrieves the listing snapshot, checking the cache first and
// falling back to the upstream download.
func (c *CachingListingRepository) Listing(ctx context.Context) ([]entity.ListedSecurity, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Listing(ctx)
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, c.key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.ListedSecurity
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, c.key).Err()
	}

	// 2) Fallback to the upstream snapshot
	out, err := c.inner.Listing(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, c.key, b, c.ttl).Err()
	}

	return out, nil
}
