// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_journal/internal/feature/journal/domain/entity"
	"stock_journal/internal/feature/journal/usecase"
)

// CachingEntryRepository decorates an EntryRepository with Redis caching of
// the per-user entry list. Every mutation invalidates the owner's cached
// list, so the resynchronizing fetch that follows a mutation always sees the
// store's state. Caching is best effort: Redis failures never fail the
// operation, and a nil client bypasses the cache entirely.
type CachingEntryRepository struct {
	inner     usecase.EntryRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator still satisfies EntryRepository.
var _ usecase.EntryRepository = (*CachingEntryRepository)(nil)

// NewCachingEntryRepository decorates an EntryRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses
// "entries".
func NewCachingEntryRepository(rdb *redis.Client, ttl time.Duration, inner usecase.EntryRepository, namespace string) *CachingEntryRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "entries"
	}
	return &CachingEntryRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// cacheKey generates the cache key for a user's entry list.
func (c *CachingEntryRepository) cacheKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d", c.namespace, userID)
}

// invalidate drops a user's cached list. Best effort.
func (c *CachingEntryRepository) invalidate(ctx context.Context, userID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.cacheKey(userID)).Err()
}

// ListByUser retrieves a user's entries, checking the cache first and
// falling back to the store.
func (c *CachingEntryRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Entry, error) {
	if c.rdb == nil {
		return c.inner.ListByUser(ctx, userID)
	}

	key := c.cacheKey(userID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Entry
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Drop the corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fall back to the store
	out, err := c.inner.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Insert persists a new entry and invalidates the owner's cached list.
func (c *CachingEntryRepository) Insert(ctx context.Context, e *entity.Entry) error {
	if err := c.inner.Insert(ctx, e); err != nil {
		return err
	}
	c.invalidate(ctx, e.UserID)
	return nil
}

// Update applies a partial update and invalidates the owner's cached list.
func (c *CachingEntryRepository) Update(ctx context.Context, userID uint, id string, patch usecase.EntryPatch) error {
	if err := c.inner.Update(ctx, userID, id, patch); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

// Delete removes an entry and invalidates the owner's cached list.
func (c *CachingEntryRepository) Delete(ctx context.Context, userID uint, id string) error {
	if err := c.inner.Delete(ctx, userID, id); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}
