package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	journaladapters "stock_journal/internal/feature/journal/adapters"
	journalusecase "stock_journal/internal/feature/journal/usecase"
	"stock_journal/internal/platform/cache"
)

// NewEntryRepository creates the entry store, wrapped in the Redis caching
// decorator. A nil Redis client leaves the decorator in pass-through mode.
func NewEntryRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration) journalusecase.EntryRepository {
	repo := journaladapters.NewEntryRepository(db)
	return cache.NewCachingEntryRepository(rdb, ttl, repo, "entries")
}
