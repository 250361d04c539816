package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stock_journal/internal/feature/journal/domain/entity"
	"stock_journal/internal/feature/journal/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&EntryModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func testEntry(userID uint, ticker string) *entity.Entry {
	return &entity.Entry{
		UserID:       userID,
		Ticker:       ticker,
		CompanyName:  "Test Corp",
		Content:      "thesis",
		PriceAtEntry: decimal.RequireFromString("100.25"),
		Sentiment:    entity.SentimentNeutral,
	}
}

func TestEntryPostgres_Insert(t *testing.T) {
	t.Run("store assigns id, created_at and entry_date", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEntryRepository(db)

		e := testEntry(1, "AAPL")
		err := repo.Insert(context.Background(), e)

		require.NoError(t, err)
		assert.NotEmpty(t, e.ID, "id is store-assigned")
		assert.False(t, e.CreatedAt.IsZero(), "created_at is store-assigned")
		assert.False(t, e.EntryDate.IsZero(), "entry_date defaults to now")
	})

	t.Run("ticker is stored uppercase whatever the caller sent", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEntryRepository(db)

		e := testEntry(1, "aapl")
		require.NoError(t, repo.Insert(context.Background(), e))

		got, err := repo.ListByUser(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "AAPL", got[0].Ticker)
	})

	t.Run("round-trip preserves the visible fields", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEntryRepository(db)

		e := &entity.Entry{
			UserID:       1,
			Ticker:       "aapl",
			CompanyName:  "Apple Inc.",
			Content:      "Q3 thesis",
			PriceAtEntry: decimal.RequireFromString("175.50"),
			Sentiment:    entity.SentimentBullish,
		}
		require.NoError(t, repo.Insert(context.Background(), e))

		got, err := repo.ListByUser(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "AAPL", got[0].Ticker)
		assert.Equal(t, "Apple Inc.", got[0].CompanyName)
		assert.Equal(t, "Q3 thesis", got[0].Content)
		assert.True(t, got[0].PriceAtEntry.Equal(decimal.RequireFromString("175.5")))
		assert.Equal(t, entity.SentimentBullish, got[0].Sentiment)
	})
}

func TestEntryPostgres_ListByUser(t *testing.T) {
	t.Run("orders by created_at descending", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEntryRepository(db)

		older := testEntry(1, "AAPL")
		older.CreatedAt = time.Now().Add(-time.Hour)
		require.NoError(t, repo.Insert(context.Background(), older))

		newer := testEntry(1, "MSFT")
		newer.CreatedAt = time.Now()
		require.NoError(t, repo.Insert(context.Background(), newer))

		got, err := repo.ListByUser(context.Background(), 1)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "MSFT", got[0].Ticker, "newest created first")
		assert.Equal(t, "AAPL", got[1].Ticker)
	})

	t.Run("only returns the requested user's rows", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEntryRepository(db)

		require.NoError(t, repo.Insert(context.Background(), testEntry(1, "AAPL")))
		require.NoError(t, repo.Insert(context.Background(), testEntry(2, "TSLA")))

		got, err := repo.ListByUser(context.Background(), 1)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, uint(1), got[0].UserID)
	})

	t.Run("empty store yields empty list without error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEntryRepository(db)

		got, err := repo.ListByUser(context.Background(), 1)

		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestEntryPostgres_Update(t *testing.T) {
	t.Run("applies only the patched fields", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEntryRepository(db)

		e := testEntry(1, "AAPL")
		require.NoError(t, repo.Insert(context.Background(), e))

		content := "revised thesis"
		err := repo.Update(context.Background(), 1, e.ID, usecase.EntryPatch{Content: &content})

		require.NoError(t, err)
		got, err := repo.ListByUser(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "revised thesis", got[0].Content)
		assert.Equal(t, "Test Corp", got[0].CompanyName, "unpatched fields survive")
		assert.Equal(t, e.ID, got[0].ID)
	})

	t.Run("upper-cases a patched ticker", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEntryRepository(db)

		e := testEntry(1, "AAPL")
		require.NoError(t, repo.Insert(context.Background(), e))

		ticker := "msft"
		require.NoError(t, repo.Update(context.Background(), 1, e.ID, usecase.EntryPatch{Ticker: &ticker}))

		got, _ := repo.ListByUser(context.Background(), 1)
		require.Len(t, got, 1)
		assert.Equal(t, "MSFT", got[0].Ticker)
	})

	t.Run("unknown id returns ErrEntryNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEntryRepository(db)

		content := "x"
		err := repo.Update(context.Background(), 1, "missing", usecase.EntryPatch{Content: &content})

		assert.ErrorIs(t, err, usecase.ErrEntryNotFound)
	})

	t.Run("cannot update another user's entry", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEntryRepository(db)

		e := testEntry(1, "AAPL")
		require.NoError(t, repo.Insert(context.Background(), e))

		content := "hijacked"
		err := repo.Update(context.Background(), 2, e.ID, usecase.EntryPatch{Content: &content})

		assert.ErrorIs(t, err, usecase.ErrEntryNotFound)
	})

	t.Run("empty patch is a no-op", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEntryRepository(db)

		e := testEntry(1, "AAPL")
		require.NoError(t, repo.Insert(context.Background(), e))

		assert.NoError(t, repo.Update(context.Background(), 1, e.ID, usecase.EntryPatch{}))
	})
}

func TestEntryPostgres_Delete(t *testing.T) {
	t.Run("removes the entry", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEntryRepository(db)

		e := testEntry(1, "TSLA")
		require.NoError(t, repo.Insert(context.Background(), e))

		require.NoError(t, repo.Delete(context.Background(), 1, e.ID))

		got, err := repo.ListByUser(context.Background(), 1)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown id returns ErrEntryNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEntryRepository(db)

		err := repo.Delete(context.Background(), 1, "missing")

		assert.ErrorIs(t, err, usecase.ErrEntryNotFound)
	})

	t.Run("cannot delete another user's entry", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEntryRepository(db)

		e := testEntry(1, "AAPL")
		require.NoError(t, repo.Insert(context.Background(), e))

		err := repo.Delete(context.Background(), 2, e.ID)

		assert.ErrorIs(t, err, usecase.ErrEntryNotFound)
		got, _ := repo.ListByUser(context.Background(), 1)
		assert.Len(t, got, 1, "the entry survives")
	})
}
