package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_journal/internal/feature/journal/domain/entity"
)

// mockEntryRepository is a mock implementation of the EntryRepository
// interface. It simulates store operations during testing.
type mockEntryRepository struct {
	mu sync.Mutex

	ListByUserFunc func(ctx context.Context, userID uint) ([]entity.Entry, error)
	InsertFunc     func(ctx context.Context, e *entity.Entry) error
	UpdateFunc     func(ctx context.Context, userID uint, id string, patch EntryPatch) error
	DeleteFunc     func(ctx context.Context, userID uint, id string) error

	listCalls   int
	insertCalls int
	updateCalls int
	deleteCalls int
}

func (m *mockEntryRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Entry, error) {
	m.mu.Lock()
	m.listCalls++
	m.mu.Unlock()
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockEntryRepository) Insert(ctx context.Context, e *entity.Entry) error {
	m.mu.Lock()
	m.insertCalls++
	m.mu.Unlock()
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, e)
	}
	return nil
}

func (m *mockEntryRepository) Update(ctx context.Context, userID uint, id string, patch EntryPatch) error {
	m.mu.Lock()
	m.updateCalls++
	m.mu.Unlock()
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, id, patch)
	}
	return nil
}

func (m *mockEntryRepository) Delete(ctx context.Context, userID uint, id string) error {
	m.mu.Lock()
	m.deleteCalls++
	m.mu.Unlock()
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return nil
}

func (m *mockEntryRepository) calls() (list, insert, update, del int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls, m.insertCalls, m.updateCalls, m.deleteCalls
}

func testPayload() EntryPayload {
	return EntryPayload{
		Ticker:       "AAPL",
		CompanyName:  "Apple Inc.",
		PriceAtEntry: decimal.RequireFromString("175.50"),
		Sentiment:    entity.SentimentBullish,
		Content:      "Q3 thesis",
	}
}

func TestJournal_Refresh(t *testing.T) {
	t.Run("success replaces snapshot and clears prior error", func(t *testing.T) {
		calls := 0
		repo := &mockEntryRepository{
			ListByUserFunc: func(ctx context.Context, userID uint) ([]entity.Entry, error) {
				calls++
				if calls == 1 {
					return nil, errors.New("store down")
				}
				return []entity.Entry{{ID: "1", Ticker: "AAPL"}}, nil
			},
		}
		j := NewJournal(repo, 1)

		j.Refresh(context.Background())
		require.Error(t, j.Err(), "first refresh should record the failure")
		assert.Empty(t, j.Entries())

		j.Refresh(context.Background())
		assert.NoError(t, j.Err(), "error should clear on the next success")
		assert.Len(t, j.Entries(), 1)
	})

	t.Run("failure keeps prior snapshot and sets sticky error", func(t *testing.T) {
		calls := 0
		repo := &mockEntryRepository{
			ListByUserFunc: func(ctx context.Context, userID uint) ([]entity.Entry, error) {
				calls++
				if calls == 1 {
					return []entity.Entry{{ID: "1", Ticker: "AAPL"}}, nil
				}
				return nil, errors.New("store down")
			},
		}
		j := NewJournal(repo, 1)

		j.Refresh(context.Background())
		require.NoError(t, j.Err())

		j.Refresh(context.Background())
		assert.Error(t, j.Err())
		assert.Len(t, j.Entries(), 1, "prior list survives a failed refresh")
	})

	t.Run("idempotent with a stable store", func(t *testing.T) {
		stable := []entity.Entry{{ID: "1", Ticker: "AAPL"}, {ID: "2", Ticker: "MSFT"}}
		repo := &mockEntryRepository{
			ListByUserFunc: func(ctx context.Context, userID uint) ([]entity.Entry, error) {
				return stable, nil
			},
		}
		j := NewJournal(repo, 1)

		j.Refresh(context.Background())
		first := j.Entries()
		j.Refresh(context.Background())
		second := j.Entries()

		assert.Equal(t, first, second)
	})

	t.Run("loading is false once the refresh resolves", func(t *testing.T) {
		repo := &mockEntryRepository{}
		j := NewJournal(repo, 1)

		j.Refresh(context.Background())

		assert.False(t, j.Loading())
	})

	t.Run("stale slow response does not clobber a newer one", func(t *testing.T) {
		// The first refresh starts, then a second one starts and resolves
		// before the first returns. The first response must be dropped.
		firstStarted := make(chan struct{})
		release := make(chan struct{})
		calls := 0
		var mu sync.Mutex

		repo := &mockEntryRepository{}
		repo.ListByUserFunc = func(ctx context.Context, userID uint) ([]entity.Entry, error) {
			mu.Lock()
			calls++
			n := calls
			mu.Unlock()
			if n == 1 {
				close(firstStarted)
				<-release // block until the newer refresh has resolved
				return []entity.Entry{{ID: "stale"}}, nil
			}
			return []entity.Entry{{ID: "fresh"}}, nil
		}
		j := NewJournal(repo, 1)

		done := make(chan struct{})
		go func() {
			j.Refresh(context.Background())
			close(done)
		}()

		<-firstStarted
		j.Refresh(context.Background()) // newer refresh, resolves immediately
		close(release)
		<-done

		entries := j.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, "fresh", entries[0].ID, "stale response must not overwrite the newer list")
	})
}

func TestJournal_Insert(t *testing.T) {
	t.Run("requires an authenticated user", func(t *testing.T) {
		repo := &mockEntryRepository{}
		j := NewJournal(repo, 0)

		err := j.Insert(context.Background(), testPayload())

		assert.ErrorIs(t, err, ErrAuthRequired)
		_, inserts, _, _ := repo.calls()
		assert.Zero(t, inserts, "no store call without a user")
	})

	t.Run("attaches the user id and resynchronizes after the insert", func(t *testing.T) {
		var inserted *entity.Entry
		repo := &mockEntryRepository{
			InsertFunc: func(ctx context.Context, e *entity.Entry) error {
				inserted = e
				return nil
			},
		}
		j := NewJournal(repo, 42)

		err := j.Insert(context.Background(), testPayload())

		require.NoError(t, err)
		require.NotNil(t, inserted)
		assert.Equal(t, uint(42), inserted.UserID)
		lists, inserts, _, _ := repo.calls()
		assert.Equal(t, 1, inserts)
		assert.Equal(t, 1, lists, "insert must be followed by a resynchronizing fetch")
	})

	t.Run("propagates store errors without refetching", func(t *testing.T) {
		storeErr := errors.New("insert rejected")
		repo := &mockEntryRepository{
			InsertFunc: func(ctx context.Context, e *entity.Entry) error {
				return storeErr
			},
		}
		j := NewJournal(repo, 1)

		err := j.Insert(context.Background(), testPayload())

		assert.ErrorIs(t, err, storeErr)
		lists, _, _, _ := repo.calls()
		assert.Zero(t, lists, "resync only starts after the mutation succeeds")
	})
}

func TestJournal_Update(t *testing.T) {
	t.Run("resynchronizes after a successful update", func(t *testing.T) {
		repo := &mockEntryRepository{}
		j := NewJournal(repo, 1)

		content := "revised thesis"
		err := j.Update(context.Background(), "abc", EntryPatch{Content: &content})

		require.NoError(t, err)
		lists, _, updates, _ := repo.calls()
		assert.Equal(t, 1, updates)
		assert.Equal(t, 1, lists)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		repo := &mockEntryRepository{
			UpdateFunc: func(ctx context.Context, userID uint, id string, patch EntryPatch) error {
				return ErrEntryNotFound
			},
		}
		j := NewJournal(repo, 1)

		err := j.Update(context.Background(), "missing", EntryPatch{})

		assert.ErrorIs(t, err, ErrEntryNotFound)
	})
}

func TestJournal_Delete(t *testing.T) {
	t.Run("resynchronizes after a successful delete", func(t *testing.T) {
		repo := &mockEntryRepository{}
		j := NewJournal(repo, 1)

		err := j.Delete(context.Background(), "abc")

		require.NoError(t, err)
		lists, _, _, deletes := repo.calls()
		assert.Equal(t, 1, deletes)
		assert.Equal(t, 1, lists)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		repo := &mockEntryRepository{
			DeleteFunc: func(ctx context.Context, userID uint, id string) error {
				return ErrEntryNotFound
			},
		}
		j := NewJournal(repo, 1)

		err := j.Delete(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrEntryNotFound)
	})
}

func TestManager_ForUser(t *testing.T) {
	repo := &mockEntryRepository{}
	m := NewManager(repo)

	a := m.ForUser(1)
	b := m.ForUser(1)
	c := m.ForUser(2)

	assert.Same(t, a, b, "same user gets the same journal")
	assert.NotSame(t, a, c, "different users get different journals")
}
