package usecase

import (
	"context"
	"log/slog"
	"sync"

	"stock_journal/internal/feature/journal/domain/entity"
)

// Journal is the single source of truth for one signed-in user's entry list.
// It owns an in-memory snapshot of the entries and is the only component
// that talks to the entry store. Every mutation re-synchronizes the full
// list afterward instead of patching the snapshot locally: an extra round
// trip per write buys the absence of any client-side merge logic.
type Journal struct {
	repo   EntryRepository
	userID uint

	mu      sync.Mutex
	entries []entity.Entry
	loading bool
	err     error

	// seq orders overlapping refreshes: a response only replaces the
	// snapshot if no newer refresh has started since it began. Without this
	// a stale, slower response could clobber fresher data.
	seq     uint64
	applied uint64
}

// NewJournal creates a journal view for the given user.
func NewJournal(repo EntryRepository, userID uint) *Journal {
	return &Journal{repo: repo, userID: userID}
}

// Refresh replaces the snapshot with the store's current entry list.
// On success the prior error is cleared; on failure the prior snapshot is
// kept and the error is stored until the next successful refresh. Refresh
// never returns the failure itself: it is not user-triggered from a context
// with its own error display, so the error lives in the journal state.
func (j *Journal) Refresh(ctx context.Context) {
	j.mu.Lock()
	j.seq++
	seq := j.seq
	j.loading = true
	j.mu.Unlock()

	entries, err := j.repo.ListByUser(ctx, j.userID)

	j.mu.Lock()
	defer j.mu.Unlock()

	if seq < j.applied {
		// A newer refresh already resolved; drop this stale response.
		return
	}
	j.applied = seq
	if seq == j.seq {
		j.loading = false
	}

	if err != nil {
		slog.Error("failed to fetch entries", "user_id", j.userID, "error", err)
		j.err = err
		return
	}
	j.entries = entries
	j.err = nil
}

// Insert submits a new entry for the journal's user and re-synchronizes.
// It fails with ErrAuthRequired when the journal has no user, and propagates
// any store error to the caller.
func (j *Journal) Insert(ctx context.Context, p EntryPayload) error {
	if j.userID == 0 {
		return ErrAuthRequired
	}

	e := &entity.Entry{
		UserID:       j.userID,
		Ticker:       p.Ticker,
		CompanyName:  p.CompanyName,
		PriceAtEntry: p.PriceAtEntry,
		Sentiment:    p.Sentiment,
		Content:      p.Content,
	}
	if err := j.repo.Insert(ctx, e); err != nil {
		slog.Error("failed to insert entry", "user_id", j.userID, "ticker", p.Ticker, "error", err)
		return err
	}

	j.Refresh(ctx)
	return nil
}

// Update applies a partial update to the entry with the given id and
// re-synchronizes. Store errors propagate to the caller.
func (j *Journal) Update(ctx context.Context, id string, patch EntryPatch) error {
	if err := j.repo.Update(ctx, j.userID, id, patch); err != nil {
		slog.Error("failed to update entry", "user_id", j.userID, "entry_id", id, "error", err)
		return err
	}

	j.Refresh(ctx)
	return nil
}

// Delete removes the entry with the given id and re-synchronizes.
// Store errors propagate to the caller.
func (j *Journal) Delete(ctx context.Context, id string) error {
	if err := j.repo.Delete(ctx, j.userID, id); err != nil {
		slog.Error("failed to delete entry", "user_id", j.userID, "entry_id", id, "error", err)
		return err
	}

	j.Refresh(ctx)
	return nil
}

// Entries returns a copy of the current snapshot.
func (j *Journal) Entries() []entity.Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]entity.Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Loading reports whether a refresh is in flight.
func (j *Journal) Loading() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.loading
}

// Err returns the sticky error from the last failed refresh, or nil after
// a successful one.
func (j *Journal) Err() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.err
}

// Manager hands out one Journal per user, creating it on first use.
type Manager struct {
	repo EntryRepository

	mu       sync.Mutex
	journals map[uint]*Journal
}

// NewManager creates a Manager backed by the given repository.
func NewManager(repo EntryRepository) *Manager {
	return &Manager{
		repo:     repo,
		journals: make(map[uint]*Journal),
	}
}

// ForUser returns the journal for the given user.
func (m *Manager) ForUser(userID uint) *Journal {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.journals[userID]
	if !ok {
		j = NewJournal(m.repo, userID)
		m.journals[userID] = j
	}
	return j
}
