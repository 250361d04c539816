package usecase

import (
	"context"

	"stock_journal/internal/feature/journal/domain/entity"
)

// EntryLister is the slice of the entry store the watchlist reads from.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type EntryLister interface {
	ListByUser(ctx context.Context, userID uint) ([]entity.Entry, error)
}

// WatchlistUsecase derives watchlist views from a user's entries. The
// derivations themselves are pure; this type only fetches their input.
type WatchlistUsecase struct {
	entries EntryLister
}

// NewWatchlistUsecase creates a WatchlistUsecase over the given entry source.
func NewWatchlistUsecase(entries EntryLister) *WatchlistUsecase {
	return &WatchlistUsecase{entries: entries}
}

// Watchlist returns the user's deduplicated ticker list.
func (u *WatchlistUsecase) Watchlist(ctx context.Context, userID uint) ([]Item, error) {
	entries, err := u.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Derive(entries), nil
}

// TickerEntries returns the user's entries for one ticker, most recent
// entry date first.
func (u *WatchlistUsecase) TickerEntries(ctx context.Context, userID uint, ticker string) ([]entity.Entry, error) {
	entries, err := u.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return EntriesForTicker(entries, ticker), nil
}
