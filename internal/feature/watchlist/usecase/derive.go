// Package usecase implements the watchlist derivations for the journal.
package usecase

import (
	"sort"

	"stock_journal/internal/feature/journal/domain/entity"
)

// Item is one watchlist row: a ticker and the display name shown for it.
type Item struct {
	Ticker      string
	CompanyName string
}

// Derive produces the deduplicated ticker list from an entry list. The
// watchlist is a derived view, not a stored entity: for each ticker the
// company name comes from the first entry encountered in list order, and
// the output keeps first-seen order. With the store's default ordering
// (created_at descending) that means the most recently created entry's
// company name wins for display. Deterministic: the same ordered input
// always yields the same output.
func Derive(entries []entity.Entry) []Item {
	seen := make(map[string]struct{}, len(entries))
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Ticker]; ok {
			continue
		}
		seen[e.Ticker] = struct{}{}
		items = append(items, Item{Ticker: e.Ticker, CompanyName: e.CompanyName})
	}
	return items
}

// EntriesForTicker filters entries to the exact ticker and sorts them by
// entry date, most recent first. An empty ticker yields an empty slice.
// Entries with equal dates keep their relative input order, so with the
// store's default ordering ties resolve newest-created first.
func EntriesForTicker(entries []entity.Entry, ticker string) []entity.Entry {
	if ticker == "" {
		return []entity.Entry{}
	}

	out := make([]entity.Entry, 0)
	for _, e := range entries {
		if e.Ticker == ticker {
			out = append(out, e)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EntryDate.After(out[j].EntryDate)
	})
	return out
}
