package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"stock_journal/internal/feature/journal/domain/entity"
)

// EntryRepository abstracts the persistence layer for journal entries.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters). Every operation is scoped to a single user;
// the store itself enforces row ownership, the userID arguments mirror that
// scoping rather than replace it.
type EntryRepository interface {
	// ListByUser returns all of a user's entries ordered by creation time,
	// newest first.
	ListByUser(ctx context.Context, userID uint) ([]entity.Entry, error)

	// Insert persists a new entry. The store assigns ID, CreatedAt and the
	// default EntryDate, writing them back into e.
	Insert(ctx context.Context, e *entity.Entry) error

	// Update applies a partial update to the entry with the given id.
	// It returns ErrEntryNotFound when no row matches.
	Update(ctx context.Context, userID uint, id string, patch EntryPatch) error

	// Delete removes the entry with the given id.
	// It returns ErrEntryNotFound when no row matches.
	Delete(ctx context.Context, userID uint, id string) error
}

// EntryPayload is a new entry as submitted by the user: an Entry minus the
// store-assigned fields (id, user_id, created_at, entry_date).
type EntryPayload struct {
	Ticker       string
	CompanyName  string
	PriceAtEntry decimal.Decimal
	Sentiment    entity.Sentiment
	Content      string
}

// EntryPatch is a partial update. Nil fields are left untouched.
type EntryPatch struct {
	Ticker       *string
	CompanyName  *string
	PriceAtEntry *decimal.Decimal
	Sentiment    *entity.Sentiment
	Content      *string
}
