package adapters

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"stock_journal/internal/feature/journal/domain/entity"
	"stock_journal/internal/feature/journal/usecase"
)

// entryPostgres is the postgres implementation of the EntryRepository
// interface. Every query is scoped by user id; this mirrors the row-level
// ownership the store enforces, it does not replace it.
type entryPostgres struct {
	db *gorm.DB
}

// Compile-time check that entryPostgres implements EntryRepository.
var _ usecase.EntryRepository = (*entryPostgres)(nil)

// NewEntryRepository creates a new entry repository on the given connection.
func NewEntryRepository(db *gorm.DB) *entryPostgres {
	return &entryPostgres{db: db}
}

// ListByUser returns all of a user's entries, newest created first.
func (r *entryPostgres) ListByUser(ctx context.Context, userID uint) ([]entity.Entry, error) {
	var models []EntryModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	entries := make([]entity.Entry, len(models))
	for i, m := range models {
		entries[i] = m.ToEntity()
	}
	return entries, nil
}

// Insert persists a new entry and writes the store-assigned fields back
// into e.
func (r *entryPostgres) Insert(ctx context.Context, e *entity.Entry) error {
	model := EntryModelFromEntity(e)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	*e = model.ToEntity()
	return nil
}

// Update applies the non-nil patch fields to the entry with the given id.
// It returns usecase.ErrEntryNotFound when no row matches.
func (r *entryPostgres) Update(ctx context.Context, userID uint, id string, patch usecase.EntryPatch) error {
	updates := map[string]any{}
	if patch.Ticker != nil {
		updates["ticker"] = strings.ToUpper(*patch.Ticker)
	}
	if patch.CompanyName != nil {
		updates["company_name"] = *patch.CompanyName
	}
	if patch.PriceAtEntry != nil {
		updates["price_at_entry"] = *patch.PriceAtEntry
	}
	if patch.Sentiment != nil {
		updates["sentiment"] = string(*patch.Sentiment)
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&EntryModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrEntryNotFound
	}
	return nil
}

// Delete removes the entry with the given id.
// It returns usecase.ErrEntryNotFound when no row matches.
func (r *entryPostgres) Delete(ctx context.Context, userID uint, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&EntryModel{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrEntryNotFound
	}
	return nil
}
