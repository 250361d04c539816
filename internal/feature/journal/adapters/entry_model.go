// Package adapters provides repository implementations for the journal feature.
package adapters

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"stock_journal/internal/feature/journal/domain/entity"
)

// EntryModel is the gorm model for the stock_entries table.
type EntryModel struct {
	ID           string          `gorm:"primaryKey;size:36"`
	UserID       uint            `gorm:"index;not null"`
	Ticker       string          `gorm:"size:20;index;not null"`
	CompanyName  string          `gorm:"size:255;not null"`
	EntryDate    time.Time       `gorm:"not null"`
	Content      string          `gorm:"type:text;not null"`
	PriceAtEntry decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Sentiment    string          `gorm:"size:16;not null;default:Neutral"`
	CreatedAt    time.Time       `gorm:"index;not null"`
}

// TableName returns the table name for gorm.
func (EntryModel) TableName() string {
	return "stock_entries"
}

// BeforeCreate assigns the store-owned fields: a fresh id and the default
// entry date. CreatedAt is filled by gorm itself.
func (m *EntryModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.EntryDate.IsZero() {
		m.EntryDate = time.Now()
	}
	return nil
}

// BeforeSave keeps the uppercase-ticker invariant at the store boundary,
// whatever the caller sent.
func (m *EntryModel) BeforeSave(tx *gorm.DB) error {
	m.Ticker = strings.ToUpper(m.Ticker)
	if m.Sentiment == "" {
		m.Sentiment = string(entity.SentimentNeutral)
	}
	return nil
}

// ToEntity converts the gorm model to a domain entity.
func (m *EntryModel) ToEntity() entity.Entry {
	return entity.Entry{
		ID:           m.ID,
		UserID:       m.UserID,
		Ticker:       m.Ticker,
		CompanyName:  m.CompanyName,
		EntryDate:    m.EntryDate,
		Content:      m.Content,
		PriceAtEntry: m.PriceAtEntry,
		Sentiment:    entity.Sentiment(m.Sentiment),
		CreatedAt:    m.CreatedAt,
	}
}

// EntryModelFromEntity converts a domain entity to a gorm model.
func EntryModelFromEntity(e *entity.Entry) *EntryModel {
	return &EntryModel{
		ID:           e.ID,
		UserID:       e.UserID,
		Ticker:       e.Ticker,
		CompanyName:  e.CompanyName,
		EntryDate:    e.EntryDate,
		Content:      e.Content,
		PriceAtEntry: e.PriceAtEntry,
		Sentiment:    string(e.Sentiment),
		CreatedAt:    e.CreatedAt,
	}
}
