// Package dto defines data transfer objects for the journal HTTP API.
package dto

import (
	"time"

	"stock_journal/internal/feature/journal/domain/entity"
)

// EntryReq is the request body for creating or updating an entry. Price
// arrives as text, exactly as typed into the form; parsing happens at
// submission so the draft can hold partial input. The store-assigned fields
// (id, user_id, created_at, entry_date) are never client-supplied.
type EntryReq struct {
	Ticker       string `json:"ticker" binding:"required"`
	CompanyName  string `json:"company_name" binding:"required"`
	PriceAtEntry string `json:"price_at_entry" binding:"required"`
	Sentiment    string `json:"sentiment" binding:"omitempty,oneof=Bullish Neutral Bearish"`
	Content      string `json:"content" binding:"required"`
}

// EntryItem represents one entry in API responses.
type EntryItem struct {
	ID           string    `json:"id"`
	Ticker       string    `json:"ticker"`
	CompanyName  string    `json:"company_name"`
	EntryDate    time.Time `json:"entry_date"`
	Content      string    `json:"content"`
	PriceAtEntry string    `json:"price_at_entry"`
	Sentiment    string    `json:"sentiment"`
	CreatedAt    time.Time `json:"created_at"`
}

// EntryItemFromEntity converts a domain entity to its API representation.
func EntryItemFromEntity(e entity.Entry) EntryItem {
	return EntryItem{
		ID:           e.ID,
		Ticker:       e.Ticker,
		CompanyName:  e.CompanyName,
		EntryDate:    e.EntryDate,
		Content:      e.Content,
		PriceAtEntry: e.PriceAtEntry.String(),
		Sentiment:    string(e.Sentiment),
		CreatedAt:    e.CreatedAt,
	}
}

// EntryItemsFromEntities converts a slice of entities, preserving order.
func EntryItemsFromEntities(entries []entity.Entry) []EntryItem {
	out := make([]EntryItem, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryItemFromEntity(e))
	}
	return out
}
