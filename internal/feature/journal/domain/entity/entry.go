// Package entity defines the domain models for the journal feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sentiment is the author's stance on a stock at the time of an entry.
type Sentiment string

const (
	SentimentBullish Sentiment = "Bullish"
	SentimentNeutral Sentiment = "Neutral"
	SentimentBearish Sentiment = "Bearish"
)

// Valid reports whether s is one of the three recognized sentiments.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentBullish, SentimentNeutral, SentimentBearish:
		return true
	}
	return false
}

// Entry represents one dated stock-analysis record owned by a single user.
// ID and CreatedAt are assigned by the store on creation; EntryDate defaults
// to the creation time but marks the logical date of the note. Ticker is
// always stored uppercase.
type Entry struct {
	ID           string          // Opaque unique identifier, immutable
	UserID       uint            // Owner, set from the authenticated session, immutable
	Ticker       string          // Uppercase symbol, not unique across entries
	CompanyName  string          // Free-text display name
	EntryDate    time.Time       // Logical date of the note
	Content      string          // Analysis body, unconstrained length
	PriceAtEntry decimal.Decimal // Price observed when the note was written
	Sentiment    Sentiment       // Defaults to Neutral
	CreatedAt    time.Time       // Store-assigned, default list ordering key (descending)
}
