// Package dto defines data transfer objects for the watchlist HTTP API.
package dto

// WatchlistItem represents one watchlist row in the API response.
type WatchlistItem struct {
	Ticker      string `json:"ticker"`
	CompanyName string `json:"company_name"`
}
