// Package handler provides HTTP handlers for the watchlist feature.
package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stock_journal/internal/api"
	journalentity "stock_journal/internal/feature/journal/domain/entity"
	journaldto "stock_journal/internal/feature/journal/transport/http/dto"
	"stock_journal/internal/feature/watchlist/transport/http/dto"
	"stock_journal/internal/feature/watchlist/usecase"
	jwtmw "stock_journal/internal/platform/jwt"
)

// WatchlistUsecase is the usecase interface for watchlist views.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type WatchlistUsecase interface {
	Watchlist(ctx context.Context, userID uint) ([]usecase.Item, error)
	TickerEntries(ctx context.Context, userID uint, ticker string) ([]journalentity.Entry, error)
}

// WatchlistHandler handles HTTP requests for watchlist views.
type WatchlistHandler struct {
	uc WatchlistUsecase
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(uc WatchlistUsecase) *WatchlistHandler {
	return &WatchlistHandler{uc: uc}
}

// List returns the caller's deduplicated ticker list.
//
// GET /watchlist
func (h *WatchlistHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	items, err := h.uc.Watchlist(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.WatchlistItem, 0, len(items))
	for _, it := range items {
		out = append(out, dto.WatchlistItem{Ticker: it.Ticker, CompanyName: it.CompanyName})
	}
	c.JSON(http.StatusOK, out)
}

// Entries returns the caller's entries for one ticker, most recent entry
// date first. The path ticker is upper-cased before matching, mirroring how
// tickers are stored.
//
// GET /watchlist/:ticker/entries
func (h *WatchlistHandler) Entries(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}
	ticker := strings.ToUpper(c.Param("ticker"))

	entries, err := h.uc.TickerEntries(c.Request.Context(), userID, ticker)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, journaldto.EntryItemsFromEntities(entries))
}
