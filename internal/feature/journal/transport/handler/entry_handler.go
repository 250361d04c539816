// Package handler provides HTTP handlers for the journal feature.
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_journal/internal/api"
	"stock_journal/internal/feature/journal/domain/entity"
	"stock_journal/internal/feature/journal/transport/http/dto"
	"stock_journal/internal/feature/journal/usecase"
	jwtmw "stock_journal/internal/platform/jwt"
)

// EntryHandler handles HTTP requests for journal entries. Every handler
// resolves the caller's journal through the manager; the auth middleware
// guarantees a user id is present.
type EntryHandler struct {
	journals *usecase.Manager
}

// NewEntryHandler creates a new EntryHandler over the given journal manager.
func NewEntryHandler(journals *usecase.Manager) *EntryHandler {
	return &EntryHandler{journals: journals}
}

// List returns all of the caller's entries, newest created first.
//
// GET /entries
func (h *EntryHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	journal := h.journals.ForUser(userID)
	journal.Refresh(c.Request.Context())
	if err := journal.Err(); err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.EntryItemsFromEntities(journal.Entries()))
}

// Create validates and stores a new entry through the entry form.
//
// POST /entries
func (h *EntryHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.EntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("entry validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	form := usecase.NewEntryForm(h.journals.ForUser(userID))
	form.Draft = usecase.Draft{
		Ticker:       req.Ticker,
		CompanyName:  req.CompanyName,
		PriceAtEntry: req.PriceAtEntry,
		Sentiment:    req.Sentiment,
		Content:      req.Content,
	}

	if err := form.Submit(c.Request.Context()); err != nil {
		h.writeSubmitError(c, form, err)
		return
	}

	c.JSON(http.StatusCreated, api.MessageResponse{Message: "ok"})
}

// Update edits an existing entry through the entry form, seeded from the
// stored entry so untouched fields keep their values.
//
// PUT /entries/:id
func (h *EntryHandler) Update(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}
	id := c.Param("id")

	var req dto.EntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("entry validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	journal := h.journals.ForUser(userID)
	existing, ok := h.findEntry(c, journal, id)
	if !ok {
		return
	}

	form := usecase.NewEditForm(journal, existing)
	form.Draft = usecase.Draft{
		Ticker:       req.Ticker,
		CompanyName:  req.CompanyName,
		PriceAtEntry: req.PriceAtEntry,
		Sentiment:    req.Sentiment,
		Content:      req.Content,
	}

	if err := form.Submit(c.Request.Context()); err != nil {
		h.writeSubmitError(c, form, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// Delete removes an entry.
//
// DELETE /entries/:id
func (h *EntryHandler) Delete(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}

	journal := h.journals.ForUser(userID)
	if err := journal.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "entry not found"})
			return
		}
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// findEntry resolves an entry id against the journal snapshot, refreshing
// first so an edit straight after login still finds its target.
func (h *EntryHandler) findEntry(c *gin.Context, journal *usecase.Journal, id string) (entity.Entry, bool) {
	journal.Refresh(c.Request.Context())
	if err := journal.Err(); err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return entity.Entry{}, false
	}
	for _, e := range journal.Entries() {
		if e.ID == id {
			return e, true
		}
	}
	c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "entry not found"})
	return entity.Entry{}, false
}

// writeSubmitError maps a form submission failure to a status code, keeping
// the form's user-readable message as the body.
func (h *EntryHandler) writeSubmitError(c *gin.Context, form *usecase.EntryForm, err error) {
	switch {
	case errors.Is(err, usecase.ErrMissingFields),
		errors.Is(err, usecase.ErrInvalidPrice),
		errors.Is(err, usecase.ErrInvalidSentiment):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: form.ErrMessage()})
	case errors.Is(err, usecase.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: form.ErrMessage()})
	case errors.Is(err, usecase.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: form.ErrMessage()})
	default:
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: form.ErrMessage()})
	}
}
