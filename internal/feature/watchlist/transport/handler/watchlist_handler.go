// Package handler provides the HTTP handlers for the watchlist feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"watchlist_backend/internal/api"
	"watchlist_backend/internal/feature/watchlist/domain/entity"
	"watchlist_backend/internal/feature/watchlist/usecase"
)

// WatchlistUsecase defines the usecase for watch-list operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type WatchlistUsecase interface {
	Add(ctx context.Context, ticker string, qty, avgPriceKRW float64) (entity.Item, error)
	UpdatePosition(ctx context.Context, ticker string, qty, avgPriceKRW float64) (entity.Item, error)
	Remove(ctx context.Context, ticker string) error
	List(ctx context.Context) ([]entity.Item, error)
}

// WatchlistHandler handles HTTP requests for the watch list.
type WatchlistHandler struct {
	watchlist WatchlistUsecase
}

// NewWatchlistHandler creates a new WatchlistHandler instance.
func NewWatchlistHandler(watchlist WatchlistUsecase) *WatchlistHandler {
	return &WatchlistHandler{watchlist: watchlist}
}

func toItemResponse(item entity.Item) api.WatchlistItemResponse {
	return api.WatchlistItemResponse{
		Ticker:      item.Ticker,
		Name:        item.Name,
		Qty:         item.Qty,
		AvgPriceKRW: item.AvgPriceKRW,
		UpdatedAt:   item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// List returns every stored watch-list entry.
func (h *WatchlistHandler) List(c *gin.Context) {
	items, err := h.watchlist.List(c.Request.Context())
	if err != nil {
		slog.Error("listing watchlist failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load watchlist"})
		return
	}
	out := make([]api.WatchlistItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	c.JSON(http.StatusOK, out)
}

// Add registers a new watch-list entry.
// - Returns 400 on a malformed body or blank ticker
// - Returns 404 when the ticker cannot be verified upstream
// - Returns 201 with the stored entry
func (h *WatchlistHandler) Add(c *gin.Context) {
	var req api.WatchlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	item, err := h.watchlist.Add(c.Request.Context(), req.Ticker, req.Qty, req.AvgPriceKRW)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyTicker):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "ticker must not be empty"})
		case errors.Is(err, usecase.ErrUnknownTicker):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "ticker not found"})
		default:
			slog.Error("adding watchlist item failed", "ticker", req.Ticker, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to add item"})
		}
		return
	}
	c.JSON(http.StatusCreated, toItemResponse(item))
}

// Update changes the position of an existing entry.
func (h *WatchlistHandler) Update(c *gin.Context) {
	ticker := c.Param("ticker")

	var req struct {
		Qty         float64 `json:"qty"`
		AvgPriceKRW float64 `json:"avg_price_krw"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	item, err := h.watchlist.UpdatePosition(c.Request.Context(), ticker, req.Qty, req.AvgPriceKRW)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyTicker):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "ticker must not be empty"})
		case errors.Is(err, usecase.ErrItemNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "item not found"})
		default:
			slog.Error("updating watchlist item failed", "ticker", ticker, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update item"})
		}
		return
	}
	c.JSON(http.StatusOK, toItemResponse(item))
}

// Remove deletes an entry.
func (h *WatchlistHandler) Remove(c *gin.Context) {
	ticker := c.Param("ticker")

	if err := h.watchlist.Remove(c.Request.Context(), ticker); err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyTicker):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "ticker must not be empty"})
		case errors.Is(err, usecase.ErrItemNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "item not found"})
		default:
			slog.Error("removing watchlist item failed", "ticker", ticker, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to remove item"})
		}
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}
