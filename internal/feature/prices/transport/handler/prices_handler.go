// Package handler provides the HTTP handlers for the price table endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"watchlist_backend/internal/api"
	fxusecase "watchlist_backend/internal/feature/fx/usecase"
	"watchlist_backend/internal/feature/prices/domain/entity"
	"watchlist_backend/internal/feature/prices/usecase"
)

// MetricsUsecase defines the usecase for snapshot computation.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type MetricsUsecase interface {
	GetMetricsBatch(ctx context.Context, tickers []string) []entity.PriceSnapshot
}

// RateUsecase supplies the USD to KRW conversion rate.
type RateUsecase interface {
	UsdKrw(ctx context.Context) float64
}

// TickerSource supplies the default ticker list when the request names none.
type TickerSource interface {
	ListTickers(ctx context.Context) ([]string, error)
}

// NameLookup resolves display names for the KRW table.
type NameLookup interface {
	QuoteName(ctx context.Context, ticker string) (string, error)
}

// PricesHandler handles HTTP requests for the price tables.
type PricesHandler struct {
	metrics   MetricsUsecase
	rate      RateUsecase
	watchlist TickerSource
	names     NameLookup
}

// NewPricesHandler creates a new PricesHandler instance.
func NewPricesHandler(metrics MetricsUsecase, rate RateUsecase, watchlist TickerSource, names NameLookup) *PricesHandler {
	return &PricesHandler{metrics: metrics, rate: rate, watchlist: watchlist, names: names}
}

// requestedTickers returns the explicit tickers from the query string, or the
// watch-list tickers when none were given.
func (h *PricesHandler) requestedTickers(c *gin.Context) ([]string, error) {
	if raw := c.Query("tickers"); raw != "" {
		parts := strings.Split(raw, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.ToUpper(strings.TrimSpace(p)); p != "" {
				out = append(out, p)
			}
		}
		return out, nil
	}
	return h.watchlist.ListTickers(c.Request.Context())
}

// Table handles the USD price-table endpoint.
// - tickers=NVDA,GOOG selects explicit symbols; otherwise the watch list is used
// - Per-ticker failures surface as rows with an error field, never as a 5xx
func (h *PricesHandler) Table(c *gin.Context) {
	tickers, err := h.requestedTickers(c)
	if err != nil {
		slog.Error("loading watchlist tickers failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load watchlist"})
		return
	}

	snaps := h.metrics.GetMetricsBatch(c.Request.Context(), tickers)

	rows := make([]api.SnapshotResponse, 0, len(snaps))
	for _, s := range snaps {
		rows = append(rows, api.SnapshotResponse{
			Ticker:    s.Ticker,
			Close:     s.Close,
			PrevClose: s.PrevClose,
			ChangePct: s.ChangePct,
			MarketCap: s.MarketCap,
			Volume:    s.Volume,
			Error:     s.Err,
		})
	}

	c.JSON(http.StatusOK, api.PricesResponse{
		AsofUTC:     time.Now().UTC().Format(time.RFC3339),
		Tickers:     tickers,
		Rows:        rows,
		CacheTTLSec: int(usecase.CacheTTL.Seconds()),
	})
}

// TableKRW handles the KRW-converted price-table endpoint. One rate is
// fetched per request and applied to every row.
func (h *PricesHandler) TableKRW(c *gin.Context) {
	tickers, err := h.requestedTickers(c)
	if err != nil {
		slog.Error("loading watchlist tickers failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load watchlist"})
		return
	}

	ctx := c.Request.Context()
	rate := h.rate.UsdKrw(ctx)
	snaps := h.metrics.GetMetricsBatch(ctx, tickers)

	rows := make([]api.PriceRowKRW, 0, len(snaps))
	for _, s := range snaps {
		name := s.Ticker
		if h.names != nil {
			if n, err := h.names.QuoteName(ctx, s.Ticker); err == nil && n != "" {
				name = n
			}
		}
		rows = append(rows, api.PriceRowKRW{
			Name:            name,
			Ticker:          s.Ticker,
			CurrentPriceKRW: fxusecase.ToKRW(s.Close, rate),
			CurrentPriceUSD: s.Close,
			ChangePct:       s.ChangePct,
			TurnoverKRW:     fxusecase.TurnoverKRW(s.Close, s.Volume, rate),
			CloseKRW:        fxusecase.ToKRW(s.PrevClose, rate),
			CloseUSD:        s.PrevClose,
			Volume:          s.Volume,
		})
	}

	c.JSON(http.StatusOK, api.PricesKRWResponse{
		AsofUTC:     time.Now().UTC().Format(time.RFC3339),
		UsdKrw:      rate,
		Tickers:     tickers,
		Rows:        rows,
		CacheTTLSec: int(usecase.CacheTTL.Seconds()),
	})
}
