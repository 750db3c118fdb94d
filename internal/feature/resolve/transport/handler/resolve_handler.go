// Package handler provides the HTTP handlers for symbol resolution.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"watchlist_backend/internal/api"
	"watchlist_backend/internal/feature/resolve/domain/entity"
	"watchlist_backend/internal/feature/resolve/usecase"
)

// maxSuggestions caps the incremental search endpoint's result list.
const maxSuggestions = 8

// ResolveUsecase defines the usecase for symbol resolution.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ResolveUsecase interface {
	ResolveCandidates(ctx context.Context, query string) ([]entity.Candidate, error)
}

// ResolveHandler handles HTTP requests for symbol resolution.
type ResolveHandler struct {
	resolver ResolveUsecase
}

// NewResolveHandler creates a new ResolveHandler instance.
func NewResolveHandler(resolver ResolveUsecase) *ResolveHandler {
	return &ResolveHandler{resolver: resolver}
}

// Resolve handles the full candidate-resolution endpoint.
// - Returns 400 when the query is missing or too short
// - Returns 200 with the deduplicated candidate list, possibly empty
func (h *ResolveHandler) Resolve(c *gin.Context) {
	name := c.Query("name")

	cands, err := h.resolver.ResolveCandidates(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, usecase.ErrQueryTooShort) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "query too short"})
			return
		}
		slog.Error("resolve failed", "query", name, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "resolve failed"})
		return
	}

	out := make([]api.CandidateResponse, 0, len(cands))
	for _, cand := range cands {
		out = append(out, api.CandidateResponse{
			Ticker:   cand.Ticker,
			LongName: cand.LongName,
			Exchange: cand.Exchange,
			Source:   string(cand.Source),
		})
	}
	c.JSON(http.StatusOK, out)
}

// Search handles the incremental suggestion endpoint used while typing.
// A too-short query is not an error here: the box is simply still empty,
// so an empty list comes back with 200.
func (h *ResolveHandler) Search(c *gin.Context) {
	q := c.Query("q")

	cands, err := h.resolver.ResolveCandidates(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, usecase.ErrQueryTooShort) {
			c.JSON(http.StatusOK, []api.SuggestionResponse{})
			return
		}
		slog.Error("search failed", "query", q, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "search failed"})
		return
	}

	if len(cands) > maxSuggestions {
		cands = cands[:maxSuggestions]
	}
	out := make([]api.SuggestionResponse, 0, len(cands))
	for _, cand := range cands {
		out = append(out, api.SuggestionResponse{
			Ticker: cand.Ticker,
			Name:   cand.LongName,
			Ex:     cand.Exchange,
		})
	}
	c.JSON(http.StatusOK, out)
}
