// Package usecase implements the business logic for watch-list operations.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"watchlist_backend/internal/feature/watchlist/domain/entity"
)

var (
	// ErrEmptyTicker is returned when the requested ticker is blank.
	ErrEmptyTicker = errors.New("ticker must not be empty")
	// ErrUnknownTicker is returned when the ticker cannot be verified upstream.
	ErrUnknownTicker = errors.New("ticker not found")
	// ErrItemNotFound is returned when the ticker is not in the watch list.
	ErrItemNotFound = errors.New("watchlist item not found")
)

// ItemRepository abstracts the persistence layer for watch-list items.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ItemRepository interface {
	Upsert(ctx context.Context, item entity.Item) error
	Find(ctx context.Context, ticker string) (entity.Item, error)
	Delete(ctx context.Context, ticker string) error
	List(ctx context.Context) ([]entity.Item, error)
}

// NameLookup verifies a ticker exists upstream and returns its display name.
type NameLookup interface {
	QuoteName(ctx context.Context, ticker string) (string, error)
}

// WatchlistUsecase provides business logic for watch-list operations.
type WatchlistUsecase struct {
	repo  ItemRepository
	names NameLookup
	now   func() time.Time
}

// NewWatchlistUsecase creates a new WatchlistUsecase with the given
// repository and name lookup.
func NewWatchlistUsecase(repo ItemRepository, names NameLookup) *WatchlistUsecase {
	return &WatchlistUsecase{repo: repo, names: names, now: time.Now}
}

// Add registers a ticker in the watch list. The ticker is verified against
// the quote source first so typos never enter the list; tickers that resolve
// to no name are rejected.
func (u *WatchlistUsecase) Add(ctx context.Context, ticker string, qty, avgPriceKRW float64) (entity.Item, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return entity.Item{}, ErrEmptyTicker
	}

	name, err := u.names.QuoteName(ctx, ticker)
	if err != nil {
		return entity.Item{}, fmt.Errorf("verify ticker %s: %w", ticker, err)
	}
	if name == "" {
		return entity.Item{}, ErrUnknownTicker
	}

	item := entity.Item{
		Ticker:      ticker,
		Name:        name,
		Qty:         qty,
		AvgPriceKRW: avgPriceKRW,
		UpdatedAt:   u.now(),
	}
	if err := u.repo.Upsert(ctx, item); err != nil {
		return entity.Item{}, err
	}
	return item, nil
}

// UpdatePosition changes the held quantity and average price of an existing
// item without re-verifying the ticker.
func (u *WatchlistUsecase) UpdatePosition(ctx context.Context, ticker string, qty, avgPriceKRW float64) (entity.Item, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return entity.Item{}, ErrEmptyTicker
	}

	item, err := u.repo.Find(ctx, ticker)
	if err != nil {
		return entity.Item{}, err
	}

	item.Qty = qty
	item.AvgPriceKRW = avgPriceKRW
	item.UpdatedAt = u.now()
	if err := u.repo.Upsert(ctx, item); err != nil {
		return entity.Item{}, err
	}
	return item, nil
}

// Remove deletes a ticker from the watch list.
func (u *WatchlistUsecase) Remove(ctx context.Context, ticker string) error {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return ErrEmptyTicker
	}
	return u.repo.Delete(ctx, ticker)
}

// List returns all watch-list items.
func (u *WatchlistUsecase) List(ctx context.Context) ([]entity.Item, error) {
	return u.repo.List(ctx)
}

// ListTickers returns the tickers of all watch-list items in list order.
func (u *WatchlistUsecase) ListTickers(ctx context.Context) ([]string, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	tickers := make([]string, 0, len(items))
	for _, item := range items {
		tickers = append(tickers, item.Ticker)
	}
	return tickers, nil
}
