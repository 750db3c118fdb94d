// Package usecase implements the USD→KRW conversion used to present
// USD-denominated metrics in the local currency.
package usecase

import (
	"context"
	"log/slog"
	"math"

	pricesentity "watchlist_backend/internal/feature/prices/domain/entity"
)

const (
	// PairSymbol is the fixed currency-pair ticker queried for the rate.
	PairSymbol = "KRW=X"
	// HistoryRange is the window fetched; only the last close is used.
	HistoryRange = "5d"
	// FallbackRate is used whenever the live fetch fails (KRW per USD).
	FallbackRate = 1350.0
)

// HistoryRepository is the daily-bar source the rate is derived from.
type HistoryRepository interface {
	DailyBars(ctx context.Context, symbol, barRange string) ([]pricesentity.Bar, error)
}

// FxUsecase derives the USD→KRW rate from recent pair history. The result is
// recomputed per call; there is no cache at this layer.
type FxUsecase struct {
	history HistoryRepository
}

// NewFxUsecase creates an FxUsecase over the given history source.
func NewFxUsecase(history HistoryRepository) *FxUsecase {
	return &FxUsecase{history: history}
}

// UsdKrw returns the last non-null close of the pair history, or FallbackRate
// on any failure. It never returns an error.
func (u *FxUsecase) UsdKrw(ctx context.Context) float64 {
	bars, err := u.history.DailyBars(ctx, PairSymbol, HistoryRange)
	if err != nil {
		slog.Warn("fx fetch failed, using fallback rate", "pair", PairSymbol, "error", err)
		return FallbackRate
	}
	for i := len(bars) - 1; i >= 0; i-- {
		if bars[i].Close != nil {
			return *bars[i].Close
		}
	}
	slog.Warn("fx history had no closes, using fallback rate", "pair", PairSymbol)
	return FallbackRate
}

// ToKRW converts a USD price to a rounded KRW amount, or nil when the price
// is absent.
func ToKRW(usd *float64, rate float64) *int64 {
	if usd == nil {
		return nil
	}
	v := int64(math.Round(*usd * rate))
	return &v
}

// TurnoverKRW computes close×volume converted to KRW, rounded, or nil when
// either operand is absent.
func TurnoverKRW(closeUSD *float64, volume *int64, rate float64) *int64 {
	if closeUSD == nil || volume == nil {
		return nil
	}
	v := int64(math.Round(*closeUSD * float64(*volume) * rate))
	return &v
}
