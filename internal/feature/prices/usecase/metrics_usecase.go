// Package usecase implements the business logic for price metrics: computing
// snapshots from daily-bar history behind a time-bounded cache.
package usecase

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"watchlist_backend/internal/feature/prices/domain/entity"
)

const (
	// CacheTTL is how long a computed snapshot is served without re-fetching.
	CacheTTL = 600 * time.Second
	// HistoryRange is the trailing window of daily bars fetched per ticker.
	HistoryRange = "7d"
)

// HistoryRepository abstracts the daily-bar history source.
type HistoryRepository interface {
	DailyBars(ctx context.Context, symbol, barRange string) ([]entity.Bar, error)
}

// MarketCapRepository abstracts the lightweight snapshot source used for
// market capitalization. A nil value with a nil error means the upstream
// simply has no figure for the ticker.
type MarketCapRepository interface {
	MarketCap(ctx context.Context, ticker string) (*float64, error)
}

// SnapshotCache is the process-wide snapshot store. Implementations must be
// safe for concurrent use; expiry is decided at read time.
type SnapshotCache interface {
	Get(ticker string) (entity.PriceSnapshot, bool)
	Put(ticker string, snap entity.PriceSnapshot)
}

// MetricsUsecase computes price snapshots, consulting the cache first and
// falling through to upstream history on miss or expiry.
type MetricsUsecase struct {
	history HistoryRepository
	caps    MarketCapRepository
	cache   SnapshotCache
	now     func() time.Time // injectable clock for testing
}

// NewMetricsUsecase creates a MetricsUsecase. caps may be nil, in which case
// market capitalization is always absent.
func NewMetricsUsecase(history HistoryRepository, caps MarketCapRepository, cache SnapshotCache) *MetricsUsecase {
	return &MetricsUsecase{
		history: history,
		caps:    caps,
		cache:   cache,
		now:     time.Now,
	}
}

// GetMetrics returns the snapshot for one ticker. A live cache entry is
// returned unchanged. On a fresh fetch, close and previous close come from
// the last two non-null closes; change percent is computed only when the
// previous close is non-null and non-zero. A failed upstream fetch yields a
// snapshot with only the ticker populated, and that failure snapshot is NOT
// written to the cache, so the next call retries upstream.
func (u *MetricsUsecase) GetMetrics(ctx context.Context, ticker string) entity.PriceSnapshot {
	sym := strings.ToUpper(strings.TrimSpace(ticker))
	if cached, ok := u.cache.Get(sym); ok {
		return cached
	}

	snap := entity.PriceSnapshot{Ticker: sym, FetchedAt: u.now()}

	bars, err := u.history.DailyBars(ctx, sym, HistoryRange)
	if err != nil {
		slog.Warn("history fetch failed", "ticker", sym, "error", err)
		snap.Err = err.Error()
		return snap
	}

	closes := make([]float64, 0, len(bars))
	for _, b := range bars {
		if b.Close != nil {
			closes = append(closes, *b.Close)
		}
	}

	switch {
	case len(closes) >= 2:
		last, prev := closes[len(closes)-1], closes[len(closes)-2]
		snap.Close, snap.PrevClose = &last, &prev
		if prev != 0 {
			pct := round2((last - prev) / prev * 100)
			snap.ChangePct = &pct
		}
	case len(closes) == 1:
		last := closes[0]
		snap.Close = &last
	}

	// Most recent non-null daily volume.
	for i := len(bars) - 1; i >= 0; i-- {
		if bars[i].Volume != nil {
			v := *bars[i].Volume
			snap.Volume = &v
			break
		}
	}

	if u.caps != nil {
		mc, err := u.caps.MarketCap(ctx, sym)
		if err != nil {
			// Missing market cap does not invalidate the snapshot.
			slog.Warn("market cap fetch failed", "ticker", sym, "error", err)
		} else {
			snap.MarketCap = mc
		}
	}

	u.cache.Put(sym, snap)
	return snap
}

// GetMetricsBatch returns snapshots for every requested ticker in order.
// A failure for one ticker never aborts the batch.
func (u *MetricsUsecase) GetMetricsBatch(ctx context.Context, tickers []string) []entity.PriceSnapshot {
	out := make([]entity.PriceSnapshot, 0, len(tickers))
	for _, t := range tickers {
		out = append(out, u.GetMetrics(ctx, t))
	}
	return out
}

// round2 rounds to two decimal places, half away from zero.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
