// Package entity defines the core domain models for the watchlist feature.
package entity

import "time"

// Item is a tracked security in the watch list, optionally with a held
// position attached.
type Item struct {
	Ticker      string    // normalized symbol, e.g. "AAPL" or "005930.KS"
	Name        string    // display name resolved at registration time
	Qty         float64   // held quantity, 0 when only watching
	AvgPriceKRW float64   // average purchase price in KRW, 0 when only watching
	UpdatedAt   time.Time // last modification time
}
