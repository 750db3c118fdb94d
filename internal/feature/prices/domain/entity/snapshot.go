// Package entity defines the domain models for the prices feature.
package entity

import "time"

// Bar is one daily bar of unadjusted history. Close and Volume are nil when
// the upstream series has a gap for that day.
type Bar struct {
	Time   time.Time
	Close  *float64
	Volume *int64
}

// PriceSnapshot is the computed set of price metrics for one ticker as of a
// point in time. Every metric is independently nullable: the absence of one
// does not invalidate the others. Err carries a human-readable reason when
// the upstream fetch failed outright.
type PriceSnapshot struct {
	Ticker    string
	Close     *float64
	PrevClose *float64
	ChangePct *float64
	MarketCap *float64
	Volume    *int64
	FetchedAt time.Time
	Err       string
}
