// Package api defines the JSON request and response types shared by the
// HTTP handlers.
package api

// ErrorResponse is the generic error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the generic success payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginRequest is the access-key login payload.
type LoginRequest struct {
	AccessKey string `json:"access_key" binding:"required"`
}

// TokenResponse carries the issued JWT token.
type TokenResponse struct {
	Token string `json:"token"`
}

// CandidateResponse is one symbol-resolution candidate.
type CandidateResponse struct {
	Ticker   string `json:"ticker"`
	LongName string `json:"longname"`
	Exchange string `json:"exch"`
	Source   string `json:"source"`
}

// SuggestionResponse is one compact row of the incremental search endpoint.
type SuggestionResponse struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
	Ex     string `json:"ex"`
}

// SnapshotResponse is one row of the price table. Absent values stay null in
// the JSON output, which the table view renders as "-".
type SnapshotResponse struct {
	Ticker    string   `json:"ticker"`
	Close     *float64 `json:"close"`
	PrevClose *float64 `json:"prev_close"`
	ChangePct *float64 `json:"change_pct"`
	MarketCap *float64 `json:"marketcap"`
	Volume    *int64   `json:"volume"`
	Error     string   `json:"error,omitempty"`
}

// PricesResponse is the price-table payload.
type PricesResponse struct {
	AsofUTC     string             `json:"asof_utc"`
	Tickers     []string           `json:"tickers"`
	Rows        []SnapshotResponse `json:"rows"`
	CacheTTLSec int                `json:"cache_ttl_sec"`
}

// PriceRowKRW is one row of the KRW-converted price table.
type PriceRowKRW struct {
	Name            string   `json:"name"`
	Ticker          string   `json:"ticker"`
	CurrentPriceKRW *int64   `json:"current_price_krw"`
	CurrentPriceUSD *float64 `json:"current_price_usd"`
	ChangePct       *float64 `json:"change_pct"`
	TurnoverKRW     *int64   `json:"turnover_krw"`
	CloseKRW        *int64   `json:"close_krw"`
	CloseUSD        *float64 `json:"close_usd"`
	Volume          *int64   `json:"volume"`
}

// PricesKRWResponse is the KRW price-table payload.
type PricesKRWResponse struct {
	AsofUTC     string        `json:"asof_utc"`
	UsdKrw      float64       `json:"usdkrw"`
	Tickers     []string      `json:"tickers"`
	Rows        []PriceRowKRW `json:"rows"`
	CacheTTLSec int           `json:"cache_ttl_sec"`
}

// WatchlistItemRequest is the add/update payload for a watch-list entry.
type WatchlistItemRequest struct {
	Ticker      string  `json:"ticker" binding:"required"`
	Qty         float64 `json:"qty"`
	AvgPriceKRW float64 `json:"avg_price_krw"`
}

// WatchlistItemResponse is one stored watch-list entry.
type WatchlistItemResponse struct {
	Ticker      string  `json:"ticker"`
	Name        string  `json:"name"`
	Qty         float64 `json:"qty"`
	AvgPriceKRW float64 `json:"avg_price_krw"`
	UpdatedAt   string  `json:"updated_at"`
}
