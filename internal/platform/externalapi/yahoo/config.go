// Package yahoo provides a client for the unofficial Yahoo Finance APIs:
// quote search, quote snapshot, per-ticker summary and daily-bar history.
package yahoo

import (
	"os"
	"time"
)

// DefaultUserAgent is sent on every request; the endpoints reject requests
// without a browser-like agent.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"

// Config holds configuration for the Yahoo Finance client.
type Config struct {
	SearchBaseURL string        // base URL for the search endpoint (e.g., "https://query2.finance.yahoo.com")
	QuoteBaseURL  string        // base URL for quote/summary/chart endpoints (e.g., "https://query1.finance.yahoo.com")
	UserAgent     string        // User-Agent header value
	Timeout       time.Duration // HTTP request timeout
}

// LoadConfig loads Yahoo client configuration from environment variables,
// falling back to the public endpoints.
func LoadConfig() Config {
	cfg := Config{
		SearchBaseURL: os.Getenv("YAHOO_SEARCH_BASE_URL"),
		QuoteBaseURL:  os.Getenv("YAHOO_QUOTE_BASE_URL"),
		UserAgent:     DefaultUserAgent,
		Timeout:       6 * time.Second,
	}
	if cfg.SearchBaseURL == "" {
		cfg.SearchBaseURL = "https://query2.finance.yahoo.com"
	}
	if cfg.QuoteBaseURL == "" {
		cfg.QuoteBaseURL = "https://query1.finance.yahoo.com"
	}
	return cfg
}
