// Package naver provides a client for the Naver Finance autocomplete endpoint.
package naver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"watchlist_backend/internal/feature/resolve/domain/entity"
	"watchlist_backend/internal/feature/resolve/usecase"
)

// Config holds configuration for the autocomplete client.
type Config struct {
	BaseURL   string        // e.g., "https://ac.finance.naver.com"
	UserAgent string        // User-Agent header value
	Timeout   time.Duration // HTTP request timeout
}

// LoadConfig loads autocomplete configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		BaseURL:   os.Getenv("NAVER_AC_BASE_URL"),
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
		Timeout:   5 * time.Second,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://ac.finance.naver.com"
	}
	return cfg
}

// autocompleteResponse is the endpoint's nested-array payload: items holds
// groups of entries, and each entry is an array of strings where positions
// 0, 1 and 3 carry name, code and market tag.
type autocompleteResponse struct {
	Items [][][]string `json:"items"`
}

// Client calls the autocomplete endpoint. It implements the autocomplete
// lookup source of the resolve feature.
type Client struct {
	cfg    Config
	client *http.Client
}

var _ usecase.SymbolSearcher = (*Client)(nil)

// NewClient creates a Client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// Search returns one candidate per autocomplete entry that carries a code.
// The ticker is the code with a market-segment suffix decided by whether the
// market tag names the primary board.
func (c *Client) Search(ctx context.Context, query string) ([]entity.Candidate, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("st", "111")
	q.Set("r_lt", "111")

	u := fmt.Sprintf("%s/ac?%s", c.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("naver ac http %d", res.StatusCode)
	}

	var body autocompleteResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if len(body.Items) == 0 {
		return nil, nil
	}

	var out []entity.Candidate
	for _, item := range body.Items[0] {
		var name, code, market string
		if len(item) > 0 {
			name = item[0]
		}
		if len(item) > 1 {
			code = item[1]
		}
		if len(item) > 3 {
			market = item[3]
		}
		if code == "" {
			continue
		}
		if name == "" {
			name = query
		}
		exch := market
		if exch == "" {
			exch = "KRX"
		}
		out = append(out, entity.Candidate{
			Ticker:   usecase.MarketTicker(code, market),
			LongName: name,
			Exchange: exch,
			Source:   entity.SourceAutocomplete,
		})
	}
	return out, nil
}
