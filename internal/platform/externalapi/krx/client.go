// Package krx provides a client for the KRX listed-issues snapshot.
package krx

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

// Config holds configuration for the listing client.
type Config struct {
	BaseURL   string        // e.g., "http://data.krx.co.kr"
	UserAgent string        // User-Agent header value
	Timeout   time.Duration // HTTP request timeout
}

// LoadConfig loads listing configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		BaseURL:   os.Getenv("KRX_BASE_URL"),
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
		Timeout:   6 * time.Second,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://data.krx.co.kr"
	}
	return cfg
}

// listingResponse is the bulk-download payload of the exchange data service.
type listingResponse struct {
	Block []struct {
		ShortCode string `json:"ISU_SRT_CD"`
		Name      string `json:"ISU_ABBRV"`
		Market    string `json:"MKT_NM"`
	} `json:"OutBlock_1"`
}

// Client downloads the full snapshot of listed names, codes and market
// segments. There is no incremental query parameter: every call fetches the
// whole table, which is why callers wrap it in a caching decorator.
type Client struct {
	cfg    Config
	client *http.Client
}

var _ usecase.ListingRepository = (*Client)(nil)

// NewClient creates a Client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// Listing fetches the listed-issue snapshot.
func (c *Client) Listing(ctx context.Context) ([]entity.ListedSecurity, error) {
	q := url.Values{}
	q.Set("bld", "dbms/MDC/STAT/standard/MDCSTAT01901")

	u := fmt.Sprintf("%s/comm/bldAttendant/getJsonData.cmd?%s", c.cfg.BaseURL, q.Encode())

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
		return nil, fmt.Errorf("krx listing http %d", res.StatusCode)
	}

	var body listingResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	out := make([]entity.ListedSecurity, 0, len(body.Block))
	for _, row := range body.Block {
		out = append(out, entity.ListedSecurity{
			Code:   row.ShortCode,
			Name:   row.Name,
			Market: row.Market,
		})
	}
	return out, nil
}
