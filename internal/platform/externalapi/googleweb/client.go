// Package googleweb provides a lookup source that scrapes a generic web
// search for Google Finance quote permalinks.
package googleweb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"watchlist_backend/internal/feature/resolve/domain/entity"
	"watchlist_backend/internal/feature/resolve/usecase"
)

// maxCandidates caps this source's output.
const maxCandidates = 10

var (
	// quoteLinkRe extracts the symbol (optionally exchange-qualified) from
	// finance-quote permalink URLs in the raw result HTML.
	quoteLinkRe = regexp.MustCompile(`https://www\.google\.[^\s"]+/finance/quote/([A-Za-z0-9\.\-:]+)`)
	// titleRe extracts the page title, from which a display name is derived.
	titleRe = regexp.MustCompile(`<title>([^<]+)</title>`)
)

// Config holds configuration for the web-search scrape client.
type Config struct {
	BaseURL   string        // e.g., "https://www.google.com"
	UserAgent string        // User-Agent header value
	Timeout   time.Duration // HTTP request timeout
}

// LoadConfig loads scrape configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		BaseURL:   os.Getenv("GOOGLE_SEARCH_BASE_URL"),
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
		Timeout:   5 * time.Second,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.google.com"
	}
	return cfg
}

// Client issues a finance-host-scoped web search and scans the HTML for
// quote permalinks. It implements the web-search lookup source of the
// resolve feature.
type Client struct {
	cfg    Config
	client *http.Client
}

var _ usecase.SymbolSearcher = (*Client)(nil)

// NewClient creates a Client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// Search scrapes quote permalinks out of the search result HTML. The display
// name comes from the page title and is shared by every extracted link, so
// it is approximate. Output is deduplicated by ticker and capped at ten.
func (c *Client) Search(ctx context.Context, query string) ([]entity.Candidate, error) {
	q := url.Values{}
	q.Set("q", "site:finance.google.com "+query)

	u := fmt.Sprintf("%s/search?%s", c.cfg.BaseURL, q.Encode())

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
		return nil, fmt.Errorf("google search http %d", res.StatusCode)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	html := string(raw)

	longName := titleName(html)

	var out []entity.Candidate
	seen := map[string]struct{}{}
	for _, m := range quoteLinkRe.FindAllStringSubmatch(html, -1) {
		part := m[1]
		sym, exch := part, ""
		if i := strings.Index(part, ":"); i >= 0 {
			sym, exch = part[:i], part[i+1:]
		}
		ticker := strings.ToUpper(sym)
		if _, ok := seen[ticker]; ok {
			continue
		}
		seen[ticker] = struct{}{}
		out = append(out, entity.Candidate{
			Ticker:   ticker,
			LongName: longName,
			Exchange: exch,
			Source:   entity.SourceWebSearch,
		})
		if len(out) >= maxCandidates {
			break
		}
	}
	return out, nil
}

// titleName derives a display name from the page <title>: the known site
// suffix is stripped and the text after the last " - " separator is taken.
func titleName(html string) string {
	m := titleRe.FindStringSubmatch(html)
	if m == nil {
		return ""
	}
	t := strings.ReplaceAll(m[1], " - Google Finance", "")
	if i := strings.LastIndex(t, " - "); i >= 0 {
		return t[i+3:]
	}
	return ""
}
