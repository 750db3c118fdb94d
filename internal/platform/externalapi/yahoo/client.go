package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	fxusecase "watchlist_backend/internal/feature/fx/usecase"
	pricesentity "watchlist_backend/internal/feature/prices/domain/entity"
	pricesusecase "watchlist_backend/internal/feature/prices/usecase"
	"watchlist_backend/internal/feature/resolve/domain/entity"
	resolveusecase "watchlist_backend/internal/feature/resolve/usecase"
	"watchlist_backend/internal/platform/externalapi/yahoo/dto"
	"watchlist_backend/internal/shared/ratelimiter"
)

// searchCount is how many quotes the search endpoint is asked for.
const searchCount = 10

// Client calls the Yahoo Finance endpoints. It implements the global-search
// and name-lookup capabilities of the resolve feature and the history and
// market-cap sources of the prices feature.
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// Compile-time checks that Client satisfies the consumer-side interfaces.
var (
	_ resolveusecase.SymbolSearcher     = (*Client)(nil)
	_ resolveusecase.NameLookup         = (*Client)(nil)
	_ pricesusecase.HistoryRepository   = (*Client)(nil)
	_ pricesusecase.MarketCapRepository = (*Client)(nil)
	_ fxusecase.HistoryRepository       = (*Client)(nil)
)

// NewClient creates a Client with the given configuration and HTTP client.
// limiter may be nil to disable request throttling.
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *Client {
	return &Client{cfg: cfg, client: client, limiter: limiter}
}

// Search implements the global quote-search lookup. For a Hangul query the
// Korean locale and region parameters are added.
func (c *Client) Search(ctx context.Context, query string) ([]entity.Candidate, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("quotesCount", strconv.Itoa(searchCount))
	q.Set("newsCount", "0")
	if resolveusecase.ContainsHangul(query) {
		q.Set("lang", "ko-KR")
		q.Set("region", "KR")
	}

	u := fmt.Sprintf("%s/v1/finance/search?%s", c.cfg.SearchBaseURL, q.Encode())

	var body dto.SearchResponse
	if err := c.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}

	out := make([]entity.Candidate, 0, len(body.Quotes))
	for _, item := range body.Quotes {
		if item.Symbol == "" {
			continue
		}
		name := item.LongName
		if name == "" {
			name = item.ShortName
		}
		exch := item.ExchDisp
		if exch == "" {
			exch = item.Exchange
		}
		out = append(out, entity.Candidate{
			Ticker:   item.Symbol,
			LongName: name,
			Exchange: exch,
			Source:   entity.SourceGlobalSearch,
		})
	}
	return out, nil
}

// QuoteName returns the long (or short) name for a ticker. It first asks the
// batch quote-snapshot endpoint and falls back to the per-ticker summary on
// failure or an empty result. An empty name with a nil error means neither
// source could name the ticker.
func (c *Client) QuoteName(ctx context.Context, ticker string) (string, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return "", nil
	}

	q := url.Values{}
	q.Set("symbols", ticker)
	u := fmt.Sprintf("%s/v7/finance/quote?%s", c.cfg.QuoteBaseURL, q.Encode())

	var body dto.QuoteResponse
	if err := c.getJSON(ctx, u, &body); err == nil {
		if rs := body.QuoteResponse.Result; len(rs) > 0 {
			if rs[0].LongName != "" {
				return rs[0].LongName, nil
			}
			if rs[0].ShortName != "" {
				return rs[0].ShortName, nil
			}
		}
	}

	summary, err := c.quoteSummary(ctx, ticker)
	if err != nil {
		return "", err
	}
	if summary.LongName != "" {
		return summary.LongName, nil
	}
	return summary.ShortName, nil
}

// MarketCap returns the market capitalization reported by the per-ticker
// summary, or nil when the upstream has no figure.
func (c *Client) MarketCap(ctx context.Context, ticker string) (*float64, error) {
	summary, err := c.quoteSummary(ctx, ticker)
	if err != nil {
		return nil, err
	}
	return summary.MarketCap, nil
}

// DailyBars fetches unadjusted daily history for a symbol over barRange
// (e.g. "7d"). Bars with neither close nor volume are kept: the metric
// computation decides what to drop.
func (c *Client) DailyBars(ctx context.Context, symbol, barRange string) ([]pricesentity.Bar, error) {
	q := url.Values{}
	q.Set("range", barRange)
	q.Set("interval", "1d")
	q.Set("includeAdjustedClose", "false")

	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.cfg.QuoteBaseURL, url.PathEscape(symbol), q.Encode())

	var body dto.ChartResponse
	if err := c.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}
	if body.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo chart: %s", body.Chart.Error.Description)
	}
	if len(body.Chart.Result) == 0 || len(body.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo chart: empty result for %q", symbol)
	}

	result := body.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	bars := make([]pricesentity.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		bar := pricesentity.Bar{Time: time.Unix(ts, 0).UTC()}
		if i < len(quote.Close) && quote.Close[i] != nil {
			v := *quote.Close[i]
			bar.Close = &v
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			v := *quote.Volume[i]
			bar.Volume = &v
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

// quoteSummaryResult is the subset of the price module this client uses.
type quoteSummaryResult struct {
	LongName  string
	ShortName string
	MarketCap *float64
}

// quoteSummary fetches the price module of the per-ticker summary endpoint.
func (c *Client) quoteSummary(ctx context.Context, ticker string) (quoteSummaryResult, error) {
	q := url.Values{}
	q.Set("modules", "price")
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?%s", c.cfg.QuoteBaseURL, url.PathEscape(ticker), q.Encode())

	var body dto.QuoteSummaryResponse
	if err := c.getJSON(ctx, u, &body); err != nil {
		return quoteSummaryResult{}, err
	}
	rs := body.QuoteSummary.Result
	if len(rs) == 0 {
		return quoteSummaryResult{}, fmt.Errorf("yahoo summary: empty result for %q", ticker)
	}
	price := rs[0].Price
	return quoteSummaryResult{
		LongName:  price.LongName,
		ShortName: price.ShortName,
		MarketCap: price.MarketCap.Raw,
	}, nil
}

// getJSON issues a GET request and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	if c.limiter != nil {
		c.limiter.WaitIfNeeded()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode >= 400 {
		return fmt.Errorf("yahoo http %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}
