// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	resolveusecase "watchlist_backend/internal/feature/resolve/usecase"
	"watchlist_backend/internal/platform/cache"
	"watchlist_backend/internal/platform/externalapi/googleweb"
	"watchlist_backend/internal/platform/externalapi/krx"
	"watchlist_backend/internal/platform/externalapi/naver"
	"watchlist_backend/internal/platform/externalapi/yahoo"
	infrahttp "watchlist_backend/internal/platform/http"
	"watchlist_backend/internal/shared/ratelimiter"
)

// yahooCallsPerMinute bounds the outbound request rate to the quote source.
const yahooCallsPerMinute = 60

// NewYahooClient creates a fully configured Yahoo client with its HTTP
// client and rate limiter.
func NewYahooClient() *yahoo.Client {
	cfg := yahoo.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(yahooCallsPerMinute, time.Minute)
	return yahoo.NewClient(cfg, httpClient, limiter)
}

// NewNaverClient creates a configured autocomplete client.
func NewNaverClient() *naver.Client {
	cfg := naver.LoadConfig()
	return naver.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}

// NewGoogleWebClient creates a configured web-search scrape client.
func NewGoogleWebClient() *googleweb.Client {
	cfg := googleweb.LoadConfig()
	return googleweb.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}

// NewListingSearcher creates the local-exchange searcher over the listing
// snapshot, wrapped in a Redis cache when a client is available. A nil rdb
// means every search hits the exchange service directly.
func NewListingSearcher(rdb *redis.Client) *resolveusecase.ListingSearcher {
	cfg := krx.LoadConfig()
	client := krx.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
	cached := cache.NewCachingListingRepository(rdb, cache.TimeUntilNextListingRefresh(), client, "krx:listing")
	return resolveusecase.NewListingSearcher(cached)
}
