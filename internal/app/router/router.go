package router

import (
	authhandler "watchlist_backend/internal/feature/auth/transport/handler"
	priceshandler "watchlist_backend/internal/feature/prices/transport/handler"
	resolvehandler "watchlist_backend/internal/feature/resolve/transport/handler"
	watchlisthandler "watchlist_backend/internal/feature/watchlist/transport/handler"
	"watchlist_backend/internal/platform/http/handler"
	jwtmw "watchlist_backend/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

// NewRouter wires every HTTP endpoint. /healthz and /login are public;
// everything else requires a valid bearer token.
func NewRouter(auth *authhandler.AuthHandler, resolve *resolvehandler.ResolveHandler,
	prices *priceshandler.PricesHandler, watchlist *watchlisthandler.WatchlistHandler) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", handler.Health)
	r.POST("/login", auth.Login)

	protected := r.Group("/")
	protected.Use(jwtmw.AuthRequired())
	{
		protected.GET("/api/search", resolve.Search)
		protected.GET("/api/resolve", resolve.Resolve)

		protected.GET("/prices", prices.Table)
		protected.GET("/prices/krw", prices.TableKRW)

		protected.GET("/watchlist", watchlist.List)
		protected.POST("/watchlist", watchlist.Add)
		protected.PUT("/watchlist/:ticker", watchlist.Update)
		protected.DELETE("/watchlist/:ticker", watchlist.Remove)
	}

	return r
}
