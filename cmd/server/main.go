package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"watchlist_backend/internal/app/di"
	"watchlist_backend/internal/app/router"
	authhandler "watchlist_backend/internal/feature/auth/transport/handler"
	authusecase "watchlist_backend/internal/feature/auth/usecase"
	fxusecase "watchlist_backend/internal/feature/fx/usecase"
	priceshandler "watchlist_backend/internal/feature/prices/transport/handler"
	pricesusecase "watchlist_backend/internal/feature/prices/usecase"
	resolveadapters "watchlist_backend/internal/feature/resolve/adapters"
	resolvehandler "watchlist_backend/internal/feature/resolve/transport/handler"
	resolveusecase "watchlist_backend/internal/feature/resolve/usecase"
	watchlistadapters "watchlist_backend/internal/feature/watchlist/adapters"
	watchlisthandler "watchlist_backend/internal/feature/watchlist/transport/handler"
	watchlistusecase "watchlist_backend/internal/feature/watchlist/usecase"
	"watchlist_backend/internal/platform/cache"
	"watchlist_backend/internal/platform/db"
	jwtmw "watchlist_backend/internal/platform/jwt"
	infraredis "watchlist_backend/internal/platform/redis"
)

const tokenLifetime = 24 * time.Hour

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}

	gormDB := db.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without listing cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// External clients
	yahooClient := di.NewYahooClient()
	naverClient := di.NewNaverClient()
	googleClient := di.NewGoogleWebClient()
	listingSearcher := di.NewListingSearcher(rdb)
	aliasStore := resolveadapters.NewAliasStore(os.Getenv("ALIAS_PATH"), yahooClient)

	// Repository
	itemRepo := watchlistadapters.NewItemRepository(gormDB)

	// Usecase
	resolver := resolveusecase.NewResolver(listingSearcher, naverClient, aliasStore, googleClient, yahooClient)
	metricsUC := pricesusecase.NewMetricsUsecase(yahooClient, yahooClient, cache.NewSnapshotCache(pricesusecase.CacheTTL))
	fxUC := fxusecase.NewFxUsecase(yahooClient)
	watchlistUC := watchlistusecase.NewWatchlistUsecase(itemRepo, yahooClient)

	keyHash, err := authusecase.LoadAccessKeyHash()
	if err != nil {
		log.Fatalf("access key configuration: %v", err)
	}
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	authUC := authusecase.NewAuthUsecase(keyHash, jwtmw.NewGenerator(secret, tokenLifetime))

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	resolveH := resolvehandler.NewResolveHandler(resolver)
	pricesH := priceshandler.NewPricesHandler(metricsUC, fxUC, watchlistUC, yahooClient)
	watchlistH := watchlisthandler.NewWatchlistHandler(watchlistUC)

	r := router.NewRouter(authH, resolveH, pricesH, watchlistH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
