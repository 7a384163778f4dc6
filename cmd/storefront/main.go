package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/aaravmahajanofficial/storefront/docs"
	"github.com/aaravmahajanofficial/storefront/internal/api"
	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cache"
	"github.com/aaravmahajanofficial/storefront/internal/catalog"
	"github.com/aaravmahajanofficial/storefront/internal/checkout"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/health"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	"github.com/aaravmahajanofficial/storefront/internal/tracing"
)

//	@title			Storefront API
//	@version		1.0
//	@description	Product catalog, per-session cart and wishlist, and checkout for a single-shop storefront.

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tracing setup
	shutdownTracing, err := tracing.Init(ctx, &cfg.Otel, cfg.Version)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Catalog setup
	products, err := loadCatalog(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error loading the catalog", slog.String("source", cfg.Catalog.Source), slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("Catalog loaded", slog.String("source", cfg.Catalog.Source), slog.Int("products", products.Len()))

	// Cache and rate limit setup
	var (
		orderCache      cache.Cache
		checkoutLimiter middleware.RateLimiter
	)
	if cfg.RedisConnect.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, &cfg.RedisConnect)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
			os.Exit(1)
		}
		orderCache = cache.NewRedisCache(redisClient, &cfg.Cache)
		checkoutLimiter = repository.NewRateLimitRepo(redisClient, &cfg.RateConfig)
	} else {
		slog.Info("Redis disabled, using in-memory order cache without checkout rate limiting")
		orderCache = cache.NewMemoryCache(&cfg.Cache)
	}

	defer func() {
		if err := orderCache.Close(); err != nil {
			slog.Error("⚠️ Error closing cache", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Cache closed")
		}
	}()

	validator := checkout.NewValidator()
	assembler := checkout.NewAssembler(nil)
	sessions := session.NewManager(&cfg.Session, validator, assembler, metrics.NewSessionListener(logger))
	go sessions.Run(ctx)

	services := api.Services{
		Catalog:  service.NewCatalogService(products),
		Cart:     service.NewCartService(products),
		Wishlist: service.NewWishlistService(products),
		Checkout: service.NewCheckoutService(validator, orderCache, &cfg.Cache),

		CheckoutLimiter: checkoutLimiter,
	}

	healthChecks, err := health.NewHealthHandler(cfg, &health.Endpoints{Catalog: products})
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storefront initialized", slog.String("env", cfg.Env), slog.String("version", cfg.Version))

	// Setup http server
	server := http.Server{
		Addr:         cfg.Addr,
		Handler:      api.NewRouter(services, sessions, healthChecks.Handler()),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}

}

func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceFile:
		return catalog.Load(cfg.Catalog.Path)
	case config.CatalogSourcePostgres:
		repos, err := repository.New(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := repos.Close(); err != nil {
				slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
			}
		}()

		products, err := repos.Product.ListProducts(ctx)
		if err != nil {
			return nil, err
		}
		return catalog.New(products)
	case config.CatalogSourceEmbedded:
		return catalog.Default()
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}
