package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"storefront-gateway/config"
	"storefront-gateway/internal/delivery/http/middleware"
	v1 "storefront-gateway/internal/delivery/http/v1"
	"storefront-gateway/internal/infrastructure/api"
	"storefront-gateway/internal/infrastructure/bus"
	"storefront-gateway/internal/infrastructure/cache"
	"storefront-gateway/internal/repository/localstore"
	"storefront-gateway/internal/usecase"
	"storefront-gateway/pkg/logger"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
)

const version = "0.1.0"

func main() {
	cfg := config.LoadConfig()

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Local document store: the single persistence substrate for cart,
	// wishlist and session state.
	store := localstore.Open(cfg.StorePath)
	log.Info().Str("path", store.Path()).Msg("Local store opened")

	// In-process event bus for change notifications
	events := bus.New()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Watch the store file so external rewrites are picked up
	if err := store.Watch(ctx, events); err != nil {
		log.Warn().Err(err).Msg("Store watch unavailable, external changes need a restart")
	}

	// Remote API client. The token source closes over the session, which
	// is constructed right after; requests made before that see "".
	var session *usecase.AuthSession
	client := api.NewClient(api.Options{
		BaseURL:   cfg.APIBaseURL,
		Timeout:   cfg.APITimeout,
		RetryMax:  cfg.APIRetryMax,
		RateLimit: cfg.APIRateLimit,
		RateBurst: cfg.APIRateBurst,
		Token: func() string {
			if session == nil {
				return ""
			}
			return session.Token()
		},
	})
	session = usecase.NewAuthSession(store, client)

	// Initialize Cache (In-Memory)
	// Default expiration 30m, cleanup every 60m
	memCache := cache.NewMemoryCache(30*time.Minute, 60*time.Minute)

	// Set up Router
	mux := http.NewServeMux()

	// --- Modules Initialization ---

	// Cart Module
	cartStore := usecase.NewCartStore(store, events)
	defer cartStore.Close()
	cartHandler := v1.NewCartHandler(cartStore)

	// Wishlist Module
	wishlistStore := usecase.NewWishlistStore(store, events)
	defer wishlistStore.Close()
	wishlistHandler := v1.NewWishlistHandler(wishlistStore)

	// Auth Module
	authHandler := v1.NewAuthHandler(session)

	// Catalog Module (proxied reads with caching)
	catalogUC := usecase.NewCatalogUsecase(client, memCache, cfg)
	catalogHandler := v1.NewCatalogHandler(catalogUC)

	// Checkout Module
	checkoutUC := usecase.NewCheckoutUsecase(cartStore, client)
	orderHandler := v1.NewOrderHandler(checkoutUC)

	// Cart
	mux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart)
	mux.HandleFunc("POST /api/v1/cart", cartHandler.AddToCart)
	mux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart)
	mux.HandleFunc("GET /api/v1/cart/summary", cartHandler.GetSummary)
	mux.HandleFunc("PUT /api/v1/cart/{lineId}", cartHandler.UpdateQuantity)
	mux.HandleFunc("DELETE /api/v1/cart/{lineId}", cartHandler.RemoveItem)
	mux.HandleFunc("POST /api/v1/cart/coupon", cartHandler.ApplyCoupon)
	mux.HandleFunc("DELETE /api/v1/cart/coupon", cartHandler.RemoveCoupon)

	// Wishlist
	mux.HandleFunc("GET /api/v1/wishlist", wishlistHandler.GetWishlist)
	mux.HandleFunc("POST /api/v1/wishlist/toggle", wishlistHandler.Toggle)
	mux.HandleFunc("GET /api/v1/wishlist/{productId}", wishlistHandler.IsWishlisted)

	// Auth
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/token", authHandler.AdoptToken)
	mux.HandleFunc("POST /api/v1/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/v1/auth/me", authHandler.Me)

	// Catalog (proxied)
	mux.HandleFunc("GET /api/v1/categories", catalogHandler.GetCategories)
	mux.HandleFunc("GET /api/v1/brands", catalogHandler.GetBrands)
	mux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts)
	mux.HandleFunc("GET /api/v1/product/{id}", catalogHandler.GetProductByID)
	mux.HandleFunc("GET /api/v1/products/{slug}", catalogHandler.GetProductDetails)
	mux.HandleFunc("GET /api/v1/product/{id}/related", catalogHandler.GetRelated)
	mux.HandleFunc("GET /api/v1/products/{id}/reviews", catalogHandler.GetReviews)
	mux.HandleFunc("POST /api/v1/products/{id}/reviews", catalogHandler.AddReview)

	// Checkout & Orders
	mux.HandleFunc("POST /api/v1/checkout", orderHandler.Checkout)
	mux.HandleFunc("GET /api/v1/orders", orderHandler.MyOrders)

	// Health Check
	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	}
	mux.HandleFunc("GET /api/v1/health", healthHandler)
	mux.HandleFunc("GET /health", healthHandler)

	addr := fmt.Sprintf(":%s", cfg.Port)

	// Initialize Rate Limiter with lifecycle management
	// 50 req/s, burst 100, cleanup every minute, TTL 3 minutes
	rateLimiter := middleware.NewRateLimiter(
		ctx,
		50,
		100,
		time.Minute,
		3*time.Minute,
	)

	// Apply CORS (with config injection), Request Logger, Rate Limit, and Gzip
	handler := middleware.NewCORSMiddleware(cfg)(mux)
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	logger.ServiceStart("storefront-gateway", version, cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Gateway shutting down...")

	rateLimiter.Shutdown()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.ServiceStop("storefront-gateway")
}
