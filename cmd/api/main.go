package main

import (
	"context"
	"log"
	"time"

	"drherbs-api/internal/core/cache"
	"drherbs-api/internal/core/config"
	"drherbs-api/internal/core/logger"
	"drherbs-api/internal/core/money"
	"drherbs-api/internal/core/server"
	cartadapter "drherbs-api/internal/features/cart/adapters"
	cartdomain "drherbs-api/internal/features/cart/domain"
	carthandler "drherbs-api/internal/features/cart/handler"
	cartports "drherbs-api/internal/features/cart/ports"
	cartservice "drherbs-api/internal/features/cart/service"
	catalogadapter "drherbs-api/internal/features/catalog/adapters"
	cataloghandler "drherbs-api/internal/features/catalog/handler"
	catalogservice "drherbs-api/internal/features/catalog/service"
	marketinghandler "drherbs-api/internal/features/marketing/handler"
	marketingservice "drherbs-api/internal/features/marketing/service"
	orderadapter "drherbs-api/internal/features/orders/adapters"
	orderhandler "drherbs-api/internal/features/orders/handler"
	orderservice "drherbs-api/internal/features/orders/service"
	reviewadapter "drherbs-api/internal/features/reviews/adapters"
	reviewhandler "drherbs-api/internal/features/reviews/handler"
	reviewservice "drherbs-api/internal/features/reviews/service"

	"go.uber.org/zap"
)

// @title Dr Herbs Storefront API
// @version 1.0
// @description Storefront API for the Dr Herbs herbal products shop: catalog browsing, cart, checkout and admin analytics.
// @contact.name API Support
// @contact.email support@drherbs.example
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Redis backs the cart session store.
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		l.Fatal("Redis health check failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// The storefront backend owns product, order and review persistence.
	catalogBackend := catalogadapter.NewBackendAdapter(cfg.Backend)
	if err := catalogBackend.HealthCheck(ctx); err != nil {
		l.Fatal("Backend health check failed", zap.Error(err))
	}
	l.Info("Backend connection verified")

	orderBackend := orderadapter.NewBackendAdapter(cfg.Backend)
	reviewBackend := reviewadapter.NewBackendAdapter(cfg.Backend)

	shipping := cartdomain.ShippingPolicy{
		FreeShippingThreshold: money.Cents(cfg.Cart.FreeShippingThresholdCents),
		FlatRate:              money.Cents(cfg.Cart.FlatRateCents),
	}

	var notifier cartports.Notifier
	if cfg.Cart.EventsEnabled {
		redisNotifier, err := cartadapter.NewRedisNotifier(cfg.Redis.URL)
		if err != nil {
			l.Fatal("Failed to create cart notifier", zap.Error(err))
		}
		defer redisNotifier.Close()
		notifier = redisNotifier
	} else {
		notifier = cartadapter.NewLogNotifier()
	}

	cartStore := cartadapter.NewRedisStore(redisCache, time.Duration(cfg.Cart.TTLHours)*time.Hour)

	// Services & handlers
	catalogSvc := catalogservice.NewCatalogService(catalogBackend)
	catalogHdl := cataloghandler.NewCatalogHandler(catalogSvc)

	cartSvc := cartservice.NewCartService(cartStore, cartadapter.NewCatalogLookup(catalogBackend), notifier, shipping)
	cartHdl := carthandler.NewCartHandler(cartSvc)

	orderSvc := orderservice.NewOrderService(orderBackend, orderBackend, cartStore, notifier, shipping)
	orderHdl := orderhandler.NewOrderHandler(orderSvc)

	reviewSvc := reviewservice.NewReviewService(reviewBackend)
	reviewHdl := reviewhandler.NewReviewHandler(reviewSvc)

	marketingSvc := marketingservice.NewMarketingService(orderBackend, catalogBackend)
	marketingHdl := marketinghandler.NewMarketingHandler(marketingSvc)

	srv := server.New(cfg)
	admin := server.AdminGuard(cfg.AdminToken)

	// Storefront routes
	srv.App.Get("/api/products", catalogHdl.List)
	srv.App.Get("/api/products/:id", catalogHdl.Get)
	srv.App.Get("/api/reviews", reviewHdl.List)
	srv.App.Post("/api/reviews", reviewHdl.Submit)

	srv.App.Get("/api/cart", cartHdl.Get)
	srv.App.Delete("/api/cart", cartHdl.Clear)
	srv.App.Post("/api/cart/items", cartHdl.AddItem)
	srv.App.Put("/api/cart/items/:productId", cartHdl.UpdateQuantity)
	srv.App.Delete("/api/cart/items/:productId", cartHdl.RemoveItem)

	srv.App.Post("/api/orders", orderHdl.Checkout)

	// Admin routes
	srv.App.Post("/api/products", admin, catalogHdl.Create)
	srv.App.Put("/api/products/:id", admin, catalogHdl.Update)
	srv.App.Delete("/api/products/:id", admin, catalogHdl.Delete)
	srv.App.Get("/api/orders/admin", admin, orderHdl.List)
	srv.App.Put("/api/orders/admin/:id/status", admin, orderHdl.UpdateStatus)
	srv.App.Get("/api/marketing/facebook-pixel", admin, marketingHdl.PixelReport)
	srv.App.Get("/api/marketing/dashboard", admin, marketingHdl.Dashboard)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
