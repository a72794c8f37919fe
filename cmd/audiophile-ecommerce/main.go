package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Muashef/audiophile-ecommerce/internal/api/handlers"
	"github.com/Muashef/audiophile-ecommerce/internal/api/middleware"
	"github.com/Muashef/audiophile-ecommerce/internal/cache"
	"github.com/Muashef/audiophile-ecommerce/internal/cart"
	"github.com/Muashef/audiophile-ecommerce/internal/catalog"
	"github.com/Muashef/audiophile-ecommerce/internal/config"
	"github.com/Muashef/audiophile-ecommerce/internal/health"
	"github.com/Muashef/audiophile-ecommerce/internal/metrics"
	repository "github.com/Muashef/audiophile-ecommerce/internal/repositories"
	service "github.com/Muashef/audiophile-ecommerce/internal/services"
	"github.com/Muashef/audiophile-ecommerce/internal/telemetry"
	"github.com/Muashef/audiophile-ecommerce/pkg/email"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	if cfg.Telemetry.Enabled {
		shutdownTracing, err := telemetry.Setup(context.Background(), "audiophile-ecommerce")
		if err != nil {
			slog.Error("❌ Error setting up tracing", "error", err.Error())
			os.Exit(1)
		}

		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := shutdownTracing(ctx); err != nil {
				slog.Error("⚠️ Error shutting down tracing", slog.String("error", err.Error()))
			}
		}()
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConnect.Host,
		Username: cfg.RedisConnect.Username,
		Password: cfg.RedisConnect.Password,
		DB:       cfg.RedisConnect.DB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	orderCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	// Product catalog
	productCatalog, err := catalog.Load()
	if err != nil {
		slog.Error("❌ Error loading the product catalog", "error", err.Error())
		os.Exit(1)
	}

	cartStore := cart.NewStore()
	mailTransport := email.NewFromConfig(cfg)
	if mailTransport == nil {
		slog.Warn("📭 No email transport configured, confirmations will be skipped")
	}

	orderService := service.NewOrderService(repos.Order, orderCache, &cfg.Checkout)
	orderHandler := handlers.NewOrderHandler(orderService)
	productService := service.NewProductService(productCatalog)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartStore)
	notificationService := service.NewNotificationService(mailTransport, cfg.PublicBaseURL)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	checkoutHandler := handlers.NewCheckoutHandler(orderService, cartStore)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{DB: repos.DB, RedisClient: redisClient})
	if err != nil {
		slog.Error("❌ Error creating health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{slug}", productHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/carts", cartHandler.GetCart())
	routerMux.HandleFunc("DELETE /api/v1/carts", cartHandler.ClearCart())
	routerMux.HandleFunc("POST /api/v1/carts/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/carts/items", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/carts/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("POST /api/v1/orders", orderHandler.CreateOrder())
	routerMux.HandleFunc("GET /api/v1/orders", orderHandler.GetOrder())
	routerMux.HandleFunc("GET /api/v1/orders/history", orderHandler.OrderHistory())
	routerMux.HandleFunc("GET /api/v1/checkout/confirmation/{orderId}", checkoutHandler.Confirmation())
	routerMux.HandleFunc("POST /api/v1/notifications/email", notificationHandler.SendOrderEmail())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Session(handler)
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)
	handler = otelhttp.NewHandler(handler, "http.server")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}
