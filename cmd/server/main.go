package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kaizensushi/storefront-backend/config"
	"github.com/kaizensushi/storefront-backend/internal/app/controller"
	"github.com/kaizensushi/storefront-backend/internal/app/repository"
	"github.com/kaizensushi/storefront-backend/internal/app/service"
	"github.com/kaizensushi/storefront-backend/internal/events"
	"github.com/kaizensushi/storefront-backend/internal/router"
	"github.com/kaizensushi/storefront-backend/internal/scheduler"
	"github.com/kaizensushi/storefront-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting KAIZEN Sushi Storefront Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
		"storage":     cfg.Storage.Backend,
	})

	// Initialize the state store
	var store repository.StateStore
	switch cfg.Storage.Backend {
	case "redis":
		redisStore, err := repository.NewRedisStore(&cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to redis", err)
		}
		defer func() {
			if err := redisStore.Close(); err != nil {
				logger.Error("Failed to close redis connection", err)
			}
		}()
		store = redisStore
	default:
		fileStore, err := repository.NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			logger.Fatal("Failed to initialize file store", err)
		}
		store = fileStore
	}

	// Initialize repositories
	cartRepo := repository.NewCartRepository(store)
	prefsRepo := repository.NewPrefsRepository(store)

	// Event hub feeds connected storefront clients
	hub := events.NewHub()
	go hub.Run()

	// Initialize services
	selection := service.NewSelectionManager()
	catalogService := service.NewCatalogService(prefsRepo, selection, hub, cfg)
	cartService := service.NewCartService(cartRepo, catalogService, selection, hub)
	orderService := service.NewOrderService(cartService, catalogService)

	// Initial catalog load. Failure is not fatal: the storefront comes up
	// with the cart intact and retries on reload or schedule.
	loadCtx, cancel := context.WithTimeout(context.Background(), cfg.Catalog.FetchTimeout)
	if err := catalogService.Load(loadCtx); err != nil {
		logger.Warn("Initial catalog load failed", map[string]interface{}{
			"error":  err.Error(),
			"source": catalogService.SourceURL(),
		})
	}
	cancel()

	// Initialize controllers
	catalogController := controller.NewCatalogController(catalogService)
	builderController := controller.NewBuilderController(catalogService, selection)
	cartController := controller.NewCartController(cartService)
	orderController := controller.NewOrderController(orderService)
	prefsController := controller.NewPrefsController(prefsRepo)
	assetsController := controller.NewAssetsController(cfg.Assets)
	eventsController := controller.NewEventsController(hub)

	// Scheduled catalog refresh (optional)
	if cfg.Catalog.RefreshCron != "" {
		catalogScheduler := scheduler.NewCatalogScheduler(catalogService, cfg.Catalog.RefreshCron)
		if err := catalogScheduler.Start(); err != nil {
			logger.Warn("Failed to start catalog scheduler", map[string]interface{}{
				"error": err.Error(),
				"spec":  cfg.Catalog.RefreshCron,
			})
		} else {
			defer catalogScheduler.Stop()
		}
	}

	// Setup router
	r := router.NewRouter(
		catalogController,
		builderController,
		cartController,
		orderController,
		prefsController,
		assetsController,
		eventsController,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
