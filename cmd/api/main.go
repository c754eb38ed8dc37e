package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vineyard/internal/catalog"
	"vineyard/internal/config"
	"vineyard/internal/database"
	"vineyard/internal/handler"
	"vineyard/internal/metrics"
	"vineyard/internal/repository"
	"vineyard/internal/router"
	"vineyard/internal/service"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env file is fine; the environment may already be populated.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting vineyard API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		return err
	}

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	// Initialize repositories
	menuRepo := repository.NewMenuItemRepository(pool, logger)
	cartRepo := repository.NewCartRepository(pool, logger)
	receiptRepo := repository.NewReceiptRepository(pool, logger)
	userRepo := repository.NewUserRepository(pool, logger)
	reviewRepo := repository.NewReviewRepository(pool, logger)

	// Initialize services
	menuService := service.NewMenuService(menuRepo, m, logger)
	cartService := service.NewCartService(cartRepo, menuRepo, cfg.Pricing.TaxRate, logger)
	accountService := service.NewAccountService(userRepo, cartRepo, cfg.Pricing.TaxRate, logger)
	checkoutService := service.NewCheckoutService(cartRepo, receiptRepo, cfg.Pricing.TaxRate, m, logger)
	reviewService := service.NewReviewService(reviewRepo, logger)

	if cfg.Catalog.SeedEnabled {
		if err := seedMenu(ctx, cfg, menuService, logger); err != nil {
			return fmt.Errorf("failed to seed menu: %w", err)
		}
	}

	// Initialize HTTP handlers and router
	handlers := router.Handlers{
		Menu:    handler.NewMenuHandler(menuService, logger),
		Cart:    handler.NewCartHandler(cartService, checkoutService, logger),
		Order:   handler.NewOrderHandler(checkoutService, logger),
		Account: handler.NewAccountHandler(accountService, reviewService, logger),
	}
	mux := router.New(handlers, m, registry, cfg.Auth.AdminAPIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// seedMenu fills an empty catalogue from the configured seed file, or from
// the built-in menu when none is configured.
func seedMenu(ctx context.Context, cfg *config.Config, menuService service.MenuService, logger zerolog.Logger) error {
	raw := catalog.DefaultItems()

	if cfg.Catalog.SeedFile != "" {
		fileLoader := catalog.NewFileLoader(logger)
		var s3Loader catalog.Loader

		if cfg.S3.Enabled {
			loader, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
			if err != nil {
				logger.Warn().
					Err(err).
					Msg("failed to initialise S3 loader, falling back to local file system only")
			} else {
				s3Loader = loader
			}
		} else {
			logger.Info().Msg("using local file system for menu seed files (S3 disabled)")
		}

		loader := catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, cfg.S3.Enabled, logger)
		loaded, err := loader.Load(ctx, cfg.Catalog.SeedFile)
		if err != nil {
			return err
		}
		raw = loaded
	}

	n, err := menuService.Seed(ctx, raw)
	if err != nil {
		return err
	}
	logger.Info().Int("count", n).Msg("menu seeding finished")
	return nil
}
