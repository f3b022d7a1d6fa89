package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/ptapp/purchase_txn_app/cmd/docs"
	"github.com/ptapp/purchase_txn_app/internal/adapters/database/pgsql"
	"github.com/ptapp/purchase_txn_app/internal/adapters/memory"
	"github.com/ptapp/purchase_txn_app/internal/adapters/ratesource"
	"github.com/ptapp/purchase_txn_app/internal/adapters/ratesource/treasury"
	portsrepo "github.com/ptapp/purchase_txn_app/internal/core/ports/repositories"
	"github.com/ptapp/purchase_txn_app/internal/core/services"
	"github.com/ptapp/purchase_txn_app/internal/handlers"
	"github.com/ptapp/purchase_txn_app/internal/middleware"
	"github.com/ptapp/purchase_txn_app/pkg/config"
	"github.com/ptapp/purchase_txn_app/pkg/database"
)

// @title Purchase Transaction API
// @version 1.0
// @description Records purchase transactions and converts them to foreign currencies using Treasury reporting rates of exchange.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	txnRepo, cleanup, err := buildTransactionRepository(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize transaction store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	rateSource := buildRateSource(cfg, logger)
	serviceContainer := services.NewServiceContainer(txnRepo, rateSource, cfg.BaseCurrency)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildTransactionRepository selects the transaction store. A configured
// PGSQL_URL gets a pooled PostgreSQL repository with migrations applied at
// startup; otherwise transactions live in memory.
func buildTransactionRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.TransactionRepositoryFacade, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Info("Using in-memory transaction store")
		return memory.NewTransactionRepository(), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, "file://migrations"); err != nil {
		dbPool.Close()
		return nil, nil, err
	}
	logger.Info("Database migrations applied")

	return pgsql.NewTransactionRepository(dbPool), dbPool.Close, nil
}

// buildRateSource wires the Treasury rate client, decorated with the static
// fallback table when one is configured.
func buildRateSource(cfg *config.Config, logger *slog.Logger) portsrepo.ExchangeRateSource {
	var source portsrepo.ExchangeRateSource = treasury.NewClient(
		cfg.TreasuryAPIURL,
		cfg.BaseCurrency,
		treasury.WithTimeout(cfg.TreasuryTimeout),
	)
	if len(cfg.FallbackRates) > 0 {
		logger.Info("Fallback rate table enabled", slog.Int("currencies", len(cfg.FallbackRates)))
		source = ratesource.NewFallbackRateSource(source, cfg.FallbackRates, cfg.BaseCurrency, logger)
	}
	return source
}
