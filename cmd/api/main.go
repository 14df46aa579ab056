package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	analyticsUseCase "github.com/amirhossein-jamali/sales-analytics/internal/domain/usecase/analytics"
	transactionUseCase "github.com/amirhossein-jamali/sales-analytics/internal/domain/usecase/transaction"

	"github.com/amirhossein-jamali/sales-analytics/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/sales-analytics/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/sales-analytics/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/sales-analytics/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/sales-analytics/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/sales-analytics/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/sales-analytics/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/sales-analytics/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.Logger.Format == "json",
		Level:      cfg.Logger.Level,
		Output:     cfg.Logger.Output,
		MaxSizeMB:  cfg.Logger.MaxSizeMB,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAgeDays: cfg.Logger.MaxAgeDays,
		Compress:   cfg.Logger.Compress,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// One store per process; handlers share it through the use cases
	transactionRepo := repository.NewTransactionRepository(tp, appLogger)

	transactionUseCaseImpl := transactionUseCase.NewTransactionService(transactionRepo, appLogger)
	analyticsUseCaseImpl := analyticsUseCase.NewAnalyticsService(transactionRepo, tp, appLogger, analyticsUseCase.BenchmarkConfig{
		TopN:       cfg.Analytics.BenchmarkTopN,
		MaxRecords: cfg.Analytics.BenchmarkMaxRecords,
		Seed:       cfg.Analytics.BenchmarkSeed,
	})

	handlers := routes.Handlers{
		Root:        handler.NewRootHandler(transactionRepo),
		Transaction: handler.NewTransactionHandler(transactionUseCaseImpl, appLogger),
		Analytics: handler.NewAnalyticsHandler(analyticsUseCaseImpl, handler.AnalyticsDefaults{
			TopCustomers:     cfg.Analytics.DefaultTopCustomers,
			BenchmarkRecords: cfg.Analytics.BenchmarkRecords,
			BenchmarkRounds:  cfg.Analytics.BenchmarkRounds,
		}, appLogger),
	}

	router := gin.New()

	var observer middleware.RequestObserver
	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(transactionRepo, appLogger)
		observer = collector
	}

	routes.SetupMiddlewares(router, appLogger, tp, observer)
	routes.SetupRoutes(router, handlers)
	if collector != nil {
		routes.SetupMetricsRoute(router, cfg.Metrics.Path, collector.Handler())
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":    server.Addr,
			"env":     cfg.Environment,
			"metrics": cfg.Metrics.Enabled,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			_ = appLogger.Flush()
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	stats := transactionRepo.Stats()
	appLogger.Info("Server exited gracefully", map[string]any{
		"records_discarded": stats.Records,
	})
}
