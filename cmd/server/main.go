package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/citizenhub/backend/internal/api"
	"github.com/citizenhub/backend/internal/config"
	"github.com/citizenhub/backend/internal/db"
	"github.com/citizenhub/backend/internal/services"
	"github.com/citizenhub/backend/pkg/logger"
	"github.com/citizenhub/backend/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Production)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	zap.ReplaceGlobals(zapLogger)

	config.LogConfig(cfg, zapLogger)

	collector := metrics.NewCollector()

	// A down store must not take the HTTP surface with it; requests
	// that need it fail with 503 until it comes back.
	store, err := db.Initialize(context.Background(), cfg.Database, collector)
	if err != nil {
		zapLogger.Warn("Document store unavailable, serving degraded", zap.Error(err))
	}

	authService := services.NewAuthService(store, zapLogger, collector)
	applicationService := services.NewApplicationService(store, authService, zapLogger, collector)
	paymentService := services.NewPaymentService(store, authService, zapLogger, collector)

	router := api.NewRouter(zapLogger, collector, store, authService, applicationService, paymentService)
	router.SetupRoutes()

	go func() {
		if err := router.Run(":" + cfg.Server.Port); err != nil {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()
	zapLogger.Info("Server started", zap.String("port", cfg.Server.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Disconnect(ctx); err != nil {
		zapLogger.Warn("Store disconnect failed", zap.Error(err))
	}
	zapLogger.Info("Server gracefully stopped")
}
