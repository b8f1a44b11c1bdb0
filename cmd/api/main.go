package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/document-lock/internal/app"
	coreport "github.com/amirhossein-jamali/document-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production:  cfg.Environment == config.Production,
		Level:       coreport.ParseLogLevel(cfg.Logger.Level),
		ServiceName: cfg.Telemetry.ServiceName,
	})

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Service stopped with error", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, appLogger, app.Options{
		Migrate:       cfg.Database.AutoMigrate,
		Observability: true,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	registry := application.Coordinator.Registry()
	lockHandler := handler.NewLockHandler(application.Coordinator, application.Clock, appLogger)
	healthHandler := handler.NewHealthHandler(application, application.StoreName(), registry.Len, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, application.Registry != nil)
	routes.SetupRoutes(router, lockHandler, healthHandler)
	if application.Registry != nil {
		routes.SetupMetricsRoute(router, application.Registry)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Info("Starting server", map[string]any{
			"addr":  server.Addr,
			"env":   cfg.Environment,
			"store": application.StoreName(),
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		appLogger.Info("Shutting down server...", map[string]any{
			"armed_adapters": registry.Len(),
		})

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		var shutdownErr error
		if err := server.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
			shutdownErr = err
		}
		if err := application.Close(shutdownCtx); err != nil {
			appLogger.Error("Failed to release resources", map[string]any{"error": err.Error()})
			shutdownErr = errors.Join(shutdownErr, err)
		}
		return shutdownErr
	})

	if err := g.Wait(); err != nil {
		return err
	}

	appLogger.Info("Server exited gracefully", nil)
	_ = appLogger.Flush()
	return nil
}
