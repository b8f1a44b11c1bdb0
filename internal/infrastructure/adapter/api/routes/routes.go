package routes

import (
	coreport "github.com/amirhossein-jamali/document-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	lockHandler *handler.LockHandler,
	healthHandler *handler.HealthHandler,
) {
	router.GET("/health", healthHandler.Health)

	lockRoutes := router.Group("/locks")
	{
		lockRoutes.GET("", lockHandler.List)
		lockRoutes.POST("", lockHandler.Acquire)
		lockRoutes.POST("/conflicts", lockHandler.Conflicts)
		lockRoutes.GET("/:id", lockHandler.Get)
		lockRoutes.DELETE("/:id", lockHandler.Release)
	}
}

// SetupMetricsRoute exposes the prometheus registry on /metrics
func SetupMetricsRoute(router *gin.Engine, gatherer prometheus.Gatherer) {
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, metricsEnabled bool) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Tracing())
	if metricsEnabled {
		router.Use(middleware.Metrics())
	}
	router.Use(middleware.Logger(logger))
}
