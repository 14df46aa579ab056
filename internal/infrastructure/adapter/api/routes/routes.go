package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/sales-analytics/internal/domain/port/core"
	"github.com/amirhossein-jamali/sales-analytics/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/sales-analytics/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler the router serves
type Handlers struct {
	Root        *handler.RootHandler
	Transaction *handler.TransactionHandler
	Analytics   *handler.AnalyticsHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/", h.Root.Index)
	router.GET("/healthz", h.Root.Health)

	transactionRoutes := router.Group("/transactions")
	{
		transactionRoutes.POST("", h.Transaction.CreateTransaction)
		transactionRoutes.GET("", h.Transaction.ListTransactions)
		transactionRoutes.GET("/:id", h.Transaction.GetTransaction)
		transactionRoutes.PUT("/:id", h.Transaction.UpdateTransaction)
		transactionRoutes.DELETE("/:id", h.Transaction.DeleteTransaction)
	}

	analyticsRoutes := router.Group("/analytics")
	{
		analyticsRoutes.GET("/total-sales-per-product", h.Analytics.TotalSalesPerProduct)
		analyticsRoutes.GET("/top-customers", h.Analytics.TopCustomers)
		analyticsRoutes.GET("/benchmark", h.Analytics.Benchmark)
	}
}

// SetupMiddlewares configures global middlewares for the API.
// observer may be nil when metrics are disabled.
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	clock coreport.TimeProvider,
	observer middleware.RequestObserver,
) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, clock))
	if observer != nil {
		router.Use(middleware.Metrics(observer, clock))
	}
}

// SetupMetricsRoute exposes a metrics handler at path
func SetupMetricsRoute(router *gin.Engine, path string, metricsHandler http.Handler) {
	router.GET(path, gin.WrapH(metricsHandler))
}
