package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/sales-analytics/internal/domain/port/core"
	"github.com/amirhossein-jamali/sales-analytics/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/sales-analytics/internal/infrastructure/adapter/api/dto"
)

// AnalyticsDefaults are used when a query parameter is absent or malformed
type AnalyticsDefaults struct {
	TopCustomers     int
	BenchmarkRecords int
	BenchmarkRounds  int
}

// AnalyticsHandler handles the read-only analytics endpoints
type AnalyticsHandler struct {
	analyticsUseCase usecase.AnalyticsUseCase
	defaults         AnalyticsDefaults
	logger           coreport.Logger
}

// NewAnalyticsHandler creates a new analytics handler instance
func NewAnalyticsHandler(
	analyticsUseCase usecase.AnalyticsUseCase,
	defaults AnalyticsDefaults,
	logger coreport.Logger,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUseCase: analyticsUseCase,
		defaults:         defaults,
		logger:           logger,
	}
}

// TotalSalesPerProduct handles GET /analytics/total-sales-per-product
func (h *AnalyticsHandler) TotalSalesPerProduct(c *gin.Context) {
	totals, err := h.analyticsUseCase.TotalSalesPerProduct(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProductTotalsResponse(totals))
}

// TopCustomers handles GET /analytics/top-customers?limit=N
func (h *AnalyticsHandler) TopCustomers(c *gin.Context) {
	limit := queryInt(c, "limit", h.defaults.TopCustomers)

	top, err := h.analyticsUseCase.TopCustomers(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTopCustomersResponse(top))
}

// Benchmark handles GET /analytics/benchmark?records=&rounds=
func (h *AnalyticsHandler) Benchmark(c *gin.Context) {
	req := usecase.BenchmarkRequest{
		Records:     queryInt(c, "records", h.defaults.BenchmarkRecords),
		QueryRounds: queryInt(c, "rounds", h.defaults.BenchmarkRounds),
	}

	result, err := h.analyticsUseCase.RunBenchmark(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBenchmarkResponse(result))
}
