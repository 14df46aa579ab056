package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/sales-analytics/internal/domain/port/persistence"
)

// StatsProvider reports store sizes for the health check
type StatsProvider interface {
	Stats() persistence.StoreStats
}

// RootHandler serves the service index and the health check
type RootHandler struct {
	store StatsProvider
}

// NewRootHandler creates a new root handler instance
func NewRootHandler(store StatsProvider) *RootHandler {
	return &RootHandler{store: store}
}

// Index handles GET /
func (h *RootHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Sales Analytics API",
		"endpoints": gin.H{
			"transactions":            "/transactions",
			"transaction_by_id":       "/transactions/<id>",
			"total_sales_per_product": "/analytics/total-sales-per-product",
			"top_customers":           "/analytics/top-customers",
			"benchmark":               "/analytics/benchmark",
		},
	})
}

// Health handles GET /healthz
func (h *RootHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"records": h.store.Stats().Records,
	})
}
