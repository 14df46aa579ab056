package dto

import (
	"github.com/amirhossein-jamali/sales-analytics/internal/domain/entity"
	"github.com/amirhossein-jamali/sales-analytics/internal/domain/port/usecase"
)

// ProductSales is one product's revenue
type ProductSales struct {
	ProductID  string  `json:"product_id"`
	TotalSales float64 `json:"total_sales"`
}

// CustomerSales is one customer's spend
type CustomerSales struct {
	CustomerID string  `json:"customer_id"`
	TotalSales float64 `json:"total_sales"`
}

// ProductTotalsResponse lists every product, largest total first
type ProductTotalsResponse struct {
	Products []ProductSales `json:"products"`
	Count    int            `json:"count"`
}

// TopCustomersResponse lists the biggest spenders, largest total first
type TopCustomersResponse struct {
	Customers []CustomerSales `json:"customers"`
	Count     int             `json:"count"`
}

// BenchmarkResponse reports one benchmark run
type BenchmarkResponse struct {
	Records          int     `json:"records"`
	QueryRounds      int     `json:"query_rounds"`
	TopN             int     `json:"top_n"`
	NaiveSeconds     float64 `json:"naive_seconds"`
	OptimizedSeconds float64 `json:"optimized_seconds"`
	Speedup          float64 `json:"speedup"`
}

// NewProductTotalsResponse rounds every total to cents
func NewProductTotalsResponse(totals []entity.SalesTotal) ProductTotalsResponse {
	products := make([]ProductSales, 0, len(totals))
	for _, t := range totals {
		products = append(products, ProductSales{
			ProductID:  t.Key,
			TotalSales: entity.RoundMoney(t.Total),
		})
	}
	return ProductTotalsResponse{Products: products, Count: len(products)}
}

// NewTopCustomersResponse rounds every total to cents
func NewTopCustomersResponse(totals []entity.SalesTotal) TopCustomersResponse {
	customers := make([]CustomerSales, 0, len(totals))
	for _, t := range totals {
		customers = append(customers, CustomerSales{
			CustomerID: t.Key,
			TotalSales: entity.RoundMoney(t.Total),
		})
	}
	return TopCustomersResponse{Customers: customers, Count: len(customers)}
}

// NewBenchmarkResponse maps a benchmark result for the wire
func NewBenchmarkResponse(r *usecase.BenchmarkResult) BenchmarkResponse {
	return BenchmarkResponse{
		Records:          r.Records,
		QueryRounds:      r.QueryRounds,
		TopN:             r.TopN,
		NaiveSeconds:     r.NaiveSeconds,
		OptimizedSeconds: r.OptimizedSeconds,
		Speedup:          r.Speedup,
	}
}
