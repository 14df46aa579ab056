package usecase

import (
	"context"

	"github.com/amirhossein-jamali/sales-analytics/internal/domain/entity"
)

// BenchmarkRequest parameterizes one benchmark run
type BenchmarkRequest struct {
	Records     int
	QueryRounds int
}

// BenchmarkResult compares rescanning every record per query against
// maintaining aggregates once and only querying them
type BenchmarkResult struct {
	Records          int
	QueryRounds      int
	TopN             int
	NaiveSeconds     float64 // wall time of the rescan strategy, rounded to microseconds
	OptimizedSeconds float64 // wall time of the maintained strategy, rounded to microseconds
	Speedup          float64 // NaiveSeconds / OptimizedSeconds, 0 when not measurable
}

// AnalyticsUseCase defines the read-only analytics exposed over the API
type AnalyticsUseCase interface {
	// TotalSalesPerProduct returns every product total, largest first
	TotalSalesPerProduct(ctx context.Context) ([]entity.SalesTotal, error)

	// TopCustomers returns the limit biggest spenders; limit <= 0 is an ErrInputRange
	TopCustomers(ctx context.Context, limit int) ([]entity.SalesTotal, error)

	// RunBenchmark times naive re-aggregation against maintained aggregates
	// on a private synthetic dataset
	RunBenchmark(ctx context.Context, req BenchmarkRequest) (*BenchmarkResult, error)
}
