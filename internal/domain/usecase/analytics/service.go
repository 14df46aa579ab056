package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/amirhossein-jamali/sales-analytics/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sales-analytics/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sales-analytics/internal/domain/port/core"
	"github.com/amirhossein-jamali/sales-analytics/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/sales-analytics/internal/domain/port/usecase"
)

// Service implements usecase.AnalyticsUseCase
type Service struct {
	repo      persistence.TransactionRepository
	clock     coreport.TimeProvider
	logger    coreport.Logger
	benchmark BenchmarkConfig

	// collapses identical benchmark requests that arrive while one is running
	inflight singleflight.Group
}

var _ usecase.AnalyticsUseCase = (*Service)(nil)

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	repo persistence.TransactionRepository,
	clock coreport.TimeProvider,
	logger coreport.Logger,
	benchmark BenchmarkConfig,
) *Service {
	return &Service{
		repo:      repo,
		clock:     clock,
		logger:    logger,
		benchmark: benchmark,
	}
}

// TotalSalesPerProduct returns the product ledger, largest total first
func (s *Service) TotalSalesPerProduct(ctx context.Context) ([]entity.SalesTotal, error) {
	totals, err := s.repo.ProductTotals(ctx)
	if err != nil {
		s.logger.Error("Failed to read product totals", map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("product totals: %w", err)
	}
	return totals, nil
}

// TopCustomers returns the limit customers with the largest totals
func (s *Service) TopCustomers(ctx context.Context, limit int) ([]entity.SalesTotal, error) {
	if limit <= 0 {
		return nil, errs.NewInputRangeError("limit", "limit must be positive")
	}

	top, err := s.repo.TopCustomers(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to read top customers", map[string]any{
			"error": err.Error(),
			"limit": limit,
		})
		return nil, fmt.Errorf("top customers: %w", err)
	}
	return top, nil
}

// RunBenchmark validates the request and runs it, sharing the result with
// identical requests already in flight
func (s *Service) RunBenchmark(ctx context.Context, req usecase.BenchmarkRequest) (*usecase.BenchmarkResult, error) {
	if req.Records <= 0 {
		return nil, errs.NewInputRangeError("records", "records must be positive")
	}
	if req.QueryRounds <= 0 {
		return nil, errs.NewInputRangeError("rounds", "rounds must be positive")
	}
	if s.benchmark.MaxRecords > 0 && req.Records > s.benchmark.MaxRecords {
		return nil, errs.NewInputRangeError("records",
			fmt.Sprintf("records must not exceed %d", s.benchmark.MaxRecords))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The shared run is detached from any single caller; each caller only
	// stops waiting when its own context ends.
	key := fmt.Sprintf("%d/%d", req.Records, req.QueryRounds)
	ch := s.inflight.DoChan(key, func() (any, error) {
		return s.runBenchmark(context.WithoutCancel(ctx), req)
	})

	select {
	case <-ctx.Done():
		s.logger.Debug("Benchmark caller gone", map[string]any{"key": key})
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		result := *res.Val.(*usecase.BenchmarkResult)
		if res.Shared {
			s.logger.Debug("Benchmark result shared", map[string]any{"key": key})
		}
		return &result, nil
	}
}

func (s *Service) runBenchmark(ctx context.Context, req usecase.BenchmarkRequest) (*usecase.BenchmarkResult, error) {
	s.logger.Info("Benchmark started", map[string]any{
		"records": req.Records,
		"rounds":  req.QueryRounds,
		"top_n":   s.benchmark.TopN,
	})

	dataset := generateDataset(req.Records, s.benchmark.Seed)
	runner := benchmarkRunner{clock: s.clock, topN: s.benchmark.TopN}

	naive, err := runner.naive(ctx, dataset, req.QueryRounds)
	if err != nil {
		return nil, fmt.Errorf("naive benchmark: %w", err)
	}
	optimized, err := runner.maintained(ctx, dataset, req.QueryRounds)
	if err != nil {
		return nil, fmt.Errorf("maintained benchmark: %w", err)
	}

	naiveSeconds := entity.RoundTo(naive.Seconds(), secondsPrecision)
	optimizedSeconds := entity.RoundTo(optimized.Seconds(), secondsPrecision)
	result := &usecase.BenchmarkResult{
		Records:          req.Records,
		QueryRounds:      req.QueryRounds,
		TopN:             s.benchmark.TopN,
		NaiveSeconds:     naiveSeconds,
		OptimizedSeconds: optimizedSeconds,
		Speedup:          speedup(naiveSeconds, optimizedSeconds),
	}

	s.logger.Info("Benchmark finished", map[string]any{
		"records":           result.Records,
		"naive_seconds":     result.NaiveSeconds,
		"optimized_seconds": result.OptimizedSeconds,
		"speedup":           result.Speedup,
	})
	return result, nil
}
