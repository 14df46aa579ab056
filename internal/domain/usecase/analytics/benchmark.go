package analytics

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/amirhossein-jamali/sales-analytics/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/sales-analytics/internal/domain/port/core"
)

// Shape of the synthetic dataset
const (
	benchmarkProducts  = 100
	benchmarkCustomers = 1000
	benchmarkMaxQty    = 5
	benchmarkMinPrice  = 5.0
	benchmarkMaxPrice  = 250.0

	secondsPrecision = 6
)

// BenchmarkConfig holds the fixed parameters of every benchmark run
type BenchmarkConfig struct {
	TopN       int
	MaxRecords int
	Seed       int64
}

// DefaultBenchmarkConfig matches the service defaults
func DefaultBenchmarkConfig() BenchmarkConfig {
	return BenchmarkConfig{
		TopN:       10,
		MaxRecords: 2000000,
		Seed:       42,
	}
}

type benchmarkRecord struct {
	productID  string
	customerID string
	quantity   int64
	price      float64
}

func (r benchmarkRecord) total() float64 {
	return float64(r.quantity) * r.price
}

// generateDataset builds n records from a seeded source, so equal seeds give equal datasets
func generateDataset(n int, seed int64) []benchmarkRecord {
	rng := rand.New(rand.NewSource(seed))

	products := make([]string, benchmarkProducts)
	for i := range products {
		products[i] = fmt.Sprintf("P%d", i)
	}
	customers := make([]string, benchmarkCustomers)
	for i := range customers {
		customers[i] = fmt.Sprintf("C%d", i)
	}

	dataset := make([]benchmarkRecord, n)
	for i := range dataset {
		dataset[i] = benchmarkRecord{
			productID:  products[rng.Intn(len(products))],
			customerID: customers[rng.Intn(len(customers))],
			quantity:   int64(rng.Intn(benchmarkMaxQty) + 1),
			price:      entity.RoundMoney(benchmarkMinPrice + rng.Float64()*(benchmarkMaxPrice-benchmarkMinPrice)),
		}
	}
	return dataset
}

// aggregate sums totals per product and per customer in one pass
func aggregate(dataset []benchmarkRecord) (map[string]float64, map[string]float64) {
	products := make(map[string]float64, benchmarkProducts)
	customers := make(map[string]float64, benchmarkCustomers)
	for _, r := range dataset {
		t := r.total()
		products[r.productID] += t
		customers[r.customerID] += t
	}
	return products, customers
}

// benchmarkRunner times both strategies over one dataset
type benchmarkRunner struct {
	clock coreport.TimeProvider
	topN  int
}

// naive rebuilds both aggregates from scratch for every query round
func (b benchmarkRunner) naive(ctx context.Context, dataset []benchmarkRecord, rounds int) (time.Duration, error) {
	start := b.clock.Now()
	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		_, customers := aggregate(dataset)
		entity.TopSalesTotals(customers, b.topN)
	}
	return b.clock.Since(start), nil
}

// maintained builds the aggregates once and only queries them afterwards
func (b benchmarkRunner) maintained(ctx context.Context, dataset []benchmarkRecord, rounds int) (time.Duration, error) {
	start := b.clock.Now()
	_, customers := aggregate(dataset)
	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		entity.TopSalesTotals(customers, b.topN)
	}
	return b.clock.Since(start), nil
}

// speedup is naive/optimized, or 0 when the optimized run was too fast to measure
func speedup(naive, optimized float64) float64 {
	if optimized <= 0 {
		return 0
	}
	return entity.RoundMoney(naive / optimized)
}
