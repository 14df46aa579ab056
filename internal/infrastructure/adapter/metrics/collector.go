package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/amirhossein-jamali/sales-analytics/internal/domain/port/core"
	"github.com/amirhossein-jamali/sales-analytics/internal/domain/port/persistence"
)

const namespace = "sales_analytics"

// DefaultSlowRequestThreshold is the latency above which a request is logged as slow
const DefaultSlowRequestThreshold = 2 * time.Second

// StatsSource reports store sizes; TransactionRepository satisfies it
type StatsSource interface {
	Stats() persistence.StoreStats
}

// Collector owns a private prometheus registry with store gauges and
// HTTP request metrics
type Collector struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	logger          coreport.Logger
	slowThreshold   time.Duration
}

// NewCollector registers the store gauges, the HTTP metrics and the Go runtime collectors
func NewCollector(store StatsSource, logger coreport.Logger) *Collector {
	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of handled HTTP requests.",
		}, []string{"method", "route", "status"})

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Bucketed histogram of HTTP request processing time (s).",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 16),
		}, []string{"method", "route"})

	c := &Collector{
		registry:        prometheus.NewRegistry(),
		requestsTotal:   requestsTotal,
		requestDuration: requestDuration,
		logger:          logger,
		slowThreshold:   DefaultSlowRequestThreshold,
	}

	c.registry.MustRegister(
		c.requestsTotal,
		c.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.registerStoreGauges(store)

	return c
}

func (c *Collector) registerStoreGauges(store StatsSource) {
	gauges := []struct {
		name  string
		help  string
		value func(persistence.StoreStats) int
	}{
		{"records", "Number of live transaction records.", func(s persistence.StoreStats) int { return s.Records }},
		{"ledger_products", "Number of products with a positive running total.", func(s persistence.StoreStats) int { return s.LedgerProducts }},
		{"ledger_customers", "Number of customers with a positive running total.", func(s persistence.StoreStats) int { return s.LedgerCustomers }},
		{"indexed_products", "Number of product keys in the secondary index.", func(s persistence.StoreStats) int { return s.IndexedProducts }},
		{"indexed_customers", "Number of customer keys in the secondary index.", func(s persistence.StoreStats) int { return s.IndexedCustomers }},
	}

	for _, g := range gauges {
		value := g.value
		c.registry.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      g.name,
				Help:      g.help,
			},
			func() float64 { return float64(value(store.Stats())) },
		))
	}
}

// WithSlowThreshold sets the latency above which requests are logged as slow
func (c *Collector) WithSlowThreshold(threshold time.Duration) *Collector {
	c.slowThreshold = threshold
	return c
}

// ObserveRequest records one handled request
func (c *Collector) ObserveRequest(method, route string, status int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())

	if c.slowThreshold > 0 && duration > c.slowThreshold {
		c.logger.Warn("Slow request detected", map[string]any{
			"method":      method,
			"route":       route,
			"status":      status,
			"duration_ms": duration.Milliseconds(),
		})
	}
}

// Handler serves the registry in the prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Registry exposes the underlying registry, mainly for tests
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
