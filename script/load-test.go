package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
)

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// Scenario is one kind of request the generator sends
type Scenario struct {
	Name   string
	Weight int
	Build  func(w *worker) (*http.Request, error)
}

type options struct {
	baseURL     string
	concurrency int
	requests    int
	delayMs     int
	products    int
	customers   int
	timeout     time.Duration
}

func main() {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "load-test",
		Short: "Generate mixed read/write load against the sales analytics API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(opts)
		},
	}
	cmd.Flags().StringVar(&opts.baseURL, "url", "http://localhost:8080", "base URL of the API")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "c", 5, "number of concurrent workers")
	cmd.Flags().IntVarP(&opts.requests, "requests", "n", 1000, "total number of requests")
	cmd.Flags().IntVar(&opts.delayMs, "delay", 0, "delay between requests per worker, in milliseconds")
	cmd.Flags().IntVar(&opts.products, "products", 100, "number of distinct product ids")
	cmd.Flags().IntVar(&opts.customers, "customers", 1000, "number of distinct customer ids")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "per-request timeout")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func scenarios() []Scenario {
	return []Scenario{
		{"create", 50, func(w *worker) (*http.Request, error) {
			body, err := json.Marshal(map[string]any{
				"product_id":  fmt.Sprintf("P%d", w.rng.Intn(w.opts.products)),
				"customer_id": fmt.Sprintf("C%d", w.rng.Intn(w.opts.customers)),
				"quantity":    w.rng.Intn(5) + 1,
				"price":       float64(500+w.rng.Intn(24500)) / 100,
			})
			if err != nil {
				return nil, err
			}
			req, err := http.NewRequest(http.MethodPost, w.opts.baseURL+"/transactions", bytes.NewReader(body))
			if err != nil {
				return nil, err
			}
			req.Header.Set("Content-Type", "application/json")
			return req, nil
		}},
		{"update", 10, func(w *worker) (*http.Request, error) {
			body, err := json.Marshal(map[string]any{"quantity": w.rng.Intn(5) + 1})
			if err != nil {
				return nil, err
			}
			req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/transactions/%d", w.opts.baseURL, w.knownID()), bytes.NewReader(body))
			if err != nil {
				return nil, err
			}
			req.Header.Set("Content-Type", "application/json")
			return req, nil
		}},
		{"delete", 5, func(w *worker) (*http.Request, error) {
			return http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/transactions/%d", w.opts.baseURL, w.knownID()), nil)
		}},
		{"list by product", 15, func(w *worker) (*http.Request, error) {
			return http.NewRequest(http.MethodGet,
				fmt.Sprintf("%s/transactions?product_id=P%d&limit=20", w.opts.baseURL, w.rng.Intn(w.opts.products)), nil)
		}},
		{"product totals", 10, func(w *worker) (*http.Request, error) {
			return http.NewRequest(http.MethodGet, w.opts.baseURL+"/analytics/total-sales-per-product", nil)
		}},
		{"top customers", 10, func(w *worker) (*http.Request, error) {
			return http.NewRequest(http.MethodGet, w.opts.baseURL+"/analytics/top-customers?limit=10", nil)
		}},
	}
}

type worker struct {
	id     int
	opts   options
	rng    *rand.Rand
	client *http.Client
	lastID *atomic.Int64
}

// knownID picks an id that has probably been assigned already
func (w *worker) knownID() int64 {
	last := w.lastID.Load()
	if last <= 0 {
		return 1
	}
	return w.rng.Int63n(last) + 1
}

func pick(rng *rand.Rand, all []Scenario, totalWeight int) Scenario {
	n := rng.Intn(totalWeight)
	for _, s := range all {
		if n < s.Weight {
			return s
		}
		n -= s.Weight
	}
	return all[len(all)-1]
}

func run(opts options) error {
	all := scenarios()
	totalWeight := 0
	for _, s := range all {
		totalWeight += s.Weight
	}

	fmt.Printf("Load testing %s\n", opts.baseURL)
	fmt.Printf("Concurrency: %d workers\n", opts.concurrency)
	fmt.Printf("Total requests: %d\n", opts.requests)
	fmt.Printf("Delay between requests: %d ms\n", opts.delayMs)

	stats := &TestStats{
		TotalRequests:   opts.requests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, opts.requests),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, opts.requests)
	jobs := make(chan int, opts.requests)
	var lastID atomic.Int64

	var wg sync.WaitGroup
	for i := 0; i < opts.concurrency; i++ {
		wg.Add(1)
		w := &worker{
			id:     i,
			opts:   opts,
			rng:    rand.New(rand.NewSource(time.Now().UnixNano() + int64(i))),
			client: &http.Client{Timeout: opts.timeout},
			lastID: &lastID,
		}
		go func() {
			defer wg.Done()
			for range jobs {
				if opts.delayMs > 0 {
					time.Sleep(time.Duration(opts.delayMs) * time.Millisecond)
				}
				results <- w.do(pick(w.rng, all, totalWeight))
			}
		}()
	}

	for i := 0; i < opts.requests; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	ticker := time.NewTicker(time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			stats.Lock.Unlock()
			fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
				completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
	return nil
}

func (w *worker) do(s Scenario) TestResult {
	result := TestResult{Scenario: s.Name}

	req, err := s.Build(w)
	if err != nil {
		result.Error = err
		return result
	}

	start := time.Now()
	resp, err := w.client.Do(req)
	result.ResponseTime = time.Since(start)
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	// 404 on update or delete means the id was already deleted, which is expected under load
	result.Success = resp.StatusCode < 300 || resp.StatusCode == http.StatusNotFound
	if !result.Success {
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	if s.Name == "create" && resp.StatusCode == http.StatusCreated {
		var created struct {
			Transaction struct {
				ID int64 `json:"id"`
			} `json:"transaction"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&created); err == nil {
			for {
				last := w.lastID.Load()
				if created.Transaction.ID <= last || w.lastID.CompareAndSwap(last, created.Transaction.ID) {
					break
				}
			}
		}
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	return result
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	s.ScenarioStats[result.Scenario]++
	if result.Success {
		s.SuccessfulRequests++
	} else {
		s.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		s.ErrorCounts[errMsg]++
	}

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.TotalResponseTime += result.ResponseTime
	if result.ResponseTime < s.MinResponseTime {
		s.MinResponseTime = result.ResponseTime
	}
	if result.ResponseTime > s.MaxResponseTime {
		s.MaxResponseTime = result.ResponseTime
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	tps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f successful requests/s\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P95 Response:        %v\n", percentile(sorted, 95))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-18s: %d requests (%.1f%%)\n", scenario, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
