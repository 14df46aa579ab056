package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/sales-analytics/internal/domain/port/usecase"
	analyticsUseCase "github.com/amirhossein-jamali/sales-analytics/internal/domain/usecase/analytics"
	"github.com/amirhossein-jamali/sales-analytics/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/sales-analytics/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/sales-analytics/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/sales-analytics/internal/infrastructure/adapter/time"
)

var (
	roundsArg   int
	topNArg     int
	seedArg     int64
	maxArg      int
	logLevelArg string
	jsonOutput  bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := &cobra.Command{
		Use:   "sales-bench",
		Short: "Compare naive re-aggregation against maintained aggregates",
	}
	rootCmd.PersistentFlags().IntVar(&roundsArg, "rounds", 5, "query rounds per strategy")
	rootCmd.PersistentFlags().IntVar(&topNArg, "top-n", 10, "size of the top customers query")
	rootCmd.PersistentFlags().Int64Var(&seedArg, "seed", 42, "dataset seed")
	rootCmd.PersistentFlags().IntVar(&maxArg, "max-records", 10000000, "refuse datasets larger than this")
	rootCmd.PersistentFlags().StringVar(&logLevelArg, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")

	rootCmd.AddCommand(
		newRunCommand(),
		newSweepCommand(),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRunCommand() *cobra.Command {
	var records int
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one benchmark",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmarks(cmd, []int{records})
		},
	}
	cmd.Flags().IntVar(&records, "records", 50000, "synthetic records to generate")
	return cmd
}

func newSweepCommand() *cobra.Command {
	var sizes []int
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the benchmark for several dataset sizes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmarks(cmd, sizes)
		},
	}
	cmd.Flags().IntSliceVar(&sizes, "sizes", []int{1000, 10000, 50000, 100000}, "dataset sizes")
	return cmd
}

func runBenchmarks(cmd *cobra.Command, sizes []int) error {
	appLogger := logger.NewZapLogger(logger.Options{Level: logLevelArg, Output: "stderr"})
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()
	service := analyticsUseCase.NewAnalyticsService(
		repository.NewTransactionRepository(tp, appLogger),
		tp,
		appLogger,
		analyticsUseCase.BenchmarkConfig{TopN: topNArg, MaxRecords: maxArg, Seed: seedArg},
	)

	results := make([]dto.BenchmarkResponse, 0, len(sizes))
	for _, size := range sizes {
		result, err := service.RunBenchmark(cmd.Context(), usecase.BenchmarkRequest{
			Records:     size,
			QueryRounds: roundsArg,
		})
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "benchmark with %d records failed: %v\n", size, err)
			return err
		}
		results = append(results, dto.NewBenchmarkResponse(result))
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if len(results) == 1 {
			return enc.Encode(results[0])
		}
		return enc.Encode(results)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RECORDS\tROUNDS\tTOP N\tNAIVE (s)\tMAINTAINED (s)\tSPEEDUP")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%d\t%.6f\t%.6f\t%.2fx\n",
			r.Records, r.QueryRounds, r.TopN, r.NaiveSeconds, r.OptimizedSeconds, r.Speedup)
	}
	return w.Flush()
}
