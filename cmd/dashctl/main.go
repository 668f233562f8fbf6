package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/minerahub/dashboard/backend/internal/repositories"
	"github.com/minerahub/dashboard/backend/internal/services"
	"github.com/minerahub/dashboard/backend/internal/simulator"
	"github.com/minerahub/dashboard/backend/internal/store"
)

var (
	// Global flags
	verbose      bool
	failureRate  float64
	latencyScale float64
	simSeed      uint64
	timeout      time.Duration

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dashctl",
	Short: "Run dashboard aggregations against the embedded records",
	Long: `dashctl builds the same views the dashboard API serves, straight from the
embedded record set, and seeds external stores with it.

Access-layer latency and transient failures are simulated exactly as in the
server; use --latency-scale 0 --failure-rate 0 for instant, reliable runs.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Float64Var(&failureRate, "failure-rate", simulator.DefaultFailureRate, "Probability an access call fails transiently")
	rootCmd.PersistentFlags().Float64Var(&latencyScale, "latency-scale", 1, "Multiplier applied to simulated latency")
	rootCmd.PersistentFlags().Uint64Var(&simSeed, "sim-seed", 0, "Seed for failure injection (0 = time based)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Overall command timeout")

	rootCmd.AddCommand(inboxCmd)
	rootCmd.AddCommand(forumCmd)
	rootCmd.AddCommand(followersCmd)
	rootCmd.AddCommand(casesCmd)
	rootCmd.AddCommand(reportsCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(countsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newServices wires the simulated access layer over the embedded records.
func newServices() *services.Services {
	snap := store.MustLoadEmbedded()
	sim := simulator.New(
		simulator.WithFailureRate(failureRate),
		simulator.WithLatencyScale(latencyScale),
		simulator.WithSeed(simSeed),
		simulator.WithLogger(logger.Named("simulator")),
	)
	repos := repositories.NewMockRepositories(sim, snap)
	return services.New(repos, store.NewOverlay(snap), logger.Named("services"), services.Options{})
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
