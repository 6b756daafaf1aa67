package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mergetile/internal/ai"
	"github.com/vovakirdan/mergetile/internal/config"
)

var (
	flagBenchSize     int
	flagBenchRollouts int
	flagBenchWorkers  int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure advisor rollout throughput",
	Long: `Runs one advisor recommendation with the given rollout budget on a
fresh board and reports rollouts per second.

Examples:
  mergetile bench
  mergetile bench --rollouts 50000 --workers 4`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchSize, "size", 4, "Board size (NxN)")
	benchCmd.Flags().IntVar(&flagBenchRollouts, "rollouts", 10000, "Playout budget")
	benchCmd.Flags().IntVar(&flagBenchWorkers, "workers", 0, "Playout workers (0 = one per CPU)")
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	g, err := newGameFromConfig(cfg, flagBenchSize, flagSeed)
	if err != nil {
		return err
	}

	advisor := &ai.Advisor{Workers: flagBenchWorkers, Seed: flagSeed}

	start := time.Now()
	dir, err := advisor.FindBestMove(cmd.Context(), g, flagBenchRollouts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Board: %dx%d, budget: %d rollouts, workers: %d\n",
		flagBenchSize, flagBenchSize, flagBenchRollouts, flagBenchWorkers)
	fmt.Printf("Recommended: %s\n", dir)
	fmt.Printf("Took %s (%.0f rollouts/sec)\n",
		elapsed.Round(time.Millisecond), float64(flagBenchRollouts)/elapsed.Seconds())
	return nil
}
