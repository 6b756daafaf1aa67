// mergetile is a sliding-tile merge puzzle engine with a Monte Carlo
// move advisor.
//
// Usage:
//
//	mergetile play            - Play interactively in the terminal
//	mergetile auto            - Let the advisor play a full game
//	mergetile bench           - Measure advisor rollout throughput
//	mergetile scores          - Show best recorded results
//
// Global flags:
//
//	--seed <value>   - RNG seed for reproducible games (0 = random)
//	--db <path>      - Results database path (default: ~/.mergetile/results.db)
//	--config <path>  - Custom engine config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mergetile",
	Short: "Sliding-tile merge puzzle with a Monte Carlo advisor",
	Long: `mergetile implements the sliding-tile merge puzzle (2048 rules) on
square boards of side 4 or larger, plus a Monte Carlo advisor that
recommends moves by averaging random playouts.

Examples:
  mergetile play
  mergetile auto --size 5 --rollouts 2000
  mergetile bench --rollouts 10000
  mergetile scores --size 4`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mergetile/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom engine config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(autoCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(scoresCmd)
}
