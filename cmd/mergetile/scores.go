package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mergetile/internal/storage"
)

var flagScoresSize int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best recorded results",
	Long: `Display the top 10 recorded results for a board size.

Examples:
  mergetile scores
  mergetile scores --size 5`,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresSize, "size", 4, "Board size (NxN)")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.TopResults(flagScoresSize, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Best results - %dx%d\n\n", flagScoresSize, flagScoresSize)

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mergetile auto' to record the first one!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %-6s  %s\n", "Rank", "Score", "MaxTile", "Won", "Moves", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %-6s  %s\n", "----", "-----", "-------", "---", "-----", "----")

	for i, r := range results {
		won := "no"
		if r.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-10d  %-8d  %-5s  %-6d  %s\n",
			i+1, r.Score, r.MaxTile, won, r.Moves, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.StatsForSize(flagScoresSize)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games: %d, wins: %d, best: %d, average: %.0f\n",
			stats.GamesCount, stats.WinsCount, stats.HighScore, stats.AvgScore)
	}

	return nil
}
