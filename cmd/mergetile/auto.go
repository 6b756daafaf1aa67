package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mergetile/internal/ai"
	"github.com/vovakirdan/mergetile/internal/config"
	"github.com/vovakirdan/mergetile/internal/game"
	"github.com/vovakirdan/mergetile/internal/storage"
)

var (
	flagAutoSize     int
	flagAutoRollouts int
	flagAutoWorkers  int
	flagAutoQuiet    bool
)

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Let the advisor play a full game",
	Long: `Plays a complete game using the Monte Carlo advisor and records the
result to the scores database.

Examples:
  mergetile auto
  mergetile auto --size 5 --rollouts 2000
  mergetile auto --seed 42 --quiet`,
	RunE: runAuto,
}

func init() {
	autoCmd.Flags().IntVar(&flagAutoSize, "size", 4, "Board size (NxN)")
	autoCmd.Flags().IntVar(&flagAutoRollouts, "rollouts", 0, "Playout budget per move (0 = config default)")
	autoCmd.Flags().IntVar(&flagAutoWorkers, "workers", 0, "Playout workers (0 = config default)")
	autoCmd.Flags().BoolVar(&flagAutoQuiet, "quiet", false, "Only print the final result")
}

func runAuto(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mergetile",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	rollouts := flagAutoRollouts
	if rollouts <= 0 {
		rollouts = cfg.AI.Rollouts
	}
	workers := flagAutoWorkers
	if workers <= 0 {
		workers = cfg.AI.Workers
	}

	g, err := newGameFromConfig(cfg, flagAutoSize, flagSeed)
	if err != nil {
		return err
	}

	advisor := &ai.Advisor{Workers: workers, Seed: flagSeed}

	start := time.Now()
	moves := 0
	for g.Status() == game.InProgress {
		dir, err := advisor.FindBestMove(cmd.Context(), g, rollouts)
		if err != nil {
			if errors.Is(err, ai.ErrNoLegalMoves) {
				break
			}
			return err
		}
		if err := g.Move(dir); err != nil {
			return err
		}
		moves++

		if !flagAutoQuiet {
			fmt.Printf("Move %d: %s\n%s\n", moves, dir, g)
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("%s\n", g)
	fmt.Printf("Status: %s, max tile: %d, moves: %d, took %s\n",
		g.Status(), g.Board().MaxTile(), moves, elapsed.Round(time.Millisecond))

	saveResult(logger, g, moves, elapsed)
	return nil
}

// newGameFromConfig builds a game honoring the loaded engine config.
func newGameFromConfig(cfg config.EngineConfig, size int, seed int64) (*game.Game, error) {
	if size < cfg.Board.MinSize {
		return nil, fmt.Errorf("board size must be at least %d, got %d", cfg.Board.MinSize, size)
	}

	opts := []game.Option{
		game.WithFourProbability(cfg.Spawn.FourProbability),
		game.WithWinTile(cfg.WinTile(size)),
	}
	if seed != 0 {
		opts = append(opts, game.WithSeed(seed))
	}
	return game.New(size, opts...)
}

// saveResult records a finished game, logging instead of failing when the
// database is unavailable.
func saveResult(logger *log.Logger, g *game.Game, moves int, elapsed time.Duration) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		return
	}
	defer store.Close()

	_, err = store.SaveResult(storage.Result{
		Size:     g.Size(),
		Score:    g.Score(),
		MaxTile:  g.Board().MaxTile(),
		Won:      g.Status() == game.Won,
		Moves:    moves,
		Duration: elapsed,
	})
	if err != nil {
		logger.Warn("could not save result", "error", err)
	}
}
