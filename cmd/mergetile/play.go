package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mergetile/internal/ai"
	"github.com/vovakirdan/mergetile/internal/config"
	"github.com/vovakirdan/mergetile/internal/game"
)

var flagPlaySize int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively in the terminal",
	Long: `Play the merge puzzle with the keyboard.

Controls:
  w/a/s/d  - Move up/left/down/right
  h        - Ask the advisor for a hint
  q        - Quit

Examples:
  mergetile play
  mergetile play --size 5 --seed 42`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagPlaySize, "size", 4, "Board size (NxN)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mergetile",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	g, err := newGameFromConfig(cfg, flagPlaySize, flagSeed)
	if err != nil {
		return err
	}
	advisor := &ai.Advisor{Workers: cfg.AI.Workers, Seed: flagSeed}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("cannot enter raw terminal mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	printRaw(fmt.Sprintf("Reach %d to win. w/a/s/d to move, h for a hint, q to quit.\n\n%s\n", g.WinTile(), g))

	start := time.Now()
	moves := 0
	buf := make([]byte, 1)
	for g.Status() == game.InProgress {
		if _, err := os.Stdin.Read(buf); err != nil {
			break
		}

		var dir game.Direction
		switch buf[0] {
		case 'w':
			dir = game.DirUp
		case 's':
			dir = game.DirDown
		case 'a':
			dir = game.DirLeft
		case 'd':
			dir = game.DirRight
		case 'h':
			hint, err := advisor.FindBestMove(cmd.Context(), g, cfg.AI.Rollouts)
			if err != nil {
				printRaw(fmt.Sprintf("No hint available: %v\n", err))
			} else {
				printRaw(fmt.Sprintf("Hint: %s\n", hint))
			}
			continue
		case 'q', 3: // q or Ctrl+C
			printRaw("Bye.\n")
			return nil
		default:
			continue
		}

		if err := g.Move(dir); err != nil {
			if errors.Is(err, game.ErrIllegalMove) {
				printRaw(fmt.Sprintf("%s does nothing here.\n", dir))
				continue
			}
			break
		}
		moves++
		printRaw(fmt.Sprintf("\n%s\n", g))
	}

	printRaw(fmt.Sprintf("Status: %s, max tile: %d, moves: %d\n", g.Status(), g.Board().MaxTile(), moves))

	// Leave raw mode before touching the database so warnings render normally.
	term.Restore(fd, oldState)
	saveResult(logger, g, moves, time.Since(start))
	return nil
}

// printRaw writes text to stdout with raw-mode friendly line endings.
func printRaw(s string) {
	fmt.Print(strings.ReplaceAll(s, "\n", "\r\n"))
}
