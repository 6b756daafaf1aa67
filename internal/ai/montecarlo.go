// Package ai recommends moves for the merge puzzle using Monte Carlo
// simulation: for every legal move it runs many random playouts from the
// current position and picks the move with the highest average final score.
package ai

import (
	"context"
	"errors"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/mergetile/internal/game"
)

var (
	// ErrNoLegalMoves is returned when the game is over or no move would
	// change the board. No fallback move is chosen.
	ErrNoLegalMoves = errors.New("ai: no legal moves")

	// ErrInvalidBudget is returned for a zero or negative rollout budget.
	ErrInvalidBudget = errors.New("ai: rollout budget must be positive")
)

// Advisor runs parallel Monte Carlo playouts to rank candidate moves.
// The zero value is ready to use: one worker per CPU and a time-based
// root seed.
type Advisor struct {
	// Workers is the number of concurrent playout workers.
	// 0 means GOMAXPROCS.
	Workers int

	// Seed is the root seed for playout RNG streams. Each rollout derives
	// its own generator from Seed plus the rollout index, so results for a
	// fixed seed are identical regardless of worker count. 0 means a
	// time-based seed.
	Seed int64
}

// candidate tracks the integer score accumulation for one legal move.
// Integer sums keep the final averages exactly reproducible no matter in
// which order rollouts complete.
type candidate struct {
	dir   game.Direction
	sum   int64
	count int64
}

// FindBestMove returns the legal move with the highest average playout
// score over the given rollout budget. The budget is split as evenly as
// possible across the legal moves; the first budget mod len(moves)
// candidates in canonical direction order receive one extra rollout.
// Ties are broken in favor of the earlier canonical direction.
//
// Returns ErrNoLegalMoves if the game is over or nothing can move, and
// ErrInvalidBudget if rollouts <= 0. The call blocks until every rollout
// has completed or ctx is cancelled.
func (a *Advisor) FindBestMove(ctx context.Context, g *game.Game, rollouts int) (game.Direction, error) {
	if rollouts <= 0 {
		return 0, ErrInvalidBudget
	}
	if g.Status() != game.InProgress {
		return 0, ErrNoLegalMoves
	}
	legal := g.LegalMoves()
	if len(legal) == 0 {
		return 0, ErrNoLegalMoves
	}
	// A single legal move needs no simulation.
	if len(legal) == 1 {
		return legal[0], nil
	}

	cands := make([]candidate, len(legal))
	for i, dir := range legal {
		cands[i] = candidate{dir: dir}
	}

	// offsets[i] is the index of the first rollout belonging to candidate
	// i; rollout k belongs to the last candidate with offset <= k.
	base := rollouts / len(legal)
	rem := rollouts % len(legal)
	offsets := make([]int64, len(legal))
	var acc int64
	for i := range legal {
		offsets[i] = acc
		acc += int64(base)
		if i < rem {
			acc++
		}
	}

	rootSeed := a.Seed
	if rootSeed == 0 {
		rootSeed = time.Now().UnixNano()
	}
	workers := a.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Workers pull rollout indices from a shared counter and accumulate
	// (sum, count) locally; the fold over worker results happens on a
	// single goroutine after Wait.
	var next atomic.Int64
	locals := make([][]candidate, workers)

	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			local := make([]candidate, len(legal))
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				k := next.Add(1) - 1
				if k >= int64(rollouts) {
					break
				}

				ci := len(offsets) - 1
				for ci > 0 && offsets[ci] > k {
					ci--
				}

				rng := rand.New(rand.NewSource(rootSeed + k))
				local[ci].sum += playout(g, legal[ci], rng)
				local[ci].count++
			}
			locals[w] = local
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	for _, local := range locals {
		for i, c := range local {
			cands[i].sum += c.sum
			cands[i].count += c.count
		}
	}

	// Highest average wins; compare by cross multiplication to stay in
	// integers. Strict inequality keeps ties on the earlier candidate.
	best := 0
	for i := 1; i < len(cands); i++ {
		if cands[i].sum*cands[best].count > cands[best].sum*cands[i].count {
			best = i
		}
	}
	return cands[best].dir, nil
}

// playout clones the game, applies the fixed first move and then plays
// uniformly random legal moves until the game is won or lost. Returns the
// final cumulative score.
func playout(g *game.Game, first game.Direction, rng *rand.Rand) int64 {
	sim := g.CloneWithRand(rng)
	if err := sim.Move(first); err != nil {
		return int64(sim.Score())
	}

	for sim.Status() == game.InProgress {
		moves := sim.LegalMoves()
		if len(moves) == 0 {
			break
		}
		sim.Move(moves[rng.Intn(len(moves))])
	}
	return int64(sim.Score())
}
