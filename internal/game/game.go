// Package game implements the sliding-tile merge puzzle: board mutation,
// merge scoring, random tile spawning and terminal-state detection for
// square boards of side 4 or larger.
package game

import (
	"fmt"
	"math/rand"
	"time"
)

// MinSize is the smallest supported board dimension.
const MinSize = 4

// winBaseExponent is the win-tile exponent for a MinSize board: 2^11 = 2048.
// Larger boards scale the threshold up by one doubling per extra row, so
// the game stays winnable but non-trivial.
const winBaseExponent = 11

// DefaultWinTile returns the win threshold for a board of the given size.
func DefaultWinTile(size int) int {
	return 1 << (winBaseExponent + size - MinSize)
}

// Status represents the game status. Won and Lost are terminal: no move
// transition leaves either of them.
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Game owns a board, a cumulative score and a derived status. It is
// mutated only through Move; playout copies are created with Clone or
// CloneWithRand and never share board state with the original.
type Game struct {
	board    Board
	score    int
	status   Status
	rng      *rand.Rand
	fourProb float64
	winTile  int
}

// Option configures a game at construction time.
type Option func(*Game)

// WithSeed makes spawning deterministic for the given seed.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the RNG used for tile spawning.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithFourProbability overrides the chance of spawning a 4 instead of a 2.
func WithFourProbability(p float64) Option {
	return func(g *Game) {
		g.fourProb = p
	}
}

// WithWinTile overrides the win threshold.
func WithWinTile(v int) Option {
	return func(g *Game) {
		g.winTile = v
	}
}

// New creates a game of the given board size with two spawned tiles,
// score 0 and status InProgress. Returns ErrInvalidSize if size < MinSize.
func New(size int, opts ...Option) (*Game, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	g := newGame(NewBoard(size), opts)
	SpawnTile(g.board, g.rng, g.fourProb)
	SpawnTile(g.board, g.rng, g.fourProb)
	return g, nil
}

// FromBoard creates a game from an existing board layout. The board must
// be square, at least MinSize wide, and contain only zeros and powers of
// two starting from 2. The score starts at 0 and the status is derived
// from the board contents.
func FromBoard(cells [][]int, opts ...Option) (*Game, error) {
	size := len(cells)
	if size < MinSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	for i, row := range cells {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, i, len(row), size)
		}
		for j, v := range row {
			if v != 0 && (v < 2 || v&(v-1) != 0) {
				return nil, fmt.Errorf("%w: %d at row %d col %d", ErrInvalidValue, v, i, j)
			}
		}
	}

	g := newGame(Board(cells).Clone(), opts)
	g.updateStatus()
	return g, nil
}

func newGame(b Board, opts []Option) *Game {
	g := &Game{
		board:    b,
		status:   InProgress,
		fourProb: DefaultFourProbability,
		winTile:  DefaultWinTile(b.Size()),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board.Clone()
}

// Score returns the cumulative score.
func (g *Game) Score() int {
	return g.score
}

// Status returns the current status.
func (g *Game) Status() Status {
	return g.status
}

// Size returns the board dimension.
func (g *Game) Size() int {
	return g.board.Size()
}

// WinTile returns the tile value that wins the game.
func (g *Game) WinTile() int {
	return g.winTile
}

// LegalMoves returns the directions that would change the board, in
// canonical order. Recomputed from the current board on every call.
func (g *Game) LegalMoves() []Direction {
	return LegalMoves(g.board)
}

// Move applies a directional move: slide and merge, add the merge score,
// spawn a new tile and recompute the status. The transition is atomic:
// on error the board, score and status are exactly as before the call.
// Returns ErrGameOver if the game is already won or lost, ErrIllegalMove
// if the move would not change the board.
func (g *Game) Move(dir Direction) error {
	if g.status != InProgress {
		return ErrGameOver
	}

	next, gained, changed := Slide(g.board, dir)
	if !changed {
		return ErrIllegalMove
	}

	g.board = next
	g.score += gained
	// A changed move always leaves at least one empty cell: either a merge
	// freed one or the board was not full to begin with.
	SpawnTile(g.board, g.rng, g.fourProb)
	g.updateStatus()
	return nil
}

// updateStatus derives the status from the board. The win check runs
// first: a merge that creates the win tile registers as Won even if the
// board is also stuck afterwards.
func (g *Game) updateStatus() {
	switch {
	case g.board.MaxTile() >= g.winTile:
		g.status = Won
	case !CanMove(g.board):
		g.status = Lost
	default:
		g.status = InProgress
	}
}

// Clone returns an independent deep copy of the game. The copy's RNG is
// seeded from the parent's RNG, so cloned games stay deterministic when
// the parent was created with a fixed seed.
func (g *Game) Clone() *Game {
	return g.CloneWithRand(rand.New(rand.NewSource(g.rng.Int63())))
}

// CloneWithRand returns an independent deep copy of the game that spawns
// tiles from the supplied RNG. Used by playouts that need RNG streams
// independent of the original game.
func (g *Game) CloneWithRand(rng *rand.Rand) *Game {
	return &Game{
		board:    g.board.Clone(),
		score:    g.score,
		status:   g.status,
		rng:      rng,
		fourProb: g.fourProb,
		winTile:  g.winTile,
	}
}

// String renders the board and score.
func (g *Game) String() string {
	return fmt.Sprintf("%sScore: %d\n", g.board, g.score)
}
