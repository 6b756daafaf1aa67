package game

import (
	"errors"
	"math/rand"
	"testing"
)

// stuckBoard is full with no adjacent equal cells in any row or column.
var stuckBoard = [][]int{
	{2, 4, 2, 4},
	{4, 2, 4, 2},
	{2, 4, 2, 4},
	{4, 2, 4, 2},
}

func TestNewGame(t *testing.T) {
	g, err := New(4, WithSeed(42))
	if err != nil {
		t.Fatalf("New(4) failed: %v", err)
	}

	board := g.Board()
	occupied := board.Size()*board.Size() - len(board.EmptyCells())
	if occupied != 2 {
		t.Errorf("new game has %d tiles, want 2", occupied)
	}
	for _, row := range board {
		for _, v := range row {
			if v != 0 && v != 2 && v != 4 {
				t.Errorf("initial tile value %d, want 2 or 4", v)
			}
		}
	}
	if g.Score() != 0 {
		t.Errorf("new game score = %d, want 0", g.Score())
	}
	if g.Status() != InProgress {
		t.Errorf("new game status = %s, want in progress", g.Status())
	}
	if g.WinTile() != 2048 {
		t.Errorf("4x4 win tile = %d, want 2048", g.WinTile())
	}
}

func TestNewGameInvalidSize(t *testing.T) {
	for _, size := range []int{-1, 0, 3} {
		if _, err := New(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestDefaultWinTile(t *testing.T) {
	tests := []struct {
		size, want int
	}{
		{4, 2048},
		{5, 4096},
		{6, 8192},
		{8, 32768},
	}
	for _, tt := range tests {
		if got := DefaultWinTile(tt.size); got != tt.want {
			t.Errorf("DefaultWinTile(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestFromBoard(t *testing.T) {
	g, err := FromBoard([][]int{
		{2, 2, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, WithSeed(1))
	if err != nil {
		t.Fatalf("FromBoard failed: %v", err)
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, want 0", g.Score())
	}
	if g.Status() != InProgress {
		t.Errorf("status = %s, want in progress", g.Status())
	}
}

func TestFromBoardValidation(t *testing.T) {
	tests := []struct {
		name  string
		cells [][]int
		want  error
	}{
		{
			name:  "too small",
			cells: [][]int{{2, 0}, {0, 2}},
			want:  ErrInvalidSize,
		},
		{
			name: "not square",
			cells: [][]int{
				{2, 0, 0, 0},
				{0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			want: ErrInvalidBoard,
		},
		{
			name: "not a power of two",
			cells: [][]int{
				{3, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			want: ErrInvalidValue,
		},
		{
			name: "one is not a tile",
			cells: [][]int{
				{1, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			want: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromBoard(tt.cells); !errors.Is(err, tt.want) {
				t.Errorf("FromBoard error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFromBoardDoesNotAliasInput(t *testing.T) {
	cells := [][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 2},
	}
	g, err := FromBoard(cells, WithSeed(7))
	if err != nil {
		t.Fatalf("FromBoard failed: %v", err)
	}

	cells[0][0] = 64
	if g.Board()[0][0] != 2 {
		t.Error("FromBoard must copy the provided cells")
	}
}

func TestMoveScenarioRowMerge(t *testing.T) {
	g, err := FromBoard([][]int{
		{2, 2, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, WithSeed(3))
	if err != nil {
		t.Fatalf("FromBoard failed: %v", err)
	}

	if err := g.Move(DirLeft); err != nil {
		t.Fatalf("Move(Left) failed: %v", err)
	}

	if g.Score() != 4 {
		t.Errorf("score after merge = %d, want 4", g.Score())
	}
	board := g.Board()
	if board[0][0] != 4 || board[0][1] != 4 {
		t.Errorf("row 0 = %v, want [4 4 ...]", board[0])
	}

	// Exactly one tile spawned after the move: 3 from the original row
	// became 2 there plus the spawn.
	occupied := 16 - len(board.EmptyCells())
	if occupied != 3 {
		t.Errorf("%d occupied cells after move, want 3", occupied)
	}
}

func TestMoveIllegalIsAtomic(t *testing.T) {
	g, err := FromBoard([][]int{
		{2, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, WithSeed(5))
	if err != nil {
		t.Fatalf("FromBoard failed: %v", err)
	}

	before := g.Board()
	score := g.Score()

	// Tiles already packed left: Left changes nothing.
	if err := g.Move(DirLeft); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("Move(Left) error = %v, want ErrIllegalMove", err)
	}

	if !g.Board().Equal(before) {
		t.Error("illegal move must not modify the board")
	}
	if g.Score() != score {
		t.Error("illegal move must not modify the score")
	}
	if g.Status() != InProgress {
		t.Error("illegal move must not modify the status")
	}
}

func TestLostBoardHasNoLegalMoves(t *testing.T) {
	g, err := FromBoard(stuckBoard)
	if err != nil {
		t.Fatalf("FromBoard failed: %v", err)
	}

	if moves := g.LegalMoves(); len(moves) != 0 {
		t.Errorf("legal moves = %v, want none", moves)
	}
	if g.Status() != Lost {
		t.Errorf("status = %s, want lost", g.Status())
	}
}

func TestTerminalStatesAreAbsorbing(t *testing.T) {
	lost, err := FromBoard(stuckBoard)
	if err != nil {
		t.Fatalf("FromBoard failed: %v", err)
	}
	won, err := FromBoard([][]int{
		{2048, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	if err != nil {
		t.Fatalf("FromBoard failed: %v", err)
	}
	if won.Status() != Won {
		t.Fatalf("status = %s, want won", won.Status())
	}

	for _, g := range []*Game{lost, won} {
		for _, dir := range Directions() {
			if err := g.Move(dir); !errors.Is(err, ErrGameOver) {
				t.Errorf("Move(%s) on %s game error = %v, want ErrGameOver", dir, g.Status(), err)
			}
		}
	}
}

func TestWinCheckedBeforeLoss(t *testing.T) {
	// Left merges the two 1024s into the win tile. The board is full
	// afterwards, but the win must register first.
	g, err := FromBoard([][]int{
		{1024, 1024, 4, 8},
		{8, 32, 64, 128},
		{256, 512, 2, 64},
		{2, 4, 8, 16},
	}, WithSeed(11))
	if err != nil {
		t.Fatalf("FromBoard failed: %v", err)
	}

	if err := g.Move(DirLeft); err != nil {
		t.Fatalf("Move(Left) failed: %v", err)
	}
	if g.Status() != Won {
		t.Errorf("status = %s, want won", g.Status())
	}
	if g.Score() != 2048 {
		t.Errorf("score = %d, want 2048", g.Score())
	}
}

func TestSpawnTileFillsExactlyOneEmptyCell(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	b := Board(stuckBoard).Clone()
	b[1][1] = 0

	if !SpawnTile(b, rng, DefaultFourProbability) {
		t.Fatal("SpawnTile returned false with an empty cell available")
	}
	if b[1][1] != 2 && b[1][1] != 4 {
		t.Errorf("spawned value = %d, want 2 or 4", b[1][1])
	}

	// All other cells untouched.
	for i, row := range b {
		for j, v := range row {
			if i == 1 && j == 1 {
				continue
			}
			if v != stuckBoard[i][j] {
				t.Errorf("SpawnTile overwrote cell (%d,%d): %d -> %d", i, j, stuckBoard[i][j], v)
			}
		}
	}
}

func TestSpawnTileFullBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	b := Board(stuckBoard).Clone()

	if SpawnTile(b, rng, DefaultFourProbability) {
		t.Error("SpawnTile should report failure on a full board")
	}
	if !b.Equal(Board(stuckBoard)) {
		t.Error("SpawnTile must leave a full board untouched")
	}
}

func TestSpawnDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	fours := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		b := NewBoard(4)
		SpawnTile(b, rng, DefaultFourProbability)
		if b.MaxTile() == 4 {
			fours++
		}
	}

	// Expect roughly 10% fours; allow a generous band for a seeded run.
	ratio := float64(fours) / trials
	if ratio < 0.07 || ratio > 0.13 {
		t.Errorf("spawned 4 ratio = %.3f, want about 0.10", ratio)
	}
}

func TestDeterministicSeed(t *testing.T) {
	g1, err := New(4, WithSeed(12345))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	g2, err := New(4, WithSeed(12345))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if !g1.Board().Equal(g2.Board()) {
		t.Errorf("same seed should produce the same initial board:\n%vvs\n%v", g1.Board(), g2.Board())
	}

	for i := 0; i < 10; i++ {
		moves := g1.LegalMoves()
		if len(moves) == 0 {
			break
		}
		if err := g1.Move(moves[0]); err != nil {
			t.Fatalf("Move failed: %v", err)
		}
		if err := g2.Move(moves[0]); err != nil {
			t.Fatalf("Move failed: %v", err)
		}
		if !g1.Board().Equal(g2.Board()) {
			t.Fatalf("boards diverged after %d moves", i+1)
		}
	}
}

func TestCloneIndependent(t *testing.T) {
	g, err := New(4, WithSeed(77))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	clone := g.Clone()
	before := g.Board()
	score := g.Score()

	moves := clone.LegalMoves()
	if len(moves) == 0 {
		t.Fatal("fresh game should have legal moves")
	}
	if err := clone.Move(moves[0]); err != nil {
		t.Fatalf("Move on clone failed: %v", err)
	}

	if !g.Board().Equal(before) || g.Score() != score {
		t.Error("moving a clone must not affect the original game")
	}
}

func TestLegalMovesRecomputed(t *testing.T) {
	g, err := FromBoard([][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, WithSeed(13))
	if err != nil {
		t.Fatalf("FromBoard failed: %v", err)
	}

	before := g.LegalMoves()
	if err := g.Move(before[0]); err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	for _, dir := range g.LegalMoves() {
		if _, _, changed := Slide(g.Board(), dir); !changed {
			t.Errorf("reported legal move %s does not change the current board", dir)
		}
	}
}
