package game

import "math/rand"

// DefaultFourProbability is the chance a spawned tile is a 4 instead of a 2.
const DefaultFourProbability = 0.10

// SpawnTile writes a 2 or a 4 into a uniformly random empty cell of b,
// mutating it in place. The value is 4 with probability fourProb.
// Returns false, leaving the board untouched, if no empty cell exists.
func SpawnTile(b Board, rng *rand.Rand, fourProb float64) bool {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return false
	}

	cell := empty[rng.Intn(len(empty))]
	value := 2
	if rng.Float64() < fourProb {
		value = 4
	}
	b[cell.Row][cell.Col] = value
	return true
}
