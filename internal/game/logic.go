package game

// slideLine compacts and merges a single line toward index 0.
// Each tile participates in at most one merge per move: [2,2,4] becomes
// [4,4,0], not [8,0,0]. Returns the resulting line and the score gained,
// which is the sum of the tile values created by merges.
func slideLine(line []int) ([]int, int) {
	out := make([]int, len(line))
	write := 0
	score := 0
	canMerge := false

	for _, v := range line {
		if v == 0 {
			continue
		}
		if canMerge && out[write-1] == v {
			out[write-1] *= 2
			score += out[write-1]
			canMerge = false
		} else {
			out[write] = v
			write++
			canMerge = true
		}
	}

	return out, score
}

func reverseLine(line []int) []int {
	out := make([]int, len(line))
	for i, v := range line {
		out[len(line)-1-i] = v
	}
	return out
}

func transpose(b Board) Board {
	size := b.Size()
	out := NewBoard(size)
	for i := range out {
		for j := range out[i] {
			out[i][j] = b[j][i]
		}
	}
	return out
}

func slideLeft(b Board) (Board, int, bool) {
	next := make(Board, len(b))
	score := 0
	changed := false

	for i, row := range b {
		newRow, gained := slideLine(row)
		next[i] = newRow
		score += gained
		if !changed {
			for j, v := range row {
				if newRow[j] != v {
					changed = true
					break
				}
			}
		}
	}

	return next, score, changed
}

func slideRight(b Board) (Board, int, bool) {
	next := make(Board, len(b))
	score := 0
	changed := false

	for i, row := range b {
		newRow, gained := slideLine(reverseLine(row))
		next[i] = reverseLine(newRow)
		score += gained
		if !changed {
			for j, v := range row {
				if next[i][j] != v {
					changed = true
					break
				}
			}
		}
	}

	return next, score, changed
}

// Slide applies a directional move to the board without mutating it.
// Up and Down reuse the horizontal slides through a transposed view, so
// the merge rules live in slideLine alone. Slide is a pure function:
// identical inputs always produce identical outputs.
// Returns the new board, the score gained, and whether anything moved.
func Slide(b Board, dir Direction) (Board, int, bool) {
	switch dir {
	case DirLeft:
		return slideLeft(b)
	case DirRight:
		return slideRight(b)
	case DirUp:
		next, score, changed := slideLeft(transpose(b))
		return transpose(next), score, changed
	case DirDown:
		next, score, changed := slideRight(transpose(b))
		return transpose(next), score, changed
	default:
		return b.Clone(), 0, false
	}
}

// hasPossibleMerge reports whether any two adjacent tiles are equal.
func hasPossibleMerge(b Board) bool {
	size := b.Size()
	for i := range b {
		for j, v := range b[i] {
			if v == 0 {
				continue
			}
			if j < size-1 && b[i][j+1] == v {
				return true
			}
			if i < size-1 && b[i+1][j] == v {
				return true
			}
		}
	}
	return false
}

// CanMove reports whether any of the four moves would change the board.
func CanMove(b Board) bool {
	return len(b.EmptyCells()) > 0 || hasPossibleMerge(b)
}

// LegalMoves returns the directions whose application would change the
// board, in canonical order.
func LegalMoves(b Board) []Direction {
	var moves []Direction
	for _, dir := range Directions() {
		if _, _, changed := Slide(b, dir); changed {
			moves = append(moves, dir)
		}
	}
	return moves
}
