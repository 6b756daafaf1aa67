package game

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

// Directions in canonical order. All deterministic tie-breaks
// (legal-move enumeration, advisor result selection) use this order.
const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Directions returns all four directions in canonical order.
func Directions() []Direction {
	return []Direction{DirUp, DirDown, DirLeft, DirRight}
}

// Cell is a board coordinate.
type Cell struct {
	Row, Col int
}

// Board is a square grid of tiles. 0 means empty; every other value is a
// power of two starting from 2. Boards are passed by value semantics:
// functions that need an independent copy call Clone first.
type Board [][]int

// NewBoard creates an empty size x size board.
func NewBoard(size int) Board {
	b := make(Board, size)
	for i := range b {
		b[i] = make([]int, size)
	}
	return b
}

// Size returns the board dimension.
func (b Board) Size() int {
	return len(b)
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	c := make(Board, len(b))
	for i, row := range b {
		c[i] = make([]int, len(row))
		copy(c[i], row)
	}
	return c
}

// Equal reports whether two boards have identical contents.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for i, row := range b {
		for j, v := range row {
			if other[i][j] != v {
				return false
			}
		}
	}
	return true
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for i, row := range b {
		for j, v := range row {
			if v == 0 {
				cells = append(cells, Cell{Row: i, Col: j})
			}
		}
	}
	return cells
}

// MaxTile returns the largest tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for _, row := range b {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// String renders the board with column-aligned cells.
func (b Board) String() string {
	width := 1
	for v := b.MaxTile(); v >= 10; v /= 10 {
		width++
	}
	width++ // one space between columns

	var sb strings.Builder
	for _, row := range b {
		for _, v := range row {
			fmt.Fprintf(&sb, "%*d", width, v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
