package game

import "errors"

var (
	// ErrInvalidSize is returned when constructing a game smaller than MinSize.
	ErrInvalidSize = errors.New("game: board size must be at least 4")

	// ErrInvalidBoard is returned when a provided board is not square.
	ErrInvalidBoard = errors.New("game: board must be square")

	// ErrInvalidValue is returned when a provided board contains a value
	// that is neither 0 nor a power of two starting from 2.
	ErrInvalidValue = errors.New("game: tile values must be 0 or powers of two starting from 2")

	// ErrIllegalMove is returned by Move when the requested direction would
	// not change the board. The game state is left untouched.
	ErrIllegalMove = errors.New("game: move does not change the board")

	// ErrGameOver is returned by Move once the game has been won or lost.
	ErrGameOver = errors.New("game: game is already over")
)
