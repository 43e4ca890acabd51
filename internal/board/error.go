package board

import "errors"

var (
	ErrInvalidDimension = errors.New("invalid board dimension")
	ErrInvalidDensity   = errors.New("invalid mine density")
	ErrInvalidLayout    = errors.New("invalid mine layout")

	ErrMalformedInput = errors.New("malformed coordinates")
	ErrOutOfBounds    = errors.New("coordinates out of bounds")

	ErrAlreadyUncovered = errors.New("tile is already uncovered")
	ErrTileUncovered    = errors.New("tile is uncovered and cannot be flagged")
	ErrGameOver         = errors.New("game is over")
)
