package engine

import "errors"

var (
	// ErrInvalidPosition is returned when a position lies outside the board.
	ErrInvalidPosition = errors.New("engine: position out of bounds")

	// ErrNonAdjacent is returned when a swap names two cells that are not
	// orthogonal neighbors.
	ErrNonAdjacent = errors.New("engine: positions are not adjacent")

	// ErrNotIdle is returned when a mutating call arrives while the session
	// is not accepting input.
	ErrNotIdle = errors.New("engine: session is not idle")

	// ErrNoLevel is returned when a level operation has no level to act on.
	ErrNoLevel = errors.New("engine: no level loaded")
)
