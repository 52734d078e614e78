// Package engine implements the match-3 rules: board generation, match
// detection, special tokens, gravity and refill, move feasibility, scoring
// and the session state machine that sequences them.
//
// The package has no UI or I/O dependencies. Every board transformation is
// deterministic given the Spawner's random source, which makes the whole
// cascade reproducible in tests.
package engine

// Color is a token color from the fixed palette.
type Color uint8

// Palette colors in canonical declaration order.
const (
	Red Color = iota
	Orange
	Yellow
	Green
	Blue
	Purple
)

// MaxColors is the size of the full palette.
const MaxColors = 6

// MinColors is the smallest palette that can always avoid initial runs.
const MinColors = 3

var colorNames = [MaxColors]string{"red", "orange", "yellow", "green", "blue", "purple"}

// String returns the lowercase color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// Special identifies the area effect carried by a token.
type Special uint8

const (
	SpecialNone Special = iota
	SpecialStripedH
	SpecialStripedV
	SpecialAreaBomb
	SpecialColorBomb
)

// String returns a short name for the special kind.
func (s Special) String() string {
	switch s {
	case SpecialNone:
		return "none"
	case SpecialStripedH:
		return "striped-h"
	case SpecialStripedV:
		return "striped-v"
	case SpecialAreaBomb:
		return "area-bomb"
	case SpecialColorBomb:
		return "color-bomb"
	default:
		return "unknown"
	}
}

// TokenID uniquely identifies a token for the lifetime of a Spawner.
// Zero is reserved for the empty cell.
type TokenID uint64

// Token is an immutable game piece.
type Token struct {
	ID      TokenID
	Color   Color
	Special Special
}

// Empty reports whether the token represents an empty cell.
func (t Token) Empty() bool {
	return t.ID == 0
}

// IsSpecial reports whether the token carries an area effect.
func (t Token) IsSpecial() bool {
	return t.Special != SpecialNone
}
