package engine

import (
	"fmt"
	"strings"
)

// Default board dimensions.
const (
	DefaultRows = 8
	DefaultCols = 8
)

// Board is a rows×cols grid of tokens. Boards have value semantics: every
// exported operation that changes cells returns a new Board and leaves the
// receiver untouched.
type Board struct {
	rows  int
	cols  int
	cells []Token
}

// NewBoard creates an empty rows×cols board.
func NewBoard(rows, cols int) Board {
	return Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Token, rows*cols),
	}
}

// Rows returns the number of rows.
func (b Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b Board) Cols() int { return b.cols }

// InBounds reports whether p addresses a cell on this board.
func (b Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// At returns the token at p, or the empty token when p is out of bounds.
func (b Board) At(p Position) Token {
	if !b.InBounds(p) {
		return Token{}
	}
	return b.cells[p.Row*b.cols+p.Col]
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	cells := make([]Token, len(b.cells))
	copy(cells, b.cells)
	return Board{rows: b.rows, cols: b.cols, cells: cells}
}

// With returns a copy of the board with t placed at p.
func (b Board) With(p Position, t Token) Board {
	nb := b.Clone()
	nb.set(p, t)
	return nb
}

// set writes in place. Only used on boards the engine owns.
func (b Board) set(p Position, t Token) {
	if b.InBounds(p) {
		b.cells[p.Row*b.cols+p.Col] = t
	}
}

// Swap returns a copy of the board with the tokens at a and b exchanged.
// Adjacency is not checked.
func (b Board) Swap(p, q Position) (Board, error) {
	if !b.InBounds(p) {
		return b, fmt.Errorf("swap %v: %w", p, ErrInvalidPosition)
	}
	if !b.InBounds(q) {
		return b, fmt.Errorf("swap %v: %w", q, ErrInvalidPosition)
	}
	nb := b.Clone()
	nb.swapInPlace(p, q)
	return nb, nil
}

func (b Board) swapInPlace(p, q Position) {
	i := p.Row*b.cols + p.Col
	j := q.Row*b.cols + q.Col
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
}

// Full reports whether every cell holds a token.
func (b Board) Full() bool {
	for _, t := range b.cells {
		if t.Empty() {
			return false
		}
	}
	return true
}

// IDs returns the ids of every token on the board.
func (b Board) IDs() []TokenID {
	ids := make([]TokenID, 0, len(b.cells))
	for _, t := range b.cells {
		if !t.Empty() {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// Find returns the position of the token with the given id.
func (b Board) Find(id TokenID) (Position, bool) {
	for i, t := range b.cells {
		if t.ID == id && !t.Empty() {
			return Position{Row: i / b.cols, Col: i % b.cols}, true
		}
	}
	return Position{}, false
}

// String renders the board as one line per row using the first letter of
// each color, uppercase for specials and '.' for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.cols; c++ {
			t := b.At(P(r, c))
			if t.Empty() {
				sb.WriteByte('.')
				continue
			}
			ch := t.Color.String()[0]
			if t.IsSpecial() {
				ch -= 'a' - 'A'
			}
			sb.WriteByte(ch)
		}
	}
	return sb.String()
}
