package engine

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Position addresses a cell by row and column.
type Position struct {
	Row int
	Col int
}

// P is shorthand for Position{Row: row, Col: col}.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// IsAdjacent reports whether a and b are exactly one step apart on one axis.
func IsAdjacent(a, b Position) bool {
	dr := abs(a.Row - b.Row)
	dc := abs(a.Col - b.Col)
	return dr+dc == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// PositionSet is a set of board positions backed by a bitset indexed by
// row*cols+col. Iteration is always row-major.
type PositionSet struct {
	rows, cols int
	bits       *bitset.BitSet
}

// NewPositionSet creates an empty set sized for a rows×cols board.
func NewPositionSet(rows, cols int) PositionSet {
	return PositionSet{
		rows: rows,
		cols: cols,
		bits: bitset.New(uint(rows * cols)),
	}
}

func (s PositionSet) index(p Position) uint {
	return uint(p.Row*s.cols + p.Col)
}

func (s PositionSet) valid(p Position) bool {
	return p.Row >= 0 && p.Row < s.rows && p.Col >= 0 && p.Col < s.cols
}

// Add inserts p. Out-of-range positions are ignored.
func (s PositionSet) Add(p Position) {
	if s.bits == nil || !s.valid(p) {
		return
	}
	s.bits.Set(s.index(p))
}

// Remove deletes p from the set.
func (s PositionSet) Remove(p Position) {
	if s.bits == nil || !s.valid(p) {
		return
	}
	s.bits.Clear(s.index(p))
}

// Has reports whether p is in the set.
func (s PositionSet) Has(p Position) bool {
	if s.bits == nil || !s.valid(p) {
		return false
	}
	return s.bits.Test(s.index(p))
}

// Len returns the number of positions in the set.
func (s PositionSet) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// Union adds every member of other into s.
func (s PositionSet) Union(other PositionSet) {
	if s.bits == nil || other.bits == nil {
		return
	}
	s.bits.InPlaceUnion(other.bits)
}

// Clone returns an independent copy of the set.
func (s PositionSet) Clone() PositionSet {
	if s.bits == nil {
		return s
	}
	return PositionSet{rows: s.rows, cols: s.cols, bits: s.bits.Clone()}
}

// Positions lists members in row-major order.
func (s PositionSet) Positions() []Position {
	if s.bits == nil {
		return nil
	}
	out := make([]Position, 0, s.Len())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, Position{Row: int(i) / s.cols, Col: int(i) % s.cols})
	}
	return out
}
