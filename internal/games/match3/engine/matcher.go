package engine

// Axis is the orientation of a match.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// String returns "horizontal" or "vertical".
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// MinRun is the shortest run that counts as a match.
const MinRun = 3

// Match is a maximal run of three or more same-colored tokens on one axis.
// Positions are ordered left to right or top to bottom.
type Match struct {
	Positions []Position
	Axis      Axis
	Color     Color
}

// Len returns the run length.
func (m Match) Len() int {
	return len(m.Positions)
}

// Contains reports whether p is part of the match.
func (m Match) Contains(p Position) bool {
	for _, q := range m.Positions {
		if q == p {
			return true
		}
	}
	return false
}

// Center returns the middle cell of the run (floor of half the length).
func (m Match) Center() Position {
	return m.Positions[len(m.Positions)/2]
}

// FindMatches returns every horizontal run (rows top to bottom) followed by
// every vertical run (columns left to right). Runs on different axes are
// never merged, so a cross cell appears in two matches.
func FindMatches(b Board) []Match {
	var matches []Match
	for r := 0; r < b.rows; r++ {
		matches = scanLine(b, matches, Horizontal, b.cols, func(i int) Position { return P(r, i) })
	}
	for c := 0; c < b.cols; c++ {
		matches = scanLine(b, matches, Vertical, b.rows, func(i int) Position { return P(i, c) })
	}
	return matches
}

// scanLine appends the runs found along one row or column.
func scanLine(b Board, out []Match, axis Axis, n int, at func(int) Position) []Match {
	start := 0
	for i := 1; i <= n; i++ {
		first := b.At(at(start))
		if i < n {
			cur := b.At(at(i))
			if !first.Empty() && !cur.Empty() && cur.Color == first.Color {
				continue
			}
		}
		if i-start >= MinRun && !first.Empty() {
			m := Match{Axis: axis, Color: first.Color, Positions: make([]Position, 0, i-start)}
			for k := start; k < i; k++ {
				m.Positions = append(m.Positions, at(k))
			}
			out = append(out, m)
		}
		start = i
	}
	return out
}

// MatchedPositions returns the union of every position in matches.
func MatchedPositions(b Board, matches []Match) PositionSet {
	set := NewPositionSet(b.rows, b.cols)
	for _, m := range matches {
		for _, p := range m.Positions {
			set.Add(p)
		}
	}
	return set
}

// HasMatchAt reports whether p is part of a run of at least MinRun on
// either axis. Only the row and column through p are examined.
func HasMatchAt(b Board, p Position) bool {
	t := b.At(p)
	if t.Empty() {
		return false
	}
	same := func(q Position) bool {
		o := b.At(q)
		return !o.Empty() && o.Color == t.Color
	}

	h := 1
	for c := p.Col - 1; c >= 0 && same(P(p.Row, c)); c-- {
		h++
	}
	for c := p.Col + 1; c < b.cols && same(P(p.Row, c)); c++ {
		h++
	}
	if h >= MinRun {
		return true
	}

	v := 1
	for r := p.Row - 1; r >= 0 && same(P(r, p.Col)); r-- {
		v++
	}
	for r := p.Row + 1; r < b.rows && same(P(r, p.Col)); r++ {
		v++
	}
	return v >= MinRun
}
