package engine

// Move is a swap of two adjacent cells.
type Move struct {
	A Position
	B Position
}

// HasValidMoves reports whether any adjacent swap would create a match.
func HasValidMoves(b Board) bool {
	_, ok := FindHintMove(b)
	return ok
}

// FindHintMove returns the first swap, in row-major order with the right
// neighbor tried before the lower one, that creates a match.
func FindHintMove(b Board) (Move, bool) {
	scratch := b.Clone()
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			here := P(r, c)
			for _, there := range [2]Position{P(r, c+1), P(r+1, c)} {
				if !b.InBounds(there) {
					continue
				}
				scratch.swapInPlace(here, there)
				ok := HasMatchAt(scratch, here) || HasMatchAt(scratch, there)
				scratch.swapInPlace(here, there)
				if ok {
					return Move{A: here, B: there}, true
				}
			}
		}
	}
	return Move{}, false
}
