package engine

import "github.com/zyedidia/generic/mapset"

// FallRecord reports how many cells a token dropped. Tokens that did not
// move have no record.
type FallRecord struct {
	TokenID  TokenID
	Distance int
}

// GravityResult is the outcome of one clear-and-refill step.
type GravityResult struct {
	Board       Board
	Falls       []FallRecord
	NewTokenIDs mapset.Set[TokenID]
}

// ApplyGravity writes promotions, clears the remaining cells of cleared,
// compacts every column downward and refills the vacated top cells.
//
// Survivors keep their relative order. Refilled tokens are generated top to
// bottom and fall from a virtual row above the board, so a token landing in
// row r reports a distance of r+1.
func ApplyGravity(b Board, cleared PositionSet, promos []Promotion, sp *Spawner) GravityResult {
	work := b.Clone()

	keep := NewPositionSet(b.rows, b.cols)
	for _, pr := range promos {
		work.set(pr.Pos, pr.Token)
		keep.Add(pr.Pos)
	}
	for _, p := range cleared.Positions() {
		if !keep.Has(p) {
			work.set(p, Token{})
		}
	}

	res := GravityResult{
		Board:       NewBoard(b.rows, b.cols),
		NewTokenIDs: mapset.New[TokenID](),
	}

	for c := 0; c < b.cols; c++ {
		write := b.rows - 1
		for r := b.rows - 1; r >= 0; r-- {
			t := work.At(P(r, c))
			if t.Empty() {
				continue
			}
			res.Board.set(P(write, c), t)
			if write != r {
				res.Falls = append(res.Falls, FallRecord{TokenID: t.ID, Distance: write - r})
			}
			write--
		}
		for r := 0; r <= write; r++ {
			t := sp.Token()
			res.Board.set(P(r, c), t)
			res.Falls = append(res.Falls, FallRecord{TokenID: t.ID, Distance: r + 1})
			res.NewTokenIDs.Put(t.ID)
		}
	}

	return res
}
