package engine

import "github.com/zyedidia/generic/mapset"

// CascadeStep is one remove-and-refill iteration of a cascade.
type CascadeStep struct {
	Combo       int
	Before      Board
	Matches     []Match
	Matched     PositionSet // union of match cells
	Cleared     PositionSet // Matched plus special activations
	Promotions  []Promotion
	ScoreDelta  int
	After       Board
	Falls       []FallRecord
	NewTokenIDs mapset.Set[TokenID]
}

// Resolution is the full trace of a cascade.
type Resolution struct {
	Steps      []CascadeStep
	Board      Board // settled board
	ScoreDelta int
	Truncated  bool // stopped by the iteration cap with matches still pending
}

// ComboReached is the highest combo level used, or -1 with no steps.
func (r Resolution) ComboReached() int {
	return len(r.Steps) - 1
}

// Resolve runs the cascade on b until no matches remain. touched names the
// swap origin; it only influences promotion placement in the first step.
// The loop is capped at rows×cols iterations.
func Resolve(b Board, sp *Spawner, scoring Scoring, touched ...Position) Resolution {
	res := Resolution{Board: b}
	limit := b.rows * b.cols

	for combo := 0; ; combo++ {
		matches := FindMatches(res.Board)
		if len(matches) == 0 {
			return res
		}
		if combo >= limit {
			res.Truncated = true
			return res
		}

		var hint []Position
		if combo == 0 {
			hint = touched
		}
		step := resolveStep(res.Board, matches, sp, scoring, combo, hint)
		res.Steps = append(res.Steps, step)
		res.ScoreDelta += step.ScoreDelta
		res.Board = step.After
	}
}

func resolveStep(b Board, matches []Match, sp *Spawner, scoring Scoring, combo int, touched []Position) CascadeStep {
	matched := MatchedPositions(b, matches)
	cleared := ActivateSpecials(b, matched)
	promos := DetermineSpecials(b, matches, sp, touched...)
	g := ApplyGravity(b, cleared, promos, sp)

	return CascadeStep{
		Combo:       combo,
		Before:      b,
		Matches:     matches,
		Matched:     matched,
		Cleared:     cleared,
		Promotions:  promos,
		ScoreDelta:  scoring.MatchPoints(matches, combo),
		After:       g.Board,
		Falls:       g.Falls,
		NewTokenIDs: g.NewTokenIDs,
	}
}
