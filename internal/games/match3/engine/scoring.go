package engine

import "math"

// Scoring holds the point values used for matches.
type Scoring struct {
	Base            int     // per-token value for runs of three
	Four            int     // per-token value for runs of four
	Five            int     // per-token value for runs of five or more
	ComboMultiplier float64 // raised to the combo level
}

// DefaultScoring returns the standard point table.
func DefaultScoring() Scoring {
	return Scoring{
		Base:            10,
		Four:            30,
		Five:            50,
		ComboMultiplier: 1.5,
	}
}

// Points returns floor(base(length) × length × multiplier^combo).
func (s Scoring) Points(length, combo int) int {
	base := s.Base
	switch {
	case length >= 5:
		base = s.Five
	case length == 4:
		base = s.Four
	}
	raw := float64(base*length) * math.Pow(s.ComboMultiplier, float64(combo))
	return int(math.Floor(raw))
}

// MatchPoints sums Points over every match at the given combo level.
func (s Scoring) MatchPoints(matches []Match, combo int) int {
	total := 0
	for _, m := range matches {
		total += s.Points(m.Len(), combo)
	}
	return total
}

// StarThresholds are the score/target ratios needed for two and three stars.
type StarThresholds struct {
	Two   float64
	Three float64
}

// DefaultStarThresholds returns 1.4 for two stars and 2.0 for three.
func DefaultStarThresholds() StarThresholds {
	return StarThresholds{Two: 1.4, Three: 2.0}
}

// Rate rates a finished level from one to three stars.
func (t StarThresholds) Rate(score, target int) int {
	if target <= 0 {
		return 3
	}
	ratio := float64(score) / float64(target)
	switch {
	case ratio >= t.Three:
		return 3
	case ratio >= t.Two:
		return 2
	default:
		return 1
	}
}

// Stars rates a level with the default thresholds.
func Stars(score, target int) int {
	return DefaultStarThresholds().Rate(score, target)
}
