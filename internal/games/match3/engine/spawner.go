package engine

import "math/rand"

// Spawner creates tokens. It owns the id counter and the random source so
// that independent sessions never share identity or randomness.
type Spawner struct {
	rng    *rand.Rand
	colors int
	nextID TokenID
}

// NewSpawner creates a spawner drawing from the first colors entries of the
// palette. The palette size is clamped to [MinColors, MaxColors].
func NewSpawner(rng *rand.Rand, colors int) *Spawner {
	if colors < MinColors {
		colors = MinColors
	}
	if colors > MaxColors {
		colors = MaxColors
	}
	return &Spawner{rng: rng, colors: colors}
}

// Colors returns the palette size in use.
func (s *Spawner) Colors() int {
	return s.colors
}

// LastID returns the most recently issued id, or 0 if none was issued.
func (s *Spawner) LastID() TokenID {
	return s.nextID
}

func (s *Spawner) id() TokenID {
	s.nextID++
	return s.nextID
}

// Token returns a fresh plain token of a uniformly random color.
func (s *Spawner) Token() Token {
	return Token{ID: s.id(), Color: Color(s.rng.Intn(s.colors))}
}

// Special returns a fresh token of the given color and kind.
func (s *Spawner) Special(c Color, kind Special) Token {
	return Token{ID: s.id(), Color: c, Special: kind}
}

// GenerateBoard fills a rows×cols board so that no row or column contains a
// run of three equal colors. A cell is resampled, with a fresh id each time,
// while it would complete a run with its two left or two upper neighbors.
func (s *Spawner) GenerateBoard(rows, cols int) Board {
	b := NewBoard(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			t := s.Token()
			for completesRun(b, r, c, t.Color) {
				t = s.Token()
			}
			b.set(P(r, c), t)
		}
	}
	return b
}

func completesRun(b Board, r, c int, color Color) bool {
	if c >= 2 {
		l1, l2 := b.At(P(r, c-1)), b.At(P(r, c-2))
		if l1.Color == color && l2.Color == color {
			return true
		}
	}
	if r >= 2 {
		u1, u2 := b.At(P(r-1, c)), b.At(P(r-2, c))
		if u1.Color == color && u2.Color == color {
			return true
		}
	}
	return false
}
