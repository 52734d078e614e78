package engine

// Promotion is a special token that replaces a matched cell instead of the
// cell being cleared.
type Promotion struct {
	Pos   Position
	Token Token
}

// DetermineSpecials decides which matched cells turn into special tokens.
//
// Cross points (cells in both a horizontal and a vertical match) become
// area bombs first. Every match of length four or more then yields one
// promotion: a color bomb for five or more, a striped token along the match
// axis for four. The promoted cell is the first of touched lying in the
// match, or the match center; a match whose promoted cell is already
// claimed gets nothing. Promoted tokens keep the color of the cell they
// replace.
func DetermineSpecials(b Board, matches []Match, sp *Spawner, touched ...Position) []Promotion {
	claimed := NewPositionSet(b.rows, b.cols)
	var promos []Promotion

	horiz := NewPositionSet(b.rows, b.cols)
	vert := NewPositionSet(b.rows, b.cols)
	for _, m := range matches {
		dst := horiz
		if m.Axis == Vertical {
			dst = vert
		}
		for _, p := range m.Positions {
			dst.Add(p)
		}
	}

	for _, p := range horiz.Positions() {
		if !vert.Has(p) || claimed.Has(p) {
			continue
		}
		claimed.Add(p)
		promos = append(promos, Promotion{
			Pos:   p,
			Token: sp.Special(b.At(p).Color, SpecialAreaBomb),
		})
	}

	for _, m := range matches {
		if m.Len() < 4 {
			continue
		}
		pos := promotionCell(m, touched)
		if claimed.Has(pos) {
			continue
		}

		kind := SpecialStripedH
		switch {
		case m.Len() >= 5:
			kind = SpecialColorBomb
		case m.Axis == Vertical:
			kind = SpecialStripedV
		}

		claimed.Add(pos)
		promos = append(promos, Promotion{
			Pos:   pos,
			Token: sp.Special(b.At(pos).Color, kind),
		})
	}

	return promos
}

func promotionCell(m Match, touched []Position) Position {
	for _, t := range touched {
		if m.Contains(t) {
			return t
		}
	}
	return m.Center()
}

// ActivateSpecials expands cleared with the area of effect of every special
// token inside it. The expansion is a single pass over the original set:
// specials uncovered by the expansion are not triggered again here.
func ActivateSpecials(b Board, cleared PositionSet) PositionSet {
	out := cleared.Clone()
	for _, p := range cleared.Positions() {
		t := b.At(p)
		switch t.Special {
		case SpecialStripedH:
			for c := 0; c < b.cols; c++ {
				out.Add(P(p.Row, c))
			}
		case SpecialStripedV:
			for r := 0; r < b.rows; r++ {
				out.Add(P(r, p.Col))
			}
		case SpecialAreaBomb:
			for r := p.Row - 1; r <= p.Row+1; r++ {
				for c := p.Col - 1; c <= p.Col+1; c++ {
					if b.InBounds(P(r, c)) {
						out.Add(P(r, c))
					}
				}
			}
		case SpecialColorBomb:
			target := colorBombTarget(b, cleared, p)
			for r := 0; r < b.rows; r++ {
				for c := 0; c < b.cols; c++ {
					o := b.At(P(r, c))
					if !o.Empty() && o.Color == target {
						out.Add(P(r, c))
					}
				}
			}
		}
	}
	return out
}

// colorBombTarget picks the most frequent color among the cleared cells
// other than the bomb. Ties go to the color seen first in row-major order.
// With no other cells the bomb's own color is used.
func colorBombTarget(b Board, cleared PositionSet, bomb Position) Color {
	var counts [MaxColors]int
	var order []Color
	for _, p := range cleared.Positions() {
		if p == bomb {
			continue
		}
		t := b.At(p)
		if t.Empty() || int(t.Color) >= MaxColors {
			continue
		}
		if counts[t.Color] == 0 {
			order = append(order, t.Color)
		}
		counts[t.Color]++
	}
	if len(order) == 0 {
		return b.At(bomb).Color
	}
	best := order[0]
	for _, c := range order[1:] {
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best
}
