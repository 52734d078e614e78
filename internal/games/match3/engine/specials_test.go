package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineSpecialsLengthRules(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		touched []Position
		wantPos Position
		want    Special
		color   Color
	}{
		{
			name:    "four horizontal at touched cell",
			rows:    []string{"ggggo"},
			touched: []Position{P(0, 1)},
			wantPos: P(0, 1),
			want:    SpecialStripedH,
			color:   Green,
		},
		{
			name:    "four horizontal without touch uses middle",
			rows:    []string{"oyyyy"},
			wantPos: P(0, 3),
			want:    SpecialStripedH,
			color:   Yellow,
		},
		{
			name:    "touched cell outside match is ignored",
			rows:    []string{"bbbbr"},
			touched: []Position{P(0, 4)},
			wantPos: P(0, 2),
			want:    SpecialStripedH,
			color:   Blue,
		},
		{
			name:    "four vertical",
			rows:    []string{"r", "r", "r", "r"},
			wantPos: P(2, 0),
			want:    SpecialStripedV,
			color:   Red,
		},
		{
			name:    "five becomes color bomb",
			rows:    []string{"ppppp"},
			wantPos: P(0, 2),
			want:    SpecialColorBomb,
			color:   Purple,
		},
		{
			name:    "six becomes color bomb at touched",
			rows:    []string{"oooooo"},
			touched: []Position{P(0, 5), P(0, 4)},
			wantPos: P(0, 5),
			want:    SpecialColorBomb,
			color:   Orange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := newTestSpawner(1)
			b := boardFrom(t, sp, tt.rows...)
			lastID := sp.LastID()

			promos := DetermineSpecials(b, FindMatches(b), sp, tt.touched...)
			require.Len(t, promos, 1)

			assert.Equal(t, tt.wantPos, promos[0].Pos)
			assert.Equal(t, tt.want, promos[0].Token.Special)
			assert.Equal(t, tt.color, promos[0].Token.Color)
			assert.Greater(t, promos[0].Token.ID, lastID, "promotion gets a fresh id")
		})
	}
}

func TestDetermineSpecialsThreeHasNoPromotion(t *testing.T) {
	sp := newTestSpawner(1)
	b := boardFrom(t, sp, "rrrb")
	assert.Empty(t, DetermineSpecials(b, FindMatches(b), sp))
}

func TestDetermineSpecialsCrossBecomesAreaBomb(t *testing.T) {
	sp := newTestSpawner(1)
	// L shape: horizontal run ends where the vertical run starts.
	b := boardFrom(t, sp,
		"gggo",
		"gbyo",
		"gyob",
	)

	promos := DetermineSpecials(b, FindMatches(b), sp)
	require.Len(t, promos, 1)
	assert.Equal(t, P(0, 0), promos[0].Pos)
	assert.Equal(t, SpecialAreaBomb, promos[0].Token.Special)
	assert.Equal(t, Green, promos[0].Token.Color)
}

func TestDetermineSpecialsCrossBeatsLengthRuleOnSameCell(t *testing.T) {
	sp := newTestSpawner(1)
	// T shape: a horizontal run of four shares (0,1) with a vertical run of
	// three. The four-run would promote the touched cell, which the cross
	// already took.
	b := boardFrom(t, sp,
		"yyyyo",
		"bybob",
		"oyobo",
	)

	matches := FindMatches(b)
	require.Len(t, matches, 2)

	promos := DetermineSpecials(b, matches, sp, P(0, 1))
	require.Len(t, promos, 1)
	assert.Equal(t, P(0, 1), promos[0].Pos)
	assert.Equal(t, SpecialAreaBomb, promos[0].Token.Special)
}

func TestDetermineSpecialsCrossAndLengthOnDifferentCells(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		touched  []Position
		cross    Position
		lengthAt Position
		length   Special
	}{
		{
			name:     "four-run promotes touched cell beside the cross",
			rows:     []string{"yyyyo", "bybob", "oyobo"},
			touched:  []Position{P(0, 3)},
			cross:    P(0, 1),
			lengthAt: P(0, 3),
			length:   SpecialStripedH,
		},
		{
			name:     "five-run crossed at its end keeps the color bomb",
			rows:     []string{"gbyor", "byogr", "rrrrr", "yogbp"},
			cross:    P(2, 4),
			lengthAt: P(2, 2),
			length:   SpecialColorBomb,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := newTestSpawner(1)
			b := boardFrom(t, sp, tt.rows...)

			promos := DetermineSpecials(b, FindMatches(b), sp, tt.touched...)
			require.Len(t, promos, 2)

			assert.Equal(t, tt.cross, promos[0].Pos)
			assert.Equal(t, SpecialAreaBomb, promos[0].Token.Special)
			assert.Equal(t, tt.lengthAt, promos[1].Pos)
			assert.Equal(t, tt.length, promos[1].Token.Special)
			assert.Equal(t, b.At(tt.lengthAt).Color, promos[1].Token.Color)
		})
	}
}

func TestDetermineSpecialsIndependentMatches(t *testing.T) {
	sp := newTestSpawner(1)
	b := boardFrom(t, sp,
		"rrrrb",
		"obgop",
		"bbbbb",
	)

	promos := DetermineSpecials(b, FindMatches(b), sp)
	require.Len(t, promos, 2)
	assert.Equal(t, SpecialStripedH, promos[0].Token.Special)
	assert.Equal(t, P(0, 2), promos[0].Pos)
	assert.Equal(t, SpecialColorBomb, promos[1].Token.Special)
	assert.Equal(t, P(2, 2), promos[1].Pos)
	assert.NotEqual(t, promos[0].Token.ID, promos[1].Token.ID)
}

func TestActivateStripedHorizontal(t *testing.T) {
	sp := newTestSpawner(1)
	b := boardFrom(t, sp,
		"rgbyop",
		"gbyopr",
		"byoprg",
	)
	b = b.With(P(1, 2), Token{ID: sp.id(), Color: Yellow, Special: SpecialStripedH})

	cleared := NewPositionSet(b.Rows(), b.Cols())
	cleared.Add(P(1, 2))

	out := ActivateSpecials(b, cleared)
	assert.Equal(t, b.Cols(), out.Len())
	for c := 0; c < b.Cols(); c++ {
		assert.True(t, out.Has(P(1, c)))
	}
	assert.Equal(t, 1, cleared.Len(), "input set is not modified")
}

func TestActivateStripedVertical(t *testing.T) {
	sp := newTestSpawner(1)
	b := boardFrom(t, sp,
		"rgb",
		"gby",
		"byo",
		"yop",
	)
	b = b.With(P(0, 1), Token{ID: sp.id(), Color: Green, Special: SpecialStripedV})

	cleared := NewPositionSet(b.Rows(), b.Cols())
	cleared.Add(P(0, 1))

	out := ActivateSpecials(b, cleared)
	assert.Equal(t, []Position{P(0, 1), P(1, 1), P(2, 1), P(3, 1)}, out.Positions())
}

func TestActivateAreaBombClipped(t *testing.T) {
	tests := []struct {
		name string
		at   Position
		want int
	}{
		{"corner", P(0, 0), 4},
		{"edge", P(0, 2), 6},
		{"center", P(2, 2), 9},
		{"far corner", P(4, 4), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := newTestSpawner(1)
			b := boardFrom(t, sp,
				"rgbyo",
				"gbyor",
				"byorg",
				"yorgb",
				"orgby",
			)
			b = b.With(tt.at, Token{ID: sp.id(), Color: Red, Special: SpecialAreaBomb})

			cleared := NewPositionSet(b.Rows(), b.Cols())
			cleared.Add(tt.at)

			out := ActivateSpecials(b, cleared)
			assert.Equal(t, tt.want, out.Len())
			for _, p := range out.Positions() {
				assert.True(t, b.InBounds(p))
				assert.LessOrEqual(t, abs(p.Row-tt.at.Row), 1)
				assert.LessOrEqual(t, abs(p.Col-tt.at.Col), 1)
			}
		})
	}
}

func TestActivateColorBombTargetsMostFrequent(t *testing.T) {
	sp := newTestSpawner(1)
	b := boardFrom(t, sp,
		"gbbbg",
		"rgrgr",
		"ggbrg",
	)
	b = b.With(P(0, 0), Token{ID: sp.id(), Color: Green, Special: SpecialColorBomb})

	cleared := NewPositionSet(b.Rows(), b.Cols())
	for c := 0; c < 4; c++ {
		cleared.Add(P(0, c))
	}

	out := ActivateSpecials(b, cleared)
	// blue dominates the other cleared cells, so every blue cell goes
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if b.At(P(r, c)).Color == Blue {
				assert.True(t, out.Has(P(r, c)), "blue cell %v", P(r, c))
			}
		}
	}
	assert.False(t, out.Has(P(1, 0)), "red cells stay")
	assert.False(t, out.Has(P(0, 4)), "green cells outside the set stay")
}

func TestActivateColorBombTieBreak(t *testing.T) {
	sp := newTestSpawner(1)
	b := boardFrom(t, sp,
		"roby",
		"yoyb",
	)
	b = b.With(P(0, 2), Token{ID: sp.id(), Color: Green, Special: SpecialColorBomb})

	cleared := NewPositionSet(b.Rows(), b.Cols())
	cleared.Add(P(0, 0)) // red
	cleared.Add(P(0, 1)) // orange
	cleared.Add(P(0, 2)) // bomb
	cleared.Add(P(0, 3)) // yellow

	out := ActivateSpecials(b, cleared)
	// one each: red is first in row-major order
	assert.Equal(t, 4, out.Len())
	assert.False(t, out.Has(P(1, 0)))
}

func TestActivateColorBombAlone(t *testing.T) {
	sp := newTestSpawner(1)
	b := boardFrom(t, sp,
		"rgr",
		"grg",
	)
	b = b.With(P(0, 1), Token{ID: sp.id(), Color: Green, Special: SpecialColorBomb})

	cleared := NewPositionSet(b.Rows(), b.Cols())
	cleared.Add(P(0, 1))

	out := ActivateSpecials(b, cleared)
	assert.Equal(t, []Position{P(0, 1), P(1, 0), P(1, 2)}, out.Positions())
}

func TestActivateIsSinglePass(t *testing.T) {
	sp := newTestSpawner(1)
	b := boardFrom(t, sp,
		"rgb",
		"gby",
		"byo",
	)
	b = b.With(P(0, 0), Token{ID: sp.id(), Color: Red, Special: SpecialStripedH})
	b = b.With(P(0, 2), Token{ID: sp.id(), Color: Blue, Special: SpecialStripedV})

	cleared := NewPositionSet(b.Rows(), b.Cols())
	cleared.Add(P(0, 0))

	out := ActivateSpecials(b, cleared)
	// the vertical stripe is swept up by the row but not triggered
	assert.Equal(t, []Position{P(0, 0), P(0, 1), P(0, 2)}, out.Positions())
}
