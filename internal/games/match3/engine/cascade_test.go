package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStableBoardIsNoop(t *testing.T) {
	sp := newTestSpawner(1)
	b := sp.GenerateBoard(DefaultRows, DefaultCols)

	res := Resolve(b, sp, DefaultScoring())
	assert.Empty(t, res.Steps)
	assert.Zero(t, res.ScoreDelta)
	assert.Equal(t, -1, res.ComboReached())
	assert.Equal(t, b.String(), res.Board.String())
}

func TestResolveFirstStep(t *testing.T) {
	sp := newTestSpawner(5)
	b := sp.GenerateBoard(DefaultRows, DefaultCols)

	// force a single horizontal run of three in the bottom row
	row := DefaultRows - 1
	color := b.At(P(row, 0)).Color
	b = b.With(P(row, 1), Token{ID: sp.id(), Color: color})
	b = b.With(P(row, 2), Token{ID: sp.id(), Color: color})
	first := FindMatches(b)
	require.NotEmpty(t, first)

	res := Resolve(b, sp, DefaultScoring())
	require.NotEmpty(t, res.Steps)

	step := res.Steps[0]
	assert.Equal(t, 0, step.Combo)
	assert.Equal(t, first, step.Matches)
	assert.Equal(t, DefaultScoring().MatchPoints(first, 0), step.ScoreDelta)
	assert.Equal(t, b.String(), step.Before.String())
	assert.True(t, step.Cleared.Has(P(row, 0)))
	assert.Equal(t, step.Cleared.Len(), step.NewTokenIDs.Size()+len(step.Promotions))

	for i, s := range res.Steps {
		assert.Equal(t, i, s.Combo)
		if i > 0 {
			assert.Equal(t, res.Steps[i-1].After.String(), s.Before.String())
		}
	}
	assert.Equal(t, len(res.Steps)-1, res.ComboReached())
}

func TestResolveTerminatesOnRandomBoards(t *testing.T) {
	for seed := int64(1); seed <= 300; seed++ {
		sp := newTestSpawner(seed)
		b := randomBoard(sp, DefaultRows, DefaultCols)

		res := Resolve(b, sp, DefaultScoring())

		require.False(t, res.Truncated, "seed %d did not settle", seed)
		require.LessOrEqual(t, len(res.Steps), DefaultRows*DefaultCols, "seed %d", seed)
		require.Empty(t, FindMatches(res.Board), "seed %d", seed)
		require.True(t, res.Board.Full(), "seed %d", seed)

		total := 0
		for _, s := range res.Steps {
			total += s.ScoreDelta
			assert.GreaterOrEqual(t, s.Cleared.Len(), MinRun)
		}
		assert.Equal(t, total, res.ScoreDelta)
	}
}

func TestResolveIDsNeverReused(t *testing.T) {
	sp := newTestSpawner(11)
	b := randomBoard(sp, DefaultRows, DefaultCols)

	seen := make(map[TokenID]bool)
	for _, id := range b.IDs() {
		seen[id] = true
	}

	res := Resolve(b, sp, DefaultScoring())
	for _, s := range res.Steps {
		s.NewTokenIDs.Each(func(id TokenID) {
			assert.False(t, seen[id], "id %d reused", id)
			seen[id] = true
		})
		for _, p := range s.Promotions {
			assert.False(t, seen[p.Token.ID], "promotion id %d reused", p.Token.ID)
			seen[p.Token.ID] = true
		}
	}
}

func TestResolvePromotesTouchedCellOnlyFirstStep(t *testing.T) {
	sp := newTestSpawner(2)
	b := boardFrom(t, sp,
		"rgbyop",
		"gbyopr",
		"ooooby",
		"ypgrbo",
	)

	res := Resolve(b, sp, DefaultScoring(), P(2, 0))
	require.NotEmpty(t, res.Steps)
	require.Len(t, res.Steps[0].Promotions, 1)
	promo := res.Steps[0].Promotions[0]
	assert.Equal(t, P(2, 0), promo.Pos)
	assert.Equal(t, SpecialStripedH, promo.Token.Special)

	id := promo.Token.ID
	_, found := res.Steps[0].After.Find(id)
	assert.True(t, found, "promoted token survives the clear")
}
