package engine

import (
	"math/rand"
	"testing"
)

var letterColors = map[byte]Color{
	'r': Red,
	'o': Orange,
	'y': Yellow,
	'g': Green,
	'b': Blue,
	'p': Purple,
}

// boardFrom builds a board from one string per row. Lowercase letters are
// plain tokens of that color and '.' is an empty cell. Ids come from sp.
func boardFrom(t *testing.T, sp *Spawner, rows ...string) Board {
	t.Helper()
	b := NewBoard(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != b.Cols() {
			t.Fatalf("row %d has %d cells, want %d", r, len(row), b.Cols())
		}
		for c := 0; c < len(row); c++ {
			if row[c] == '.' {
				continue
			}
			color, ok := letterColors[row[c]]
			if !ok {
				t.Fatalf("unknown color letter %q", row[c])
			}
			b.set(P(r, c), Token{ID: sp.id(), Color: color})
		}
	}
	return b
}

func newTestSpawner(seed int64) *Spawner {
	return NewSpawner(rand.New(rand.NewSource(seed)), MaxColors)
}

// deadlockBoard colors cell (r,c) with (r+c) mod 3. Equal colors on any
// line are three cells apart, so no swap can form a run.
func deadlockBoard(sp *Spawner, rows, cols int) Board {
	b := NewBoard(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			b.set(P(r, c), Token{ID: sp.id(), Color: Color((r + c) % 3)})
		}
	}
	return b
}

// randomBoard fills every cell independently, so runs are likely.
func randomBoard(sp *Spawner, rows, cols int) Board {
	b := NewBoard(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			b.set(P(r, c), sp.Token())
		}
	}
	return b
}
