package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 40, 20)
	inner := outer.Centered(10, 4)

	if inner.X != 15 || inner.Y != 8 || inner.W != 10 || inner.H != 4 {
		t.Errorf("Centered() = %+v", inner)
	}
	if inner.Right() != 25 || inner.Bottom() != 12 {
		t.Errorf("edges = (%d, %d), expected (25, 12)", inner.Right(), inner.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		val, n, expected int
	}{
		{3, 8, 3},
		{8, 8, 0},
		{-1, 8, 7},
		{-9, 8, 7},
		{5, 0, 0},
	}

	for _, tc := range tests {
		if got := Wrap(tc.val, tc.n); got != tc.expected {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.val, tc.n, got, tc.expected)
		}
	}
}

func TestTicksFor(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 30}

	if got := cfg.TicksFor(300); got != 9 {
		t.Errorf("TicksFor(300) = %d, expected 9", got)
	}
	if got := cfg.TicksFor(10); got != 1 {
		t.Errorf("TicksFor(10) = %d, expected at least one tick", got)
	}
	if got := cfg.TicksFor(0); got != 0 {
		t.Errorf("TicksFor(0) = %d, expected 0", got)
	}
}
