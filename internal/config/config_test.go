package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultMatch3Config().Validate(); err != nil {
		t.Fatalf("DefaultMatch3Config().Validate() = %v", err)
	}
}

func TestLoadMatch3Default(t *testing.T) {
	cfg, err := LoadMatch3("")
	if err != nil {
		t.Fatalf("LoadMatch3(\"\") failed: %v", err)
	}
	// A user or local override may exist on the test machine; only check
	// the fields that make the game playable.
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config invalid: %v", err)
	}
}

func TestLoadMatch3CustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "board:\n  colors: 4\nscoring:\n  combo_multiplier: 2.0\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMatch3(path)
	if err != nil {
		t.Fatalf("LoadMatch3() failed: %v", err)
	}
	if cfg.Board.Colors != 4 {
		t.Errorf("Board.Colors = %d, want 4", cfg.Board.Colors)
	}
	if cfg.Scoring.ComboMultiplier != 2.0 {
		t.Errorf("ComboMultiplier = %g, want 2.0", cfg.Scoring.ComboMultiplier)
	}
	// untouched fields keep their defaults
	if cfg.Board.Rows != 8 || cfg.Scoring.Base != 10 || cfg.Timing.FallMs != 300 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadMatch3CustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadMatch3(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMatch3(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  colors: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadMatch3(invalid)
	if err == nil || !strings.Contains(err.Error(), "board.colors") {
		t.Errorf("expected colors validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Match3Config)
	}{
		{"too few colors", func(c *Match3Config) { c.Board.Colors = 2 }},
		{"tiny board", func(c *Match3Config) { c.Board.Rows = 2 }},
		{"three by three board", func(c *Match3Config) { c.Board.Rows, c.Board.Cols = 3, 3 }},
		{"narrow board", func(c *Match3Config) { c.Board.Cols = MinBoardSide - 1 }},
		{"zero base", func(c *Match3Config) { c.Scoring.Base = 0 }},
		{"shrinking combo", func(c *Match3Config) { c.Scoring.ComboMultiplier = 0.5 }},
		{"stars inverted", func(c *Match3Config) { c.Stars.Three = 1.0 }},
		{"negative timing", func(c *Match3Config) { c.Timing.FallMs = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMatch3Config()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestAdjustMoves(t *testing.T) {
	tests := []struct {
		moves  int
		preset DifficultyPreset
		want   int
	}{
		{30, DifficultyNormal, 30},
		{30, DifficultyEasy, 35},
		{30, DifficultyHard, 24},
		{15, DifficultyHard, 12},
		{6, DifficultyHard, 5},
		{4, DifficultyHard, 4},
	}

	for _, tt := range tests {
		if got := AdjustMoves(tt.moves, tt.preset); got != tt.want {
			t.Errorf("AdjustMoves(%d, %s) = %d, want %d", tt.moves, tt.preset, got, tt.want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParseDifficulty(s); err != nil {
			t.Errorf("ParseDifficulty(%q) failed: %v", s, err)
		}
	}
	if p, _ := ParseDifficulty(""); p != DifficultyNormal {
		t.Errorf("empty difficulty = %q, want normal", p)
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestApplyMatch3Preset(t *testing.T) {
	cfg := DefaultMatch3Config()
	ApplyMatch3Preset(&cfg, DifficultyEasy)
	if cfg.Board.Colors != 5 {
		t.Errorf("easy colors = %d, want 5", cfg.Board.Colors)
	}

	cfg = DefaultMatch3Config()
	ApplyMatch3Preset(&cfg, DifficultyHard)
	if cfg.Timing.HintAfterMs != 16000 {
		t.Errorf("hard hint delay = %d, want 16000", cfg.Timing.HintAfterMs)
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/abs/path.db")
	if err != nil || got != "/abs/path.db" {
		t.Errorf("ExpandHome(abs) = %q, %v", got, err)
	}

	got, err = ExpandHome("~/x.db")
	if err != nil {
		t.Fatalf("ExpandHome(~) failed: %v", err)
	}
	if strings.HasPrefix(got, "~") {
		t.Errorf("ExpandHome did not expand: %q", got)
	}
}
