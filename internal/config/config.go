// Package config provides YAML-based game configuration loading and
// difficulty presets for the match-3 game.
package config

import (
	"errors"
	"fmt"
)

// Match3Config contains all tunable settings of the match-3 game.
type Match3Config struct {
	Board   BoardConfig   `yaml:"board"`
	Scoring ScoringConfig `yaml:"scoring"`
	Stars   StarsConfig   `yaml:"stars"`
	Timing  TimingConfig  `yaml:"timing"`
}

// BoardConfig defines the grid and palette.
type BoardConfig struct {
	Rows   int `yaml:"rows"`
	Cols   int `yaml:"cols"`
	Colors int `yaml:"colors"` // palette size, 3 to 6
}

// ScoringConfig defines point values per matched token.
type ScoringConfig struct {
	Base            int     `yaml:"base"`             // runs of three
	Four            int     `yaml:"four"`             // runs of four
	Five            int     `yaml:"five"`             // runs of five or more
	ComboMultiplier float64 `yaml:"combo_multiplier"` // raised to the combo level
}

// StarsConfig defines score/target ratios for star ratings.
type StarsConfig struct {
	Two   float64 `yaml:"two"`
	Three float64 `yaml:"three"`
}

// TimingConfig defines presentation pacing in milliseconds.
type TimingConfig struct {
	SwapMs      int `yaml:"swap_ms"`
	RemoveMs    int `yaml:"remove_ms"`
	FallMs      int `yaml:"fall_ms"`
	HintAfterMs int `yaml:"hint_after_ms"` // 0 disables the automatic hint
}

// MinBoardSide is the smallest allowed board edge. Smaller boards can be
// dealt without any valid move, which leaves the player stuck.
const MinBoardSide = 5

// Validate reports the first invalid setting.
func (c Match3Config) Validate() error {
	var errs []error
	if c.Board.Rows < MinBoardSide || c.Board.Cols < MinBoardSide {
		errs = append(errs, fmt.Errorf("board must be at least %dx%d, got %dx%d",
			MinBoardSide, MinBoardSide, c.Board.Rows, c.Board.Cols))
	}
	if c.Board.Colors < 3 || c.Board.Colors > 6 {
		errs = append(errs, fmt.Errorf("board.colors must be between 3 and 6, got %d", c.Board.Colors))
	}
	if c.Scoring.Base <= 0 || c.Scoring.Four <= 0 || c.Scoring.Five <= 0 {
		errs = append(errs, errors.New("scoring values must be positive"))
	}
	if c.Scoring.ComboMultiplier < 1 {
		errs = append(errs, fmt.Errorf("scoring.combo_multiplier must be >= 1, got %g", c.Scoring.ComboMultiplier))
	}
	if c.Stars.Two <= 0 || c.Stars.Three < c.Stars.Two {
		errs = append(errs, fmt.Errorf("stars must satisfy 0 < two <= three, got %g/%g", c.Stars.Two, c.Stars.Three))
	}
	if c.Timing.SwapMs < 0 || c.Timing.RemoveMs < 0 || c.Timing.FallMs < 0 || c.Timing.HintAfterMs < 0 {
		errs = append(errs, errors.New("timing values must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid match3 config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}
