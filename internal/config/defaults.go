package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the built-in match-3 configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Rows:   8,
			Cols:   8,
			Colors: 6,
		},
		Scoring: ScoringConfig{
			Base:            10,
			Four:            30,
			Five:            50,
			ComboMultiplier: 1.5,
		},
		Stars: StarsConfig{
			Two:   1.4,
			Three: 2.0,
		},
		Timing: TimingConfig{
			SwapMs:      250,
			RemoveMs:    200,
			FallMs:      300,
			HintAfterMs: 8000,
		},
	}
}
