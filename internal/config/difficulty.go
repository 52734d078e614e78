package config

import "math"

// Move budget adjustments per preset.
const (
	easyExtraMoves = 5
	hardMoveFactor = 0.8
	minMoves       = 5
)

// AdjustMoves returns the move budget of a level under the given preset.
// Easy adds a fixed number of moves, hard removes a fifth (never going
// below minMoves), normal keeps the table value.
func AdjustMoves(moves int, preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return moves + easyExtraMoves
	case DifficultyHard:
		adjusted := int(math.Floor(float64(moves) * hardMoveFactor))
		if adjusted < minMoves {
			adjusted = minMoves
		}
		if adjusted > moves {
			adjusted = moves
		}
		return adjusted
	default:
		return moves
	}
}

// ApplyMatch3Preset modifies the config based on a difficulty preset.
// Easy narrows the palette, which makes matches more frequent.
func ApplyMatch3Preset(cfg *Match3Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		if cfg.Board.Colors > 5 {
			cfg.Board.Colors = 5
		}
	case DifficultyHard:
		if cfg.Timing.HintAfterMs > 0 {
			cfg.Timing.HintAfterMs *= 2
		}
	}
}
