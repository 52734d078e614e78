// Package levels provides the match-3 campaign table: level numbers,
// names, target scores and move budgets.
package levels

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

//go:embed levels.yaml
var defaultLevelsYAML []byte

// Level defines a campaign level.
type Level struct {
	ID     int    `yaml:"level"`
	Name   string `yaml:"name"`
	Target int    `yaml:"target"` // score to reach
	Moves  int    `yaml:"moves"`  // moves allowed
}

// Config converts the level into the engine's level configuration.
func (l Level) Config() engine.LevelConfig {
	return engine.LevelConfig{Level: l.ID, TargetScore: l.Target, Moves: l.Moves}
}

// Table is an ordered campaign.
type Table struct {
	Levels []Level `yaml:"levels"`
}

// Default returns the built-in ten-level campaign.
func Default() Table {
	t, err := Parse(defaultLevelsYAML)
	if err != nil {
		panic(fmt.Sprintf("levels: embedded table invalid: %v", err))
	}
	return t
}

// Parse decodes and validates a YAML level table.
func Parse(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Table{}, fmt.Errorf("levels: cannot parse table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// Load loads the campaign table.
// Search order: customPath -> ~/.match3/levels.yaml -> ./configs/levels.yaml -> embedded default
func Load(customPath string) (Table, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Table{}, fmt.Errorf("failed to read levels %s: %w", customPath, err)
		}
		t, err := Parse(data)
		if err != nil {
			return Table{}, fmt.Errorf("levels %s: %w", customPath, err)
		}
		return t, nil
	}

	for _, path := range []string{config.UserPath("levels.yaml"), filepath.Join("configs", "levels.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if t, err := Parse(data); err == nil {
			return t, nil
		}
	}

	return Default(), nil
}

// Validate checks that levels are numbered 1..n in order with positive
// targets and move budgets.
func (t Table) Validate() error {
	if len(t.Levels) == 0 {
		return errors.New("levels: table is empty")
	}
	for i, l := range t.Levels {
		if l.ID != i+1 {
			return fmt.Errorf("levels: entry %d has level %d, want %d", i, l.ID, i+1)
		}
		if err := l.Config().Validate(); err != nil {
			return fmt.Errorf("levels: %w", err)
		}
	}
	return nil
}

// WithDifficulty returns a copy of the table with move budgets adjusted for
// the preset.
func (t Table) WithDifficulty(preset config.DifficultyPreset) Table {
	out := Table{Levels: make([]Level, len(t.Levels))}
	for i, l := range t.Levels {
		l.Moves = config.AdjustMoves(l.Moves, preset)
		out.Levels[i] = l
	}
	return out
}

// Count returns the number of levels.
func (t Table) Count() int {
	return len(t.Levels)
}

// Get returns the level with the given 1-based number.
// Returns nil if the number is out of range.
func (t Table) Get(id int) *Level {
	if id < 1 || id > len(t.Levels) {
		return nil
	}
	return &t.Levels[id-1]
}

// Names returns the names of all levels.
func (t Table) Names() []string {
	names := make([]string, len(t.Levels))
	for i, l := range t.Levels {
		names[i] = l.Name
	}
	return names
}

// Configs returns the engine configurations in campaign order.
func (t Table) Configs() []engine.LevelConfig {
	out := make([]engine.LevelConfig, len(t.Levels))
	for i, l := range t.Levels {
		out[i] = l.Config()
	}
	return out
}
