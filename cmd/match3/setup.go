package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// newLogger builds the command logger. Interactive screens own the
// terminal, so without --log-file they log nowhere. The returned func
// closes the log file.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogFile != "":
		path, err := config.ExpandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
		Level:           level,
	})
	return logger, closer, nil
}

// gameSettings is the board config, level table and difficulty in effect.
type gameSettings struct {
	Config     config.Match3Config
	Levels     levels.Table
	Difficulty config.DifficultyPreset
}

// loadSettings reads the config and level table and applies the
// difficulty preset to both.
func loadSettings() (gameSettings, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return gameSettings{}, err
	}

	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return gameSettings{}, err
	}
	config.ApplyMatch3Preset(&cfg, preset)

	table, err := levels.Load(flagLevels)
	if err != nil {
		return gameSettings{}, err
	}

	return gameSettings{
		Config:     cfg,
		Levels:     table.WithDifficulty(preset),
		Difficulty: preset,
	}, nil
}

// configureGame loads the settings and hands them to the game package.
func configureGame(logger *log.Logger) (gameSettings, error) {
	settings, err := loadSettings()
	if err != nil {
		return settings, err
	}
	match3.Configure(settings.Config, settings.Levels)
	logger.Debug("settings loaded",
		"difficulty", settings.Difficulty,
		"levels", settings.Levels.Count(),
		"board", fmt.Sprintf("%dx%d", settings.Config.Board.Rows, settings.Config.Board.Cols),
		"colors", settings.Config.Board.Colors)
	return settings, nil
}

// openStore opens the scores database. Failure is logged and play goes on
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// gameSeed returns the --seed value, or a fresh time based seed.
func gameSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
