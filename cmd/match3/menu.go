package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
)

// runMenu is the default command: menu, level picker, game and scoreboard
// in a loop until the player quits.
func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	settings, err := configureGame(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	cfg := runtimeConfig()

loop:
	for {
		menuResult, err := tui.RunMenu(store, match3.GameID, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		level := 1
		switch menuResult.Choice {
		case tui.MenuChoiceQuit:
			break loop

		case tui.MenuChoiceScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, match3.GameID, settings.Levels, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				break loop
			}
			continue

		case tui.MenuChoiceSelectLevel:
			picked, selErr := tui.RunLevelSelector(settings.Levels, store, match3.GameID, cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			if picked == 0 {
				continue
			}
			level = picked
		}

		goBack, runErr := playLevel(store, level, logger)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			continue
		}
		if !goBack {
			break loop
		}
	}

	if store != nil {
		store.Close()
	}
}
