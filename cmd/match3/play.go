package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var flagStartLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start the level campaign right away, skipping the menu.

Controls:
  Arrows/WASD  - Move the cursor
  Space        - Select a token, select a neighbor to swap
  Enter        - Next level (after a level is complete)
  H/?          - Show a hint
  P            - Pause
  R            - Retry the level
  Esc/B        - Leave the game
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a text screenshot to ~/.match3/screenshots

Difficulty options:
  easy   - Five extra moves per level and one color fewer
  normal - The level table as written
  hard   - A fifth fewer moves and slower hints

Examples:
  match3 play              # pick the starting level from a list
  match3 play --level 1
  match3 play --difficulty easy
  match3 play --levels ./my-levels.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStartLevel, "level", 0, "Level to start the campaign at (0 = pick from a list)")
}

func runPlay(_ *cobra.Command, _ []string) {
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
	if flagStartLevel != 0 && settings.Levels.Get(flagStartLevel) == nil {
		fmt.Fprintf(os.Stderr, "Error: no level %d (the table has %d levels)\n", flagStartLevel, settings.Levels.Count())
		os.Exit(1)
	}

	store := openStore(logger)

	level := flagStartLevel
	var runErr error
	if level == 0 {
		level, runErr = tui.RunLevelSelector(settings.Levels, store, match3.GameID, runtimeConfig())
	}
	if runErr == nil && level > 0 {
		_, runErr = playLevel(store, level, logger)
	}

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playLevel runs the game starting at level and reports whether the player
// went back to the menu.
func playLevel(store *storage.Store, level int, logger *log.Logger) (bool, error) {
	match3.SetStartLevel(level)

	game, err := registry.Create(match3.GameID)
	if err != nil {
		return false, err
	}

	cfg := runtimeConfig()
	cfg.Seed = gameSeed()
	logger.Info("starting game", "level", level, "seed", cfg.Seed)

	return tui.Run(game, store, cfg, logger)
}
