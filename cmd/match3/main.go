// match3 is a terminal match-3 puzzle game with a level campaign.
//
// Usage:
//
//	match3                   - Start the menu
//	match3 play              - Play the campaign directly
//	match3 levels            - List levels with your best ratings
//	match3 scores            - Show campaign high scores
//	match3 simulate          - Let the hint bot play headless games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.match3/scores.db)
//	--config <path>       - Board and scoring config YAML
//	--levels <path>       - Level table YAML
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-match3/internal/games/match3"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevels     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// envFlags maps persistent flags to the environment variables that can set
// them. An explicit flag always wins.
var envFlags = map[string]string{
	"db":         "MATCH3_DB",
	"config":     "MATCH3_CONFIG",
	"levels":     "MATCH3_LEVELS",
	"difficulty": "MATCH3_DIFFICULTY",
	"log-level":  "MATCH3_LOG_LEVEL",
	"log-file":   "MATCH3_LOG_FILE",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - Swap tokens, clear lines, beat the levels",
	Long: `Match-3 is a terminal puzzle game. Swap adjacent tokens to line up three
or more of the same color, build specials from longer lines and chain
cascades for combo multipliers. Each level has a target score and a
limited number of moves.

Available commands:
  play      - Play the campaign directly
  levels    - List levels and your best ratings
  scores    - View high scores
  simulate  - Let the hint bot play headless games

Running match3 without a command opens the menu.

Settings can also come from the environment (or a .env file):
  MATCH3_DB, MATCH3_CONFIG, MATCH3_LEVELS, MATCH3_DIFFICULTY,
  MATCH3_LOG_LEVEL, MATCH3_LOG_FILE

Examples:
  match3
  match3 play --level 4
  match3 play --difficulty hard
  match3 levels
  match3 simulate --games 20 --seed 7`,
	PersistentPreRunE: applyEnv,
	Run:               runMenu,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.match3/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	pf.StringVar(&flagLevels, "levels", "", "Path to custom level table YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (interactive screens log nowhere otherwise)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// applyEnv loads .env and fills flags the user did not set from the
// environment.
func applyEnv(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	for name, env := range envFlags {
		if cmd.Flags().Changed(name) {
			continue
		}
		v, ok := os.LookupEnv(env)
		if !ok || v == "" {
			continue
		}
		if err := cmd.Flags().Set(name, v); err != nil {
			return fmt.Errorf("invalid %s: %w", env, err)
		}
	}

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}
