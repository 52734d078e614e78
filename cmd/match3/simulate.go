package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagGames    int
	flagRecord   bool
	flagSimLevel int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let the hint bot play headless campaigns",
	Long: `Plays campaigns without a terminal UI, always taking the hinted move,
and prints how far each one got. Useful for tuning level tables: a level
the bot clears easily is probably too generous.

Each game uses --seed plus the game index, so runs are reproducible.

Examples:
  match3 simulate
  match3 simulate --games 50 --seed 1
  match3 simulate --levels ./my-levels.yaml --level 3
  match3 simulate --record --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVarP(&flagGames, "games", "n", 10, "Number of campaigns to play")
	simulateCmd.Flags().IntVar(&flagSimLevel, "level", 1, "Level each campaign starts at")
	simulateCmd.Flags().BoolVar(&flagRecord, "record", false, "Save results to the scores database")
}

// levelTally aggregates bot runs of one level.
type levelTally struct {
	played, cleared, stars, score, moves, reshuffles int
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if settings.Levels.Get(flagSimLevel) == nil {
		fmt.Fprintf(os.Stderr, "Error: no level %d (the table has %d levels)\n", flagSimLevel, settings.Levels.Count())
		os.Exit(1)
	}

	var store *storage.Store
	if flagRecord {
		if store = openStore(logger); store != nil {
			defer store.Close()
		}
	}

	base := gameSeed()
	tallies := make(map[int]*levelTally)
	for i := range flagGames {
		seed := base + int64(i)
		session := engine.NewSession(match3.SessionOptions(settings.Config, settings.Levels, seed))

		runs, err := match3.AutoplayCampaign(session, flagSimLevel)
		if err != nil {
			logger.Error("simulation failed", "game", i+1, "seed", seed, "error", err)
			continue
		}

		total := 0
		for _, run := range runs {
			t := tallies[run.Level]
			if t == nil {
				t = &levelTally{}
				tallies[run.Level] = t
			}
			t.played++
			t.score += run.Score
			t.moves += run.MovesUsed
			t.reshuffles += run.Reshuffles
			if run.Completed {
				t.cleared++
				t.stars += run.Stars
				total += run.Score
			}
			logger.Debug("level played", "game", i+1, "level", run.Level,
				"score", run.Score, "target", run.Target, "moves", run.MovesUsed,
				"stars", run.Stars, "combo", run.BestCombo+1)

			if store != nil {
				if _, err := store.SaveLevelResult(storage.LevelResult{
					GameID: match3.GameID, Level: run.Level, Score: run.Score,
					Stars: run.Stars, Completed: run.Completed,
				}); err != nil {
					logger.Warn("could not save level result", "error", err)
				}
			}
		}

		last := runs[len(runs)-1]
		logger.Info("game finished", "game", i+1, "seed", seed,
			"reached", last.Level, "cleared", last.Completed, "score", total)
		if store != nil && total > 0 {
			if _, err := store.SaveScore(match3.GameID, total); err != nil {
				logger.Warn("could not save score", "error", err)
			}
		}
	}

	fmt.Printf("Simulated %d games (%s)\n\n", flagGames, settings.Difficulty)
	fmt.Printf("  %-5s  %6s  %7s  %9s  %9s  %9s  %s\n", "Level", "Played", "Cleared", "Avg score", "Avg moves", "Avg stars", "Reshuffles")
	for _, l := range settings.Levels.Levels {
		t := tallies[l.ID]
		if t == nil {
			continue
		}
		avgStars := 0.0
		if t.cleared > 0 {
			avgStars = float64(t.stars) / float64(t.cleared)
		}
		fmt.Printf("  %-5d  %6d  %6.0f%%  %9d  %9.1f  %9.1f  %d\n",
			l.ID, t.played, 100*float64(t.cleared)/float64(t.played),
			t.score/t.played, float64(t.moves)/float64(t.played), avgStars, t.reshuffles)
	}
}
