package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the campaign levels",
	Long: `Shows every level of the campaign with its target score, move budget
and the best star rating you have earned on it.

The move budget reflects --difficulty.

Examples:
  match3 levels
  match3 levels --difficulty hard
  match3 levels --levels ./my-levels.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

var (
	colorStarOn   = color.Style{color.FgYellow, color.OpBold}
	colorStarOff  = color.Style{color.FgGray}
	colorHeader   = color.Style{color.FgCyan, color.OpBold}
	colorLocked   = color.Style{color.FgGray}
	colorClearTag = color.Style{color.FgGreen}
)

func runLevels(_ *cobra.Command, _ []string) {
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

	best := map[int]storage.LevelBest{}
	if store, err := storage.Open(flagDBPath); err == nil {
		if b, err := store.BestLevelResults(match3.GameID); err == nil {
			best = b
		} else {
			logger.Warn("could not read level results", "error", err)
		}
		store.Close()
	} else {
		logger.Warn("could not open scores database", "error", err)
	}

	nameW := 4
	for _, l := range settings.Levels.Levels {
		nameW = max(nameW, len(l.Name))
	}

	fmt.Println(colorHeader.Sprintf("Levels (%s)", settings.Difficulty))
	fmt.Println()
	fmt.Printf("  %-3s  %-*s  %8s  %5s  %-5s  %s\n", "#", nameW, "Name", "Target", "Moves", "Stars", "Best")
	fmt.Printf("  %-3s  %-*s  %8s  %5s  %-5s  %s\n", "--", nameW, "----", "------", "-----", "-----", "----")

	for _, l := range settings.Levels.Levels {
		b, played := best[l.ID]
		bestStr := colorLocked.Sprint("-")
		if played {
			bestStr = fmt.Sprintf("%d", b.BestScore)
			if b.Cleared > 0 {
				bestStr += " " + colorClearTag.Sprint("cleared")
			}
		}
		fmt.Printf("  %-3d  %-*s  %8d  %5d  %s  %s\n",
			l.ID, nameW, l.Name, l.Target, l.Moves, starsColored(b.BestStars), bestStr)
	}

	fmt.Println()
	fmt.Println("Run 'match3 play --level <n>' to start at a level.")
}

// starsColored renders a rating as three colored star glyphs.
func starsColored(stars int) string {
	stars = min(max(stars, 0), 3)
	return colorStarOn.Sprint(strings.Repeat("★", stars)) + colorStarOff.Sprint(strings.Repeat("☆", 3-stars)) + "  "
}
