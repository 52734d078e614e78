package match3

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

// LevelRun summarizes one level played by Autoplay.
type LevelRun struct {
	Level      int
	Score      int
	Target     int
	Stars      int // 0 when the level was failed
	Completed  bool
	MovesUsed  int
	BestCombo  int // zero-based, as reported by the engine
	Reshuffles int
}

// errNoHint means an idle board offered no move, which a settled session
// never produces.
var errNoHint = errors.New("match3: no hint on idle board")

// Autoplay plays the active level of s to its end, always taking the hint
// move. The session must be idle.
func Autoplay(s *engine.Session) (LevelRun, error) {
	lvl := s.Level()
	run := LevelRun{Level: lvl.Level, Target: lvl.TargetScore}

	for !s.Phase().Terminal() {
		move, ok := s.Hint()
		if !ok {
			return run, fmt.Errorf("level %d: %w", lvl.Level, errNoHint)
		}
		res, err := s.TrySwap(move.A, move.B)
		if err != nil {
			return run, fmt.Errorf("level %d: %w", lvl.Level, err)
		}
		if !res.Accepted {
			return run, fmt.Errorf("level %d: hint %v was rejected", lvl.Level, move)
		}
		run.MovesUsed++
		run.BestCombo = max(run.BestCombo, res.ComboReached)
		if res.Reshuffled {
			run.Reshuffles++
		}
	}

	run.Score = s.Score()
	run.Completed = s.Phase() == engine.PhaseLevelComplete
	if run.Completed {
		run.Stars = s.Stars()
	}
	return run, nil
}

// AutoplayCampaign plays levels from start until one is failed or the
// table is finished. It returns every level played, in order.
func AutoplayCampaign(s *engine.Session, start int) ([]LevelRun, error) {
	if err := s.StartCampaign(start); err != nil {
		return nil, err
	}

	var runs []LevelRun
	for {
		run, err := Autoplay(s)
		if err != nil {
			return runs, err
		}
		runs = append(runs, run)
		if !run.Completed {
			return runs, nil
		}
		more, err := s.AdvanceLevel()
		if err != nil {
			return runs, err
		}
		if !more {
			return runs, nil
		}
	}
}
