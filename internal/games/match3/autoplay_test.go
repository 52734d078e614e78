package match3

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
)

func autoplaySession(seed int64, lv ...levels.Level) *engine.Session {
	return engine.NewSession(SessionOptions(config.DefaultMatch3Config(), levels.Table{Levels: lv}, seed))
}

func TestAutoplayCompletesEasyCampaign(t *testing.T) {
	s := autoplaySession(3,
		levels.Level{ID: 1, Name: "One", Target: 1, Moves: 5},
		levels.Level{ID: 2, Name: "Two", Target: 1, Moves: 5},
	)

	runs, err := AutoplayCampaign(s, 1)
	if err != nil {
		t.Fatalf("AutoplayCampaign() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 levels played, got %d", len(runs))
	}
	for i, run := range runs {
		if run.Level != i+1 || !run.Completed || run.MovesUsed != 1 {
			t.Errorf("run %d = %+v", i, run)
		}
		if run.Stars < 1 || run.Stars > 3 {
			t.Errorf("run %d stars = %d", i, run.Stars)
		}
	}
	if s.Phase() != engine.PhaseStart {
		t.Errorf("finished campaign should return to start, got %s", s.Phase())
	}
}

func TestAutoplayStopsOnFailedLevel(t *testing.T) {
	s := autoplaySession(9,
		levels.Level{ID: 1, Name: "Wall", Target: 1_000_000, Moves: 3},
		levels.Level{ID: 2, Name: "Never", Target: 1, Moves: 5},
	)

	runs, err := AutoplayCampaign(s, 1)
	if err != nil {
		t.Fatalf("AutoplayCampaign() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected the campaign to stop after level 1, got %d runs", len(runs))
	}
	run := runs[0]
	if run.Completed || run.Stars != 0 || run.MovesUsed != 3 || run.Score <= 0 {
		t.Errorf("run = %+v", run)
	}
	if s.Phase() != engine.PhaseGameOver {
		t.Errorf("phase = %s, want game over", s.Phase())
	}
}

func TestAutoplayUnknownStartLevel(t *testing.T) {
	s := autoplaySession(1, levels.Level{ID: 1, Name: "One", Target: 1, Moves: 5})

	if _, err := AutoplayCampaign(s, 4); !errors.Is(err, engine.ErrNoLevel) {
		t.Errorf("expected ErrNoLevel, got %v", err)
	}
}

func TestSessionOptionsDeterministic(t *testing.T) {
	lv := levels.Level{ID: 1, Name: "One", Target: 500, Moves: 10}
	a := autoplaySession(77, lv)
	b := autoplaySession(77, lv)

	ra, errA := AutoplayCampaign(a, 1)
	rb, errB := AutoplayCampaign(b, 1)
	if errA != nil || errB != nil {
		t.Fatalf("AutoplayCampaign() failed: %v, %v", errA, errB)
	}
	if len(ra) != len(rb) || ra[0] != rb[0] {
		t.Errorf("same seed should play the same game: %+v vs %+v", ra, rb)
	}
}
