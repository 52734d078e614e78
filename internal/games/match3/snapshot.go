package match3

import "github.com/vovakirdan/tui-match3/internal/games/match3/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying       GameStateType = "playing"
	StateAnimating     GameStateType = "animating"
	StateLevelComplete GameStateType = "level_complete"
	StateGameOver      GameStateType = "game_over"
	StateCampaignDone  GameStateType = "campaign_done"
	StatePaused        GameStateType = "paused"
	StatePausedSmall   GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Level     int
	Target    int
	Score     int // current level
	Total     int // banked from completed levels
	MovesLeft int
	Combo     int
	Phase     string // engine phase
	Board     string
	CursorRow int
	CursorCol int
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.campaignDone:
		state = StateCampaignDone
	case g.anim.active():
		state = StateAnimating
	case g.session.Phase() == engine.PhaseLevelComplete:
		state = StateLevelComplete
	case g.session.Phase() == engine.PhaseGameOver:
		state = StateGameOver
	}

	return Snapshot{
		Tick:      g.tick,
		Level:     g.session.Level().Level,
		Target:    g.session.Level().TargetScore,
		Score:     g.session.Score(),
		Total:     g.total,
		MovesLeft: g.session.MovesLeft(),
		Combo:     g.session.Combo(),
		Phase:     string(g.session.Phase()),
		Board:     g.session.Board().String(),
		CursorRow: g.cursor.Row,
		CursorCol: g.cursor.Col,
		State:     state,
	}
}
