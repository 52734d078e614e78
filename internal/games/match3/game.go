// Package match3 adapts the match-3 engine to the tick-driven platform:
// cursor input, pacing of cascade animations, HUD and overlays.
package match3

import (
	"math/rand"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// GameID is the registry and score table identifier.
const GameID = "match3"

// comboDisplayMs is how long the combo banner stays visible.
const comboDisplayMs = 1500

// Package-level settings applied on the next Reset.
var (
	selectedStartLevel int
	gameConfig         = config.DefaultMatch3Config()
	levelTable         = levels.Default()
)

// SetStartLevel sets the level the next game starts on. 0 means level 1.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// Configure replaces the board settings and level table used by new games.
func Configure(cfg config.Match3Config, table levels.Table) {
	gameConfig = cfg
	levelTable = table
}

// Levels returns the level table new games use.
func Levels() levels.Table {
	return levelTable
}

// SessionOptions builds engine options from a board config and level table.
// The same seed always yields the same boards.
func SessionOptions(cfg config.Match3Config, table levels.Table, seed int64) engine.Options {
	return engine.Options{
		Rows:   cfg.Board.Rows,
		Cols:   cfg.Board.Cols,
		Colors: cfg.Board.Colors,
		Scoring: engine.Scoring{
			Base:            cfg.Scoring.Base,
			Four:            cfg.Scoring.Four,
			Five:            cfg.Scoring.Five,
			ComboMultiplier: cfg.Scoring.ComboMultiplier,
		},
		Stars:  engine.StarThresholds{Two: cfg.Stars.Two, Three: cfg.Stars.Three},
		Levels: table.Configs(),
		Rand:   rand.New(rand.NewSource(seed)),
	}
}

// Game is the playable match-3 game.
type Game struct {
	cfg     config.Match3Config
	table   levels.Table
	rt      core.RuntimeConfig
	session *engine.Session
	tick    uint64

	cursor    engine.Position
	hint      *engine.Move
	idleTicks int
	anim      animation

	comboText  string
	comboTicks int
	message    string

	total        int // score banked from completed levels
	campaignDone bool
	paused       bool
	tooSmall     bool

	events []core.Event
}

// New creates a match-3 game using the package settings.
func New() *Game {
	return &Game{cfg: gameConfig, table: levelTable}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Match-3"
}

// Reset starts a new campaign at the selected level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = gameConfig
	g.table = levelTable
	g.rt = cfg
	g.tick = 0
	g.total = 0
	g.campaignDone = false
	g.paused = false
	g.comboText = ""
	g.comboTicks = 0
	g.message = ""
	g.events = nil

	g.session = engine.NewSession(SessionOptions(g.cfg, g.table, cfg.Seed))

	start := 1
	if selectedStartLevel > 0 && selectedStartLevel <= g.table.Count() {
		start = selectedStartLevel
		selectedStartLevel = 0
	}
	if err := g.session.StartCampaign(start); err != nil {
		// The table is validated on load, so level 1 always exists.
		_ = g.session.StartCampaign(1)
	}

	g.resetLevelView()
	g.checkScreenSize()
}

// resetLevelView clears per-level UI state.
func (g *Game) resetLevelView() {
	g.cursor = engine.P(g.session.Options().Rows/2, g.session.Options().Cols/2)
	g.hint = nil
	g.idleTicks = 0
	g.anim = animation{}
}

// Resize adapts the layout to a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	g.rt.ScreenW = w
	g.rt.ScreenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	w, h := g.boardSize()
	g.tooSmall = g.rt.ScreenW < w+2 || g.rt.ScreenH < h+hudHeight+footerHeight
}

// Session exposes the engine session, mainly for tests and tooling.
func (g *Game) Session() *engine.Session {
	return g.session
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = g.events[:0]

	if g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionPause) && !g.session.Phase().Terminal() && !g.campaignDone {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	if g.comboTicks > 0 {
		g.comboTicks--
		if g.comboTicks == 0 {
			g.comboText = ""
		}
	}

	// Input is ignored while a cascade is being shown.
	if g.anim.active() {
		g.anim.advance()
		return g.result()
	}

	switch {
	case g.campaignDone:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) || in.Has(core.ActionSelect) {
			// a new campaign deals new boards
			rt := g.rt
			rt.Seed = g.session.Options().Rand.Int63()
			g.Reset(rt)
		}
	case g.session.Phase() == engine.PhaseLevelComplete:
		g.stepLevelComplete(in)
	case g.session.Phase() == engine.PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.retry()
		}
	default:
		g.stepPlaying(in)
	}

	return g.result()
}

// stepLevelComplete waits for the player to continue or replay the level.
func (g *Game) stepLevelComplete(in core.InputFrame) {
	switch {
	case in.Has(core.ActionRestart):
		g.retry()
	case in.Has(core.ActionConfirm) || in.Has(core.ActionSelect):
		g.total += g.session.Score()
		more, err := g.session.AdvanceLevel()
		if err != nil {
			return
		}
		if !more {
			g.campaignDone = true
			return
		}
		g.resetLevelView()
	}
}

func (g *Game) retry() {
	if err := g.session.RetryLevel(); err != nil {
		return
	}
	g.message = ""
	g.resetLevelView()
}

// stepPlaying handles cursor movement, selection and hints.
func (g *Game) stepPlaying(in core.InputFrame) {
	rows, cols := g.session.Options().Rows, g.session.Options().Cols

	if in.Has(core.ActionRestart) {
		g.retry()
		return
	}

	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = core.Wrap(g.cursor.Row-1, rows)
	case in.Has(core.ActionDown):
		g.cursor.Row = core.Wrap(g.cursor.Row+1, rows)
	case in.Has(core.ActionLeft):
		g.cursor.Col = core.Wrap(g.cursor.Col-1, cols)
	case in.Has(core.ActionRight):
		g.cursor.Col = core.Wrap(g.cursor.Col+1, cols)
	}

	if in.Has(core.ActionHint) {
		g.showHint()
	}

	if in.Has(core.ActionSelect) || in.Has(core.ActionConfirm) {
		g.selectCursor()
	}

	if !in.Empty() {
		g.idleTicks = 0
		return
	}

	g.idleTicks++
	if after := g.rt.TicksFor(g.cfg.Timing.HintAfterMs); after > 0 && g.idleTicks >= after && g.hint == nil {
		g.showHint()
	}
}

func (g *Game) showHint() {
	if mv, ok := g.session.Hint(); ok {
		g.hint = &mv
	}
}

// selectCursor taps the cursor cell and starts the animation of any swap
// that results.
func (g *Game) selectCursor() {
	res, err := g.session.Select(g.cursor)
	if err != nil || res.Swap == nil {
		return
	}
	g.hint = nil
	g.message = ""
	g.onSwap(*res.Swap)
}

// onSwap queues the swap animation and reports what the swap caused.
func (g *Game) onSwap(res engine.SwapResult) {
	g.anim = newAnimation(res, g.timing())

	if !res.Accepted {
		g.message = "No match"
		return
	}

	level := g.session.Level().Level
	if res.ComboReached > 0 {
		g.comboText = comboLabel(res.ComboReached)
		g.comboTicks = g.anim.total() + g.rt.TicksFor(comboDisplayMs)
		g.events = append(g.events, core.Event{Kind: core.EventCombo, Level: level, Score: res.Score, Value: res.ComboReached})
	}
	if res.Reshuffled {
		g.message = "No moves left, board reshuffled"
		g.events = append(g.events, core.Event{Kind: core.EventReshuffle, Level: level, Score: res.Score})
	}

	switch res.Phase {
	case engine.PhaseLevelComplete:
		g.events = append(g.events, core.Event{Kind: core.EventLevelComplete, Level: level, Score: res.Score, Value: g.session.Stars()})
	case engine.PhaseGameOver:
		g.events = append(g.events, core.Event{Kind: core.EventLevelFailed, Level: level, Score: res.Score})
	}
}

// timing converts the configured durations to ticks.
func (g *Game) timing() frameTiming {
	return frameTiming{
		swap:   g.rt.TicksFor(g.cfg.Timing.SwapMs),
		remove: g.rt.TicksFor(g.cfg.Timing.RemoveMs),
		fall:   g.rt.TicksFor(g.cfg.Timing.FallMs),
	}
}

func (g *Game) result() core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = append(events, g.events...)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state. The score is the campaign total:
// completed levels plus the level in progress.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.total + g.session.Score(),
		GameOver: g.campaignDone || (g.session.Phase() == engine.PhaseGameOver && !g.anim.active()),
		Paused:   g.paused || g.tooSmall,
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Select | H: Hint | P: Pause | R: Retry | Q: Quit"
}
