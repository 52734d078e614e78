package engine

import (
	"fmt"
	"math/rand"
)

// Phase is a state of the session state machine.
type Phase string

const (
	PhaseStart         Phase = "start"
	PhaseIdle          Phase = "idle"
	PhaseSwapping      Phase = "swapping"
	PhaseSwapBack      Phase = "swap-back"
	PhaseRemoving      Phase = "removing"
	PhaseFalling       Phase = "falling"
	PhaseLevelComplete Phase = "level-complete"
	PhaseGameOver      Phase = "game-over"
)

// Terminal reports whether the phase waits for an external level action.
func (p Phase) Terminal() bool {
	return p == PhaseLevelComplete || p == PhaseGameOver
}

// LevelConfig describes one level: its number, the score to reach and the
// number of moves allowed.
type LevelConfig struct {
	Level       int
	TargetScore int
	Moves       int
}

// Validate checks that the level can be played.
func (l LevelConfig) Validate() error {
	if l.TargetScore <= 0 {
		return fmt.Errorf("engine: level %d: target score must be positive", l.Level)
	}
	if l.Moves <= 0 {
		return fmt.Errorf("engine: level %d: moves must be positive", l.Level)
	}
	return nil
}

// Options configures a Session.
type Options struct {
	Rows    int
	Cols    int
	Colors  int
	Scoring Scoring
	Stars   StarThresholds
	Levels  []LevelConfig // campaign table used by AdvanceLevel
	Rand    *rand.Rand
}

// DefaultOptions returns an 8×8 board with the full palette and default
// scoring. Levels and Rand are left empty.
func DefaultOptions() Options {
	return Options{
		Rows:    DefaultRows,
		Cols:    DefaultCols,
		Colors:  MaxColors,
		Scoring: DefaultScoring(),
		Stars:   DefaultStarThresholds(),
	}
}

// SwapResult describes everything a swap request caused.
type SwapResult struct {
	Move         Move
	Accepted     bool  // false when the swap produced no match and was reverted
	Swapped      Board // board right after the swap, before any clearing
	Resolution   Resolution
	ScoreDelta   int
	ComboReached int // zero-based; -1 when rejected
	Reshuffled   bool
	Board        Board // board the session settled on
	Phase        Phase
	Transitions  []Phase
	Score        int
	MovesLeft    int
}

// SelectResult is returned by Select.
type SelectResult struct {
	Selected     Position
	HasSelection bool
	Swap         *SwapResult // set when the selection completed an adjacent pair
}

// Session is the game state machine. It is not safe for concurrent use; a
// single caller drives it and mutating calls are only accepted in PhaseIdle.
type Session struct {
	opts    Options
	spawner *Spawner

	board      Board
	phase      Phase
	score      int
	movesLeft  int
	combo      int
	level      LevelConfig
	levelIndex int

	selected    Position
	hasSelected bool
	last        *SwapResult
}

// NewSession creates a session in PhaseStart. Zero option fields fall back
// to DefaultOptions.
func NewSession(opts Options) *Session {
	def := DefaultOptions()
	if opts.Rows <= 0 {
		opts.Rows = def.Rows
	}
	if opts.Cols <= 0 {
		opts.Cols = def.Cols
	}
	if opts.Colors == 0 {
		opts.Colors = def.Colors
	}
	if opts.Scoring == (Scoring{}) {
		opts.Scoring = def.Scoring
	}
	if opts.Stars == (StarThresholds{}) {
		opts.Stars = def.Stars
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}

	return &Session{
		opts:       opts,
		spawner:    NewSpawner(opts.Rand, opts.Colors),
		phase:      PhaseStart,
		levelIndex: -1,
	}
}

// Board returns the current board.
func (s *Session) Board() Board { return s.board }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the score in the current level.
func (s *Session) Score() int { return s.score }

// MovesLeft returns the remaining moves.
func (s *Session) MovesLeft() int { return s.movesLeft }

// Combo returns the combo level reached by the last accepted move.
func (s *Session) Combo() int { return s.combo }

// Level returns the active level configuration.
func (s *Session) Level() LevelConfig { return s.level }

// Levels returns the campaign table.
func (s *Session) Levels() []LevelConfig { return s.opts.Levels }

// Options returns the session options.
func (s *Session) Options() Options { return s.opts }

// Spawner exposes the token source for callers that build boards directly.
func (s *Session) Spawner() *Spawner { return s.spawner }

// Selection returns the selected cell, if any.
func (s *Session) Selection() (Position, bool) {
	return s.selected, s.hasSelected
}

// LastSwap returns the result of the most recent swap request.
func (s *Session) LastSwap() *SwapResult { return s.last }

// Stars rates the current score against the level target.
func (s *Session) Stars() int {
	return s.opts.Stars.Rate(s.score, s.level.TargetScore)
}

// IsLastLevel reports whether the active level is the last of the table.
func (s *Session) IsLastLevel() bool {
	return s.levelIndex < 0 || s.levelIndex >= len(s.opts.Levels)-1
}

// NewBoard generates a board with no runs and at least one valid move.
func (s *Session) NewBoard() Board {
	var b Board
	for attempt := 0; attempt < 100; attempt++ {
		b = s.spawner.GenerateBoard(s.opts.Rows, s.opts.Cols)
		if HasValidMoves(b) {
			break
		}
	}
	return b
}

// StartLevel begins cfg with a fresh board, zero score and full moves.
func (s *Session) StartLevel(cfg LevelConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.level = cfg
	s.levelIndex = s.indexOf(cfg.Level)
	s.score = 0
	s.movesLeft = cfg.Moves
	s.combo = 0
	s.hasSelected = false
	s.last = nil
	s.board = s.NewBoard()
	s.phase = PhaseIdle
	return nil
}

// StartCampaign starts the level with the given number from the table.
func (s *Session) StartCampaign(level int) error {
	i := s.indexOf(level)
	if i < 0 {
		return fmt.Errorf("level %d: %w", level, ErrNoLevel)
	}
	return s.StartLevel(s.opts.Levels[i])
}

// AdvanceLevel starts the next table level after a completed one. It
// returns false and moves to PhaseStart when the campaign is finished.
func (s *Session) AdvanceLevel() (bool, error) {
	if s.phase != PhaseLevelComplete {
		return false, fmt.Errorf("advance from %s: %w", s.phase, ErrNotIdle)
	}
	next := s.levelIndex + 1
	if s.levelIndex < 0 || next >= len(s.opts.Levels) {
		s.Reset()
		return false, nil
	}
	if err := s.StartLevel(s.opts.Levels[next]); err != nil {
		return false, err
	}
	return true, nil
}

// RetryLevel restarts the active level from scratch.
func (s *Session) RetryLevel() error {
	if s.phase == PhaseStart {
		return ErrNoLevel
	}
	return s.StartLevel(s.level)
}

// Reset returns the session to PhaseStart.
func (s *Session) Reset() {
	s.phase = PhaseStart
	s.score = 0
	s.movesLeft = 0
	s.combo = 0
	s.hasSelected = false
	s.last = nil
	s.levelIndex = -1
	s.level = LevelConfig{}
}

// Hint returns a swap that would create a match on the current board.
func (s *Session) Hint() (Move, bool) {
	if s.phase != PhaseIdle {
		return Move{}, false
	}
	return FindHintMove(s.board)
}

// Select applies a cell tap: the first tap selects, tapping the same cell
// deselects, tapping a neighbor swaps and tapping elsewhere moves the
// selection.
func (s *Session) Select(p Position) (SelectResult, error) {
	if s.phase != PhaseIdle {
		return SelectResult{}, fmt.Errorf("select %v: %w", p, ErrNotIdle)
	}
	if !s.board.InBounds(p) {
		return SelectResult{}, fmt.Errorf("select %v: %w", p, ErrInvalidPosition)
	}

	switch {
	case !s.hasSelected:
		s.selected, s.hasSelected = p, true
	case s.selected == p:
		s.hasSelected = false
	case IsAdjacent(s.selected, p):
		from := s.selected
		s.hasSelected = false
		res, err := s.TrySwap(from, p)
		if err != nil {
			return SelectResult{}, err
		}
		return SelectResult{Swap: &res}, nil
	default:
		s.selected = p
	}

	return SelectResult{Selected: s.selected, HasSelection: s.hasSelected}, nil
}

// TrySwap swaps a and b and resolves the resulting cascade. A swap that
// creates no match is reverted without charging a move. a is the cell the
// player picked first; a four or five run through it is promoted there,
// any other run at its center.
func (s *Session) TrySwap(a, b Position) (SwapResult, error) {
	if s.phase != PhaseIdle {
		return SwapResult{}, fmt.Errorf("swap %v-%v: %w", a, b, ErrNotIdle)
	}
	if !s.board.InBounds(a) || !s.board.InBounds(b) {
		return SwapResult{}, fmt.Errorf("swap %v-%v: %w", a, b, ErrInvalidPosition)
	}
	if !IsAdjacent(a, b) {
		return SwapResult{}, fmt.Errorf("swap %v-%v: %w", a, b, ErrNonAdjacent)
	}

	s.hasSelected = false
	res := SwapResult{
		Move:         Move{A: a, B: b},
		ComboReached: -1,
		Transitions:  []Phase{PhaseSwapping},
	}
	s.phase = PhaseSwapping

	swapped, err := s.board.Swap(a, b)
	if err != nil {
		s.phase = PhaseIdle
		return SwapResult{}, err
	}
	res.Swapped = swapped

	if len(FindMatches(swapped)) == 0 {
		res.Transitions = append(res.Transitions, PhaseSwapBack, PhaseIdle)
		s.phase = PhaseIdle
		res.Board = s.board
		res.Phase = s.phase
		res.Score = s.score
		res.MovesLeft = s.movesLeft
		s.last = &res
		return res, nil
	}

	res.Accepted = true
	s.movesLeft--

	resolution := Resolve(swapped, s.spawner, s.opts.Scoring, a)
	for range resolution.Steps {
		res.Transitions = append(res.Transitions, PhaseRemoving, PhaseFalling)
	}
	res.Resolution = resolution
	res.ScoreDelta = resolution.ScoreDelta
	res.ComboReached = resolution.ComboReached()

	s.score += resolution.ScoreDelta
	s.combo = max(res.ComboReached, 0)
	s.board = resolution.Board

	res.Reshuffled = s.settle(resolution.Truncated)
	res.Transitions = append(res.Transitions, s.phase)

	res.Board = s.board
	res.Phase = s.phase
	res.Score = s.score
	res.MovesLeft = s.movesLeft
	s.last = &res
	return res, nil
}

// settle picks the phase after a cascade: level complete wins over game
// over, and a board without moves is regenerated in place. It reports
// whether a reshuffle happened.
func (s *Session) settle(unstable bool) bool {
	switch {
	case s.score >= s.level.TargetScore:
		s.phase = PhaseLevelComplete
	case s.movesLeft <= 0:
		s.phase = PhaseGameOver
	default:
		s.phase = PhaseIdle
		if unstable || !HasValidMoves(s.board) {
			s.board = s.NewBoard()
			return true
		}
	}
	return false
}

func (s *Session) indexOf(level int) int {
	for i, l := range s.opts.Levels {
		if l.Level == level {
			return i
		}
	}
	return -1
}
