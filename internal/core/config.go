package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed, 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// TicksFor converts a duration in milliseconds to a whole number of ticks.
// Any positive duration lasts at least one tick.
func (c RuntimeConfig) TicksFor(ms int) int {
	if ms <= 0 || c.TickRate <= 0 {
		return 0
	}
	ticks := ms * c.TickRate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Event is something noteworthy that happened during a tick.
type Event struct {
	Kind  string
	Level int // level the event happened in, 0 if not level based
	Score int // score within that level
	Value int // kind specific
}

// Event kinds reported by games.
const (
	EventLevelComplete = "level_complete" // Value is the star rating
	EventLevelFailed   = "level_failed"
	EventCombo         = "combo" // Value is the combo reached
	EventReshuffle     = "reshuffle"
)

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
