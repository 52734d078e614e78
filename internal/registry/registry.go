// Package registry maps game IDs to factories. Games register themselves
// in init() so the CLI and the terminal front end can create them by name.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// Game is a tick-driven game the terminal front end can run.
// The platform handles input mapping, timing and display.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "match3").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Match-3").
	Title() string

	// Reset initializes or resets the game state.
	// Called once when the game starts.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Returns the state after the tick plus any events it produced.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Resizer is implemented by games that can adapt to a new terminal size
// without losing progress. Games without it are Reset on resize.
type Resizer interface {
	Resize(w, h int)
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory under id. Games call it from init().
// Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// Create returns a fresh game instance for id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists reports whether id has been registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
