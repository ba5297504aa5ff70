// Package registry provides a global registry for game factories.
// Games register themselves in init() functions so the platform can list and
// instantiate them without importing concrete game types.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/twin-arcade/internal/core"
)

// Game is the contract between a simulation and the host loop.
// Implementations keep all state inside the value; there is no package state.
type Game interface {
	// ID returns a unique identifier used by the CLI (e.g. "tetris").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds a fresh simulation in the idle state.
	// The RuntimeConfig carries the seed, config path and difficulty.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input, then advances the simulation by dt
	// if it is running. dt is already bounded by the host clock.
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws the current snapshot into dst. It never mutates the game.
	Render(dst *core.Screen)

	// State returns the platform-facing summary.
	State() core.GameState
}

// ConfigReporter is implemented by games that fall back to built-in tuning
// when their config file cannot be loaded.
type ConfigReporter interface {
	ConfigErr() error
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
