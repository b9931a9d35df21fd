// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/tui-sims/internal/core"
)

// Game is the interface every simulation implements.
// Games contain pure logic with no terminal dependencies; the platform
// handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier (e.g., "life", "rover").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game state from the runtime config.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. dst is at least Size() large.
	Render(dst *core.Screen)

	// State returns the current score and game-over flag.
	State() core.GameState

	// Tick returns the fixed delay between steps.
	Tick() time.Duration

	// Size returns the frame size Render needs, in cells.
	Size() (w, h int)

	// Summary returns the line printed after the terminal UI exits.
	Summary() string
}

// Reporter is implemented by games that expose sampled statistics.
type Reporter interface {
	Stats() []core.Stat
}

// Autopilot is implemented by games that can choose their own input.
type Autopilot interface {
	Autopilot() core.Action
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Options select where a game loads its configuration from.
type Options struct {
	// ConfigPath is a custom YAML file. Empty means the default search order.
	ConfigPath string
	// Overrides are dotted config keys (e.g. "grid.rows") set after loading.
	Overrides map[string]string
}

// Factory creates a game from its configuration options.
type Factory func(opts Options) (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry under a display title.
// Typically called from a game's init() function.
// Panics if the ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a game by its ID.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
