// Package registry provides a global registry for demo game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/avlasenko/gamekit/internal/core"
	"github.com/avlasenko/gamekit/internal/hub"
)

// Game is the interface every gamekit demo implements. A game is a hub
// consumer: on Mount it subscribes to the topics it cares about (frame
// ticks, key changes) and reads shared state through the hub handle it was
// given. Mount returns a release function that must drop every subscription
// the game took out; a game that skips this leaks callbacks until the whole
// hub is torn down.
type Game interface {
	// ID returns a unique identifier (e.g. "walker", "platformer").
	// Used for CLI commands and session storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Mount attaches the game to a live hub: reset internal state from the
	// runtime config, subscribe to hub topics, and return the release
	// function that unsubscribes everything. Mount may be called again
	// after release (restart).
	Mount(h *hub.Hub, cfg core.RuntimeConfig) (release func(), err error)

	// Render draws the current game state into the screen buffer.
	// The buffer is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the score and game-over flag.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry, typically from a game's
// init() function. Panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
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

// Exists checks whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
