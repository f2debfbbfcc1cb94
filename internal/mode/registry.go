// Package mode provides a global registry for game modes. Modes register
// themselves in init() functions, allowing the launcher to discover and
// start them without hardcoded dependencies.
package mode

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/quillon/pendu/internal/config"
	"github.com/quillon/pendu/internal/history"
	"github.com/quillon/pendu/internal/save"
)

// Info contains metadata about a registered mode.
type Info struct {
	ID      string
	Title   string
	Tagline string
}

// Deps bundles everything a mode needs to run. History may be nil when the
// scoreboard database is unavailable; modes must tolerate that.
type Deps struct {
	Config  config.Config
	Words   []string
	Saves   *save.Store
	History *history.Store
	Logger  *log.Logger
	ScreenW int
	ScreenH int
	Seed    int64
}

// Runner starts a mode and blocks until the player leaves it.
type Runner func(Deps) error

var (
	mu      sync.RWMutex
	runners = make(map[string]Runner)
	infos   = make(map[string]Info)
)

// Register adds a mode to the registry.
// Typically called from an init() function.
// Panics if a mode with the same ID is already registered.
func Register(info Info, run Runner) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := runners[info.ID]; exists {
		panic(fmt.Sprintf("mode: %q already registered", info.ID))
	}
	runners[info.ID] = run
	infos[info.ID] = info
}

// List returns information about all registered modes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Run starts the mode with the given ID.
// Returns an error if the mode is not registered.
func Run(id string, deps Deps) error {
	mu.RLock()
	run, ok := runners[id]
	mu.RUnlock()

	if !ok {
		return fmt.Errorf("mode: unknown mode %q", id)
	}
	return run(deps)
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := runners[id]
	return ok
}
