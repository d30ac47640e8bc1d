// Package policy provides move-ranking policies for the automated player and
// a global registry for them. Policies register themselves in init()
// functions, allowing the CLI and tournament runner to discover them without
// hardcoded dependencies.
package policy

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/match3-arena/internal/board"
)

// Policy ranks candidate moves for the greedy selection loop. The score is a
// heuristic ranking signal only; the canonical score always comes from full
// cascade resolution after the move commits.
type Policy interface {
	// Name returns the unique identifier of this policy (e.g. "greedy").
	Name() string

	// Description returns a one-line summary for display.
	Description() string

	// Score rates one candidate move on the given board. history counts how
	// often each exact move tuple was already played this game.
	Score(b *board.Board, mv board.Move, history map[board.Move]int) float64
}

// Info contains metadata about a registered policy.
type Info struct {
	Name        string
	Description string
}

// Factory is a function that creates a new instance of a policy.
type Factory func() Policy

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a policy factory to the registry.
// Typically called from a policy's init() function.
// Panics if a policy with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("policy: %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = f().Description()
}

// List returns information about all registered policies, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for name := range factories {
		result = append(result, Info{Name: name, Description: descriptions[name]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new policy by its name.
// Returns an error if the name is not registered.
func Create(name string) (Policy, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("policy: unknown policy %q", name)
	}

	return f(), nil
}

// Exists checks if a policy with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
