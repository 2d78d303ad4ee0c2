// Package registry provides a global registry of built-in mazes.
// Mazes register themselves in init() functions, allowing the platform
// to discover and load them without hardcoded dependencies.
package registry

import (
	"fmt"
	"slices"
	"sort"
	"sync"
)

// Definition describes one built-in maze.
type Definition struct {
	ID     string   // Stable identifier used by the CLI (e.g., "classic")
	Title  string   // Human-readable name for menus
	Order  int      // Position in the campaign; lower plays first
	Layout []string // Text rows, one rune per tile
}

// MazeInfo contains metadata about a registered maze.
type MazeInfo struct {
	ID    string
	Title string
	Order int
	Cols  int
	Rows  int
}

var (
	mazes = make(map[string]Definition)
	mu    sync.RWMutex
)

// Register adds a maze definition to the registry.
// Typically called from an init() function.
// Panics if a maze with the same ID is already registered or has no rows.
func Register(def Definition) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := mazes[def.ID]; exists {
		panic(fmt.Sprintf("registry: maze %q already registered", def.ID))
	}
	if len(def.Layout) == 0 {
		panic(fmt.Sprintf("registry: maze %q has no layout", def.ID))
	}

	def.Layout = slices.Clone(def.Layout)
	mazes[def.ID] = def
}

// List returns information about all registered mazes in campaign order.
func List() []MazeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]MazeInfo, 0, len(mazes))
	for _, def := range mazes {
		result = append(result, MazeInfo{
			ID:    def.ID,
			Title: def.Title,
			Order: def.Order,
			Cols:  len([]rune(def.Layout[0])),
			Rows:  len(def.Layout),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// IDs returns the registered maze IDs in campaign order.
func IDs() []string {
	infos := List()
	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
	}
	return ids
}

// Get returns the definition registered under id.
// Returns an error if the maze ID is not registered.
func Get(id string) (Definition, error) {
	mu.RLock()
	defer mu.RUnlock()

	def, ok := mazes[id]
	if !ok {
		return Definition{}, fmt.Errorf("registry: unknown maze %q", id)
	}
	def.Layout = slices.Clone(def.Layout)
	return def, nil
}

// Exists checks if a maze with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := mazes[id]
	return ok
}
