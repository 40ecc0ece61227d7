package core

import (
	"skilltree-backend/domain/graph"
)

// Snapshot is the read model handed to the rendering layer. Trees inside a
// snapshot are shared with the core and must be treated as read-only; they
// are replaced wholesale, never mutated in place.
type Snapshot struct {
	// Loaded reports whether the universal tree has been fetched
	Loaded bool

	// LoadError carries the blocking fetch error when Loaded is false
	LoadError error

	// Tree is the universal tree, nil until loaded
	Tree *graph.Tree

	// Highlighted is the effective highlighted node-ID set, sorted
	Highlighted []string

	// SearchActive distinguishes "no search in effect" from a search with
	// zero matches
	SearchActive bool

	// SearchResults holds the last confirmed search's matches in tree order
	SearchResults []graph.Node

	// ActivePath is the installed path tree, nil when no path is active
	ActivePath *graph.Tree

	// SelectedTargetID is the search result chosen as path target, empty
	// when none is selected
	SelectedTargetID string
}

// Snapshot returns a consistent view of the core's current state
func (c *Core) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	results := make([]graph.Node, len(c.lastSearch.Nodes))
	copy(results, c.lastSearch.Nodes)

	return Snapshot{
		Loaded:           c.loaded,
		LoadError:        c.loadErr,
		Tree:             c.universal,
		Highlighted:      c.state.Effective().Values(),
		SearchActive:     c.lastSearch.Active,
		SearchResults:    results,
		ActivePath:       c.activePath,
		SelectedTargetID: c.state.SelectedTargetID,
	}
}

// EntryNodeID returns the configured entry node ("no skills yet")
func (c *Core) EntryNodeID() string {
	return c.entryNodeID
}
