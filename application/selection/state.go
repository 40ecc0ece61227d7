// Package selection tracks which node IDs are highlighted for rendering.
//
// Three sources compete: manual click toggles, the last confirmed search,
// and the active path. The effective set is a pure function of the three;
// transitions return new State values so the reducer can be tested without
// any rendering harness.
package selection

import (
	"sort"

	"skilltree-backend/domain/graph"
)

// IDSet is a set of node IDs
type IDSet map[string]struct{}

// NewIDSet builds a set from the given IDs
func NewIDSet(ids ...string) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Has reports set membership
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Clone returns an independent copy of the set
func (s IDSet) Clone() IDSet {
	clone := make(IDSet, len(s))
	for id := range s {
		clone[id] = struct{}{}
	}
	return clone
}

// Values returns the set's IDs in sorted order
func (s IDSet) Values() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// State holds the three highlight sources plus the currently selected path
// target. States are immutable: every transition returns a new value.
type State struct {
	// Manual holds IDs toggled by direct node clicks. It persists until
	// explicitly toggled off; a path supersedes it for rendering only.
	Manual IDSet

	// Search holds IDs derived from the last confirmed search. Empty when
	// no search is active.
	Search IDSet

	// Path holds the node IDs of the active path tree. Empty when no path
	// is active.
	Path IDSet

	// SelectedTargetID is the search result chosen as the path target.
	// Set only by explicit selection; cleared by ConfirmSearch and
	// InstallPath.
	SelectedTargetID string
}

// NewState returns an empty selection state
func NewState() State {
	return State{
		Manual: NewIDSet(),
		Search: NewIDSet(),
		Path:   NewIDSet(),
	}
}

// Effective computes the authoritative highlighted set. While a path is
// active it is exactly the path's IDs; otherwise the union of manual and
// search IDs.
func (s State) Effective() IDSet {
	if len(s.Path) > 0 {
		return s.Path.Clone()
	}

	union := s.Manual.Clone()
	for id := range s.Search {
		union[id] = struct{}{}
	}
	return union
}

// ConfirmSearch replaces the search set with the given match IDs, clears any
// active path and the selected target, and leaves the manual set untouched.
func (s State) ConfirmSearch(matchIDs []string) State {
	next := s
	next.Search = NewIDSet(matchIDs...)
	next.Path = NewIDSet()
	next.SelectedTargetID = ""
	return next
}

// ClearSearch empties the search set without touching anything else. This is
// the transition for the query textbox being edited to an empty string.
func (s State) ClearSearch() State {
	next := s
	next.Search = NewIDSet()
	return next
}

// ToggleManual flips the membership of a single node ID in the manual set.
// This is the only toggle-style transition; all others replace their target
// set wholesale.
func (s State) ToggleManual(id string) State {
	next := s
	manual := s.Manual.Clone()
	if manual.Has(id) {
		delete(manual, id)
	} else {
		manual[id] = struct{}{}
	}
	next.Manual = manual
	return next
}

// SelectTarget records the chosen search result as the path target
func (s State) SelectTarget(id string) State {
	next := s
	next.SelectedTargetID = id
	return next
}

// BeginPathRequest clears search highlights and any previously active path
// so stale highlights never linger while a path request is in flight. The
// manual set and the selected target survive; the target is needed for the
// request itself and must remain selectable for a retry on failure.
func (s State) BeginPathRequest() State {
	next := s
	next.Search = NewIDSet()
	next.Path = NewIDSet()
	return next
}

// InstallPath replaces the path set with the node IDs of the given path tree
// and clears the selected target. The stored manual and search sets are not
// cleared; they resume taking effect once the path is superseded.
func (s State) InstallPath(pathTree *graph.Tree) State {
	next := s
	next.Path = NewIDSet(pathTree.NodeIDs()...)
	next.SelectedTargetID = ""
	return next
}
