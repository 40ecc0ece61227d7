package graph

import (
	"fmt"

	pkgerrors "skilltree-backend/pkg/errors"
)

// NodeType distinguishes skill nodes from learning-resource nodes
type NodeType string

const (
	NodeTypeSkill NodeType = "skill"
	NodeTypeURL   NodeType = "url"
)

// Node is a single vertex of the skill graph.
// For NodeTypeURL the Name holds the literal resource URL, never a display
// label. Nodes are immutable once fetched; a refetch replaces the whole tree.
type Node struct {
	ID   string   `json:"id"`
	Type NodeType `json:"type"`
	Name string   `json:"name"`
}

// IsURL reports whether the node is a learning-resource node
func (n Node) IsURL() bool {
	return n.Type == NodeTypeURL
}

// Link is a directed edge between two nodes.
// By convention skill -> url means "is prerequisite to" and url -> skill
// means "teaches". The convention is not enforced structurally.
type Link struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Tree is an immutable snapshot of a graph: either the universal graph of
// all skills and resources, or an induced path subgraph between two nodes.
// No operation mutates a Tree in place; transformations produce new values.
type Tree struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Validate checks the tree's structural invariants: every link endpoint must
// reference an existing node ID, and node/link IDs must be unique within
// their collections. Violations yield a malformed graph error.
func (t *Tree) Validate() error {
	nodeIDs := make(map[string]struct{}, len(t.Nodes))
	for _, n := range t.Nodes {
		if n.ID == "" {
			return pkgerrors.NewMalformedGraphError("node with empty id")
		}
		if _, exists := nodeIDs[n.ID]; exists {
			return pkgerrors.NewMalformedGraphError(fmt.Sprintf("duplicate node id %q", n.ID))
		}
		nodeIDs[n.ID] = struct{}{}
	}

	linkIDs := make(map[string]struct{}, len(t.Links))
	for _, l := range t.Links {
		if l.ID == "" {
			return pkgerrors.NewMalformedGraphError("link with empty id")
		}
		if _, exists := linkIDs[l.ID]; exists {
			return pkgerrors.NewMalformedGraphError(fmt.Sprintf("duplicate link id %q", l.ID))
		}
		linkIDs[l.ID] = struct{}{}

		if _, ok := nodeIDs[l.Source]; !ok {
			return pkgerrors.NewMalformedGraphError(fmt.Sprintf("link %q references unknown source %q", l.ID, l.Source))
		}
		if _, ok := nodeIDs[l.Target]; !ok {
			return pkgerrors.NewMalformedGraphError(fmt.Sprintf("link %q references unknown target %q", l.ID, l.Target))
		}
	}

	return nil
}

// NodeIDs returns the node IDs in tree order
func (t *Tree) NodeIDs() []string {
	ids := make([]string, len(t.Nodes))
	for i, n := range t.Nodes {
		ids[i] = n.ID
	}
	return ids
}

// NodeIDSet returns the node IDs as a membership set
func (t *Tree) NodeIDSet() map[string]struct{} {
	set := make(map[string]struct{}, len(t.Nodes))
	for _, n := range t.Nodes {
		set[n.ID] = struct{}{}
	}
	return set
}

// FindNode looks up a node by ID
func (t *Tree) FindNode(id string) (Node, bool) {
	for _, n := range t.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// HasNode reports whether a node with the given ID exists
func (t *Tree) HasNode(id string) bool {
	_, ok := t.FindNode(id)
	return ok
}

// Clone returns an independent copy of the tree
func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}
	clone := &Tree{
		Nodes: make([]Node, len(t.Nodes)),
		Links: make([]Link, len(t.Links)),
	}
	copy(clone.Nodes, t.Nodes)
	copy(clone.Links, t.Links)
	return clone
}
