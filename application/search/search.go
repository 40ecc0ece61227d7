// Package search implements text search over the skill graph.
//
// Matching is exact substring, case-insensitive, over node names. Both skill
// and url nodes are eligible. Result order preserves the node's position in
// the tree's node list; there is no relevance ranking.
package search

import (
	"strings"

	"skilltree-backend/domain/graph"
)

// Result is the outcome of a search. An inactive result (empty query after
// trimming) is distinct from an active search with zero matches: the former
// means "no search in effect", the latter drives a "no results" state.
type Result struct {
	Active bool
	Query  string
	Nodes  []graph.Node
}

// Search matches the trimmed, lower-cased query as a substring against each
// node's lower-cased name. The returned slice is freshly allocated on every
// call and never aliases the tree's node list.
func Search(query string, tree *graph.Tree) Result {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return Result{}
	}

	needle := strings.ToLower(trimmed)
	nodes := make([]graph.Node, 0)
	for _, n := range tree.Nodes {
		if strings.Contains(strings.ToLower(n.Name), needle) {
			nodes = append(nodes, n)
		}
	}

	return Result{
		Active: true,
		Query:  trimmed,
		Nodes:  nodes,
	}
}

// NodeIDs returns the matched node IDs in result order
func (r Result) NodeIDs() []string {
	ids := make([]string, len(r.Nodes))
	for i, n := range r.Nodes {
		ids[i] = n.ID
	}
	return ids
}

// IsEmpty reports whether an active search produced zero matches
func (r Result) IsEmpty() bool {
	return r.Active && len(r.Nodes) == 0
}
