package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skilltree-backend/domain/graph"
)

func sampleTree() *graph.Tree {
	return &graph.Tree{
		Nodes: []graph.Node{
			{ID: "1", Type: graph.NodeTypeSkill, Name: "JavaScript"},
			{ID: "2", Type: graph.NodeTypeSkill, Name: "React"},
			{ID: "3", Type: graph.NodeTypeURL, Name: "https://developer.mozilla.org/docs/Web/JavaScript/Guide"},
		},
	}
}

func TestSearchMatchesSubstringCaseInsensitive(t *testing.T) {
	tree := sampleTree()

	result := Search("javascript", tree)
	require.True(t, result.Active)
	require.Len(t, result.Nodes, 2)

	// Both the skill and the url node contain "javascript"; tree order is
	// preserved, no relevance ranking.
	assert.Equal(t, "1", result.Nodes[0].ID)
	assert.Equal(t, "3", result.Nodes[1].ID)

	// Every match satisfies the substring rule and nothing else does
	for _, n := range tree.Nodes {
		matched := false
		for _, m := range result.Nodes {
			if m.ID == n.ID {
				matched = true
			}
		}
		expected := strings.Contains(strings.ToLower(n.Name), "javascript")
		assert.Equal(t, expected, matched, "node %s", n.ID)
	}
}

func TestSearchMixedCaseQuery(t *testing.T) {
	result := Search("ReAcT", sampleTree())
	require.True(t, result.Active)
	require.Len(t, result.Nodes, 1)
	assert.Equal(t, "2", result.Nodes[0].ID)
}

func TestSearchEmptyQueryIsInactive(t *testing.T) {
	tree := sampleTree()

	for _, q := range []string{"", "   ", "\t\n"} {
		result := Search(q, tree)
		assert.False(t, result.Active, "query %q", q)
		assert.Empty(t, result.Nodes)
		assert.False(t, result.IsEmpty(), "inactive search is not a zero-result search")
	}
}

func TestSearchZeroMatchesIsActiveAndEmpty(t *testing.T) {
	result := Search("xyzabc123", sampleTree())

	require.True(t, result.Active)
	assert.Empty(t, result.Nodes)
	assert.True(t, result.IsEmpty())
}

func TestSearchTrimsQuery(t *testing.T) {
	result := Search("  react  ", sampleTree())
	require.True(t, result.Active)
	assert.Equal(t, "react", result.Query)
	require.Len(t, result.Nodes, 1)
}

func TestSearchReturnsFreshSlice(t *testing.T) {
	tree := sampleTree()

	first := Search("a", tree)
	second := Search("a", tree)
	require.NotEmpty(t, first.Nodes)

	first.Nodes[0].Name = "mutated"
	assert.NotEqual(t, "mutated", second.Nodes[0].Name)
	assert.Equal(t, "JavaScript", tree.Nodes[0].Name)
}

func TestSearchNodeIDs(t *testing.T) {
	result := Search("javascript", sampleTree())
	assert.Equal(t, []string{"1", "3"}, result.NodeIDs())
}
