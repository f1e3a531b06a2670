package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davrell/ewgraph/core"
	"github.com/davrell/ewgraph/dfs"
)

// buildDAG constructs the 8-vertex acyclic digraph used across the path
// tests (the edge set of the standard tinyEWDAG example).
func buildDAG(t *testing.T) *core.Digraph {
	t.Helper()
	g, err := core.NewDigraph(8)
	require.NoError(t, err)
	for _, e := range [][2]int{
		{5, 4}, {4, 7}, {5, 7}, {5, 1}, {4, 0}, {0, 2},
		{3, 7}, {1, 3}, {7, 2}, {6, 2}, {3, 6}, {6, 4}, {6, 0},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1.0))
	}

	return g
}

// TestDetectCycle_Triangle verifies the 0→1→2→0 digraph is certified
// cyclic with a closed three-vertex cycle.
func TestDetectCycle_Triangle(t *testing.T) {
	g, err := core.NewDigraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1.0))
	require.NoError(t, g.AddEdge(1, 2, 1.0))
	require.NoError(t, g.AddEdge(2, 0, 1.0))

	cycle, found, err := dfs.DetectCycle(g)
	require.NoError(t, err)
	require.True(t, found)

	// Closed sequence: first and last vertex identical, 3 distinct vertices.
	require.Len(t, cycle, 4)
	assert.Equal(t, cycle[0], cycle[len(cycle)-1])
	assert.ElementsMatch(t, []int{0, 1, 2}, cycle[:3])

	// Every consecutive pair must be a real edge of the digraph.
	assertCycleEdgesExist(t, g, cycle)
}

// TestDetectCycle_SelfLoop verifies a self-loop is a one-vertex cycle.
func TestDetectCycle_SelfLoop(t *testing.T) {
	g, err := core.NewDigraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 1, 0.0))

	cycle, found, err := dfs.DetectCycle(g)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []int{1, 1}, cycle)
}

// TestDetectCycle_Acyclic verifies a DAG is certified cycle-free.
func TestDetectCycle_Acyclic(t *testing.T) {
	g := buildDAG(t)

	cycle, found, err := dfs.DetectCycle(g)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, cycle)
}

// TestTopologicalSort_RankProperty verifies rank(u) < rank(v) for every
// edge u→v of a DAG, across all components.
func TestTopologicalSort_RankProperty(t *testing.T) {
	g := buildDAG(t)

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, g.V())

	ranks := dfs.Ranks(order)
	for _, e := range g.Edges() {
		assert.Less(t, ranks[e.From()], ranks[e.To()],
			"edge %d->%d must point forward in topological order", e.From(), e.To())
	}
}

// TestTopologicalSort_RejectsCycle verifies order construction fails on a
// cyclic digraph with ErrCycleDetected.
func TestTopologicalSort_RejectsCycle(t *testing.T) {
	g, err := core.NewDigraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1.0))
	require.NoError(t, g.AddEdge(1, 2, 1.0))
	require.NoError(t, g.AddEdge(2, 0, 1.0))

	_, err = dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestOrder_CoversEveryVertexOnce verifies the three orders each contain
// every vertex exactly once, including isolated ones.
func TestOrder_CoversEveryVertexOnce(t *testing.T) {
	g, err := core.NewDigraph(5)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1.0))
	require.NoError(t, g.AddEdge(1, 2, 1.0))
	// vertices 3 and 4 stay isolated

	o, err := dfs.Order(g)
	require.NoError(t, err)

	for _, seq := range [][]int{o.Pre, o.Post, o.ReversePost} {
		assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, seq)
	}

	// ReversePost is Post reversed.
	for i, v := range o.Post {
		assert.Equal(t, v, o.ReversePost[len(o.Post)-1-i])
	}
}

// TestDeepChain_NoRecursionLimit verifies the explicit-stack traversals
// handle a path digraph far deeper than any call stack would allow.
func TestDeepChain_NoRecursionLimit(t *testing.T) {
	const n = 200_000
	g, err := core.NewDigraph(n)
	require.NoError(t, err)
	for v := 0; v < n-1; v++ {
		require.NoError(t, g.AddEdge(v, v+1, 1.0))
	}

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, n)
	for i, v := range order {
		require.Equal(t, i, v, "a path digraph has exactly one topological order")
	}
}

// TestNilDigraph verifies every entry point rejects a nil digraph.
func TestNilDigraph(t *testing.T) {
	_, _, err := dfs.DetectCycle(nil)
	assert.ErrorIs(t, err, dfs.ErrNilDigraph)
	_, err = dfs.Order(nil)
	assert.ErrorIs(t, err, dfs.ErrNilDigraph)
	_, err = dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrNilDigraph)
}

// assertCycleEdgesExist checks every consecutive pair of the closed cycle
// sequence is an actual edge of g.
func assertCycleEdgesExist(t *testing.T, g *core.Digraph, cycle []int) {
	t.Helper()
	for i := 0; i+1 < len(cycle); i++ {
		adj, err := g.Adjacent(cycle[i])
		require.NoError(t, err)
		found := false
		for _, e := range adj {
			if e.To() == cycle[i+1] {
				found = true

				break
			}
		}
		assert.True(t, found, "missing edge %d->%d", cycle[i], cycle[i+1])
	}
}
