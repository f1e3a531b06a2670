// This file implements shortest- and longest-path relaxation over a
// topological order.
package dagpath

import (
	"fmt"
	"math"

	"github.com/davrell/ewgraph/core"
	"github.com/davrell/ewgraph/dfs"
)

// Shortest computes the shortest-path tree of the DAG g rooted at source.
// A cyclic g aborts with dfs.ErrCycleDetected.
// Complexity: O(V + E).
func Shortest(g *core.Digraph, source int) (*Tree, error) {
	return relaxInOrder(g, source, false)
}

// Longest computes the longest-path tree of the DAG g rooted at source.
// A cyclic g aborts with dfs.ErrCycleDetected.
// Complexity: O(V + E).
func Longest(g *core.Digraph, source int) (*Tree, error) {
	return relaxInOrder(g, source, true)
}

// relaxInOrder validates the input, obtains a topological order, and
// relaxes every vertex's outgoing edges exactly once in that order. The
// order guarantees dist[v] is final when v is reached, so a single pass
// suffices for both optimization directions.
func relaxInOrder(g *core.Digraph, source int, longest bool) (*Tree, error) {
	if g == nil {
		return nil, ErrNilDigraph
	}
	if source < 0 || source >= g.V() {
		return nil, fmt.Errorf("%w: source %d with V=%d", ErrVertexOutOfRange, source, g.V())
	}

	// Acyclicity is the precondition everything below depends on.
	order, err := dfs.TopologicalSort(g)
	if err != nil {
		return nil, fmt.Errorf("dagpath: %w", err)
	}

	t := &Tree{
		source:  source,
		longest: longest,
		distTo:  make([]float64, g.V()),
		edgeTo:  make([]core.DirectedEdge, g.V()),
		seen:    make([]bool, g.V()),
	}
	unreachable := math.Inf(1)
	if longest {
		unreachable = math.Inf(-1)
	}
	for v := range t.distTo {
		t.distTo[v] = unreachable
	}
	t.distTo[source] = 0

	for _, v := range order {
		if t.distTo[v] == unreachable {
			continue // not reached yet; nothing to propagate
		}
		adj, err := g.Adjacent(v)
		if err != nil {
			return nil, err
		}
		for _, e := range adj {
			t.relax(e, longest)
		}
	}

	return t, nil
}

// relax improves dist[e.To()] through e with the direction-appropriate
// strict comparison.
func (t *Tree) relax(e core.DirectedEdge, longest bool) {
	v, w := e.From(), e.To()
	candidate := t.distTo[v] + e.Weight()
	better := candidate < t.distTo[w]
	if longest {
		better = candidate > t.distTo[w]
	}
	if !better {
		return
	}

	t.distTo[w] = candidate
	t.edgeTo[w] = e
	t.seen[w] = true
}
