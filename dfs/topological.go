// This file implements topological sort of a DAG.
package dfs

import (
	"fmt"

	"github.com/davrell/ewgraph/core"
)

// TopologicalSort returns a vertex ordering of g in which every edge
// points from an earlier to a later vertex: the reverse of the depth-first
// postorder over all components. The order is only defined for acyclic
// digraphs; a cyclic g is rejected with ErrCycleDetected, annotated with
// the offending cycle.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g *core.Digraph) ([]int, error) {
	// The order is meaningless on a cyclic digraph, so certify acyclicity first.
	cycle, found, err := DetectCycle(g)
	if err != nil {
		return nil, err
	}
	if found {
		return nil, fmt.Errorf("%w: %v", ErrCycleDetected, cycle)
	}

	order, err := Order(g)
	if err != nil {
		return nil, err
	}

	return order.ReversePost, nil
}

// Ranks inverts a vertex order into a rank-per-vertex slice: ranks[v] is
// v's position in order. Every vertex of the digraph must appear exactly
// once in order, as TopologicalSort guarantees.
func Ranks(order []int) []int {
	ranks := make([]int, len(order))
	for i, v := range order {
		ranks[v] = i
	}

	return ranks
}
