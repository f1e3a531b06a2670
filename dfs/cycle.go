// This file implements directed cycle detection with an explicit stack.
package dfs

import (
	"github.com/davrell/ewgraph/core"
)

// DetectCycle searches g for a directed cycle and returns the first one
// found as a closed vertex sequence whose first and last entries coincide
// (e.g. [0, 1, 2, 0]); the search stops at the first cycle. When g is
// acyclic it returns (nil, false, nil).
//
// Traversal marks a vertex in-progress on entry and done on exit; an edge
// into an in-progress vertex is a back-edge, and the cycle is rebuilt by
// walking the recorded discovered-from links back to the repeated vertex.
//
// Complexity: O(V + E) time, O(V) memory.
func DetectCycle(g *core.Digraph) ([]int, bool, error) {
	if g == nil {
		return nil, false, ErrNilDigraph
	}

	state := make([]int, g.V())
	edgeTo := make([]int, g.V()) // edgeTo[w] = vertex that discovered w
	stack := make([]frame, 0, g.V())

	// Drive DFS from every unvisited vertex so disconnected digraphs are covered.
	for s := 0; s < g.V(); s++ {
		if state[s] != unvisited {
			continue
		}
		state[s] = inProgress
		stack = append(stack, newFrame(g, s))

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			if f.next >= len(f.adj) {
				// All out-edges examined: retire the vertex.
				state[f.v] = done
				stack = stack[:len(stack)-1]

				continue
			}

			e := f.adj[f.next]
			f.next++
			w := e.To()
			switch state[w] {
			case unvisited:
				edgeTo[w] = f.v
				state[w] = inProgress
				stack = append(stack, newFrame(g, w))
			case inProgress:
				// Back-edge f.v → w: close the cycle w .. f.v w.
				return buildCycle(edgeTo, f.v, w), true, nil
			}
		}
	}

	return nil, false, nil
}

// newFrame fetches v's adjacency once and wraps it in a stack frame.
// v is always a valid vertex here, so the range error cannot fire.
func newFrame(g *core.Digraph, v int) frame {
	adj, _ := g.Adjacent(v)

	return frame{v: v, adj: adj}
}

// buildCycle walks discovered-from links from v back to w and returns the
// closed sequence [w, ..., v, w]. A self-loop yields [w, w].
func buildCycle(edgeTo []int, v, w int) []int {
	var rev []int
	for x := v; x != w; x = edgeTo[x] {
		rev = append(rev, x)
	}
	rev = append(rev, w)

	cycle := make([]int, 0, len(rev)+1)
	for i := len(rev) - 1; i >= 0; i-- {
		cycle = append(cycle, rev[i])
	}

	return append(cycle, w)
}
