// This file implements the depth-first vertex orders.
package dfs

import (
	"github.com/davrell/ewgraph/core"
)

// Order computes the preorder, postorder and reverse postorder of g by
// depth-first traversal from every unvisited vertex, using an explicit
// frame stack instead of call-stack recursion.
//
// Complexity: O(V + E) time, O(V) memory.
func Order(g *core.Digraph) (*DFSOrder, error) {
	if g == nil {
		return nil, ErrNilDigraph
	}

	o := &DFSOrder{
		Pre:  make([]int, 0, g.V()),
		Post: make([]int, 0, g.V()),
	}
	state := make([]int, g.V())
	stack := make([]frame, 0, g.V())

	for s := 0; s < g.V(); s++ {
		if state[s] != unvisited {
			continue
		}
		state[s] = inProgress
		o.Pre = append(o.Pre, s)
		stack = append(stack, newFrame(g, s))

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			if f.next >= len(f.adj) {
				state[f.v] = done
				o.Post = append(o.Post, f.v)
				stack = stack[:len(stack)-1]

				continue
			}

			w := f.adj[f.next].To()
			f.next++
			if state[w] == unvisited {
				state[w] = inProgress
				o.Pre = append(o.Pre, w)
				stack = append(stack, newFrame(g, w))
			}
		}
	}

	o.ReversePost = make([]int, len(o.Post))
	for i, v := range o.Post {
		o.ReversePost[len(o.Post)-1-i] = v
	}

	return o, nil
}
