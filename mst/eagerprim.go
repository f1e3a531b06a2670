// This file implements the eager variant of Prim's algorithm using an
// indexed priority queue keyed by crossing-edge weight.
package mst

import (
	"math"

	"github.com/davrell/ewgraph/core"
	"github.com/davrell/ewgraph/indexpq"
)

// EagerPrim computes a minimum spanning forest of g.
//
// Instead of a heap of edges it keeps, for every vertex outside the
// growing tree, the weight of the best known edge crossing from the tree
// to that vertex, in an indexed priority queue. Discovering a cheaper
// crossing edge is a decrease-key; first contact is an insert. Each
// dequeued vertex joins the tree through its recorded best edge.
//
// Complexity: O(E log V) time, O(V) memory.
func EagerPrim(g *core.Graph) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	pq, err := indexpq.New[float64](g.V())
	if err != nil {
		return nil, 0, err
	}

	distTo := make([]float64, g.V()) // weight of best known crossing edge per vertex
	edgeTo := make([]core.Edge, g.V())
	hasEdge := make([]bool, g.V()) // component roots join with no edge
	visited := make([]bool, g.V())
	for v := range distTo {
		distTo[v] = math.Inf(1)
	}

	forest := make([]core.Edge, 0, max(g.V()-1, 0))
	var total float64

	// One growth pass per component; the queue drains between passes.
	for s := 0; s < g.V(); s++ {
		if visited[s] {
			continue
		}
		distTo[s] = 0
		if err = pq.Insert(s, 0); err != nil {
			return nil, 0, err
		}

		for !pq.IsEmpty() {
			v, err := pq.DelMin()
			if err != nil {
				return nil, 0, err
			}
			visited[v] = true
			if hasEdge[v] {
				forest = append(forest, edgeTo[v])
				total += edgeTo[v].Weight()
			}

			adj, err := g.Adjacent(v)
			if err != nil {
				return nil, 0, err
			}
			for _, e := range adj {
				w, err := e.Other(v)
				if err != nil {
					return nil, 0, err
				}
				if visited[w] || e.Weight() >= distTo[w] {
					continue // not a crossing edge, or no improvement
				}

				distTo[w] = e.Weight()
				edgeTo[w] = e
				hasEdge[w] = true
				if pq.Contains(w) {
					err = pq.DecreaseKey(w, distTo[w])
				} else {
					err = pq.Insert(w, distTo[w])
				}
				if err != nil {
					return nil, 0, err
				}
			}
		}
	}

	return forest, total, nil
}
