// This file implements eager Dijkstra shortest-path construction.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/davrell/ewgraph/core"
	"github.com/davrell/ewgraph/indexpq"
)

// New computes the shortest-path tree of g rooted at source.
//
// Validation, in order:
//  1. g must be non-nil (ErrNilDigraph);
//  2. source must lie in [0, V) (ErrVertexOutOfRange);
//  3. no edge may carry a negative weight (ErrNegativeWeight) — checked
//     up front so the failure surfaces before any relaxation.
//
// The main loop extracts the minimum-distance unsettled vertex and relaxes
// its outgoing edges; an improved vertex is inserted on first contact and
// decrease-keyed afterwards. The loop ends when the queue empties, at
// which point every reachable vertex carries its final distance.
//
// Complexity: O(E log V) time, O(V) memory.
func New(g *core.Digraph, source int) (*Tree, error) {
	if g == nil {
		return nil, ErrNilDigraph
	}
	if source < 0 || source >= g.V() {
		return nil, fmt.Errorf("%w: source %d with V=%d", ErrVertexOutOfRange, source, g.V())
	}
	for _, e := range g.Edges() {
		if e.Weight() < 0 {
			return nil, fmt.Errorf("%w: %v", ErrNegativeWeight, e)
		}
	}

	t := &Tree{
		source: source,
		distTo: make([]float64, g.V()),
		edgeTo: make([]core.DirectedEdge, g.V()),
		seen:   make([]bool, g.V()),
	}
	for v := range t.distTo {
		t.distTo[v] = math.Inf(1)
	}
	t.distTo[source] = 0

	pq, err := indexpq.New[float64](g.V())
	if err != nil {
		return nil, err
	}
	if err = pq.Insert(source, 0); err != nil {
		return nil, err
	}

	for !pq.IsEmpty() {
		v, err := pq.DelMin()
		if err != nil {
			return nil, err
		}
		adj, err := g.Adjacent(v)
		if err != nil {
			return nil, err
		}
		for _, e := range adj {
			if err = t.relax(e, pq); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

// relax improves dist[e.To()] through e when the route over e.From() is
// strictly shorter, recording the edge and adjusting the queue.
func (t *Tree) relax(e core.DirectedEdge, pq *indexpq.MinPQ[float64]) error {
	v, w := e.From(), e.To()
	candidate := t.distTo[v] + e.Weight()
	if candidate >= t.distTo[w] {
		return nil
	}

	t.distTo[w] = candidate
	t.edgeTo[w] = e
	t.seen[w] = true
	// Strict improvement guarantees the new key strictly undercuts the old.
	if pq.Contains(w) {
		return pq.DecreaseKey(w, candidate)
	}

	return pq.Insert(w, candidate)
}
