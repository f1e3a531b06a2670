// This file implements the lazy variant of Prim's algorithm using a plain
// min-heap of edges.
package mst

import (
	"container/heap"

	"github.com/davrell/ewgraph/core"
)

// LazyPrim computes a minimum spanning forest of g by growing one tree at
// a time from each unvisited vertex.
//
// The heap holds every edge with at least one endpoint inside the growing
// tree; edges whose endpoints have both been absorbed since they were
// pushed are stale and get discarded on pop. Accepting an edge "scans"
// the newly added vertex: its incident edges to still-outside vertices
// are pushed.
//
// Complexity: O(E log E) time, O(E) memory.
func LazyPrim(g *core.Graph) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	visited := make([]bool, g.V())
	forest := make([]core.Edge, 0, max(g.V()-1, 0))
	pq := &edgeHeap{}
	heap.Init(pq)
	var total float64

	// One growth pass per component.
	for s := 0; s < g.V(); s++ {
		if visited[s] {
			continue
		}
		if err := scan(g, s, visited, pq); err != nil {
			return nil, 0, err
		}

		for pq.Len() > 0 {
			e := heap.Pop(pq).(core.Edge)
			v := e.Either()
			w, err := e.Other(v)
			if err != nil {
				return nil, 0, err
			}
			if visited[v] && visited[w] {
				continue // stale: both endpoints absorbed since the push
			}

			forest = append(forest, e)
			total += e.Weight()
			if !visited[v] {
				if err = scan(g, v, visited, pq); err != nil {
					return nil, 0, err
				}
			}
			if !visited[w] {
				if err = scan(g, w, visited, pq); err != nil {
					return nil, 0, err
				}
			}
		}
	}

	return forest, total, nil
}

// scan absorbs v into the growing tree and pushes its crossing edges.
func scan(g *core.Graph, v int, visited []bool, pq *edgeHeap) error {
	visited[v] = true
	adj, err := g.Adjacent(v)
	if err != nil {
		return err
	}
	for _, e := range adj {
		w, err := e.Other(v)
		if err != nil {
			return err
		}
		if !visited[w] {
			heap.Push(pq, e)
		}
	}

	return nil
}

// edgeHeap implements heap.Interface for a min-heap of core.Edge by weight.
type edgeHeap []core.Edge

// Len returns the number of edges on the heap.
func (h edgeHeap) Len() int { return len(h) }

// Less orders edges by ascending weight.
func (h edgeHeap) Less(i, j int) bool { return h[i].Less(h[j]) }

// Swap exchanges two heap slots.
func (h edgeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push, x must be a core.Edge.
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(core.Edge)) }

// Pop removes and returns the last slot; called by heap.Pop.
func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
