// This file implements the directed edge-weighted Digraph model.
package core

import (
	"fmt"
	"strings"
)

// Digraph is a directed edge-weighted graph over vertices 0..V-1, stored
// as per-vertex adjacency lists of outgoing DirectedEdge values.
//
// Digraph is append-only and not safe for concurrent mutation; finish all
// AddEdge calls before sharing it with algorithm packages.
type Digraph struct {
	v        int              // number of vertices, fixed at construction
	e        int              // number of edges added so far
	adj      [][]DirectedEdge // adj[v] = edges pointing out of v
	indegree []int            // indegree[v] = number of edges pointing into v
}

// NewDigraph creates an empty digraph with v vertices and no edges.
// Returns ErrNegativeVertices when v < 0.
// Complexity: O(V).
func NewDigraph(v int) (*Digraph, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertices, v)
	}

	return &Digraph{
		v:        v,
		adj:      make([][]DirectedEdge, v),
		indegree: make([]int, v),
	}, nil
}

// V returns the number of vertices.
func (g *Digraph) V() int { return g.v }

// E returns the number of edges.
func (g *Digraph) E() int { return g.e }

// AddEdge appends the directed edge from → to with the given weight to the
// tail's adjacency list. Endpoints must lie in [0, V) and the weight must
// not be NaN; parallel edges and self-loops are allowed.
// Complexity: O(1) amortized.
func (g *Digraph) AddEdge(from, to int, weight float64) error {
	e, err := NewDirectedEdge(from, to, weight)
	if err != nil {
		return err
	}
	if from >= g.v || to >= g.v {
		return fmt.Errorf("%w: (%d → %d) with V=%d", ErrVertexOutOfRange, from, to, g.v)
	}

	g.adj[from] = append(g.adj[from], e)
	g.indegree[to]++
	g.e++

	return nil
}

// Adjacent returns the edges pointing out of v, in insertion order.
// The returned slice is a copy; mutating it does not affect the digraph.
// Complexity: O(outdeg(v)).
func (g *Digraph) Adjacent(v int) ([]DirectedEdge, error) {
	if v < 0 || v >= g.v {
		return nil, fmt.Errorf("%w: %d with V=%d", ErrVertexOutOfRange, v, g.v)
	}

	out := make([]DirectedEdge, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// OutDegree returns the number of edges pointing out of v.
// Complexity: O(1).
func (g *Digraph) OutDegree(v int) (int, error) {
	if v < 0 || v >= g.v {
		return 0, fmt.Errorf("%w: %d with V=%d", ErrVertexOutOfRange, v, g.v)
	}

	return len(g.adj[v]), nil
}

// InDegree returns the number of edges pointing into v.
// Complexity: O(1).
func (g *Digraph) InDegree(v int) (int, error) {
	if v < 0 || v >= g.v {
		return 0, fmt.Errorf("%w: %d with V=%d", ErrVertexOutOfRange, v, g.v)
	}

	return g.indegree[v], nil
}

// Edges returns every directed edge of the digraph exactly once, grouped
// by tail vertex in insertion order.
// Complexity: O(V + E).
func (g *Digraph) Edges() []DirectedEdge {
	out := make([]DirectedEdge, 0, g.e)
	for v := 0; v < g.v; v++ {
		out = append(out, g.adj[v]...)
	}

	return out
}

// String renders the digraph as a vertex count, edge count, and one
// adjacency line per vertex.
func (g *Digraph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d vertices, %d edges\n", g.v, g.e)
	for v := 0; v < g.v; v++ {
		fmt.Fprintf(&b, "%d:", v)
		for _, e := range g.adj[v] {
			fmt.Fprintf(&b, " %s", e)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
