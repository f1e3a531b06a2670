// This file implements the undirected edge-weighted Graph model.
package core

import (
	"fmt"
	"strings"
)

// Graph is an undirected edge-weighted graph over vertices 0..V-1,
// stored as per-vertex adjacency lists of Edge values.
//
// A self-loop appears twice in its vertex's adjacency list (once per
// edge end), so Degree counts it twice; Edges still enumerates it once.
// Graph is append-only and not safe for concurrent mutation; finish all
// AddEdge calls before sharing it with algorithm packages.
type Graph struct {
	v   int      // number of vertices, fixed at construction
	e   int      // number of edges added so far
	adj [][]Edge // adj[v] = edges incident to v
}

// NewGraph creates an empty undirected graph with v vertices and no edges.
// Returns ErrNegativeVertices when v < 0.
// Complexity: O(V).
func NewGraph(v int) (*Graph, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertices, v)
	}

	return &Graph{v: v, adj: make([][]Edge, v)}, nil
}

// V returns the number of vertices.
func (g *Graph) V() int { return g.v }

// E returns the number of edges.
func (g *Graph) E() int { return g.e }

// AddEdge appends the undirected edge {v, w} with the given weight to both
// endpoints' adjacency lists. Endpoints must lie in [0, V) and the weight
// must not be NaN; parallel edges and self-loops are allowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(v, w int, weight float64) error {
	e, err := NewEdge(v, w, weight)
	if err != nil {
		return err
	}
	if v >= g.v || w >= g.v {
		return fmt.Errorf("%w: {%d, %d} with V=%d", ErrVertexOutOfRange, v, w, g.v)
	}

	// A self-loop lands in adj[v] twice, matching its two edge ends.
	g.adj[v] = append(g.adj[v], e)
	g.adj[w] = append(g.adj[w], e)
	g.e++

	return nil
}

// Adjacent returns the edges incident to v, in insertion order.
// The returned slice is a copy; mutating it does not affect the graph.
// Complexity: O(deg(v)).
func (g *Graph) Adjacent(v int) ([]Edge, error) {
	if v < 0 || v >= g.v {
		return nil, fmt.Errorf("%w: %d with V=%d", ErrVertexOutOfRange, v, g.v)
	}

	out := make([]Edge, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// Degree returns the number of edge ends incident to v; a self-loop
// contributes two.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= g.v {
		return 0, fmt.Errorf("%w: %d with V=%d", ErrVertexOutOfRange, v, g.v)
	}

	return len(g.adj[v]), nil
}

// Edges returns every edge of the graph exactly once: an edge {v, w} with
// v != w is reported from its smaller endpoint, and each self-loop is
// reported once per loop even though it occupies two adjacency slots.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.e)
	for v := 0; v < g.v; v++ {
		selfLoops := 0
		for _, e := range g.adj[v] {
			w, _ := e.Other(v) // v is an endpoint by construction
			if w > v {
				out = append(out, e)
			} else if w == v {
				// Every loop occupies two slots in adj[v]; emit the first of each pair.
				if selfLoops%2 == 0 {
					out = append(out, e)
				}
				selfLoops++
			}
		}
	}

	return out
}

// String renders the graph as a vertex count, edge count, and one
// adjacency line per vertex.
func (g *Graph) String() string {
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
