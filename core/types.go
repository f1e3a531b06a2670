// This file declares the sentinel errors and the immutable Edge and
// DirectedEdge value types shared by Graph and Digraph.
package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertices indicates a sizing constructor was given V < 0.
	ErrNegativeVertices = errors.New("core: number of vertices must be non-negative")

	// ErrVertexOutOfRange indicates a vertex index outside [0, V).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNaNWeight indicates an edge was created with a NaN weight.
	ErrNaNWeight = errors.New("core: edge weight is NaN")

	// ErrNotIncident indicates Edge.Other was called with a vertex that is
	// not an endpoint of the edge.
	ErrNotIncident = errors.New("core: vertex is not an endpoint of this edge")
)

// Edge is an immutable undirected weighted edge {v, w}.
// The zero value is the degenerate edge {0, 0} with weight 0.
type Edge struct {
	v, w   int
	weight float64
}

// NewEdge returns the undirected edge {v, w} with the given weight.
// Both endpoints must be non-negative and the weight must not be NaN.
func NewEdge(v, w int, weight float64) (Edge, error) {
	if v < 0 || w < 0 {
		return Edge{}, fmt.Errorf("%w: {%d, %d}", ErrVertexOutOfRange, v, w)
	}
	if math.IsNaN(weight) {
		return Edge{}, fmt.Errorf("%w: {%d, %d}", ErrNaNWeight, v, w)
	}

	return Edge{v: v, w: w, weight: weight}, nil
}

// Either returns one endpoint of the edge.
func (e Edge) Either() int { return e.v }

// Other returns the endpoint of the edge that is not vertex.
// For a self-loop both endpoints coincide and Other returns vertex itself.
func (e Edge) Other(vertex int) (int, error) {
	switch vertex {
	case e.v:
		return e.w, nil
	case e.w:
		return e.v, nil
	default:
		return 0, fmt.Errorf("%w: vertex %d on edge %v", ErrNotIncident, vertex, e)
	}
}

// Weight returns the weight of the edge.
func (e Edge) Weight() float64 { return e.weight }

// Less reports whether e orders before other by ascending weight.
// Ties between equal weights are broken arbitrarily by the caller's sort.
func (e Edge) Less(other Edge) bool { return e.weight < other.weight }

// String renders the edge as "v-w weight" with five weight decimals.
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d %.5f", e.v, e.w, e.weight)
}

// DirectedEdge is an immutable directed weighted edge (from → to).
type DirectedEdge struct {
	from, to int
	weight   float64
}

// NewDirectedEdge returns the directed edge from → to with the given weight.
// Both endpoints must be non-negative and the weight must not be NaN.
func NewDirectedEdge(from, to int, weight float64) (DirectedEdge, error) {
	if from < 0 || to < 0 {
		return DirectedEdge{}, fmt.Errorf("%w: (%d → %d)", ErrVertexOutOfRange, from, to)
	}
	if math.IsNaN(weight) {
		return DirectedEdge{}, fmt.Errorf("%w: (%d → %d)", ErrNaNWeight, from, to)
	}

	return DirectedEdge{from: from, to: to, weight: weight}, nil
}

// From returns the tail vertex of the edge.
func (e DirectedEdge) From() int { return e.from }

// To returns the head vertex of the edge.
func (e DirectedEdge) To() int { return e.to }

// Weight returns the weight of the edge.
func (e DirectedEdge) Weight() float64 { return e.weight }

// String renders the edge as "from->to weight" with five weight decimals.
func (e DirectedEdge) String() string {
	return fmt.Sprintf("%d->%d %.5f", e.from, e.to, e.weight)
}
