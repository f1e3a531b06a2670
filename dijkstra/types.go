// This file declares sentinel errors and the shortest-path Tree result.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/davrell/ewgraph/core"
)

// Sentinel errors for Dijkstra construction and queries.
var (
	// ErrNilDigraph indicates a nil *core.Digraph was passed to New.
	ErrNilDigraph = errors.New("dijkstra: digraph is nil")

	// ErrVertexOutOfRange indicates a source or query vertex outside [0, V).
	ErrVertexOutOfRange = errors.New("dijkstra: vertex out of range")

	// ErrNegativeWeight indicates the digraph holds a negative edge weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight")

	// ErrNoPath indicates PathTo was asked for an unreachable destination.
	ErrNoPath = errors.New("dijkstra: no path to vertex")
)

// Tree is a shortest-path tree rooted at a source vertex. It is complete
// when New returns; afterwards it serves queries only.
type Tree struct {
	source int
	distTo []float64           // distTo[v] = weight of the shortest source→v path, +Inf if unreachable
	edgeTo []core.DirectedEdge // edgeTo[v] = last edge on that path
	seen   []bool              // seen[v] = edgeTo[v] is meaningful
}

// Source returns the root vertex of the tree.
func (t *Tree) Source() int { return t.source }

// DistTo returns the weight of the shortest path from the source to v,
// or +Inf when v is unreachable.
func (t *Tree) DistTo(v int) (float64, error) {
	if v < 0 || v >= len(t.distTo) {
		return 0, fmt.Errorf("%w: %d with V=%d", ErrVertexOutOfRange, v, len(t.distTo))
	}

	return t.distTo[v], nil
}

// HasPathTo reports whether v is reachable from the source.
func (t *Tree) HasPathTo(v int) (bool, error) {
	if v < 0 || v >= len(t.distTo) {
		return false, fmt.Errorf("%w: %d with V=%d", ErrVertexOutOfRange, v, len(t.distTo))
	}

	return !math.IsInf(t.distTo[v], 1), nil
}

// PathTo returns the shortest path from the source to v as a forward
// edge sequence. The source itself yields an empty, non-nil path; an
// unreachable v yields ErrNoPath, distinguishing "zero-length path" from
// "no path at all".
func (t *Tree) PathTo(v int) ([]core.DirectedEdge, error) {
	reachable, err := t.HasPathTo(v)
	if err != nil {
		return nil, err
	}
	if !reachable {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, v)
	}

	// Walk edgeTo backward, then reverse into forward order.
	var rev []core.DirectedEdge
	for x := v; t.seen[x]; x = t.edgeTo[x].From() {
		rev = append(rev, t.edgeTo[x])
	}
	path := make([]core.DirectedEdge, len(rev))
	for i, e := range rev {
		path[len(rev)-1-i] = e
	}

	return path, nil
}
