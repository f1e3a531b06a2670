// This file declares sentinel errors and the path-tree result type.
package dagpath

import (
	"errors"
	"fmt"
	"math"

	"github.com/davrell/ewgraph/core"
)

// Sentinel errors for DAG path construction and queries.
var (
	// ErrNilDigraph indicates a nil *core.Digraph was passed in.
	ErrNilDigraph = errors.New("dagpath: digraph is nil")

	// ErrVertexOutOfRange indicates a source or query vertex outside [0, V).
	ErrVertexOutOfRange = errors.New("dagpath: vertex out of range")

	// ErrNoPath indicates PathTo was asked for an unreachable destination.
	ErrNoPath = errors.New("dagpath: no path to vertex")
)

// Tree is a shortest- or longest-path tree rooted at a source vertex of a
// DAG. It is complete when Shortest or Longest returns; afterwards it
// serves queries only.
type Tree struct {
	source  int
	longest bool                // true when distances maximize; flips the unreachable sentinel
	distTo  []float64           // distTo[v] = best path weight, ±Inf if unreachable
	edgeTo  []core.DirectedEdge // edgeTo[v] = last edge on that path
	seen    []bool              // seen[v] = edgeTo[v] is meaningful
}

// Source returns the root vertex of the tree.
func (t *Tree) Source() int { return t.source }

/// DistTo returns the weight of the best path from the source to v:
// +Inf (shortest) or −Inf (longest) when v is unreachable.
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
	sign := 1 // shortest: unreachable stays at +Inf
	if t.longest {
		sign = -1
	}

	return !math.IsInf(t.distTo[v], sign), nil
}

// PathTo returns the best path from the source to v as a forward edge
// sequence. The source itself yields an empty, non-nil path; an
// unreachable v yields ErrNoPath.
func (t *Tree) PathTo(v int) ([]core.DirectedEdge, error) {
	reachable, err := t.HasPathTo(v)
	if err != nil {
		return nil, err
	}
	if !reachable {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, v)
	}

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
