// This file declares sentinel errors, vertex visitation states, and the
// explicit stack frame shared by the iterative traversals.
package dfs

import (
	"errors"

	"github.com/davrell/ewgraph/core"
)

// Vertex visitation states driven by the depth-first traversals.
const (
	unvisited  = iota // not yet reached
	inProgress        // on the active path; reaching it again is a back-edge
	done              // vertex and all descendants fully explored
)

var (
	// ErrNilDigraph is returned when a nil *core.Digraph is passed to
	// DetectCycle, Order, or TopologicalSort.
	ErrNilDigraph = errors.New("dfs: digraph is nil")

	// ErrCycleDetected indicates TopologicalSort was asked to order a
	// cyclic digraph.
	ErrCycleDetected = errors.New("dfs: digraph has a directed cycle")
)

// frame is one level of the explicit DFS stack: a vertex plus a cursor
// into its adjacency slice.
type frame struct {
	v    int                 // vertex this frame explores
	adj  []core.DirectedEdge // outgoing edges of v, fetched once on push
	next int                 // cursor of the next edge to examine
}

// DFSOrder captures the depth-first vertex orders of a digraph.
// ReversePost is the topological order when the digraph is acyclic.
type DFSOrder struct {
	// Pre records vertices in the order they were first discovered.
	Pre []int

	// Post records vertices in the order their exploration finished.
	Post []int

	// ReversePost is Post reversed.
	ReversePost []int
}
