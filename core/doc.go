// Package core defines the central Edge, DirectedEdge, Graph and Digraph
// types used by every algorithm package in ewgraph.
//
// What:
//
//   - Edge:         immutable undirected weighted pair {v, w}
//   - DirectedEdge: immutable directed weighted pair (from → to)
//   - Graph:        adjacency-list model of an undirected edge-weighted graph
//   - Digraph:      adjacency-list model of a directed edge-weighted graph
//
// Vertices are plain integers in [0, V); V is fixed at construction.
// String vertex names are an external concern (see graphio.SymbolDigraph).
// Weights are finite float64 values; NaN weights are rejected when the
// edge is created. Parallel edges and self-loops are permitted.
//
// Mutation is append-only: AddEdge is the only mutator, there is no edge
// or vertex removal. The intended lifecycle is "fully built, then
// read-only": callers must finish all AddEdge calls before handing the
// model to an algorithm, and no algorithm mutates the model it reads.
//
// Errors:
//
//	ErrNegativeVertices  sizing constructor given V < 0
//	ErrVertexOutOfRange  vertex index outside [0, V)
//	ErrNaNWeight         edge weight is NaN
//	ErrNotIncident       Edge.Other called with a non-endpoint vertex
//
// Complexity: AddEdge O(1) amortized; Adjacent O(deg(v)); Edges O(V + E);
// degree queries O(1).
package core
