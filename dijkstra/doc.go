// Package dijkstra implements eager Dijkstra single-source shortest paths
// on edge-weighted digraphs with non-negative weights.
//
// Dijkstra maintains dist[v] (initialized +Inf, source 0) and an indexed
// priority queue keyed by dist. It repeatedly extracts the unsettled
// vertex of minimum distance and relaxes its outgoing edges: improving
// dist[w] through edge v→w records the edge and performs a decrease-key
// (or first insert) for w. Because keys are mutated in place, the queue
// never holds stale duplicates — the eager counterpart of the
// push-duplicates-and-skip lazy scheme.
//
// The whole computation runs inside New; the returned Tree only answers
// queries. Negative edge weights violate Dijkstra's invariant that an
// extracted distance is final, so construction pre-scans all edges and
// rejects the digraph before any relaxation.
//
// Errors:
//
//	ErrNilDigraph        digraph pointer is nil
//	ErrVertexOutOfRange  source or query vertex outside [0, V)
//	ErrNegativeWeight    some edge weight is negative
//	ErrNoPath            PathTo on an unreachable destination
//
// Complexity: O(E log V) time, O(V) memory beyond the input.
package dijkstra
