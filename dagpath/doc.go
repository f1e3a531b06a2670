// Package dagpath computes single-source shortest and longest paths on
// edge-weighted directed acyclic graphs by relaxation in topological order.
//
// The digraph's acyclicity is delegated to dfs.TopologicalSort; a cyclic
// input aborts construction with dfs.ErrCycleDetected. Visiting vertices
// in topological order guarantees a vertex's distance is final before its
// outgoing edges are relaxed, so no priority queue is needed and negative
// weights are fine — which is also what makes the longest-path variant
// tractable here while it is NP-hard on general digraphs.
//
// Shortest initializes distances to +Inf (source 0) and relaxes with <;
// Longest initializes to −Inf and relaxes with >. Both run entirely
// inside the constructing call and return a query-only Tree.
//
// Errors:
//
//	ErrNilDigraph        digraph pointer is nil
//	ErrVertexOutOfRange  source or query vertex outside [0, V)
//	ErrNoPath            PathTo on an unreachable destination
//	dfs.ErrCycleDetected the digraph is not a DAG
//
// Complexity: O(V + E) time, O(V) memory beyond the input.
package dagpath
