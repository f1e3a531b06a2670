// Package dfs provides depth-first machinery on core.Digraph: directed
// cycle detection, the classic depth-first vertex orders, and topological
// sort.
//
// What:
//
//   - DetectCycle: certifies a digraph cyclic by returning the first
//     directed cycle found as a closed vertex sequence [v, ..., v], or
//     reports that none exists.
//   - Order: preorder, postorder and reverse postorder over every
//     component of the digraph.
//   - TopologicalSort: reverse DFS postorder of a DAG, in which every
//     edge u→v satisfies rank(u) < rank(v); cyclic digraphs are rejected
//     with ErrCycleDetected.
//
// Every traversal is iterative, driven by an explicit stack of
// (vertex, adjacency-cursor) frames, so recursion depth never limits the
// graph size. Vertices move unvisited → in-progress → done; reaching an
// in-progress vertex is the back-edge that certifies a cycle.
//
// Errors:
//
//	ErrNilDigraph     digraph pointer is nil
//	ErrCycleDetected  topological sort requested on a cyclic digraph
//
// Complexity: all of the above are O(V + E) time, O(V) memory.
package dfs
