// Package ewgraph is an in-memory toolkit for edge-weighted graphs and
// digraphs over a fixed integer vertex space 0..V-1.
//
// What it ships:
//
//   - core:      Edge / DirectedEdge values and the Graph / Digraph
//     adjacency models (append-only, parallel edges and self-loops allowed)
//   - unionfind: disjoint-set forest with path halving and union by rank
//   - indexpq:   generic indexed min-priority queue with decrease/increase-key
//   - dfs:       directed cycle detection, depth-first orders, topological sort
//   - mst:       minimum spanning forests via Kruskal, lazy Prim and eager Prim
//   - dijkstra:  single-source shortest paths on non-negative digraphs
//   - dagpath:   single-source shortest and longest paths on DAGs
//   - cpm:       critical-path-method scheduling of precedence-constrained jobs
//   - graphio:   whitespace graph file parsing and the string↔index name bridge
//
// Design contract shared by every algorithm package: build the graph first,
// then hand it read-only to an algorithm; each algorithm instance computes
// its full result eagerly in the constructing call and exposes only query
// accessors afterward. All failures surface synchronously as sentinel
// errors; nothing is retried or absorbed.
//
// The ewgraph command (cmd/ewgraph) wraps the library for file-based use.
package ewgraph
