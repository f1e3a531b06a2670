// Package mst computes minimum spanning forests of undirected
// edge-weighted graphs with three interchangeable algorithms.
//
// What:
//
//   - Kruskal:   sort edges ascending, accept each edge whose endpoints
//     lie in different union-find components. O(E log E).
//   - LazyPrim:  grow one tree per component from an arbitrary root,
//     holding every crossing edge in a plain min-heap and discarding
//     stale entries on pop. O(E log E).
//   - EagerPrim: same growth, but an indexed priority queue keyed by the
//     best known crossing-edge weight per outside vertex replaces the
//     edge heap; decrease-key replaces duplicate pushes. O(E log V).
//
// All three rest on the cut property: for any cut, the minimum-weight
// crossing edge belongs to some MST. On a disconnected graph each
// algorithm spans every component, producing exactly
// V − (number of components) edges. The three variants agree on total
// weight; when edges tie on weight inside the same cut they may keep
// different edges, so edge-set identity across variants is unspecified.
//
// Verify is a separate, disableable diagnostic pass (weight recomputation,
// acyclicity, spanning coverage, cut optimality) intended for test
// assertions, not production control flow.
//
// Errors:
//
//	ErrNilGraph       graph pointer is nil
//	ErrUnknownMethod  Compute given a method name it does not dispatch
//	ErrVerifyFailed   a Verify check did not hold
package mst
