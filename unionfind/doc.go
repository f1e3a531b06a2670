// Package unionfind implements a disjoint-set forest (union-find) over a
// fixed universe of sites 0..N-1.
//
// Find walks parent pointers with path halving (each visited site is
// redirected to its grandparent); Union links by rank. Over any sequence
// of operations the amortized cost per operation is near-constant.
//
// Invariants:
//
//   - parent describes a forest: Find terminates for every site and the
//     reachable root is the canonical id of its component
//   - rank[root] never decreases as trees merge, and after path halving it
//     is only an upper bound on subtree height
//   - Count decreases by exactly one per merging Union and never below 1
//     (for N ≥ 1)
//
// Errors:
//
//	ErrNegativeSites   constructor given N < 0
//	ErrSiteOutOfRange  site index outside [0, N)
//
// Complexity: New O(N); Find/Union/Connected amortized ~O(α(N)); Count O(1).
package unionfind
