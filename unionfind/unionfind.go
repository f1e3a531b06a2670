package unionfind

import (
	"errors"
	"fmt"
)

// Sentinel errors for disjoint-set operations.
var (
	// ErrNegativeSites indicates New was given a negative site count.
	ErrNegativeSites = errors.New("unionfind: number of sites must be non-negative")

	// ErrSiteOutOfRange indicates a site index outside [0, N).
	ErrSiteOutOfRange = errors.New("unionfind: site index out of range")
)

// UnionFind tracks connectivity classes over sites 0..N-1.
// The zero value is unusable; construct with New.
type UnionFind struct {
	parent []int // parent[p] = parent of p; roots point to themselves
	rank   []int // rank[p] = upper bound on the height of the subtree at p
	count  int   // number of components
}

// New creates a disjoint-set forest of n isolated sites.
// Returns ErrNegativeSites when n < 0.
func New(n int) (*UnionFind, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSites, n)
	}

	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for p := range uf.parent {
		uf.parent[p] = p
	}

	return uf, nil
}

// Find returns the canonical root of the component containing p,
// halving the path along the way: every visited site is redirected to
// its grandparent, so later lookups walk shorter chains.
func (uf *UnionFind) Find(p int) (int, error) {
	if p < 0 || p >= len(uf.parent) {
		return 0, fmt.Errorf("%w: %d with N=%d", ErrSiteOutOfRange, p, len(uf.parent))
	}

	for uf.parent[p] != p {
		uf.parent[p] = uf.parent[uf.parent[p]] // path halving
		p = uf.parent[p]
	}

	return p, nil
}

// Union merges the components containing p and q. The lower-rank root is
// attached under the higher-rank root; on equal rank the surviving root's
// rank grows by one. A no-op when p and q are already connected.
func (uf *UnionFind) Union(p, q int) error {
	rootP, err := uf.Find(p)
	if err != nil {
		return err
	}
	rootQ, err := uf.Find(q)
	if err != nil {
		return err
	}
	if rootP == rootQ {
		return nil
	}

	switch {
	case uf.rank[rootP] < uf.rank[rootQ]:
		uf.parent[rootP] = rootQ
	case uf.rank[rootP] > uf.rank[rootQ]:
		uf.parent[rootQ] = rootP
	default:
		uf.parent[rootQ] = rootP
		uf.rank[rootP]++
	}
	uf.count--

	return nil
}

// Connected reports whether p and q share a component.
func (uf *UnionFind) Connected(p, q int) (bool, error) {
	rootP, err := uf.Find(p)
	if err != nil {
		return false, err
	}
	rootQ, err := uf.Find(q)
	if err != nil {
		return false, err
	}

	return rootP == rootQ, nil
}

// Count returns the current number of components.
func (uf *UnionFind) Count() int { return uf.count }
