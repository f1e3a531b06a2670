// This file implements the optional self-verification pass over a
// computed spanning forest. It is diagnostic machinery for tests, kept
// out of the production control flow of the three algorithms.
package mst

import (
	"fmt"
	"math"

	"github.com/davrell/ewgraph/core"
	"github.com/davrell/ewgraph/unionfind"
)

// weightEpsilon bounds the float drift tolerated when recomputing the
// forest weight from its edges.
const weightEpsilon = 1e-9

// Verify checks that forest is a minimum spanning forest of g with the
// reported total weight:
//
//  1. total equals the sum of the forest's edge weights (within epsilon);
//  2. the forest is acyclic;
//  3. it spans: every graph edge has both endpoints in one forest tree,
//     and the forest holds exactly V − components edges;
//  4. cut optimality: every forest edge is a minimum-weight edge across
//     the cut obtained by removing it from its tree.
//
// Any violated check yields an error wrapping ErrVerifyFailed.
func Verify(g *core.Graph, forest []core.Edge, total float64) error {
	if g == nil {
		return ErrNilGraph
	}

	// 1. Weight recomputation.
	var sum float64
	for _, e := range forest {
		sum += e.Weight()
	}
	if math.Abs(sum-total) > weightEpsilon {
		return fmt.Errorf("%w: edges sum to %.12f, reported %.12f", ErrVerifyFailed, sum, total)
	}

	// 2. Acyclicity: re-adding the forest edges must never join two
	// already-connected sites.
	uf, err := unionfind.New(g.V())
	if err != nil {
		return err
	}
	for _, e := range forest {
		v := e.Either()
		w, err := e.Other(v)
		if err != nil {
			return err
		}
		connected, err := uf.Connected(v, w)
		if err != nil {
			return err
		}
		if connected {
			return fmt.Errorf("%w: forest has a cycle through %v", ErrVerifyFailed, e)
		}
		if err = uf.Union(v, w); err != nil {
			return err
		}
	}

	// 3. Spanning coverage: no graph edge may cross between two forest trees,
	// and the edge count must match V − components exactly.
	for _, e := range g.Edges() {
		v := e.Either()
		w, err := e.Other(v)
		if err != nil {
			return err
		}
		connected, err := uf.Connected(v, w)
		if err != nil {
			return err
		}
		if !connected {
			return fmt.Errorf("%w: forest does not span edge %v", ErrVerifyFailed, e)
		}
	}
	if want := g.V() - uf.Count(); len(forest) != want {
		return fmt.Errorf("%w: forest has %d edges, want %d", ErrVerifyFailed, len(forest), want)
	}

	// 4. Cut optimality: removing any forest edge splits its tree in two;
	// the removed edge must be minimal among graph edges crossing that cut.
	for skip, removed := range forest {
		cut, err := unionfind.New(g.V())
		if err != nil {
			return err
		}
		for i, e := range forest {
			if i == skip {
				continue
			}
			v := e.Either()
			w, err := e.Other(v)
			if err != nil {
				return err
			}
			if err = cut.Union(v, w); err != nil {
				return err
			}
		}
		for _, e := range g.Edges() {
			v := e.Either()
			w, err := e.Other(v)
			if err != nil {
				return err
			}
			connected, err := cut.Connected(v, w)
			if err != nil {
				return err
			}
			if !connected && e.Weight() < removed.Weight() {
				return fmt.Errorf("%w: edge %v beats forest edge %v across its cut",
					ErrVerifyFailed, e, removed)
			}
		}
	}

	return nil
}
