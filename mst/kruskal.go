// This file implements Kruskal's minimum-spanning-forest algorithm.
package mst

import (
	"sort"

	"github.com/davrell/ewgraph/core"
	"github.com/davrell/ewgraph/unionfind"
)

// Kruskal computes a minimum spanning forest of g.
//
// Steps:
//  1. Collect every edge and sort ascending by weight (stable, so ties
//     keep the graph's enumeration order within this invocation).
//  2. Scan the sorted edges; accept an edge only when its endpoints lie
//     in different union-find components, then union them.
//  3. Stop once V−1 edges are accepted or edges run out; on a
//     disconnected graph the scan simply exhausts the edges, leaving one
//     tree per component.
//
// Self-loops can never join two components, so the union-find test
// discards them without special casing.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Kruskal(g *core.Graph) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Less(edges[j])
	})

	uf, err := unionfind.New(g.V())
	if err != nil {
		return nil, 0, err
	}

	forest := make([]core.Edge, 0, max(g.V()-1, 0))
	var total float64
	for _, e := range edges {
		v := e.Either()
		w, err := e.Other(v)
		if err != nil {
			return nil, 0, err
		}
		connected, err := uf.Connected(v, w)
		if err != nil {
			return nil, 0, err
		}
		if connected {
			continue // would close a cycle (covers self-loops too)
		}
		if err = uf.Union(v, w); err != nil {
			return nil, 0, err
		}
		forest = append(forest, e)
		total += e.Weight()
		if len(forest) == g.V()-1 {
			break
		}
	}

	return forest, total, nil
}
