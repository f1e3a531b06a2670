package graphio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davrell/ewgraph/core"
	"github.com/davrell/ewgraph/dijkstra"
	"github.com/davrell/ewgraph/graphio"
	"github.com/davrell/ewgraph/mst"
)

// tinyEWG is the standard 8-vertex, 16-edge sample in the whitespace format.
const tinyEWG = `8
16
4 5 0.35
4 7 0.37
5 7 0.28
0 7 0.16
1 5 0.32
0 4 0.38
2 3 0.17
1 7 0.19
0 2 0.26
1 2 0.36
1 3 0.29
2 7 0.34
6 2 0.40
3 6 0.52
6 0 0.58
6 4 0.93
`

// tinyEWD reuses the same edge list with directions, as in the standard sample.
const tinyEWD = `8
15
4 5 0.35
5 4 0.35
4 7 0.37
5 7 0.28
7 5 0.28
5 1 0.32
0 4 0.38
0 2 0.26
7 3 0.39
1 3 0.29
2 7 0.34
6 2 0.40
3 6 0.52
6 0 0.58
6 4 0.93
`

// routes is the airport connectivity sample for the symbol bridge.
const routes = `JFK MCO
ORD DEN
ORD HOU
DFW PHX
JFK ATL
ORD DFW
ORD PHX
ATL HOU
DEN PHX
PHX LAX
JFK ORD
DEN LAS
DFW HOU
ORD ATL
LAS LAX
ATL MCO
HOU MCO
LAS PHX
`

// TestReadGraph_TinyEWG parses the sample and cross-checks it by running
// the spanning tree over the parsed graph.
func TestReadGraph_TinyEWG(t *testing.T) {
	g, err := graphio.ReadGraph(strings.NewReader(tinyEWG))
	require.NoError(t, err)
	assert.Equal(t, 8, g.V())
	assert.Equal(t, 16, g.E())

	forest, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, forest, 7)
	assert.InDelta(t, 1.81, total, 1e-9)
}

// TestReadDigraph_TinyEWD parses the directed sample and cross-checks via
// shortest paths from vertex 0.
func TestReadDigraph_TinyEWD(t *testing.T) {
	g, err := graphio.ReadDigraph(strings.NewReader(tinyEWD))
	require.NoError(t, err)
	assert.Equal(t, 8, g.V())
	assert.Equal(t, 15, g.E())

	tree, err := dijkstra.New(g, 0)
	require.NoError(t, err)
	d, err := tree.DistTo(2)
	require.NoError(t, err)
	assert.InDelta(t, 0.26, d, 1e-9)
}

// TestReadGraph_Failures covers the malformed-input taxonomy.
func TestReadGraph_Failures(t *testing.T) {
	cases := map[string]struct {
		in   string
		want error
	}{
		"empty input":          {"", graphio.ErrTruncated},
		"missing edge count":   {"8", graphio.ErrTruncated},
		"missing edges":        {"3 2\n0 1 0.5\n", graphio.ErrTruncated},
		"partial edge":         {"3 1\n0 1\n", graphio.ErrTruncated},
		"non-numeric vertex":   {"x 1\n", graphio.ErrBadFormat},
		"non-numeric weight":   {"2 1\n0 1 heavy\n", graphio.ErrBadFormat},
		"negative vertex cnt":  {"-1 0\n", graphio.ErrNegativeCount},
		"negative edge cnt":    {"2 -3\n", graphio.ErrNegativeCount},
		"endpoint out of rng":  {"2 1\n0 5 0.5\n", core.ErrVertexOutOfRange},
		"float vertex count":   {"2.5 1\n0 1 0.5\n", graphio.ErrBadFormat},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := graphio.ReadGraph(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)

			_, err = graphio.ReadDigraph(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestSymbolDigraph_Routes verifies the name bridge over the airport sample.
func TestSymbolDigraph_Routes(t *testing.T) {
	sd, err := graphio.NewSymbolDigraph(strings.NewReader(routes), " ")
	require.NoError(t, err)

	g := sd.Digraph()
	require.NotNil(t, g)
	assert.Equal(t, 10, g.V())
	assert.Equal(t, 18, g.E())

	// Round trip every known name through the bridge.
	for _, name := range []string{"JFK", "MCO", "ORD", "DEN", "HOU", "DFW", "PHX", "ATL", "LAX", "LAS"} {
		require.True(t, sd.Contains(name), name)
		i, err := sd.Index(name)
		require.NoError(t, err)
		back, err := sd.Name(i)
		require.NoError(t, err)
		assert.Equal(t, name, back)
	}

	// First appearance order: JFK is line one's tail.
	jfk, err := sd.Index("JFK")
	require.NoError(t, err)
	assert.Zero(t, jfk)

	// JFK's heads are MCO, ATL, ORD.
	heads := make([]string, 0, 3)
	adj, err := g.Adjacent(jfk)
	require.NoError(t, err)
	for _, e := range adj {
		name, err := sd.Name(e.To())
		require.NoError(t, err)
		heads = append(heads, name)
	}
	assert.ElementsMatch(t, []string{"MCO", "ATL", "ORD"}, heads)

	assert.False(t, sd.Contains("SFO"))
	_, err = sd.Index("SFO")
	assert.ErrorIs(t, err, graphio.ErrUnknownName)
	_, err = sd.Name(99)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

// TestSymbolDigraph_Validation covers delimiter and blank-line handling.
func TestSymbolDigraph_Validation(t *testing.T) {
	_, err := graphio.NewSymbolDigraph(strings.NewReader("a b"), "")
	assert.ErrorIs(t, err, graphio.ErrEmptyDelimiter)

	// Blank lines are skipped; a lone name yields an isolated vertex.
	sd, err := graphio.NewSymbolDigraph(strings.NewReader("a/b\n\nc\n"), "/")
	require.NoError(t, err)
	assert.Equal(t, 3, sd.Digraph().V())
	assert.Equal(t, 1, sd.Digraph().E())
}
