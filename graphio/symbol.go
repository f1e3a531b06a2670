package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/davrell/ewgraph/core"
)

// Sentinel errors for the symbol bridge.
var (
	// ErrUnknownName indicates a vertex name absent from the input.
	ErrUnknownName = errors.New("graphio: unknown vertex name")

	// ErrEmptyDelimiter indicates an empty delimiter string.
	ErrEmptyDelimiter = errors.New("graphio: delimiter must be non-empty")
)

// SymbolDigraph bridges between string vertex names and the dense integer
// indices of the underlying digraph. Names map to indices in order of
// first appearance in the input.
type SymbolDigraph struct {
	index map[string]int // name -> vertex index
	names []string       // vertex index -> name
	g     *core.Digraph
}

// NewSymbolDigraph parses a delimited symbol digraph: each input line
// holds a tail name followed by its head names, separated by delim. Every
// edge carries weight 1; weighted queries over a symbol digraph therefore
// count hops.
//
// The input is scanned twice in spirit but once in practice: names are
// interned while lines are buffered, then edges are added once the vertex
// count is known.
//
// Complexity: O(L + E) for L input characters and E edges.
func NewSymbolDigraph(r io.Reader, delim string) (*SymbolDigraph, error) {
	if delim == "" {
		return nil, ErrEmptyDelimiter
	}

	sd := &SymbolDigraph{index: make(map[string]int)}

	// Pass 1: intern every name and keep the split lines for pass 2.
	var lines [][]string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, delim)
		for _, name := range fields {
			sd.intern(name)
		}
		lines = append(lines, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read symbol digraph: %w", err)
	}

	g, err := core.NewDigraph(len(sd.names))
	if err != nil {
		return nil, err
	}
	sd.g = g

	// Pass 2: one edge from each line's tail to each of its heads.
	for _, fields := range lines {
		tail := sd.index[fields[0]]
		for _, name := range fields[1:] {
			if err = g.AddEdge(tail, sd.index[name], 1); err != nil {
				return nil, err
			}
		}
	}

	return sd, nil
}

// intern maps name to its dense index, assigning the next one on first sight.
func (sd *SymbolDigraph) intern(name string) int {
	if i, ok := sd.index[name]; ok {
		return i
	}
	i := len(sd.names)
	sd.index[name] = i
	sd.names = append(sd.names, name)

	return i
}

// Contains reports whether name appeared anywhere in the input.
func (sd *SymbolDigraph) Contains(name string) bool {
	_, ok := sd.index[name]

	return ok
}

// Index returns the vertex index of name.
func (sd *SymbolDigraph) Index(name string) (int, error) {
	i, ok := sd.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}

	return i, nil
}

// Name returns the name of vertex v.
func (sd *SymbolDigraph) Name(v int) (string, error) {
	if v < 0 || v >= len(sd.names) {
		return "", fmt.Errorf("%w: vertex %d with V=%d", core.ErrVertexOutOfRange, v, len(sd.names))
	}

	return sd.names[v], nil
}

// Digraph returns the underlying index-addressed digraph.
func (sd *SymbolDigraph) Digraph() *core.Digraph { return sd.g }
