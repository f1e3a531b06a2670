package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/davrell/ewgraph/core"
)

// Sentinel errors for textual graph parsing.
var (
	// ErrBadFormat indicates a token that is not the number the format
	// expects at that position.
	ErrBadFormat = errors.New("graphio: malformed graph input")

	// ErrTruncated indicates input that ends before the declared edge
	// count is satisfied.
	ErrTruncated = errors.New("graphio: truncated graph input")

	// ErrNegativeCount indicates a negative vertex or edge count header.
	ErrNegativeCount = errors.New("graphio: negative vertex or edge count")
)

// ReadGraph parses an undirected edge-weighted graph in the whitespace
// format: V, E, then E triples "v w weight".
//
// Complexity: O(V + E) time and allocation.
func ReadGraph(r io.Reader) (*core.Graph, error) {
	sc := newScanner(r)

	v, e, err := sc.header()
	if err != nil {
		return nil, err
	}
	g, err := core.NewGraph(v)
	if err != nil {
		return nil, err
	}
	for i := 0; i < e; i++ {
		a, b, weight, err := sc.edge()
		if err != nil {
			return nil, err
		}
		if err = g.AddEdge(a, b, weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// ReadDigraph parses a directed edge-weighted graph in the whitespace
// format: V, E, then E triples "from to weight".
//
// Complexity: O(V + E) time and allocation.
func ReadDigraph(r io.Reader) (*core.Digraph, error) {
	sc := newScanner(r)

	v, e, err := sc.header()
	if err != nil {
		return nil, err
	}
	g, err := core.NewDigraph(v)
	if err != nil {
		return nil, err
	}
	for i := 0; i < e; i++ {
		from, to, weight, err := sc.edge()
		if err != nil {
			return nil, err
		}
		if err = g.AddEdge(from, to, weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// scanner pulls whitespace-separated tokens off the input one at a time.
type scanner struct {
	sc *bufio.Scanner
}

func newScanner(r io.Reader) *scanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &scanner{sc: sc}
}

// header reads the leading V and E counts.
func (s *scanner) header() (v, e int, err error) {
	if v, err = s.integer("vertex count"); err != nil {
		return 0, 0, err
	}
	if e, err = s.integer("edge count"); err != nil {
		return 0, 0, err
	}
	if v < 0 || e < 0 {
		return 0, 0, fmt.Errorf("%w: V=%d E=%d", ErrNegativeCount, v, e)
	}

	return v, e, nil
}

// edge reads one "endpoint endpoint weight" triple.
func (s *scanner) edge() (a, b int, weight float64, err error) {
	if a, err = s.integer("edge endpoint"); err != nil {
		return 0, 0, 0, err
	}
	if b, err = s.integer("edge endpoint"); err != nil {
		return 0, 0, 0, err
	}
	if weight, err = s.float("edge weight"); err != nil {
		return 0, 0, 0, err
	}

	return a, b, weight, nil
}

func (s *scanner) integer(what string) (int, error) {
	tok, err := s.token(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrBadFormat, what, tok)
	}

	return n, nil
}

func (s *scanner) float(what string) (float64, error) {
	tok, err := s.token(what)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrBadFormat, what, tok)
	}

	return f, nil
}

func (s *scanner) token(what string) (string, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", fmt.Errorf("graphio: read %s: %w", what, err)
		}

		return "", fmt.Errorf("%w: missing %s", ErrTruncated, what)
	}

	return s.sc.Text(), nil
}
