package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davrell/ewgraph/core"
	"github.com/davrell/ewgraph/dagpath"
	"github.com/davrell/ewgraph/dijkstra"
	"github.com/davrell/ewgraph/graphio"
)

// spOpts holds the command-line flags for the sp command.
type spOpts struct {
	acyclic bool // relax in topological order instead of running Dijkstra
	longest bool // maximize path weight (implies acyclic)
}

// pathTree is the query surface shared by the Dijkstra and DAG trees.
type pathTree interface {
	DistTo(v int) (float64, error)
	HasPathTo(v int) (bool, error)
	PathTo(v int) ([]core.DirectedEdge, error)
}

// newSPCmd creates the sp command. It reads a directed edge-weighted
// graph in the whitespace format and prints the best path from the
// source to every vertex.
func newSPCmd() *cobra.Command {
	var opts spOpts

	cmd := &cobra.Command{
		Use:   "sp <graph-file> <source>",
		Short: "Compute shortest (or DAG longest) paths from a source vertex",
		Long: `Compute single-source paths over an edge-weighted digraph.

By default Dijkstra's algorithm is used, which requires non-negative
edge weights. With --acyclic the digraph must be a DAG and edges are
relaxed in topological order, allowing negative weights; --longest
maximizes path weight instead and implies --acyclic.

Examples:
  ewgraph sp tinyEWD.txt 0
  ewgraph sp --acyclic tinyEWDAG.txt 5
  ewgraph sp --longest tinyEWDAG.txt 5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source int
			if _, err := fmt.Sscanf(args[1], "%d", &source); err != nil {
				return fmt.Errorf("cli: source %q is not a vertex index", args[1])
			}

			return runSP(cmd, args[0], source, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.acyclic, "acyclic", false, "relax in topological order (digraph must be a DAG)")
	cmd.Flags().BoolVar(&opts.longest, "longest", false, "maximize path weight (implies --acyclic)")

	return cmd
}

func runSP(cmd *cobra.Command, path string, source int, opts spOpts) error {
	logger := loggerFromContext(cmd.Context())

	in, err := openInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	g, err := graphio.ReadDigraph(in)
	if err != nil {
		return err
	}
	logger.Debugf("parsed digraph: V=%d E=%d", g.V(), g.E())

	p := newProgress(logger)
	var tree pathTree
	switch {
	case opts.longest:
		tree, err = dagpath.Longest(g, source)
	case opts.acyclic:
		tree, err = dagpath.Shortest(g, source)
	default:
		tree, err = dijkstra.New(g, source)
	}
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("computed paths from vertex %d", source))

	out := cmd.OutOrStdout()
	for v := 0; v < g.V(); v++ {
		reachable, err := tree.HasPathTo(v)
		if err != nil {
			return err
		}
		if !reachable {
			fmt.Fprintf(out, "%d to %d: no path\n", source, v)
			continue
		}
		dist, err := tree.DistTo(v)
		if err != nil {
			return err
		}
		edges, err := tree.PathTo(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d to %d (%.2f)%s\n", source, v, dist, formatPath(edges))
	}

	return nil
}

// formatPath renders a path's edges as "  a->b w" segments.
func formatPath(edges []core.DirectedEdge) string {
	var b strings.Builder
	for _, e := range edges {
		fmt.Fprintf(&b, "  %d->%d %.2f", e.From(), e.To(), e.Weight())
	}

	return b.String()
}
