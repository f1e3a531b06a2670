package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davrell/ewgraph/dfs"
	"github.com/davrell/ewgraph/graphio"
)

// topoOpts holds the command-line flags for the topo command.
type topoOpts struct {
	delim string // non-empty selects the delimited symbol format
}

// newTopoCmd creates the topo command. It reads a directed graph and
// prints one vertex per line in topological order, failing with the
// offending cycle when the digraph is cyclic.
func newTopoCmd() *cobra.Command {
	var opts topoOpts

	cmd := &cobra.Command{
		Use:   "topo <graph-file>",
		Short: "Print a topological order of a directed acyclic graph",
		Long: `Print the vertices of a directed acyclic graph in topological order.

By default the input uses the whitespace format (V, E, then weighted
edge triples). With --delim the input is read as a delimited symbol
digraph instead: each line names a vertex followed by its successors,
and the output shows names rather than indices.

Examples:
  ewgraph topo tinyEWDAG.txt
  ewgraph topo --delim "/" jobs.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTopo(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.delim, "delim", "d", "", "read a symbol digraph split on this delimiter")

	return cmd
}

func runTopo(cmd *cobra.Command, path string, opts topoOpts) error {
	logger := loggerFromContext(cmd.Context())

	in, err := openInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out := cmd.OutOrStdout()

	if opts.delim != "" {
		sd, err := graphio.NewSymbolDigraph(in, opts.delim)
		if err != nil {
			return err
		}
		logger.Debugf("parsed symbol digraph: V=%d E=%d", sd.Digraph().V(), sd.Digraph().E())

		order, err := dfs.TopologicalSort(sd.Digraph())
		if err != nil {
			return err
		}
		for _, v := range order {
			name, err := sd.Name(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, name)
		}

		return nil
	}

	g, err := graphio.ReadDigraph(in)
	if err != nil {
		return err
	}
	logger.Debugf("parsed digraph: V=%d E=%d", g.V(), g.E())

	order, err := dfs.TopologicalSort(g)
	if err != nil {
		return err
	}
	for _, v := range order {
		fmt.Fprintln(out, v)
	}

	return nil
}
