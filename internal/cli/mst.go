package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davrell/ewgraph/graphio"
	"github.com/davrell/ewgraph/mst"
)

// mstOpts holds the command-line flags for the mst command.
type mstOpts struct {
	method string // spanning tree algorithm to run
	verify bool   // cross-check the result before printing
}

// newMSTCmd creates the mst command. It reads an undirected edge-weighted
// graph in the whitespace format and prints the minimum spanning forest,
// one edge per line, followed by the total weight.
func newMSTCmd() *cobra.Command {
	opts := mstOpts{method: mst.MethodKruskal}

	cmd := &cobra.Command{
		Use:   "mst <graph-file>",
		Short: "Compute a minimum spanning forest of an undirected graph",
		Long: `Compute a minimum spanning forest of an edge-weighted undirected graph.

The input file lists the vertex count, the edge count, then one
"v w weight" triple per edge. Use "-" to read from stdin.

Examples:
  ewgraph mst tinyEWG.txt
  ewgraph mst --method eager-prim tinyEWG.txt
  ewgraph mst --verify tinyEWG.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMST(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.method, "method", "m", opts.method,
		fmt.Sprintf("algorithm: %s, %s or %s", mst.MethodKruskal, mst.MethodLazyPrim, mst.MethodEagerPrim))
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "cross-check the forest before printing")

	return cmd
}

func runMST(cmd *cobra.Command, path string, opts mstOpts) error {
	logger := loggerFromContext(cmd.Context())

	in, err := openInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	g, err := graphio.ReadGraph(in)
	if err != nil {
		return err
	}
	logger.Debugf("parsed graph: V=%d E=%d", g.V(), g.E())

	p := newProgress(logger)
	forest, total, err := mst.Compute(g, mst.WithMethod(opts.method))
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("computed %d-edge spanning forest via %s", len(forest), opts.method))

	if opts.verify {
		if err = mst.Verify(g, forest, total); err != nil {
			return err
		}
		logger.Debug("forest verified")
	}

	out := cmd.OutOrStdout()
	for _, e := range forest {
		fmt.Fprintln(out, e)
	}
	fmt.Fprintf(out, "%.5f\n", total)

	return nil
}
