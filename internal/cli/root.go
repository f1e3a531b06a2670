package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// The main package calls this with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the ewgraph CLI and returns an error if any command fails.
//
// The root command registers all subcommands (mst, sp, topo, cpm),
// configures logging based on the --verbose flag and attaches the
// logger to the command context.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "ewgraph",
		Short:        "ewgraph runs weighted-graph algorithms over textual graph files",
		Long:         `ewgraph computes minimum spanning forests, shortest and longest paths, topological orders and critical-path schedules from edge-weighted graphs given as text files.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("ewgraph %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newMSTCmd())
	root.AddCommand(newSPCmd())
	root.AddCommand(newTopoCmd())
	root.AddCommand(newCPMCmd())

	return root.ExecuteContext(ctx)
}
