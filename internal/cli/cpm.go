package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/davrell/ewgraph/cpm"
)

// newCPMCmd creates the cpm command. It reads a TOML job file and prints
// the earliest-start schedule as a table, followed by the completion time.
func newCPMCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cpm <job-file>",
		Short: "Schedule precedence-constrained jobs via the critical path method",
		Long: `Schedule parallel precedence-constrained jobs on unlimited processors.

The input is a TOML file with one [[job]] table per job:

  [[job]]
  name = "framing"
  duration = 51.0
  successors = [2]

Each job starts as early as its precedence constraints allow; the
output lists the start and finish time of every job and the overall
completion time. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCPM(cmd, args[0])
		},
	}

	return cmd
}

func runCPM(cmd *cobra.Command, path string) error {
	logger := loggerFromContext(cmd.Context())

	in, err := openInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	jobs, err := cpm.Load(in)
	if err != nil {
		return err
	}
	logger.Debugf("loaded %d jobs", len(jobs))

	p := newProgress(logger)
	s, err := cpm.Plan(jobs)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("scheduled %d jobs", s.Len()))

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "job\tname\tstart\tfinish\t")
	for i := 0; i < s.Len(); i++ {
		job, err := s.Job(i)
		if err != nil {
			return err
		}
		start, err := s.Start(i)
		if err != nil {
			return err
		}
		finish, err := s.Finish(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%s\t%.1f\t%.1f\t\n", i, job.Name, start, finish)
	}
	fmt.Fprintf(w, "\ttotal\t\t%.1f\t\n", s.TotalTime())

	return w.Flush()
}
