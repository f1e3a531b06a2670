package cpm

import (
	"errors"
	"fmt"
	"math"

	"github.com/davrell/ewgraph/core"
	"github.com/davrell/ewgraph/dagpath"
)

// Sentinel errors for schedule construction.
var (
	// ErrBadDuration indicates a job duration that is negative or NaN.
	ErrBadDuration = errors.New("cpm: job duration must be a non-negative number")

	// ErrJobOutOfRange indicates a successor index outside [0, N).
	ErrJobOutOfRange = errors.New("cpm: successor job index out of range")
)

// Job is one precedence-constrained job: its duration and the indices of
// the jobs that must not start before it finishes.
type Job struct {
	// Name is an optional human-readable label; the scheduler ignores it.
	Name string `toml:"name"`

	// Duration is the processing time of the job. Must be non-negative.
	Duration float64 `toml:"duration"`

	// Successors lists the jobs that may only start after this one finishes.
	Successors []int `toml:"successors"`
}

// Schedule holds the earliest feasible start and finish time of every job
// and the total completion time. It is complete when Plan returns.
type Schedule struct {
	jobs   []Job
	start  []float64
	finish []float64
	total  float64
}

// Plan computes the earliest-start schedule for jobs via longest paths.
//
// Digraph layout for N jobs: vertex i is job i's start, vertex i+N its
// finish, vertex 2N the synthetic source and 2N+1 the sink. Circular
// precedence constraints make the digraph cyclic, which surfaces as
// dfs.ErrCycleDetected from the longest-path construction.
func Plan(jobs []Job) (*Schedule, error) {
	n := len(jobs)
	if n == 0 {
		return &Schedule{}, nil
	}
	source, sink := 2*n, 2*n+1

	g, err := core.NewDigraph(2*n + 2)
	if err != nil {
		return nil, err
	}
	for i, job := range jobs {
		if job.Duration < 0 || math.IsNaN(job.Duration) {
			return nil, fmt.Errorf("%w: job %d has duration %v", ErrBadDuration, i, job.Duration)
		}

		// Structural zero-weight edges plus the one duration-weighted edge.
		if err = g.AddEdge(source, i, 0); err != nil {
			return nil, err
		}
		if err = g.AddEdge(i+n, sink, 0); err != nil {
			return nil, err
		}
		if err = g.AddEdge(i, i+n, job.Duration); err != nil {
			return nil, err
		}
		for _, succ := range job.Successors {
			if succ < 0 || succ >= n {
				return nil, fmt.Errorf("%w: job %d lists successor %d with N=%d",
					ErrJobOutOfRange, i, succ, n)
			}
			if err = g.AddEdge(i+n, succ, 0); err != nil {
				return nil, err
			}
		}
	}

	tree, err := dagpath.Longest(g, source)
	if err != nil {
		return nil, err
	}

	s := &Schedule{
		jobs:   append([]Job(nil), jobs...),
		start:  make([]float64, n),
		finish: make([]float64, n),
	}
	for i := range jobs {
		if s.start[i], err = tree.DistTo(i); err != nil {
			return nil, err
		}
		if s.finish[i], err = tree.DistTo(i + n); err != nil {
			return nil, err
		}
	}
	if s.total, err = tree.DistTo(sink); err != nil {
		return nil, err
	}

	return s, nil
}

// Len returns the number of scheduled jobs.
func (s *Schedule) Len() int { return len(s.jobs) }

// Job returns the i-th input job.
func (s *Schedule) Job(i int) (Job, error) {
	if i < 0 || i >= len(s.jobs) {
		return Job{}, fmt.Errorf("%w: %d with N=%d", ErrJobOutOfRange, i, len(s.jobs))
	}

	return s.jobs[i], nil
}

// Start returns the earliest start time of job i.
func (s *Schedule) Start(i int) (float64, error) {
	if i < 0 || i >= len(s.start) {
		return 0, fmt.Errorf("%w: %d with N=%d", ErrJobOutOfRange, i, len(s.start))
	}

	return s.start[i], nil
}

// Finish returns the earliest finish time of job i.
func (s *Schedule) Finish(i int) (float64, error) {
	if i < 0 || i >= len(s.finish) {
		return 0, fmt.Errorf("%w: %d with N=%d", ErrJobOutOfRange, i, len(s.finish))
	}

	return s.finish[i], nil
}

// TotalTime returns the completion time of the whole schedule.
func (s *Schedule) TotalTime() float64 { return s.total }
