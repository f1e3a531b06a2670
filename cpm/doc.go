// Package cpm solves the parallel precedence-constrained job scheduling
// problem with the critical path method.
//
// The problem reduces to longest paths in an edge-weighted DAG: for N
// jobs the scheduler builds a digraph of 2N+2 vertices — one start and
// one finish vertex per job plus a synthetic source and sink — wired
// with zero-weight structural edges (source→start, finish→sink,
// finish→successor-start) and one duration-weighted edge per job
// (start→finish). Longest distances from the source are then exactly
// the earliest start times of each job, and the sink's distance is the
// total completion time.
//
// Job files are TOML documents of [[job]] tables:
//
//	[[job]]
//	name = "excavate"
//	duration = 41.0
//	successors = [1, 7, 9]
//
// Errors:
//
//	ErrBadDuration       a job duration is negative or NaN
//	ErrJobOutOfRange     a successor index outside [0, N)
//	dfs.ErrCycleDetected the precedence constraints are circular
//
// Complexity: O(N + P) time for N jobs and P precedence constraints.
package cpm
