// This file defines sentinel errors, method selection options, and the
// Compute dispatcher for minimum-spanning-forest construction.
package mst

import (
	"errors"

	"github.com/davrell/ewgraph/core"
)

// Sentinel errors for MST computation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrUnknownMethod indicates Compute was given an unrecognized method name.
	ErrUnknownMethod = errors.New("mst: unknown method")

	// ErrVerifyFailed indicates a self-verification check did not hold.
	ErrVerifyFailed = errors.New("mst: verification failed")
)

// MethodKruskal selects Kruskal's algorithm (sort all edges, union-find).
const MethodKruskal = "kruskal"

// MethodLazyPrim selects lazy Prim (plain min-heap of crossing edges).
const MethodLazyPrim = "lazy-prim"

// MethodEagerPrim selects eager Prim (indexed priority queue per vertex).
const MethodEagerPrim = "eager-prim"

// Options selects which MST algorithm Compute runs.
// Use DefaultOptions() for the default setup (Kruskal).
type Options struct {
	// Method to use: MethodKruskal, MethodLazyPrim or MethodEagerPrim.
	Method string
}

// Option configures Options; all Option functions mutate the pointed Options.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// DefaultOptions returns Options initialized for Kruskal.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// Compute dispatches to the selected algorithm. All methods return the
// forest edges, the total weight, and an error; the weights agree across
// methods while exact edge choice under ties may differ.
func Compute(g *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodLazyPrim:
		return LazyPrim(g)
	case MethodEagerPrim:
		return EagerPrim(g)
	default:
		return nil, 0, ErrUnknownMethod
	}
}
