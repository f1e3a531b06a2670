// Package graphio parses edge-weighted graphs from their textual form.
//
// Two formats are supported:
//
//  1. The whitespace format read by ReadGraph and ReadDigraph: the vertex
//     count V, the edge count E, then E lines of "v w weight". Vertices
//     are integers in [0, V) and weights are float64 literals.
//
//  2. The delimited symbol format read by NewSymbolDigraph: each line
//     names one tail vertex followed by its heads, separated by a fixed
//     delimiter string. Names are arbitrary and mapped to dense integer
//     indices in first-appearance order; SymbolDigraph bridges between
//     the two namespaces.
//
// All readers consume the entire input eagerly and validate as they go:
// a malformed token, a truncated edge list or an out-of-range endpoint
// fails the whole parse with a wrapped sentinel error.
package graphio
