// Package indexpq implements an indexed min-priority queue over a fixed
// universe of indices 0..maxN-1, generic over any totally ordered key type.
//
// Each element is identified by a stable external index, so callers can
// look up and mutate its key in place — the operation an eager Dijkstra or
// eager Prim needs for decrease-key. Keys live in a classic 1-based binary
// heap; an inverse position array maps each index to its heap slot (or an
// absent sentinel), and the two arrays stay a bijection over occupied
// slots at all times.
//
// Swim (toward the root) and sink (toward the leaves) are the only two
// rebalancing primitives; every public mutator reduces to a bounded
// sequence of them plus slot swaps that keep the inverse array consistent.
//
// Errors:
//
//	ErrNegativeCapacity  constructor given maxN < 0
//	ErrIndexOutOfRange   index outside [0, maxN)
//	ErrIndexPresent      Insert of an index already on the queue
//	ErrIndexAbsent       key access or mutation of an index not on the queue
//	ErrKeyNotSmaller     DecreaseKey with a key that does not strictly decrease
//	ErrKeyNotLarger      IncreaseKey with a key that does not strictly increase
//	ErrEmpty             DelMin / MinIndex / MinKey on an empty queue
//
// Complexity: Insert, DelMin, ChangeKey, DecreaseKey, IncreaseKey and
// Remove are O(log N); Contains, KeyOf, MinIndex, MinKey, Size and
// IsEmpty are O(1); construction is O(maxN).
package indexpq
