package indexpq

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors for indexed priority queue operations.
var (
	// ErrNegativeCapacity indicates New was given a negative universe size.
	ErrNegativeCapacity = errors.New("indexpq: capacity must be non-negative")

	// ErrIndexOutOfRange indicates an index outside [0, maxN).
	ErrIndexOutOfRange = errors.New("indexpq: index out of range")

	// ErrIndexPresent indicates an Insert of an index already on the queue.
	ErrIndexPresent = errors.New("indexpq: index is already on the queue")

	// ErrIndexAbsent indicates an operation on an index not on the queue.
	ErrIndexAbsent = errors.New("indexpq: index is not on the queue")

	// ErrKeyNotSmaller indicates DecreaseKey with a key that would not
	// strictly decrease the stored key.
	ErrKeyNotSmaller = errors.New("indexpq: key does not strictly decrease")

	// ErrKeyNotLarger indicates IncreaseKey with a key that would not
	// strictly increase the stored key.
	ErrKeyNotLarger = errors.New("indexpq: key does not strictly increase")

	// ErrEmpty indicates a minimum query or extraction on an empty queue.
	ErrEmpty = errors.New("indexpq: queue is empty")
)

// absent marks an index that occupies no heap slot.
const absent = -1

// MinPQ is an indexed min-priority queue over indices 0..maxN-1 keyed by K.
// The zero value is unusable; construct with New.
type MinPQ[K cmp.Ordered] struct {
	maxN int   // size of the index universe
	n    int   // number of elements currently on the queue
	heap []int // 1-based: heap[1..n] holds indices in min-heap order by key
	pos  []int // pos[i] = heap slot of index i, or absent
	keys []K   // keys[i] = key currently associated with index i
}

// New creates an empty indexed min-priority queue whose indices range over
// [0, maxN). Returns ErrNegativeCapacity when maxN < 0.
func New[K cmp.Ordered](maxN int) (*MinPQ[K], error) {
	if maxN < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCapacity, maxN)
	}

	pq := &MinPQ[K]{
		maxN: maxN,
		heap: make([]int, maxN+1),
		pos:  make([]int, maxN),
		keys: make([]K, maxN),
	}
	for i := range pq.pos {
		pq.pos[i] = absent
	}

	return pq, nil
}

// Size returns the number of elements on the queue.
func (pq *MinPQ[K]) Size() int { return pq.n }

// IsEmpty reports whether the queue holds no elements.
func (pq *MinPQ[K]) IsEmpty() bool { return pq.n == 0 }

// Contains reports whether index i is on the queue.
// Out-of-range indices are simply not contained.
func (pq *MinPQ[K]) Contains(i int) bool {
	return i >= 0 && i < pq.maxN && pq.pos[i] != absent
}

// Insert puts index i on the queue with the given key.
// Fails with ErrIndexOutOfRange or ErrIndexPresent.
func (pq *MinPQ[K]) Insert(i int, key K) error {
	if err := pq.validate(i); err != nil {
		return err
	}
	if pq.pos[i] != absent {
		return fmt.Errorf("%w: %d", ErrIndexPresent, i)
	}

	pq.n++
	pq.pos[i] = pq.n
	pq.heap[pq.n] = i
	pq.keys[i] = key
	pq.swim(pq.n)

	return nil
}

// MinIndex returns the index with the smallest key without removing it.
func (pq *MinPQ[K]) MinIndex() (int, error) {
	if pq.n == 0 {
		return 0, ErrEmpty
	}

	return pq.heap[1], nil
}

// MinKey returns the smallest key without removing its index.
func (pq *MinPQ[K]) MinKey() (K, error) {
	var zero K
	if pq.n == 0 {
		return zero, ErrEmpty
	}

	return pq.keys[pq.heap[1]], nil
}

// KeyOf returns the key currently associated with index i.
func (pq *MinPQ[K]) KeyOf(i int) (K, error) {
	var zero K
	if err := pq.validate(i); err != nil {
		return zero, err
	}
	if pq.pos[i] == absent {
		return zero, fmt.Errorf("%w: %d", ErrIndexAbsent, i)
	}

	return pq.keys[i], nil
}

// DelMin removes the index with the smallest key and returns it.
// Fails with ErrEmpty on an empty queue.
func (pq *MinPQ[K]) DelMin() (int, error) {
	if pq.n == 0 {
		return 0, ErrEmpty
	}

	min := pq.heap[1]
	pq.swap(1, pq.n)
	pq.n--
	pq.sink(1)

	pq.pos[min] = absent
	pq.heap[pq.n+1] = absent
	var zero K
	pq.keys[min] = zero

	return min, nil
}

// ChangeKey replaces the key associated with index i, rebalancing in
// whichever direction the change requires.
func (pq *MinPQ[K]) ChangeKey(i int, key K) error {
	if err := pq.validate(i); err != nil {
		return err
	}
	if pq.pos[i] == absent {
		return fmt.Errorf("%w: %d", ErrIndexAbsent, i)
	}

	pq.keys[i] = key
	pq.swim(pq.pos[i])
	pq.sink(pq.pos[i])

	return nil
}

// DecreaseKey lowers the key associated with index i.
// The new key must strictly decrease the stored one (ErrKeyNotSmaller).
func (pq *MinPQ[K]) DecreaseKey(i int, key K) error {
	if err := pq.validate(i); err != nil {
		return err
	}
	if pq.pos[i] == absent {
		return fmt.Errorf("%w: %d", ErrIndexAbsent, i)
	}
	if pq.keys[i] <= key {
		return fmt.Errorf("%w: index %d", ErrKeyNotSmaller, i)
	}

	pq.keys[i] = key
	pq.swim(pq.pos[i])

	return nil
}

// IncreaseKey raises the key associated with index i.
// The new key must strictly increase the stored one (ErrKeyNotLarger).
func (pq *MinPQ[K]) IncreaseKey(i int, key K) error {
	if err := pq.validate(i); err != nil {
		return err
	}
	if pq.pos[i] == absent {
		return fmt.Errorf("%w: %d", ErrIndexAbsent, i)
	}
	if pq.keys[i] >= key {
		return fmt.Errorf("%w: index %d", ErrKeyNotLarger, i)
	}

	pq.keys[i] = key
	pq.sink(pq.pos[i])

	return nil
}

// Remove deletes index i from the queue regardless of its key's rank.
func (pq *MinPQ[K]) Remove(i int) error {
	if err := pq.validate(i); err != nil {
		return err
	}
	if pq.pos[i] == absent {
		return fmt.Errorf("%w: %d", ErrIndexAbsent, i)
	}

	slot := pq.pos[i]
	pq.swap(slot, pq.n)
	pq.n--
	if slot <= pq.n {
		pq.swim(slot)
		pq.sink(slot)
	}

	pq.pos[i] = absent
	pq.heap[pq.n+1] = absent
	var zero K
	pq.keys[i] = zero

	return nil
}

// validate rejects indices outside the fixed universe.
func (pq *MinPQ[K]) validate(i int) error {
	if i < 0 || i >= pq.maxN {
		return fmt.Errorf("%w: %d with maxN=%d", ErrIndexOutOfRange, i, pq.maxN)
	}

	return nil
}

// greater reports whether the key at heap slot a orders after slot b.
func (pq *MinPQ[K]) greater(a, b int) bool {
	return pq.keys[pq.heap[a]] > pq.keys[pq.heap[b]]
}

// swap exchanges two heap slots and keeps the inverse array consistent.
func (pq *MinPQ[K]) swap(a, b int) {
	pq.heap[a], pq.heap[b] = pq.heap[b], pq.heap[a]
	pq.pos[pq.heap[a]] = a
	pq.pos[pq.heap[b]] = b
}

// swim moves the element at slot k toward the root until heap order holds.
func (pq *MinPQ[K]) swim(k int) {
	for k > 1 && pq.greater(k/2, k) {
		pq.swap(k, k/2)
		k /= 2
	}
}

// sink moves the element at slot k toward the leaves until heap order holds.
func (pq *MinPQ[K]) sink(k int) {
	for 2*k <= pq.n {
		j := 2 * k
		if j < pq.n && pq.greater(j, j+1) {
			j++
		}
		if !pq.greater(k, j) {
			break
		}
		pq.swap(k, j)
		k = j
	}
}
