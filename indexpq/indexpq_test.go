package indexpq_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davrell/ewgraph/indexpq"
)

// TestInsertDelMin_DrainsInKeyOrder inserts a bag of string keys and
// verifies DelMin drains them in ascending key order.
func TestInsertDelMin_DrainsInKeyOrder(t *testing.T) {
	words := []string{"it", "was", "the", "best", "of", "times", "it", "was", "the", "worst"}

	pq, err := indexpq.New[string](len(words))
	require.NoError(t, err)
	for i, w := range words {
		require.NoError(t, pq.Insert(i, w))
	}
	assert.Equal(t, len(words), pq.Size())

	var drained []string
	for !pq.IsEmpty() {
		minKey, err := pq.MinKey()
		require.NoError(t, err)
		i, err := pq.DelMin()
		require.NoError(t, err)
		assert.Equal(t, words[i], minKey)
		drained = append(drained, words[i])
	}

	assert.True(t, sort.StringsAreSorted(drained), "DelMin must drain in ascending key order")
	assert.Zero(t, pq.Size())
}

// TestInsert_Validation verifies range and double-insert rejection.
func TestInsert_Validation(t *testing.T) {
	pq, err := indexpq.New[float64](3)
	require.NoError(t, err)

	assert.ErrorIs(t, pq.Insert(3, 1.0), indexpq.ErrIndexOutOfRange)
	assert.ErrorIs(t, pq.Insert(-1, 1.0), indexpq.ErrIndexOutOfRange)

	require.NoError(t, pq.Insert(1, 1.0))
	assert.ErrorIs(t, pq.Insert(1, 2.0), indexpq.ErrIndexPresent)

	_, err = indexpq.New[int](-1)
	assert.ErrorIs(t, err, indexpq.ErrNegativeCapacity)
}

// TestEmptyQueue_Failures verifies minimum queries and extraction fail on
// an empty queue instead of returning sentinels.
func TestEmptyQueue_Failures(t *testing.T) {
	pq, err := indexpq.New[int](4)
	require.NoError(t, err)

	_, err = pq.DelMin()
	assert.ErrorIs(t, err, indexpq.ErrEmpty)
	_, err = pq.MinIndex()
	assert.ErrorIs(t, err, indexpq.ErrEmpty)
	_, err = pq.MinKey()
	assert.ErrorIs(t, err, indexpq.ErrEmpty)

	_, err = pq.KeyOf(2)
	assert.ErrorIs(t, err, indexpq.ErrIndexAbsent)
	assert.ErrorIs(t, pq.Remove(2), indexpq.ErrIndexAbsent)
}

// TestDecreaseIncreaseKey_Strictness verifies the strict-direction
// contract of DecreaseKey and IncreaseKey.
func TestDecreaseIncreaseKey_Strictness(t *testing.T) {
	pq, err := indexpq.New[float64](4)
	require.NoError(t, err)
	require.NoError(t, pq.Insert(0, 5.0))

	// Equal key decreases/increases nothing: both directions reject it.
	assert.ErrorIs(t, pq.DecreaseKey(0, 5.0), indexpq.ErrKeyNotSmaller)
	assert.ErrorIs(t, pq.DecreaseKey(0, 6.0), indexpq.ErrKeyNotSmaller)
	assert.ErrorIs(t, pq.IncreaseKey(0, 5.0), indexpq.ErrKeyNotLarger)
	assert.ErrorIs(t, pq.IncreaseKey(0, 4.0), indexpq.ErrKeyNotLarger)

	require.NoError(t, pq.DecreaseKey(0, 2.0))
	key, err := pq.KeyOf(0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, key)

	require.NoError(t, pq.IncreaseKey(0, 9.0))
	key, err = pq.KeyOf(0)
	require.NoError(t, err)
	assert.Equal(t, 9.0, key)

	// Absent index: mutation fails.
	assert.ErrorIs(t, pq.DecreaseKey(1, 1.0), indexpq.ErrIndexAbsent)
	assert.ErrorIs(t, pq.IncreaseKey(1, 1.0), indexpq.ErrIndexAbsent)
}

// TestDecreaseKey_ReordersMinimum verifies decrease-key promotes an index
// to the front when its key becomes the global minimum.
func TestDecreaseKey_ReordersMinimum(t *testing.T) {
	pq, err := indexpq.New[float64](5)
	require.NoError(t, err)
	for i, k := range []float64{0.5, 0.4, 0.3, 0.2, 0.1} {
		require.NoError(t, pq.Insert(i, k))
	}

	minIdx, err := pq.MinIndex()
	require.NoError(t, err)
	assert.Equal(t, 4, minIdx)

	require.NoError(t, pq.DecreaseKey(0, 0.05))
	minIdx, err = pq.MinIndex()
	require.NoError(t, err)
	assert.Equal(t, 0, minIdx)
}

// TestRemove_ArbitraryIndex verifies Remove deletes mid-heap elements and
// the remaining drain order stays sorted.
func TestRemove_ArbitraryIndex(t *testing.T) {
	pq, err := indexpq.New[int](8)
	require.NoError(t, err)
	keys := []int{50, 10, 40, 20, 70, 30, 60, 80}
	for i, k := range keys {
		require.NoError(t, pq.Insert(i, k))
	}

	require.NoError(t, pq.Remove(3)) // key 20
	require.NoError(t, pq.Remove(6)) // key 60
	assert.False(t, pq.Contains(3))
	assert.False(t, pq.Contains(6))
	assert.Equal(t, 6, pq.Size())

	var drained []int
	for !pq.IsEmpty() {
		i, err := pq.DelMin()
		require.NoError(t, err)
		drained = append(drained, keys[i])
	}
	assert.Equal(t, []int{10, 30, 40, 50, 70, 80}, drained)
}

// TestRandomWorkload_DelMinIsGlobalMinimum mirrors the queue against a
// naive map model through a deterministic random operation sequence.
func TestRandomWorkload_DelMinIsGlobalMinimum(t *testing.T) {
	const maxN = 64
	pq, err := indexpq.New[float64](maxN)
	require.NoError(t, err)
	model := make(map[int]float64, maxN)

	r := rand.New(rand.NewSource(7))
	for step := 0; step < 2000; step++ {
		i := r.Intn(maxN)
		switch {
		case !pq.Contains(i):
			k := r.Float64()
			require.NoError(t, pq.Insert(i, k))
			model[i] = k
		case r.Intn(2) == 0:
			// Strict decrease toward zero.
			k := model[i] * r.Float64() * 0.99
			if k < model[i] {
				require.NoError(t, pq.DecreaseKey(i, k))
				model[i] = k
			}
		default:
			minIdx, err := pq.DelMin()
			require.NoError(t, err)
			for j, k := range model {
				assert.LessOrEqual(t, model[minIdx], k, "index %d", j)
			}
			delete(model, minIdx)
		}
		assert.Equal(t, len(model), pq.Size())
	}
}
