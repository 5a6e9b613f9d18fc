// Package pqueue_test exercises the heap ordering, the decrease-key
// contract, and the key→index invariant that backs it.
package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/lvlpath/pqueue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractMin_EmptyQueue: the resource-empty case fails loudly.
func TestExtractMin_EmptyQueue(t *testing.T) {
	q := pqueue.New()

	_, _, err := q.ExtractMin()
	assert.ErrorIs(t, err, pqueue.ErrEmptyQueue)

	_, _, err = q.Peek()
	assert.ErrorIs(t, err, pqueue.ErrEmptyQueue)
}

// TestInsertExtract_AscendingOrder: entries drain in priority order.
func TestInsertExtract_AscendingOrder(t *testing.T) {
	q := pqueue.New()
	q.Insert("C", 30)
	q.Insert("A", 10)
	q.Insert("D", 40)
	q.Insert("B", 20)

	require.Equal(t, 4, q.Len())

	var got []int64
	for q.Len() > 0 {
		_, p, err := q.ExtractMin()
		require.NoError(t, err)
		got = append(got, p)
	}
	assert.Equal(t, []int64{10, 20, 30, 40}, got)
}

// TestPeek_DoesNotRemove: Peek observes the minimum without side effects.
func TestPeek_DoesNotRemove(t *testing.T) {
	q := pqueue.New()
	q.Insert("A", 5)
	q.Insert("B", 3)

	k, p, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, "B", k)
	assert.Equal(t, int64(3), p)
	assert.Equal(t, 2, q.Len())
}

// TestDecreaseKey_MovesEntryUp: a lowered priority surfaces first.
func TestDecreaseKey_MovesEntryUp(t *testing.T) {
	q := pqueue.New()
	q.Insert("A", 10)
	q.Insert("B", 20)
	q.Insert("C", 30)

	require.NoError(t, q.DecreaseKey("C", 1))

	k, p, err := q.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, "C", k)
	assert.Equal(t, int64(1), p)
}

// TestDecreaseKey_NoOpWhenNotImprovement: raising a priority is ignored.
func TestDecreaseKey_NoOpWhenNotImprovement(t *testing.T) {
	q := pqueue.New()
	q.Insert("A", 10)

	require.NoError(t, q.DecreaseKey("A", 10)) // equal: no-op
	require.NoError(t, q.DecreaseKey("A", 99)) // higher: no-op

	p, ok := q.Priority("A")
	require.True(t, ok)
	assert.Equal(t, int64(10), p)
}

// TestDecreaseKey_MissingKey returns the sentinel rather than panicking.
func TestDecreaseKey_MissingKey(t *testing.T) {
	q := pqueue.New()
	q.Insert("A", 1)

	assert.ErrorIs(t, q.DecreaseKey("ghost", 0), pqueue.ErrKeyNotFound)
}

// TestInsert_ExistingKeyActsAsDecreaseKey: no duplicate entries, ever.
func TestInsert_ExistingKeyActsAsDecreaseKey(t *testing.T) {
	q := pqueue.New()
	q.Insert("A", 10)
	q.Insert("A", 4)  // improvement: updates in place
	q.Insert("A", 50) // worse: ignored

	require.Equal(t, 1, q.Len())
	p, ok := q.Priority("A")
	require.True(t, ok)
	assert.Equal(t, int64(4), p)
}

// TestContainsAndPriority cover the O(1) lookups.
func TestContainsAndPriority(t *testing.T) {
	q := pqueue.New()
	q.Insert("A", 7)

	assert.True(t, q.Contains("A"))
	assert.False(t, q.Contains("B"))

	_, ok := q.Priority("B")
	assert.False(t, ok)

	_, _, err := q.ExtractMin()
	require.NoError(t, err)
	assert.False(t, q.Contains("A"), "extracted key leaves the index")
}

// TestIndexInvariant_RandomizedChurn hammers the queue with random inserts,
// decreases, and extracts, then checks that the drain order matches a sorted
// oracle. Any stale key→index entry would misplace an update and break order.
func TestIndexInvariant_RandomizedChurn(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	q := pqueue.NewWithCapacity(128)
	oracle := make(map[string]int64)

	key := func(i int) string { return string(rune('a'+i%26)) + string(rune('0'+i/26)) }

	for round := 0; round < 2000; round++ {
		i := r.Intn(100)
		k := key(i)
		switch r.Intn(3) {
		case 0: // insert-or-improve
			p := int64(r.Intn(1000))
			q.Insert(k, p)
			if cur, ok := oracle[k]; !ok || p < cur {
				oracle[k] = p
			}
		case 1: // decrease
			p := int64(r.Intn(1000))
			if err := q.DecreaseKey(k, p); err == nil {
				if p < oracle[k] {
					oracle[k] = p
				}
			}
		case 2: // extract
			if q.Len() == 0 {
				continue
			}
			k2, p2, err := q.ExtractMin()
			require.NoError(t, err)
			require.Equal(t, oracle[k2], p2, "extracted priority must match oracle")
			delete(oracle, k2)
		}
	}

	// Drain: priorities must come out sorted and match the oracle exactly.
	want := make([]int64, 0, len(oracle))
	for _, p := range oracle {
		want = append(want, p)
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	got := make([]int64, 0, q.Len())
	for q.Len() > 0 {
		_, p, err := q.ExtractMin()
		require.NoError(t, err)
		got = append(got, p)
	}
	assert.Equal(t, want, got)
}
