// Package pqueue implements the indexed binary min-heap used by Dijkstra
// and A*: a priority queue over (key, priority) pairs supporting Insert,
// ExtractMin, and an O(log n) DecreaseKey.
//
// The decrease-key contract rests on one internal invariant: the key→index
// map must reflect every entry's current array position after any swap. All
// heap movement funnels through Swap/Push/Pop, which maintain the map.
package pqueue

import (
	"container/heap"
	"errors"
)

// Sentinel errors for queue operations.
var (
	// ErrEmptyQueue indicates ExtractMin or Peek on an empty queue.
	// Inside the algorithms this is an invariant breach, never expected flow.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrKeyNotFound indicates DecreaseKey on a key that is not enqueued.
	ErrKeyNotFound = errors.New("pqueue: key not found")
)

// entry is one (key, priority) pair stored in the heap array.
type entry struct {
	key      string
	priority int64
}

// entryHeap is the container/heap implementation. index maps each key to its
// current position in entries; Swap keeps it coherent on every movement.
type entryHeap struct {
	entries []entry
	index   map[string]int
}

// Len returns the number of entries. Part of heap.Interface.
func (h *entryHeap) Len() int { return len(h.entries) }

// Less orders by ascending priority. Ties may surface in any order; callers
// must not rely on tie order for correctness. Part of heap.Interface.
func (h *entryHeap) Less(i, j int) bool {
	return h.entries[i].priority < h.entries[j].priority
}

// Swap exchanges two entries and updates their index positions.
// Part of heap.Interface.
func (h *entryHeap) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.index[h.entries[i].key] = i
	h.index[h.entries[j].key] = j
}

// Push appends x and records its index. Part of heap.Interface.
func (h *entryHeap) Push(x interface{}) {
	e := x.(entry)
	h.index[e.key] = len(h.entries)
	h.entries = append(h.entries, e)
}

// Pop removes and returns the last entry, dropping it from the index.
// Part of heap.Interface.
func (h *entryHeap) Pop() interface{} {
	n := len(h.entries)
	e := h.entries[n-1]
	h.entries = h.entries[:n-1]
	delete(h.index, e.key)

	return e
}

// MinPriorityQueue is a binary min-heap over (key, priority) pairs with an
// internal key→index map enabling O(log n) DecreaseKey. Keys are unique:
// inserting a key that is already enqueued lowers its priority instead of
// adding a duplicate. Not safe for concurrent use.
type MinPriorityQueue struct {
	h entryHeap
}

// New returns an empty queue.
func New() *MinPriorityQueue {
	return NewWithCapacity(0)
}

// NewWithCapacity returns an empty queue with storage preallocated for n
// entries. Algorithms pass their vertex count to avoid regrowth.
func NewWithCapacity(n int) *MinPriorityQueue {
	return &MinPriorityQueue{
		h: entryHeap{
			entries: make([]entry, 0, n),
			index:   make(map[string]int, n),
		},
	}
}

// Len returns the number of enqueued keys. O(1).
func (q *MinPriorityQueue) Len() int { return q.h.Len() }

// Contains reports whether key is currently enqueued. O(1).
func (q *MinPriorityQueue) Contains(key string) bool {
	_, ok := q.h.index[key]

	return ok
}

// Priority returns the current priority of key, or false if not enqueued.
// O(1).
func (q *MinPriorityQueue) Priority(key string) (int64, bool) {
	i, ok := q.h.index[key]
	if !ok {
		return 0, false
	}

	return q.h.entries[i].priority, true
}

// Insert enqueues key with the given priority, sifting up as needed.
// If key is already enqueued, Insert behaves as DecreaseKey: the priority is
// lowered when strictly smaller and left untouched otherwise, so the queue
// never holds duplicate keys. O(log n).
func (q *MinPriorityQueue) Insert(key string, priority int64) {
	if i, ok := q.h.index[key]; ok {
		// Existing entry: improvement-only update, then restore ordering.
		if priority < q.h.entries[i].priority {
			q.h.entries[i].priority = priority
			heap.Fix(&q.h, i)
		}

		return
	}

	heap.Push(&q.h, entry{key: key, priority: priority})
}

// ExtractMin removes and returns the entry with the smallest priority.
// Returns ErrEmptyQueue when the queue is empty. O(log n).
func (q *MinPriorityQueue) ExtractMin() (string, int64, error) {
	if q.h.Len() == 0 {
		return "", 0, ErrEmptyQueue
	}

	e := heap.Pop(&q.h).(entry)

	return e.key, e.priority, nil
}

// Peek returns the minimum entry without removing it.
// Returns ErrEmptyQueue when the queue is empty. O(1).
func (q *MinPriorityQueue) Peek() (string, int64, error) {
	if q.h.Len() == 0 {
		return "", 0, ErrEmptyQueue
	}

	return q.h.entries[0].key, q.h.entries[0].priority, nil
}

// DecreaseKey lowers the priority of key to newPriority and sifts it up.
// A newPriority that is not a strict improvement is a no-op, not an error.
// Returns ErrKeyNotFound when key is not enqueued. O(log n) amortized via
// the key→index map; without such a map this would degrade to an O(n) scan.
func (q *MinPriorityQueue) DecreaseKey(key string, newPriority int64) error {
	i, ok := q.h.index[key]
	if !ok {
		return ErrKeyNotFound
	}
	if newPriority >= q.h.entries[i].priority {
		return nil // not an improvement: leave the heap untouched
	}

	q.h.entries[i].priority = newPriority
	heap.Fix(&q.h, i)

	return nil
}
