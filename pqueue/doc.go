// Package pqueue provides the min-priority-queue primitive shared by the
// Dijkstra and A* engines: a binary min-heap over (key, priority) pairs with
// a true decrease-key operation.
//
// Overview:
//
//   - Insert(key, priority) appends and sifts up in O(log n); inserting an
//     already-enqueued key lowers its priority instead of duplicating it.
//   - ExtractMin() removes the smallest-priority entry in O(log n) and fails
//     with ErrEmptyQueue on an empty queue — inside a correctly looping
//     algorithm that error marks an invariant breach, not a normal state.
//   - DecreaseKey(key, p) repositions an existing entry in O(log n), a no-op
//     when p is not a strict improvement.
//
// Why an index map:
//
//	decrease-key must first locate the entry. A key→array-index map,
//	maintained on every swap, makes the lookup O(1) and the whole operation
//	O(log n); without it each call would linear-scan the heap array. The map
//	is the package's one internal invariant: after any heap movement it must
//	reflect every entry's current position.
//
// Tie-breaking:
//
//	entries with equal priority are returned in unspecified order. The
//	shortest-path algorithms built on this queue are correct under any tie
//	order; only the choice among equal-cost paths may vary.
//
// Errors (sentinel):
//
//   - ErrEmptyQueue  – ExtractMin/Peek on an empty queue.
//   - ErrKeyNotFound – DecreaseKey for a key that is not enqueued.
//
// The queue is not safe for concurrent use; each algorithm run owns its own
// instance.
package pqueue
