// Package lvlpath is a focused weighted-graph shortest-path engine:
// build a graph once, then query minimum-cost distances and reconstructible
// paths with the algorithm that fits your weights.
//
// 🚀 What is lvlpath?
//
//	A thread-safe-for-reads, zero-dependency engine that brings together:
//		• Core primitives: weighted vertices & edges, tagged-infinity distances
//		• Priority queue: indexed binary min-heap with true decrease-key
//		• Dijkstra: single-source, non-negative weights
//		• Bellman–Ford: single-source, negative weights + cycle detection
//		• Floyd–Warshall: all-pairs dense matrix + cycle detection
//		• A*: single-pair search guided by an admissible heuristic
//		• Path reconstruction: predecessor-map walking with cycle guards
//
// ✨ Why choose lvlpath?
//
//   - Explicit contracts – structural defects (negative cycles) are result
//     states, contract violations (negative weights in Dijkstra) fail fast
//   - Safe infinity – unreachable means Infinite, never a magic large number
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – sorted vertex enumeration, fixed relaxation orders
//
// Everything is organized under small single-purpose packages:
//
//	core/          — Graph, Edge, Distance types & thread-safe primitives
//	pqueue/        — indexed min-heap (Insert / ExtractMin / DecreaseKey)
//	dijkstra/      — single-source shortest paths, weights ≥ 0
//	bellmanford/   — single-source shortest paths, negative weights tolerated
//	floydwarshall/ — all-pairs shortest paths over a dense distance matrix
//	astar/         — heuristic-guided single-pair search
//	paths/         — predecessor walking & path-cost verification
//
// Quick ASCII example:
//
//	    A──4──B
//	    │    ╱│
//	    1   2 1
//	    │  ╱  │
//	    C─╯   D
//
//	dijkstra from A: dist[D] = 4 via A→C→B→D.
//
// Callers build a core.Graph, hand it to exactly one algorithm per query,
// and turn the returned distance/predecessor tables into concrete paths
// with paths.Reconstruct. Graphs are read-only while a query runs.
//
//	go get github.com/katalvlaran/lvlpath
package lvlpath
