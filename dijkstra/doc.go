// Package dijkstra provides a precise, high-performance implementation of Dijkstra's
// shortest-path algorithm on weighted graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on the indexed min-heap in pqueue to always expand the next-closest
//     vertex, repositioning updated vertices with a true decrease-key.
//   - Supports optional path reconstruction, distance caps, and “impassable” edge thresholds.
//
// When to use:
//
//   - In any scenario where you need guaranteed shortest paths on a static weighted graph.
//   - As the baseline that astar generalizes with heuristics (h ≡ 0 reduces A* to Dijkstra).
//   - As a building block for network routing, traffic simulation, or resource allocation.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, returns a predecessor map for paths.Reconstruct.
//   - MaxDistance: aborts exploration beyond a specified distance, saving work in large graphs.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable (infinite cost).
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted from the priority queue exactly once (V extracts total).
//   - Each edge relaxation performs at most one insert or decrease-key (up to E updates).
//   - The heap never holds more than V entries: decrease-key updates in place,
//     so there are no stale duplicates to skip.
//   - Space: O(V + E)
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:
//     Returned if the Source string is empty when calling Dijkstra.
//   - ErrNilGraph:
//     Returned if you pass a nil *core.Graph to Dijkstra.
//   - ErrVertexNotFound:
//     Returned if the specified source vertex does not exist in the graph.
//   - ErrNegativeWeight:
//     Returned if any edge in the graph has a negative weight (detected by a fast
//     O(E) pre-scan). Negative weights are a caller contract violation; use
//     bellmanford when your graph legitimately carries them.
//   - ErrBadMaxDistance:
//     Panic from WithMaxDistance on a negative value.
//   - ErrBadInfThreshold:
//     Panic from WithInfEdgeThreshold on a non-positive value.
//
// API reference:
//
//	func Dijkstra(
//	    g *core.Graph,
//	    opts ...Option,
//	) (dist map[string]core.Distance, prev map[string]string, err error)
//
//	  - dist:    dist[v] = minimal distance from Source to v, core.Infinite() if unreachable.
//	  - prev:    prev[v] = immediate predecessor of v on one shortest path from Source,
//	             or "" if v is the Source or unreachable. Nil if ReturnPath=false.
//
// Thread safety:
//
//   - Dijkstra never mutates g; concurrent queries over the same graph are safe.
//   - Mutating g while a query runs is undefined; Clone the graph or synchronize externally.
//
// See also:
//
//   - bellmanford: negative weights and negative-cycle detection.
//   - astar: the same engine guided toward a single goal by a heuristic.
//   - paths.Reconstruct: turn the prev map into a concrete vertex sequence.
package dijkstra
