// Package bellmanford provides single-source shortest paths for graphs whose
// edge weights may be negative, with first-class negative-cycle detection.
//
// Overview:
//
//   - BellmanFord relaxes every arc in the graph in a fixed order, up to
//     |V|−1 full passes, then runs one further pass: if any distance still
//     improves, a negative-weight cycle is reachable from the source and the
//     run fails with ErrNegativeCycle instead of returning meaningless numbers.
//   - A pass that changes nothing ends the main loop early; the worst case
//     O(V·E) is paid only by graphs that keep improving to the last pass.
//   - A negative self-loop is a negative cycle of length 1 and is detected
//     like any other.
//
// When to use:
//
//   - Edge weights can be negative: Dijkstra's contract excludes them, this
//     algorithm tolerates them.
//   - You need a proof that shortest paths are well-defined at all: the
//     detection pass is that proof.
//   - On non-negative graphs it agrees with Dijkstra exactly (the property
//     tests pin this down) — just slower, so prefer dijkstra there.
//
// Bounding execution:
//
//	The run accepts a context via WithContext, polled between passes.
//	Callers wanting a time budget wrap their context with a deadline;
//	cancellation latency is one O(E) pass.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource     – Source option missing or empty.
//   - ErrNilGraph        – nil *core.Graph.
//   - ErrVertexNotFound  – source vertex absent from the graph.
//   - ErrNegativeCycle   – a negative-weight cycle is reachable from the
//     source; no tables are returned and none must be trusted.
//
// API reference:
//
//	func BellmanFord(
//	    g *core.Graph,
//	    opts ...Option,
//	) (dist map[string]core.Distance, prev map[string]string, err error)
//
//	  - dist: dist[v] = minimal distance from Source to v, core.Infinite() if unreachable.
//	  - prev: prev[v] = predecessor of v on one shortest path, "" for the
//	          source and unreached vertices. Nil if ReturnPath=false.
//
// Thread safety:
//
//   - BellmanFord never mutates g; concurrent queries over the same graph are safe.
//   - Mutating g while a query runs is undefined; Clone the graph or synchronize externally.
//
// See also:
//
//   - dijkstra: faster when all weights are non-negative.
//   - floydwarshall: the all-pairs analogue with the same cycle semantics.
//   - paths.Reconstruct: turn the prev map into a concrete vertex sequence.
package bellmanford
