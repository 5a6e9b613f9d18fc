// Package paths is the shared path-reconstruction utility behind every
// algorithm in lvlpath that emits a predecessor table.
//
// Overview:
//
//   - Reconstruct(prev, source, dest) walks the table backward from dest and
//     returns the forward vertex sequence. An unreached destination yields an
//     empty path and a nil error: absence of a path is a normal outcome,
//     deliberately distinct from malformed input.
//   - Cost(g, path) re-sums the cheapest edge weights along a path so tests
//     and callers can confirm a reconstructed path matches its reported
//     distance.
//
// The backward walk is an explicit loop with a visited guard rather than
// recursion: a predecessor table corrupted into a cycle is detected and
// reported as ErrCyclicPredecessors instead of growing the stack without
// bound.
//
// Predecessor table conventions (shared across dijkstra, bellmanford, astar):
//
//	prev[v] == u  – the shortest path to v arrives from u.
//	prev[v] == "" – v is the source, or v was never reached.
package paths
