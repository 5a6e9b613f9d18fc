// Package floydwarshall computes all-pairs shortest paths on a weighted
// core.Graph via the Floyd–Warshall dynamic program.
//
// # Overview
//
// FloydWarshall fixes a sorted vertex order, seeds an n×n distance table
// from the cheapest direct edges, then closes it with the classic triple
// loop in deterministic k → i → j order. Negative edge weights are fine;
// a negative cycle anywhere in the graph makes pair distances undefined
// and fails the run with ErrNegativeCycle.
//
// The result is an immutable Matrix. With WithPathTracking enabled the run
// also records next hops, and Matrix.Path reconstructs a concrete shortest
// route for any pair.
//
// # When to use
//
// Dense graphs, or workloads that query many source/destination pairs
// against a single precomputed closure. For one source, dijkstra (fast,
// non-negative weights) or bellmanford (negative weights) is cheaper.
//
// # Complexity
//
//   - Time:   O(V³)
//   - Memory: O(V²), doubled when path tracking is on
//
// # Errors
//
//   - ErrNilGraph       — the input graph is nil.
//   - ErrNegativeCycle  — some vertex reaches itself at negative cost.
//   - ErrVertexNotFound — Matrix lookup with an unknown vertex ID.
//
// # Quick example
//
//	m, err := floydwarshall.FloydWarshall(g, floydwarshall.WithPathTracking())
//	if err != nil { ... }
//	d, _ := m.Dist("A", "D")
//	route, _ := m.Path("A", "D")
//
// See also: dijkstra and bellmanford for single-source variants.
package floydwarshall
