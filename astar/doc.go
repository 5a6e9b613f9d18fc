// Package astar implements single-pair shortest-path search with the A*
// algorithm over a weighted core.Graph.
//
// # Overview
//
// A* is Dijkstra with a compass: every frontier vertex is ordered by
// f(v) = g(v) + h(v), where g is the cheapest known cost from the start
// and h is a caller-supplied estimate of the cost remaining to the goal.
// A good heuristic focuses the search toward the goal and skips large
// parts of the graph; h ≡ 0 removes the compass and the search behaves
// exactly like Dijkstra.
//
// # Admissibility
//
// Path optimality is guaranteed only when h never overestimates the true
// remaining distance. The package does not (and cannot cheaply) verify
// this; supplying an inadmissible heuristic trades correctness for speed
// and is the caller's call to make.
//
// # Outcomes
//
// An unreachable goal is not an error: the search returns
// (nil, core.Infinite(), nil). Errors are reserved for bad input
// (nil graph or heuristic, unknown vertices, negative weights) and for
// exceeded bounds (WithMaxExpansions, WithContext).
//
// # Complexity
//
//   - Time:   O((V + E) log V) worst case, typically far less with a
//     useful heuristic
//   - Memory: O(V)
//
// # Quick example
//
//	route, cost, err := astar.AStar(g, manhattan,
//	    astar.Start("A"), astar.Goal("D"))
//
// See also: dijkstra for single-source tables, bellmanford when weights
// may be negative.
package astar
