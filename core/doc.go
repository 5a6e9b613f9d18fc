// Package core provides the in-memory weighted Graph implementation shared
// by every shortest-path algorithm in lvlpath, plus the Distance type that
// makes "unreachable" a first-class value.
//
// The Graph G = (V,E) keeps the surface deliberately small:
//
//   - Directed vs. undirected default orientation (WithDirected)
//   - Per-edge orientation overrides (WithEdgeDirected)
//   - Undirected edges mirrored at insertion time: after construction the
//     graph only knows directed arcs, so algorithms never branch on
//     orientation
//   - Self-loops and parallel edges always accepted — relaxation keeps the
//     cheapest parallel edge because updates require strict improvement, and
//     a negative self-loop is a legitimate length-1 negative cycle
//   - One sync.RWMutex: concurrent reads by independent queries are safe;
//     mutating while a query runs is the caller's to prevent (Clone it)
//
// Deterministic iteration — Vertices() is sorted lexicographically, Edges()
// is sorted by (From, To, Weight), Neighbors() preserves insertion order —
// so repeated runs of any algorithm produce identical tables.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1), idempotent
//	HasVertex(id string) bool           // O(1)
//
//	// Edge lifecycle
//	AddEdge(from,to string, weight int64, opts ...EdgeOption) error // O(1) amortized
//	HasEdge(from,to string) bool        // O(deg(from))
//
//	// Query
//	Neighbors(id string) ([]Edge, error) // O(d), insertion order
//	Vertices() []string                  // O(V log V), sorted
//	Edges() []Edge                       // O(E log E), sorted arc list
//	VertexCount() int                    // O(1)
//	EdgeCount() int                      // O(1), logical edges
//
//	// Cloning
//	Clone() *Graph                       // O(V+E) deep copy
//
// Distance:
//
//	Distances are a tagged union Finite(int64) | Infinite rather than a magic
//	large constant, so Infinite.Add(w) stays Infinite and arithmetic can never
//	overflow into a finite-looking wrong answer. The zero value is Infinite,
//	which makes map lookups of untouched vertices correct by default.
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrEdgeNotFound   – missing edge
package core
