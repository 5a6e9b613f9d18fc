// Package core defines the central Graph, Edge, and Distance types,
// and provides thread-safe primitives for building, querying, and cloning
// weighted graphs.
//
// All core APIs use a sync.RWMutex internally, so independent queries may
// read the same graph concurrently. Mutating a graph while a query is in
// flight is the caller's responsibility to prevent (clone or synchronize).
//
// This file declares Edge, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge represents a directed connection From→To with an int64 Weight.
//
// Undirected input edges are stored as two mirrored Edge records at insertion
// time; after construction the graph only knows directed arcs. Directed
// reports the orientation the edge was inserted with, so mirrored halves of
// an undirected edge carry Directed == false.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of traversing this edge. May be negative; each
	// algorithm documents its own weight-sign contract.
	Weight int64

	// Directed is false when this record is one half of an undirected edge.
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected). Per-edge overrides are applied
// with WithEdgeDirected at AddEdge time.
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*edgeConfig)

// edgeConfig collects per-edge overrides before the Edge records are built.
type edgeConfig struct {
	directed bool
}

// WithEdgeDirected overrides the Graph's default directedness for this edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(c *edgeConfig) { c.directed = directed }
}

// Graph is the core in-memory weighted graph data structure.
//
// Vertices are opaque string IDs. Self-loops and parallel edges are always
// legal inputs: shortest-path relaxation implicitly considers the cheapest
// parallel edge, and a negative self-loop is a valid length-1 negative cycle
// for the algorithms that detect such cycles.
//
// mu guards vertices, adjacency, and the edge counter.
type Graph struct {
	mu sync.RWMutex

	// directed is the default orientation applied to new edges.
	directed bool

	// vertices is the vertex catalog.
	vertices map[string]struct{}

	// adjacency[from] lists outgoing edges of from in insertion order.
	adjacency map[string][]Edge

	// edgeCount tracks logical edges (an undirected edge counts once).
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string][]Edge),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports the graph-wide default orientation applied to new edges.
// Per-edge overrides via WithEdgeDirected do not change this flag.
// Complexity: O(1)
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}
