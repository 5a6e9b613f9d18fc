// Edge operations: AddEdge, Neighbors, Edges, HasEdge, EdgeCount.
//
// Undirected edges are mirrored at insertion time: after construction the
// graph only knows directed arcs. Duplicate edges and
// self-loops are accepted without error; relaxation in the algorithms keeps
// whichever parallel edge is cheapest because updates require strict
// improvement.
package core

import "sort"

// AddEdge creates an edge from→to with the given weight.
// Endpoints are auto-registered if absent. The edge takes the graph's default
// orientation unless overridden with WithEdgeDirected. Undirected edges are
// stored as two mirrored records unless from == to.
//
// Steps:
//  1. Validate IDs (ErrEmptyVertexID).
//  2. Ensure both endpoints exist.
//  3. Resolve orientation: graph default, then per-edge overrides.
//  4. Append the From→To record; mirror To→From when undirected.
//
// Complexity: O(1) amortized.
// Concurrency: acquires the write lock.
func (g *Graph) AddEdge(from, to string, weight int64, opts ...EdgeOption) error {
	// 1) Input validation.
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Ensure endpoints exist (auto-registration is part of the contract).
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 3) Resolve per-edge orientation.
	cfg := edgeConfig{directed: g.directed}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 4) Store the forward record, then the mirror for undirected edges.
	g.adjacency[from] = append(g.adjacency[from], Edge{
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: cfg.directed,
	})
	if !cfg.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], Edge{
			From:     to,
			To:       from,
			Weight:   weight,
			Directed: false,
		})
	}
	g.edgeCount++

	return nil
}

// Neighbors returns the outgoing edges of id in insertion order.
// Mirrored halves of undirected edges appear in both endpoints' lists, so
// callers never need to reason about orientation themselves.
//
// Returns ErrEmptyVertexID for the empty string and ErrVertexNotFound when
// the vertex is absent. The slice is a fresh copy; callers may retain it.
//
// Complexity: O(d) where d is the out-degree of id.
// Concurrency: acquires the read lock.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]Edge, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, nil
}

// Edges returns every stored edge record in a fixed deterministic order:
// sorted by (From, To, Weight). Each undirected edge contributes two records,
// one per direction, which is exactly the arc set relaxation passes iterate.
//
// Complexity: O(E log E)
// Concurrency: acquires the read lock.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	var out []Edge
	for _, bucket := range g.adjacency {
		out = append(out, bucket...)
	}
	g.mu.RUnlock()

	// Deterministic relaxation order is a correctness aid for reproducible
	// predecessor tables, not for distances.
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}

		return out[i].Weight < out[j].Weight
	})

	return out
}

// HasEdge reports whether at least one edge record from→to exists.
// Undirected edges answer true in both directions.
//
// Complexity: O(d) where d is the out-degree of from.
// Concurrency: acquires the read lock.
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.adjacency[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// EdgeCount returns the number of logical edges added via AddEdge
// (an undirected edge counts once, not twice).
//
// Complexity: O(1)
// Concurrency: acquires the read lock.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
