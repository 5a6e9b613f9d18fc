// Vertex catalog operations: AddVertex, HasVertex, Vertices, VertexCount.
//
// Vertices are opaque string IDs. Enumeration is sorted lexicographically so
// that every algorithm in this module sees vertices in a reproducible order.
package core

import "sort"

// AddVertex inserts the vertex with the given ID if absent.
// Adding an existing vertex is a no-op (idempotent by contract).
// Returns ErrEmptyVertexID for the empty string.
//
// Complexity: O(1)
// Concurrency: acquires the write lock.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id in the catalog and allocates its adjacency
// bucket. Caller must hold the write lock.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = struct{}{}
	// Bucket is created lazily on first edge; registering here keeps
	// Neighbors(id) valid for isolated vertices.
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}
}

// HasVertex reports whether the graph contains a vertex with the given ID.
//
// Complexity: O(1)
// Concurrency: acquires the read lock.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// The slice is freshly allocated; callers may retain or mutate it.
//
// Complexity: O(V log V)
// Concurrency: acquires the read lock.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	g.mu.RUnlock()

	// Sort outside the lock: the snapshot is already consistent.
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices currently in the graph.
//
// Complexity: O(1)
// Concurrency: acquires the read lock.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
