// Cloning: the supported way to run queries against a stable snapshot while
// another goroutine keeps mutating the original graph.
package core

// Clone returns a deep copy of the graph: same flags, same vertices, same
// edge records. Mutations on the clone never affect the original.
//
// Complexity: O(V + E)
// Concurrency: acquires the read lock on the source graph.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed:  g.directed,
		vertices:  make(map[string]struct{}, len(g.vertices)),
		adjacency: make(map[string][]Edge, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}
	for id, bucket := range g.adjacency {
		if bucket == nil {
			c.adjacency[id] = nil
			continue
		}
		cp := make([]Edge, len(bucket))
		copy(cp, bucket)
		c.adjacency[id] = cp
	}

	return c
}
