package floydwarshall

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// Matrix is the result of a FloydWarshall run: an n×n table of shortest
// distances over a fixed, sorted vertex order, stored in a flat row-major
// buffer. When path tracking was enabled it also carries a next-hop table
// for route reconstruction.
//
// A Matrix is immutable after construction and safe for concurrent reads.
type Matrix struct {
	ids   []string       // sorted vertex IDs; position = matrix index
	index map[string]int // vertex ID → matrix index
	dist  []core.Distance
	next  []int // flat next-hop table; -1 = no hop; nil when tracking is off
}

// Order returns the number of vertices n.
func (m *Matrix) Order() int { return len(m.ids) }

// Vertices returns the vertex IDs in matrix order (sorted ascending).
// The returned slice is a copy.
func (m *Matrix) Vertices() []string {
	out := make([]string, len(m.ids))
	copy(out, m.ids)

	return out
}

// At returns the shortest distance between the i-th and j-th vertices in
// matrix order. Indices must be in [0, Order).
func (m *Matrix) At(i, j int) core.Distance {
	return m.dist[i*len(m.ids)+j]
}

// Dist returns the shortest distance from u to v by vertex ID.
func (m *Matrix) Dist(u, v string) (core.Distance, error) {
	i, ok := m.index[u]
	if !ok {
		return core.Infinite(), fmt.Errorf("%w: %q", ErrVertexNotFound, u)
	}
	j, ok := m.index[v]
	if !ok {
		return core.Infinite(), fmt.Errorf("%w: %q", ErrVertexNotFound, v)
	}

	return m.dist[i*len(m.ids)+j], nil
}

// Path reconstructs a shortest route from u to v by following next hops.
// It returns nil (with a nil error) when v is unreachable from u, and
// errors when an ID is unknown or the run did not track paths.
func (m *Matrix) Path(u, v string) ([]string, error) {
	if m.next == nil {
		return nil, fmt.Errorf("floydwarshall: path tracking disabled; rerun with WithPathTracking")
	}
	i, ok := m.index[u]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, u)
	}
	j, ok := m.index[v]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, v)
	}

	n := len(m.ids)
	if m.next[i*n+j] < 0 {
		return nil, nil // unreachable
	}

	// Walk forward hop by hop; the walk is bounded by n vertices because
	// next hops always follow a shortest path.
	route := []string{m.ids[i]}
	for i != j {
		i = m.next[i*n+j]
		route = append(route, m.ids[i])
	}

	return route, nil
}
