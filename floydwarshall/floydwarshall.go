package floydwarshall

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// FloydWarshall computes all-pairs shortest distances over g and returns
// them as an immutable Matrix keyed by sorted vertex order.
//
// Steps:
//  1. Validate the input graph.
//  2. Seed the distance buffer: 0 on the diagonal, the cheapest direct
//     edge off-diagonal, Infinite elsewhere.
//  3. Run the triple loop in fixed k → i → j order, skipping infinite
//     intermediate legs, relaxing on strict improvement only.
//  4. Scan the diagonal: any negative self-distance proves a negative
//     cycle and fails the whole run.
//
// Complexity: O(V³) time, O(V²) memory (2·O(V²) with path tracking).
func FloydWarshall(g *core.Graph, opts ...Option) (*Matrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Fix the vertex order once; it defines matrix indices.
	ids := g.Vertices()
	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	// 2) Seed distances. The zero value of core.Distance is Infinite, so a
	//    fresh buffer already means "no path" everywhere.
	dist := make([]core.Distance, n*n)
	var next []int
	if o.TrackPaths {
		next = make([]int, n*n)
		for i := range next {
			next[i] = -1
		}
	}
	for i := 0; i < n; i++ {
		dist[i*n+i] = core.NewDistance(0)
		if next != nil {
			next[i*n+i] = i
		}
	}
	for _, e := range g.Edges() {
		i, j := index[e.From], index[e.To]
		cand := core.NewDistance(e.Weight)
		if cand.Less(dist[i*n+j]) { // keep the cheapest parallel edge
			dist[i*n+j] = cand
			if next != nil {
				next[i*n+j] = j
			}
		}
	}

	// 3) Closure in fixed k → i → j order.
	for k := 0; k < n; k++ {
		kn := k * n
		for i := 0; i < n; i++ {
			ik := dist[i*n+k]
			if ik.IsInfinite() {
				continue // i cannot reach k; no path via k exists
			}
			in := i * n
			for j := 0; j < n; j++ {
				kj := dist[kn+j]
				if kj.IsInfinite() {
					continue
				}
				w, _ := kj.Value()
				cand := ik.Add(w)
				if cand.Less(dist[in+j]) {
					dist[in+j] = cand
					if next != nil {
						next[in+j] = next[in+k]
					}
				}
			}
		}
	}

	// 4) A vertex cheaper to reach from itself than staying put sits on
	//    a negative cycle; no pair distances are well-defined then.
	for i := 0; i < n; i++ {
		if dist[i*n+i].Negative() {
			return nil, fmt.Errorf("%w: via vertex %s", ErrNegativeCycle, ids[i])
		}
	}

	return &Matrix{ids: ids, index: index, dist: dist, next: next}, nil
}
