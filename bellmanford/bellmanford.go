// Package bellmanford implements the Bellman–Ford single-source shortest-path
// algorithm: slower than Dijkstra, but correct in the presence of negative
// edge weights, and able to prove when "shortest path" is undefined because a
// negative-weight cycle is reachable from the source.
//
// Complexity:
//
//   - Time:  O(V · E) — up to |V|−1 full passes over the arc list, each O(E),
//     plus one detection pass. Graphs that stabilize early terminate sooner.
//   - Space: O(V) for the distance and predecessor tables.
package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// BellmanFord computes shortest distances from the source vertex
// (Options.Source) to all other vertices in the weighted graph g.
// Negative edge weights are legal input; a negative-weight cycle reachable
// from the source is reported as ErrNegativeCycle with no tables returned.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (core.Infinite() if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v arrives from u.
//     For the source and unreachable vertices, prev[v] == "".
//   - err:  validation error, ErrNegativeCycle, or the context's error if
//     cancelled between passes.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//
// Algorithm:
//
//	Relax every arc in a fixed deterministic order (core.Edges is sorted),
//	|V|−1 times, stopping early when a full pass changes nothing. One extra
//	pass then probes for further improvement: any hit proves a reachable
//	negative cycle. A negative self-loop relaxes itself and is therefore
//	detected as a cycle of length 1.
func BellmanFord(g *core.Graph, opts ...Option) (map[string]core.Distance, map[string]string, error) {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided.
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil.
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 4) Validate Source exists in the graph.
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// 5) Snapshot the vertex and arc lists once. Both are sorted, which fixes
	//    the relaxation order and with it the predecessor choice among
	//    equal-cost paths — reruns produce identical tables.
	vertices := g.Vertices()
	edges := g.Edges()
	n := len(vertices)

	// 6) Initialize tables: every vertex starts unreached except the source.
	dist := make(map[string]core.Distance, n)
	var prev map[string]string
	if cfg.ReturnPath {
		prev = make(map[string]string, n)
	}
	for _, v := range vertices {
		dist[v] = core.Infinite()
		if prev != nil {
			prev[v] = ""
		}
	}
	dist[cfg.Source] = core.NewDistance(0)

	// 7) Main loop: |V|−1 full relaxation passes with early exit.
	for pass := 1; pass < n; pass++ {
		// Cancellation check once per pass: the external-deadline hook for
		// callers that must bound the O(V·E) worst case.
		select {
		case <-cfg.Ctx.Done():
			return nil, nil, cfg.Ctx.Err()
		default:
		}

		if !relaxAll(edges, dist, prev) {
			// A full pass with no improvement: distances have stabilized,
			// further passes cannot change anything.
			break
		}
	}

	// 8) Detection pass: after |V|−1 passes every shortest simple path is
	//    settled, so any remaining improvement can only come from a
	//    negative-weight cycle reachable from the source.
	for _, e := range edges {
		if dist[e.From].Add(e.Weight).Less(dist[e.To]) {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d still relaxes", ErrNegativeCycle, e.From, e.To, e.Weight)
		}
	}

	return dist, prev, nil
}

// relaxAll performs one full pass over the arc list, improving distances
// where a strictly cheaper path is found. Reports whether anything changed.
//
// Arcs out of unreached vertices are skipped: Infinite is absorbing under
// Add, so they could never produce a finite improvement anyway.
func relaxAll(edges []core.Edge, dist map[string]core.Distance, prev map[string]string) bool {
	changed := false
	for _, e := range edges {
		if dist[e.From].IsInfinite() {
			continue
		}
		cand := dist[e.From].Add(e.Weight)
		if cand.Less(dist[e.To]) {
			dist[e.To] = cand
			if prev != nil {
				prev[e.To] = e.From
			}
			changed = true
		}
	}

	return changed
}
