// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using the indexed
// min-heap from pqueue, relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted from the heap exactly once: V extractions.
//   - Each edge relaxation either inserts or decrease-keys: up to E heap updates.
//   - Each heap operation costs O(log V); the heap never exceeds V entries
//     because decrease-key updates in place instead of pushing duplicates.
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - Relaxation uses true decrease-key via the queue's key→index map, so the
//     heap holds at most one entry per vertex and no stale entries exist.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/pqueue"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in the weighted graph g. It accepts functional options
// to customize behavior (ReturnPath, MaxDistance, InfEdgeThreshold).
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (core.Infinite() if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For the source and unreachable vertices, prev[v] == "".
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]core.Distance, map[string]string, error) {
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

	// 5) Pre-scan all edges to detect negative weights. Fail fast: a negative
	//    weight is a contract violation, not a recoverable runtime state.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 6) Prepare per-run state. Tables are fresh each invocation; the engine
	//    holds no state between calls.
	vertices := g.Vertices()
	n := len(vertices)

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]core.Distance, n),
		visited: make(map[string]bool, n),
		pq:      pqueue.NewWithCapacity(n),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, n)
	}

	// 7) Initialize state and run the main loop.
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph              // The input graph; read-only within Dijkstra.
	options Options                  // Configuration (Source, thresholds, etc.).
	dist    map[string]core.Distance // vertex ID → current best distance from Source.
	prev    map[string]string        // vertex ID → predecessor on the shortest path (nil unless ReturnPath).
	visited map[string]bool          // tracks if a vertex's distance is finalized.
	pq      *pqueue.MinPriorityQueue // indexed min-heap keyed by vertex ID.
}

// init sets up initial distances and predecessors, and seeds the heap with Source=0.
func (r *runner) init(vertices []string) {
	// 1) dist[v] = Infinite for all vertices; prev[v] = "" when tracked.
	for _, v := range vertices {
		r.dist[v] = core.Infinite()
		if r.prev != nil {
			r.prev[v] = "" // no predecessor yet
		}
	}

	// 2) Distance to the source is zero.
	r.dist[r.options.Source] = core.NewDistance(0)

	// 3) Seed the heap with the source vertex at priority 0.
	r.pq.Insert(r.options.Source, 0)
}

// process is the core loop. It repeatedly extracts the vertex with the
// minimum distance from the source and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance (no need to explore farther).
//
// Each vertex is finalized exactly once; that is the invariant the tests pin down.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the closest unfinalized vertex. ErrEmptyQueue is impossible
		//    under the loop condition; treat it as the invariant breach it is.
		u, d, err := r.pq.ExtractMin()
		if err != nil {
			panic(err)
		}

		// 2) If this distance exceeds MaxDistance, stop exploring entirely:
		//    every remaining heap entry is at least this far away.
		if d > r.options.MaxDistance {
			break
		}

		// 3) Mark u finalized. Its shortest distance d is now final.
		r.visited[u] = true

		// 4) Relax all outgoing edges of u.
		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge outgoing from vertex u and improves neighbor
// distances where a strictly cheaper path is found. Improvements go through
// the queue's insert-or-decrease-key path, so each vertex occupies at most
// one heap slot.
//
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u string) error {
	// 1) Outgoing edges of u. Undirected edges were mirrored at insertion,
	//    so every record here genuinely leaves u.
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	// 2) Attempt relaxation along each edge.
	for _, e := range neighbors {
		v, w := e.To, e.Weight

		// Skip edges marked impassable by InfEdgeThreshold.
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		// Safety net: the pre-scan already rejected negative weights.
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, u, v, w)
		}

		// Finalized vertices cannot improve: their distance is settled.
		if r.visited[v] {
			continue
		}

		// Candidate distance Source → … → u → v. dist[u] is finite here.
		newDist := r.dist[u].Add(w)

		// Respect the exploration cap.
		if nd, _ := newDist.Value(); nd > r.options.MaxDistance {
			continue
		}

		// Strict improvement only: equal-cost alternatives keep the first
		// predecessor found, which keeps reruns deterministic.
		if !newDist.Less(r.dist[v]) {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}

		// Insert-or-decrease-key: the queue repositions v in O(log n) via
		// its key→index map instead of accumulating stale duplicates.
		nd, _ := newDist.Value()
		r.pq.Insert(v, nd)
	}

	return nil
}
