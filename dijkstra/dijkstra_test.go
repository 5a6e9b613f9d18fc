// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate correct behavior under various configurations, including
// basic functionality, directed graphs, mixed edges, MaxDistance, InfEdgeThreshold,
// and edge cases such as single-vertex, disconnected, and self-loop graphs.
package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/dijkstra"
	"github.com/katalvlaran/lvlpath/paths"
)

// wantDist asserts that dist[v] is the finite value want.
func wantDist(t *testing.T, dist map[string]core.Distance, v string, want int64) {
	t.Helper()
	got, ok := dist[v].Value()
	if !ok {
		t.Fatalf("dist[%s] = +Inf; want %d", v, want)
	}
	if got != want {
		t.Errorf("dist[%s] = %d; want %d", v, got, want)
	}
}

// wantInf asserts that dist[v] is the infinity sentinel.
func wantInf(t *testing.T, dist map[string]core.Distance, v string) {
	t.Helper()
	if !dist[v].IsInfinite() {
		t.Errorf("dist[%s] = %s; want +Inf (unreachable)", v, dist[v])
	}
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	// When no Source is provided (empty by default), Dijkstra should return ErrEmptySource.
	g := core.NewGraph()
	_, _, err := dijkstra.Dijkstra(g)
	if !errors.Is(err, dijkstra.ErrEmptySource) {
		t.Fatalf("Expected ErrEmptySource, got %v", err)
	}
}

func TestDijkstra_NilGraphWithoutSource(t *testing.T) {
	// If graph is nil and no Source is provided, ErrEmptySource has priority over ErrNilGraph.
	_, _, err := dijkstra.Dijkstra(nil)
	if !errors.Is(err, dijkstra.ErrEmptySource) {
		t.Fatalf("Expected ErrEmptySource when graph is nil and Source is empty, got %v", err)
	}
}

func TestDijkstra_NilGraphWithSource(t *testing.T) {
	// If graph is nil but Source is provided, Dijkstra should return ErrNilGraph.
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	if !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("Expected ErrNilGraph when graph is nil, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	// If the graph does not contain the Source vertex, return ErrVertexNotFound.
	g := core.NewGraph()
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("X"))
	if !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("Expected ErrVertexNotFound, got %v", err)
	}
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	// A negative weight anywhere in the graph is a contract violation,
	// caught by the O(E) pre-scan before any relaxation happens.
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", -5)
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("Expected ErrNegativeWeight, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: Small graphs, path correctness without and with ReturnPath.
// ------------------------------------------------------------------------

func TestDijkstra_SimpleTriangle_NoPath(t *testing.T) {
	// Graph: A—B(1), B—C(2), A—C(5), all undirected by default.
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 5)

	// Compute distances without requesting the predecessor map.
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}

	// Distance from A to C should be 3 via A→B→C.
	wantDist(t, dist, "C", 3)
	// prev should be nil when ReturnPath=false.
	if prev != nil {
		t.Errorf("expected nil predecessor map, got %v", prev)
	}
}

func TestDijkstra_QuadWithPath(t *testing.T) {
	// Reference scenario: edges (A,B,4), (A,C,1), (C,B,2), (B,D,1).
	// Shortest route to D costs 4 along A→C→B→D.
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("A", "C", 1)
	_ = g.AddEdge("C", "B", 2)
	_ = g.AddEdge("B", "D", 1)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	wantDist(t, dist, "A", 0)
	wantDist(t, dist, "C", 1)
	wantDist(t, dist, "B", 3)
	wantDist(t, dist, "D", 4)

	// Reconstruct and verify the concrete route.
	route, err := paths.Reconstruct(prev, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"A", "C", "B", "D"}
	if len(route) != len(want) {
		t.Fatalf("route = %v; want %v", route, want)
	}
	for i := range want {
		if route[i] != want[i] {
			t.Fatalf("route = %v; want %v", route, want)
		}
	}

	// Round-trip: summed edge weights along the route equal the reported distance.
	total, err := paths.Cost(g, route)
	if err != nil {
		t.Fatal(err)
	}
	if !total.Equal(dist["D"]) {
		t.Errorf("Cost(route) = %s; want %s", total, dist["D"])
	}
}

// ------------------------------------------------------------------------
// 3. Directed Graph Tests: Ensure correct handling of one-way edges.
// ------------------------------------------------------------------------

func TestDijkstra_MediumDirectedGraph(t *testing.T) {
	// Directed graph:
	// A→B(2), A→C(1), C→B(1), B→D(3), C→D(5)
	g := core.NewGraph(core.WithDirected(true))
	_ = g.AddEdge("A", "B", 2)
	_ = g.AddEdge("A", "C", 1)
	_ = g.AddEdge("C", "B", 1)
	_ = g.AddEdge("B", "D", 3)
	_ = g.AddEdge("C", "D", 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}

	// Expected: dist[B]=2 (via A→C→B), dist[C]=1, dist[D]=5 (via A→C→B→D).
	wantDist(t, dist, "C", 1)
	wantDist(t, dist, "B", 2)
	wantDist(t, dist, "D", 5)
	if prev != nil {
		t.Errorf("expected nil prev, got %v", prev)
	}
}

// ------------------------------------------------------------------------
// 4. Mixed Edges: Verify behavior when graph contains both directed and undirected edges.
// ------------------------------------------------------------------------

func TestDijkstra_MixedEdges(t *testing.T) {
	// Directed-by-default graph with one undirected override.
	g := core.NewGraph(core.WithDirected(true))
	_ = g.AddEdge("A", "B", 2)                                  // A→B (directed)
	_ = g.AddEdge("B", "C", 3, core.WithEdgeDirected(false))    // B—C (undirected)
	_ = g.AddEdge("C", "D", 1)                                  // C→D (directed)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	// Expected distances: A:0, B:2, C:5 (via A→B—C), D:6 (via A→B—C→D).
	wantDist(t, dist, "A", 0)
	wantDist(t, dist, "B", 2)
	wantDist(t, dist, "C", 5)
	wantDist(t, dist, "D", 6)

	// Check predecessor chain: B←A, C←B, D←C.
	if prev["B"] != "A" || prev["C"] != "B" || prev["D"] != "C" {
		t.Errorf("Unexpected predecessors: %v", prev)
	}
}

// ------------------------------------------------------------------------
// 5. MaxDistance Tests: Ensure that vertices with distance > MaxDistance are not explored.
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	// Linear graph: A—B(1)—C(1)—D(1)
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "D", 1)

	// Set MaxDistance = 1: only A and B are within threshold.
	dist, _, err := dijkstra.Dijkstra(
		g,
		dijkstra.Source("A"),
		dijkstra.WithMaxDistance(1),
	)
	if err != nil {
		t.Fatal(err)
	}

	wantDist(t, dist, "A", 0)
	wantDist(t, dist, "B", 1)
	wantInf(t, dist, "C")
	wantInf(t, dist, "D")
}

func TestDijkstra_MaxDistanceZero(t *testing.T) {
	// Graph: A—B(1). MaxDistance = 0: only the source itself is processed.
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)

	dist, _, err := dijkstra.Dijkstra(
		g,
		dijkstra.Source("A"),
		dijkstra.WithMaxDistance(0),
	)
	if err != nil {
		t.Fatal(err)
	}

	wantDist(t, dist, "A", 0)
	wantInf(t, dist, "B")
}

// ------------------------------------------------------------------------
// 6. InfEdgeThreshold Tests: Ensure “impassable” edges are skipped appropriately.
// ------------------------------------------------------------------------

func TestDijkstra_InfThresholdStopsHeavyEdge(t *testing.T) {
	// Graph: A—B(2), B—C(4), A—C(10)
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 2)
	_ = g.AddEdge("B", "C", 4)
	_ = g.AddEdge("A", "C", 10)

	// Set InfEdgeThreshold = 5: edges with weight ≥5 are skipped, so A—C(10) is ignored.
	dist, _, err := dijkstra.Dijkstra(
		g,
		dijkstra.Source("A"),
		dijkstra.WithInfEdgeThreshold(5),
	)
	if err != nil {
		t.Fatal(err)
	}

	// Now the shortest path from A to C is A→B→C with total cost 6.
	wantDist(t, dist, "C", 6)
}

// ------------------------------------------------------------------------
// 7. Edge Cases: Single vertex, Disconnected graph, Self-loop, Parallel edges.
// ------------------------------------------------------------------------

func TestDijkstra_SingleVertex_ReturnsZero(t *testing.T) {
	// Graph with a single vertex "Solo" and no edges.
	g := core.NewGraph()
	_ = g.AddVertex("Solo")

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("Solo"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	wantDist(t, dist, "Solo", 0)
	if p := prev["Solo"]; p != "" {
		t.Errorf("prev[Solo] = %q; want empty string", p)
	}
}

func TestDijkstra_DisconnectedVertexUnreachable(t *testing.T) {
	// Vertices {A, B}, no edges: dist[B] = +Inf and its path is empty.
	g := core.NewGraph()
	_ = g.AddVertex("A")
	_ = g.AddVertex("B")

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	wantDist(t, dist, "A", 0)
	wantInf(t, dist, "B")

	route, err := paths.Reconstruct(prev, "A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if len(route) != 0 {
		t.Errorf("route to unreachable B = %v; want empty", route)
	}
}

func TestDijkstra_SelfLoopZeroWeight(t *testing.T) {
	// Self-loop with weight 0 must not disturb the trivial answer.
	g := core.NewGraph()
	_ = g.AddEdge("X", "X", 0)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("X"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	wantDist(t, dist, "X", 0)
	if p := prev["X"]; p != "" {
		t.Errorf("prev[X] = %q; want empty string", p)
	}
}

func TestDijkstra_ParallelEdgesUseCheapest(t *testing.T) {
	// Two A→B edges: relaxation must settle on the cheaper one.
	g := core.NewGraph(core.WithDirected(true))
	_ = g.AddEdge("A", "B", 9)
	_ = g.AddEdge("A", "B", 4)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}

	wantDist(t, dist, "B", 4)
}

// ------------------------------------------------------------------------
// 8. Idempotence: rerunning over an unmodified graph yields identical tables.
// ------------------------------------------------------------------------

func TestDijkstra_Idempotent(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("A", "C", 1)
	_ = g.AddEdge("C", "B", 2)
	_ = g.AddEdge("B", "D", 1)

	dist1, prev1, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	dist2, prev2, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	for v, d := range dist1 {
		if !d.Equal(dist2[v]) {
			t.Errorf("dist[%s] differs across runs: %s vs %s", v, d, dist2[v])
		}
	}
	for v, p := range prev1 {
		if p != prev2[v] {
			t.Errorf("prev[%s] differs across runs: %q vs %q", v, p, prev2[v])
		}
	}
}
