// Package paths turns the predecessor tables produced by the shortest-path
// algorithms into concrete vertex sequences, and can verify a path's total
// cost against the graph it came from.
package paths

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// ErrCyclicPredecessors indicates a corrupted predecessor table whose chain
// revisits a vertex. A table written by one algorithm run can never cycle;
// this guard catches tables that were mixed, truncated, or hand-edited.
var ErrCyclicPredecessors = errors.New("paths: predecessor chain contains a cycle")

// Reconstruct walks prev backward from dest until it reaches source or a
// vertex with no predecessor, then returns the path source→…→dest in forward
// order.
//
// Outcomes:
//   - dest reachable: the full vertex sequence, starting with source.
//   - dest == source: the one-element path [source].
//   - chain ends before source: nil, nil — absence of a path is a normal
//     outcome, not an error.
//   - chain revisits a vertex: ErrCyclicPredecessors (defensive guard).
//
// The walk is an explicit loop with a visited set, never recursion, so a
// corrupted table cannot blow the stack.
//
// Complexity: O(L) time and space, L = path length.
func Reconstruct(prev map[string]string, source, dest string) ([]string, error) {
	if source == "" || dest == "" {
		return nil, core.ErrEmptyVertexID
	}

	// 1) Walk backward, collecting vertices in reverse order.
	reversed := []string{dest}
	visited := map[string]bool{dest: true}
	cur := dest
	for cur != source {
		p := prev[cur]
		if p == "" {
			// Chain ended before reaching source: dest is unreached.
			return nil, nil
		}
		if visited[p] {
			return nil, fmt.Errorf("%w: revisited %q walking back from %q", ErrCyclicPredecessors, p, dest)
		}
		visited[p] = true
		reversed = append(reversed, p)
		cur = p
	}

	// 2) Reverse in place to obtain source→dest order.
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	return reversed, nil
}

// Cost sums the cheapest edge weight along each consecutive pair of path and
// returns the total as a finite Distance. It is the round-trip check for a
// reconstructed path: the result must equal the distance the algorithm
// reported.
//
// An empty or single-vertex path costs zero. A missing vertex propagates
// core.ErrVertexNotFound; a missing hop propagates core.ErrEdgeNotFound.
//
// Complexity: O(Σ deg(v)) over the path's vertices.
func Cost(g *core.Graph, path []string) (core.Distance, error) {
	if len(path) < 2 {
		return core.NewDistance(0), nil
	}

	total := core.NewDistance(0)
	for i := 0; i < len(path)-1; i++ {
		u, v := path[i], path[i+1]

		edges, err := g.Neighbors(u)
		if err != nil {
			return core.Infinite(), fmt.Errorf("paths: cost of hop %q→%q: %w", u, v, err)
		}

		// Parallel edges: relaxation always rides the cheapest one.
		best, found := int64(0), false
		for _, e := range edges {
			if e.To != v {
				continue
			}
			if !found || e.Weight < best {
				best, found = e.Weight, true
			}
		}
		if !found {
			return core.Infinite(), fmt.Errorf("paths: no edge %q→%q: %w", u, v, core.ErrEdgeNotFound)
		}
		total = total.Add(best)
	}

	return total, nil
}
