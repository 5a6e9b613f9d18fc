package astar

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/paths"
	"github.com/katalvlaran/lvlpath/pqueue"
)

// AStar searches for a cheapest path from Start to Goal, steering the
// frontier by f(v) = g(v) + h(v): known cost so far plus the heuristic
// estimate of the remainder. With an admissible h the returned path is
// optimal; with h ≡ 0 the search is plain Dijkstra.
//
// Returns the route (start..goal inclusive), its total cost, and an error.
// An unreachable goal is a normal outcome: (nil, Infinite(), nil).
//
// Steps:
//  1. Validate graph, heuristic, start and goal; reject negative weights.
//  2. Seed g(start)=0 and push start with priority h(start).
//  3. Pop the lowest-f vertex; the goal pop ends the search.
//  4. Relax outgoing edges on strict improvement, re-keying the open set.
func AStar(g *core.Graph, h Heuristic, opts ...Option) ([]string, core.Distance, error) {
	o := DefaultOptions("", "")
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Validation, cheapest checks first.
	if o.Start == "" {
		return nil, core.Infinite(), ErrEmptyStart
	}
	if o.Goal == "" {
		return nil, core.Infinite(), ErrEmptyGoal
	}
	if g == nil {
		return nil, core.Infinite(), ErrNilGraph
	}
	if h == nil {
		return nil, core.Infinite(), ErrNilHeuristic
	}
	if !g.HasVertex(o.Start) {
		return nil, core.Infinite(), fmt.Errorf("%w: start %q", ErrVertexNotFound, o.Start)
	}
	if !g.HasVertex(o.Goal) {
		return nil, core.Infinite(), fmt.Errorf("%w: goal %q", ErrVertexNotFound, o.Goal)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, core.Infinite(), fmt.Errorf("%w: %s→%s weight=%d",
				ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 2) Tables. The zero value of core.Distance is Infinite, so fresh map
	//    lookups already read as "not yet reached".
	gScore := map[string]core.Distance{o.Start: core.NewDistance(0)}
	prev := map[string]string{o.Start: ""}
	closed := make(map[string]struct{})

	open := pqueue.New()
	open.Insert(o.Start, h(o.Start))

	expansions := 0
	for open.Len() > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, core.Infinite(), o.Ctx.Err()
		default:
		}

		u, _, err := open.ExtractMin()
		if err != nil {
			panic("astar: extract from non-empty queue failed: " + err.Error())
		}

		// 3) Goal pop: g(goal) is final, reconstruct and return.
		if u == o.Goal {
			route, rerr := paths.Reconstruct(prev, o.Start, o.Goal)
			if rerr != nil {
				return nil, core.Infinite(), rerr
			}

			return route, gScore[u], nil
		}

		closed[u] = struct{}{}
		expansions++
		if expansions > o.MaxExpansions {
			return nil, core.Infinite(), fmt.Errorf("%w: %d vertices finalized",
				ErrExpansionLimit, o.MaxExpansions)
		}

		// 4) Relax outgoing edges.
		edges, nerr := g.Neighbors(u)
		if nerr != nil {
			return nil, core.Infinite(), nerr
		}
		for _, e := range edges {
			if _, done := closed[e.To]; done {
				continue
			}
			tentative := gScore[u].Add(e.Weight)
			if !tentative.Less(gScore[e.To]) {
				continue
			}
			gScore[e.To] = tentative
			prev[e.To] = u
			gv, _ := tentative.Value() // finite: built by Add from finite g(u)
			open.Insert(e.To, gv+h(e.To))
		}
	}

	// Open set drained without popping the goal: no path exists.
	return nil, core.Infinite(), nil
}
