package astar

import (
	"context"
	"errors"
	"math"
)

var (
	// ErrEmptyStart is returned when no start vertex was supplied.
	ErrEmptyStart = errors.New("astar: start vertex is empty")
	// ErrEmptyGoal is returned when no goal vertex was supplied.
	ErrEmptyGoal = errors.New("astar: goal vertex is empty")
	// ErrNilGraph is returned when the input graph is nil.
	ErrNilGraph = errors.New("astar: graph is nil")
	// ErrNilHeuristic is returned when the heuristic function is nil.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")
	// ErrVertexNotFound is returned when start or goal is absent from the graph.
	ErrVertexNotFound = errors.New("astar: vertex not found")
	// ErrNegativeWeight is returned when the graph carries a negative edge.
	ErrNegativeWeight = errors.New("astar: negative edge weight")
	// ErrExpansionLimit is returned when the search pops more vertices than
	// WithMaxExpansions allows before reaching the goal.
	ErrExpansionLimit = errors.New("astar: expansion limit exceeded")
)

// Heuristic estimates the remaining cost from a vertex to the goal. For the
// returned path to be optimal the estimate must be admissible: it never
// exceeds the true remaining distance. h ≡ 0 degrades the search to
// Dijkstra and is always safe.
type Heuristic func(id string) int64

// Options configures an AStar run.
type Options struct {
	// Start is the search origin. Required.
	Start string
	// Goal is the search target. Required.
	Goal string
	// MaxExpansions caps how many vertices may be finalized before the run
	// aborts with ErrExpansionLimit. Defaults to no practical limit.
	MaxExpansions int
	// Ctx bounds the run; it is polled once per expansion.
	Ctx context.Context
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration for a start/goal pair.
func DefaultOptions(start, goal string) Options {
	return Options{
		Start:         start,
		Goal:          goal,
		MaxExpansions: math.MaxInt,
		Ctx:           context.Background(),
	}
}

// Start sets the search origin.
func Start(id string) Option {
	return func(o *Options) { o.Start = id }
}

// Goal sets the search target.
func Goal(id string) Option {
	return func(o *Options) { o.Goal = id }
}

// WithMaxExpansions caps the number of finalized vertices.
// Panics if n <= 0.
func WithMaxExpansions(n int) Option {
	if n <= 0 {
		panic("astar: WithMaxExpansions requires n > 0")
	}

	return func(o *Options) { o.MaxExpansions = n }
}

// WithContext bounds the search with ctx; a nil ctx keeps the default.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
