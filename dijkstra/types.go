// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// The algorithm maintains a priority queue of vertices to explore and
// relaxes edges in increasing order of distance from the source vertex.
//
// Options:
//
//	– Source:           ID of the starting vertex (must be non-empty and present in the graph).
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	// Negative weights violate Dijkstra's contract; the violation is reported
	// up front rather than allowed to produce silently wrong distances.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	Source           string // The ID of the source vertex
	ReturnPath       bool   // Whether to return the predecessor map
	MaxDistance      int64  // Maximum distance to explore
	InfEdgeThreshold int64  // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
// Default (if not set) is math.MaxInt64 (no cap).
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Edges with weight ≥ threshold are skipped entirely.
// Must pass a positive value; zero or negative panic with ErrBadInfThreshold.
// Default (if not set) is math.MaxInt64 (no edges treated as impassable).
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source vertex ID. Use this as a starting point for further
// functional-options overrides.
//
// Defaults:
//   - Source:           <as passed> (no validation here; validated in Dijkstra).
//   - ReturnPath:       false (predecessor map not returned).
//   - MaxDistance:      math.MaxInt64 (no distance limit; explore all reachable).
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable).
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
