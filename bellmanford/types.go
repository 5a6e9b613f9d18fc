// Package bellmanford defines configuration options and sentinel errors for
// the Bellman–Ford single-source shortest-path algorithm.
package bellmanford

import (
	"context"
	"errors"
)

// Sentinel errors returned by the BellmanFord implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("bellmanford: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to BellmanFord.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("bellmanford: source vertex not found in graph")

	// ErrNegativeCycle indicates that a negative-weight cycle is reachable
	// from the source. Distances through such a cycle are unbounded below,
	// so no table is returned: callers must branch on this error before
	// trusting any distance value.
	ErrNegativeCycle = errors.New("bellmanford: negative-weight cycle reachable from source")
)

// Options configures the behavior of the BellmanFord algorithm.
//
// Source     – starting vertex ID (must be non-empty and present in the graph).
// ReturnPath – if true, return the predecessor map; otherwise prev map is nil.
// Ctx        – checked once per relaxation pass; lets callers bound the
//
//	O(V·E) worst case with a deadline or cancellation signal.
type Options struct {
	Source     string          // The ID of the source vertex
	ReturnPath bool            // Whether to return the predecessor map
	Ctx        context.Context // Cancellation/deadline hook, checked between passes
}

// Option represents a functional option for configuring BellmanFord.
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

// WithContext sets a custom context for cancellation. The context is polled
// between full relaxation passes, so cancellation latency is one pass (O(E)).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source vertex ID.
//
// Defaults:
//   - Source:     <as passed> (no validation here; validated in BellmanFord).
//   - ReturnPath: false (predecessor map not returned).
//   - Ctx:        context.Background() (never cancelled).
func DefaultOptions(source string) Options {
	return Options{
		Source:     source,
		ReturnPath: false,
		Ctx:        context.Background(),
	}
}
