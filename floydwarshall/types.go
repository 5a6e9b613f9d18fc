package floydwarshall

import "errors"

var (
	// ErrNilGraph is returned when the input graph is nil.
	ErrNilGraph = errors.New("floydwarshall: graph is nil")
	// ErrNegativeCycle is returned when some diagonal entry turns negative
	// after closure, i.e. a vertex can reach itself at negative total cost.
	ErrNegativeCycle = errors.New("floydwarshall: negative cycle detected")
	// ErrVertexNotFound is returned by Matrix lookups for unknown vertex IDs.
	ErrVertexNotFound = errors.New("floydwarshall: vertex not found")
)

// Options configures a FloydWarshall run.
type Options struct {
	// TrackPaths enables the next-hop matrix, allowing Matrix.Path to
	// reconstruct a concrete route for any reachable pair. Costs one extra
	// O(V²) table.
	TrackPaths bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: distances only.
func DefaultOptions() Options {
	return Options{TrackPaths: false}
}

// WithPathTracking records next hops during closure so routes can be
// reconstructed afterwards.
func WithPathTracking() Option {
	return func(o *Options) { o.TrackPaths = true }
}
