package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/hillpath/heightmap"
	"github.com/katalvlaran/hillpath/metrics"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrUnknownFrontier indicates a frontier name ParseFrontier does not know.
	ErrUnknownFrontier = errors.New("dijkstra: unknown frontier")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Adjacency is the read-only graph view searched by this package.
// *gridgraph.Graph satisfies it.
type Adjacency interface {
	Neighbors(n heightmap.Node) []heightmap.Node
}

// Frontier selects the priority-queue implementation.
type Frontier int

const (
	// FrontierHeap orders entries in a container/heap binary heap.
	FrontierHeap Frontier = iota
	// FrontierBTree orders entries in a tidwall/btree B-tree.
	FrontierBTree
)

// String returns the name accepted by ParseFrontier.
func (f Frontier) String() string {
	switch f {
	case FrontierHeap:
		return "heap"
	case FrontierBTree:
		return "btree"
	default:
		return fmt.Sprintf("Frontier(%d)", int(f))
	}
}

// ParseFrontier maps "heap" or "btree" (case-insensitive) to a Frontier.
func ParseFrontier(s string) (Frontier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "heap", "":
		return FrontierHeap, nil
	case "btree":
		return FrontierBTree, nil
	default:
		return FrontierHeap, fmt.Errorf("%w: %q", ErrUnknownFrontier, s)
	}
}

// Options configures Search and MultiSource.
type Options struct {
	Frontier    Frontier                         // priority-queue implementation
	MaxDistance int                              // paths longer than this are not explored
	OnRelax     func(n heightmap.Node, dist int) // every distance-table write, source included
	OnPop       func(n heightmap.Node, dist int) // every frontier pop, stale entries included
	Metrics     *metrics.Recorder                // optional; nil records nothing
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns Options with a heap frontier, no distance cap and
// no-op hooks.
func DefaultOptions() Options {
	return Options{
		Frontier:    FrontierHeap,
		MaxDistance: math.MaxInt,
		OnRelax:     func(heightmap.Node, int) {},
		OnPop:       func(heightmap.Node, int) {},
	}
}

// WithFrontier selects the frontier implementation.
func WithFrontier(f Frontier) Option {
	return func(o *Options) {
		o.Frontier = f
	}
}

// WithMaxDistance caps the explored distance. Nodes farther than max are
// never reached. Panics with ErrBadMaxDistance for negative values.
func WithMaxDistance(max int) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithOnRelax registers a callback for distance-table writes.
func WithOnRelax(fn func(n heightmap.Node, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithOnPop registers a callback for frontier pops.
func WithOnPop(fn func(n heightmap.Node, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// WithMetrics attaches a Prometheus recorder.
func WithMetrics(r *metrics.Recorder) Option {
	return func(o *Options) {
		o.Metrics = r
	}
}
