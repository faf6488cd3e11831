package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/hillpath/heightmap"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start node is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a node the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Adjacency is the read-only graph view BFS walks.
// *gridgraph.Graph satisfies it.
type Adjacency interface {
	Neighbors(n heightmap.Node) []heightmap.Node
	HasNode(n heightmap.Node) bool
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, before visiting.
	OnEnqueue func(n heightmap.Node, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(n heightmap.Node, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(n heightmap.Node, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip steps by returning false.
	FilterNeighbor func(curr, next heightmap.Node) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth
// limit, no filtering and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(heightmap.Node, int) {},
		OnDequeue:      func(heightmap.Node, int) {},
		OnVisit:        func(heightmap.Node, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ heightmap.Node) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(n heightmap.Node, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(n heightmap.Node, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(n heightmap.Node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips steps when fn returns false.
func WithFilterNeighbor(fn func(curr, next heightmap.Node) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	Order  []heightmap.Node
	Depth  map[heightmap.Node]int
	Parent map[heightmap.Node]heightmap.Node
}

// PathTo reconstructs the node sequence from the start to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest heightmap.Node) ([]heightmap.Node, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	path := []heightmap.Node{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
