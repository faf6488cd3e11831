package hillclimb

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/hillpath/dijkstra"
	"github.com/katalvlaran/hillpath/heightmap"
	"github.com/katalvlaran/hillpath/metrics"
)

// Sentinel errors returned by the hillclimb package.
var (
	// ErrMissingStart indicates the map has no start marker.
	ErrMissingStart = errors.New("hillclimb: map has no start marker")

	// ErrMissingEnd indicates the map has no end marker.
	ErrMissingEnd = errors.New("hillclimb: map has no end marker")

	// ErrNoPath indicates the end cannot be reached from any candidate start.
	ErrNoPath = errors.New("hillclimb: no path to the end")
)

// Result holds both answers for one map.
type Result struct {
	FromStart  int              // fewest steps from the start marker to the end
	FromLowest int              // fewest steps from any lowest square to the end
	Route      []heightmap.Node // start..end inclusive; nil unless WithRoute
}

// Options configures Solve, PartOne and PartTwo.
type Options struct {
	Strict   bool
	Frontier dijkstra.Frontier
	Reverse  bool
	Route    bool
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// DefaultOptions returns lenient parsing, a heap frontier, forward
// multi-source search and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Frontier: dijkstra.FrontierHeap,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithStrict rejects ragged rows, unknown symbols and repeated markers.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithFrontier selects the search frontier.
func WithFrontier(f dijkstra.Frontier) Option {
	return func(o *Options) {
		o.Frontier = f
	}
}

// WithReverse answers part two with dijkstra.NearestSource.
func WithReverse() Option {
	return func(o *Options) {
		o.Reverse = true
	}
}

// WithRoute asks Solve to reconstruct a shortest start→end route.
func WithRoute() Option {
	return func(o *Options) {
		o.Route = true
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records every search in r.
func WithMetrics(r *metrics.Recorder) Option {
	return func(o *Options) {
		o.Metrics = r
	}
}
