package hillclimb

import (
	"fmt"

	"github.com/katalvlaran/hillpath/bfs"
	"github.com/katalvlaran/hillpath/dijkstra"
	"github.com/katalvlaran/hillpath/gridgraph"
	"github.com/katalvlaran/hillpath/heightmap"
)

// Solve answers both questions for input. The map is parsed and its graph
// built once.
func Solve(input string, opts ...Option) (*Result, error) {
	s, err := prepare(input, opts)
	if err != nil {
		return nil, err
	}

	one, err := s.fromStart()
	if err != nil {
		return nil, err
	}
	two, err := s.fromLowest()
	if err != nil {
		return nil, err
	}

	res := &Result{FromStart: one, FromLowest: two}
	if s.opts.Route {
		if res.Route, err = s.route(); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// PartOne returns the fewest steps from the start marker to the end.
func PartOne(input string, opts ...Option) (int, error) {
	s, err := prepare(input, opts)
	if err != nil {
		return 0, err
	}

	return s.fromStart()
}

// PartTwo returns the fewest steps from any lowest square to the end.
func PartTwo(input string, opts ...Option) (int, error) {
	s, err := prepare(input, opts)
	if err != nil {
		return 0, err
	}

	return s.fromLowest()
}

// solver carries the parsed map and its graph between queries.
type solver struct {
	opts  Options
	grid  *heightmap.Grid
	graph *gridgraph.Graph
	end   heightmap.Node
}

// prepare parses input and builds the step graph. A missing end marker is
// reported here because every query needs it.
func prepare(input string, opts []Option) (*solver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var parseOpts []heightmap.Option
	if o.Strict {
		parseOpts = append(parseOpts, heightmap.WithStrict())
	}
	grid, err := heightmap.Parse(input, parseOpts...)
	if err != nil {
		return nil, fmt.Errorf("hillclimb: parse: %w", err)
	}
	o.Logger.Debug("parsed height map", "rows", grid.Height(), "cols", grid.Width(), "cells", grid.Len())

	end, ok := grid.End()
	if !ok {
		return nil, ErrMissingEnd
	}

	graph := gridgraph.Build(grid)
	o.Logger.Debug("built step graph", "nodes", graph.Order(), "edges", graph.Size())

	return &solver{opts: o, grid: grid, graph: graph, end: end}, nil
}

func (s *solver) searchOptions() []dijkstra.Option {
	return []dijkstra.Option{
		dijkstra.WithFrontier(s.opts.Frontier),
		dijkstra.WithMetrics(s.opts.Metrics),
	}
}

func (s *solver) fromStart() (int, error) {
	start, ok := s.grid.Start()
	if !ok {
		return 0, ErrMissingStart
	}

	d, ok := dijkstra.Search(s.graph, start, s.end, s.searchOptions()...)
	if !ok {
		return 0, fmt.Errorf("%w: from %v to %v", ErrNoPath, start, s.end)
	}
	s.opts.Logger.Debug("part one", "start", start.String(), "end", s.end.String(),
		"steps", d, "frontier", s.opts.Frontier.String())

	return d, nil
}

func (s *solver) fromLowest() (int, error) {
	sources := s.grid.Lowest()

	var (
		d  int
		ok bool
	)
	if s.opts.Reverse {
		d, ok = dijkstra.NearestSource(s.graph.Reverse(), sources, s.end)
	} else {
		d, ok = dijkstra.MultiSource(s.graph, sources, s.end, s.searchOptions()...)
	}
	if !ok {
		return 0, fmt.Errorf("%w: from %d lowest squares to %v", ErrNoPath, len(sources), s.end)
	}
	s.opts.Logger.Debug("part two", "sources", len(sources), "end", s.end.String(),
		"steps", d, "reverse", s.opts.Reverse)

	return d, nil
}

// route walks the graph breadth-first from the start and follows parent
// links back from the end.
func (s *solver) route() ([]heightmap.Node, error) {
	start, ok := s.grid.Start()
	if !ok {
		return nil, ErrMissingStart
	}

	res, err := bfs.BFS(s.graph, start)
	if err != nil {
		return nil, fmt.Errorf("hillclimb: route: %w", err)
	}
	path, err := res.PathTo(s.end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoPath, err)
	}

	return path, nil
}
