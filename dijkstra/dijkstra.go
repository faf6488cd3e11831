// Implementation notes:
//
//   - Early exit: the search returns as soon as the target is popped. With
//     non-negative weights the first pop of a node carries its final distance.
//   - Lazy decrease-key: improved distances are pushed as new entries; a popped
//     entry whose distance exceeds the table value is stale and skipped.
//   - The distance table is created per call and only ever decreases.

package dijkstra

import "github.com/katalvlaran/hillpath/heightmap"

// Search returns the number of steps on a shortest path from source to
// target in g, or (0, false) when target is unreachable.
//
// Search(g, n, n) is always (0, true), even when n is not in g. A nil g
// behaves as a graph without edges.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Search(g Adjacency, source, target heightmap.Node, opts ...Option) (int, bool) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		g = noEdges{}
	}

	r := &runner{
		g:      g,
		target: target,
		opts:   cfg,
		dist:   make(map[heightmap.Node]int),
		pq:     newFrontier(cfg.Frontier, 64),
	}
	d, ok := r.run(source)

	cfg.Metrics.AddExpanded(r.expanded)
	cfg.Metrics.AddPushes(r.pushes)
	cfg.Metrics.ObserveSearch(ok)

	return d, ok
}

// noEdges stands in for a nil graph.
type noEdges struct{}

func (noEdges) Neighbors(heightmap.Node) []heightmap.Node { return nil }

// runner holds the mutable state for a single search.
type runner struct {
	g      Adjacency
	target heightmap.Node
	opts   Options
	dist   map[heightmap.Node]int // best known distance; absent means infinity
	pq     frontier

	expanded int
	pushes   int
}

// run seeds the frontier with source and processes it until the target is
// popped or the frontier empties.
func (r *runner) run(source heightmap.Node) (int, bool) {
	r.record(source, 0)
	r.push(source, 0)

	for r.pq.Len() > 0 {
		item := r.pq.Pop()
		r.opts.OnPop(item.node, item.dist)

		if item.node == r.target {
			return item.dist, true
		}
		// A shorter entry for this node was pushed after this one.
		if item.dist > r.dist[item.node] {
			continue
		}
		r.expanded++
		r.relax(item)
	}

	return 0, false
}

// relax tries to improve every out-neighbour of item.node by one step.
func (r *runner) relax(item entry) {
	candidate := item.dist + 1
	if candidate > r.opts.MaxDistance {
		return
	}
	for _, next := range r.g.Neighbors(item.node) {
		if best, seen := r.dist[next]; seen && candidate >= best {
			continue
		}
		r.record(next, candidate)
		r.push(next, candidate)
	}
}

func (r *runner) record(n heightmap.Node, d int) {
	r.dist[n] = d
	r.opts.OnRelax(n, d)
}

func (r *runner) push(n heightmap.Node, d int) {
	r.pq.Push(entry{node: n, dist: d})
	r.pushes++
}
