package dijkstra

import (
	"errors"

	"github.com/katalvlaran/hillpath/bfs"
	"github.com/katalvlaran/hillpath/heightmap"
)

// MultiSource runs an independent Search from every node in sources and
// returns the smallest distance to target, or (0, false) when no source
// reaches it. Options apply to every Search.
//
// Complexity: O(k · (V + E) log V) for k sources.
func MultiSource(g Adjacency, sources []heightmap.Node, target heightmap.Node, opts ...Option) (int, bool) {
	best, found := 0, false
	for _, s := range sources {
		d, ok := Search(g, s, target, opts...)
		if ok && (!found || d < best) {
			best, found = d, true
		}
	}

	return best, found
}

// errReached stops the reverse walk at the first source visited.
var errReached = errors.New("dijkstra: source reached")

// NearestSource answers the MultiSource question with one breadth-first
// search. rev must be the reversed step graph (gridgraph.Graph.Reverse):
// walking it from target visits nodes in order of their forward distance
// to target, so the first source visited is the nearest.
//
// Returns (0, false) when target is not in rev or no source reaches it.
//
// Complexity: O(V + E).
func NearestSource(rev bfs.Adjacency, sources []heightmap.Node, target heightmap.Node) (int, bool) {
	want := make(map[heightmap.Node]struct{}, len(sources))
	for _, s := range sources {
		want[s] = struct{}{}
	}

	var (
		dist  int
		found bool
	)
	_, err := bfs.BFS(rev, target, bfs.WithOnVisit(func(n heightmap.Node, depth int) error {
		if _, ok := want[n]; ok {
			dist, found = depth, true
			return errReached
		}
		return nil
	}))
	if err != nil && !errors.Is(err, errReached) {
		return 0, false
	}

	return dist, found
}
