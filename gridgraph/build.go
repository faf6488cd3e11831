package gridgraph

import (
	"sort"

	"github.com/katalvlaran/hillpath/heightmap"
)

// Build derives the step graph of grid.
//
// Rows are walked pairwise left to right; columns are obtained with
// grid.Transpose and walked by the same routine. For ragged grids a
// column may skip a short row, so only pairs on consecutive rows count as
// vertical neighbours.
//
// Complexity: O(W×H) time and memory.
func Build(grid *heightmap.Grid) *Graph {
	g := &Graph{adj: make(map[heightmap.Node][]heightmap.Node, grid.Len())}
	rows := grid.Rows()
	for _, row := range rows {
		for _, n := range row {
			g.adj[n] = nil
		}
	}
	for _, row := range rows {
		g.link(row)
	}
	for _, col := range grid.Transpose() {
		g.link(col)
	}

	return g
}

// link adds the edges between consecutive nodes of one row or column.
func (g *Graph) link(line []heightmap.Node) {
	for i := 1; i < len(line); i++ {
		a, b := line[i-1], line[i]
		if !adjacent(a, b) {
			continue
		}
		if Climbable(a, b) {
			g.addEdge(a, b)
		}
		if Climbable(b, a) {
			g.addEdge(b, a)
		}
	}
}

func (g *Graph) addEdge(from, to heightmap.Node) {
	g.adj[from] = append(g.adj[from], to)
	g.edges++
}

// adjacent reports whether a and b share a side.
func adjacent(a, b heightmap.Node) bool {
	dr, dc := b.Row-a.Row, b.Col-a.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr+dc == 1
}

// Neighbors returns the nodes reachable from n in one step. The returned
// slice must not be modified. Nil-safe.
// Complexity: O(1).
func (g *Graph) Neighbors(n heightmap.Node) []heightmap.Node {
	if g == nil {
		return nil
	}

	return g.adj[n]
}

// HasNode reports whether n is a vertex of the graph.
func (g *Graph) HasNode(n heightmap.Node) bool {
	if g == nil {
		return false
	}
	_, ok := g.adj[n]

	return ok
}

// HasEdge reports whether the directed step from→to exists.
// Complexity: O(d), d ≤ 4.
func (g *Graph) HasEdge(from, to heightmap.Node) bool {
	for _, n := range g.Neighbors(from) {
		if n == to {
			return true
		}
	}

	return false
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of directed edges.
func (g *Graph) Size() int { return g.edges }

// Nodes returns every vertex sorted in row-major order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []heightmap.Node {
	out := make([]heightmap.Node, 0, len(g.adj))
	for n := range g.adj {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})

	return out
}

// Adjacency returns a deep copy of the node → neighbours mapping.
// Complexity: O(V + E).
func (g *Graph) Adjacency() map[heightmap.Node][]heightmap.Node {
	out := make(map[heightmap.Node][]heightmap.Node, len(g.adj))
	for n, nbrs := range g.adj {
		cp := make([]heightmap.Node, len(nbrs))
		copy(cp, nbrs)
		out[n] = cp
	}

	return out
}

// Reverse returns a new graph with every edge flipped. Neighbour lists
// are filled in row-major order of the original sources, so the result is
// deterministic.
// Complexity: O(V log V + E).
func (g *Graph) Reverse() *Graph {
	nodes := g.Nodes()
	r := &Graph{adj: make(map[heightmap.Node][]heightmap.Node, len(nodes))}
	for _, n := range nodes {
		r.adj[n] = nil
	}
	for _, from := range nodes {
		for _, to := range g.adj[from] {
			r.addEdge(to, from)
		}
	}

	return r
}
