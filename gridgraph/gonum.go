package gridgraph

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/hillpath/heightmap"
)

// ToGonum exports the graph as a gonum simple.DirectedGraph. Vertex IDs are
// assigned in row-major order starting at 0; the returned function maps a
// node to its ID, or -1 when the node is not in the graph.
// Complexity: O(V log V + E).
func (g *Graph) ToGonum() (*simple.DirectedGraph, func(heightmap.Node) int64) {
	dg := simple.NewDirectedGraph()
	nodes := g.Nodes()
	ids := make(map[heightmap.Node]int64, len(nodes))
	for i, n := range nodes {
		ids[n] = int64(i)
		dg.AddNode(simple.Node(i))
	}
	for _, from := range nodes {
		for _, to := range g.adj[from] {
			dg.SetEdge(dg.NewEdge(simple.Node(ids[from]), simple.Node(ids[to])))
		}
	}

	return dg, func(n heightmap.Node) int64 {
		id, ok := ids[n]
		if !ok {
			return -1
		}
		return id
	}
}
