package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/hillpath/gridgraph"
	"github.com/katalvlaran/hillpath/heightmap"
)

// ExampleBuild shows the asymmetric step rule on a single row:
// 'a'→'b' climbs one unit and is allowed, 'b'→'d' climbs two and is not,
// while every descent is allowed.
func ExampleBuild() {
	grid, _ := heightmap.Parse("abd")
	g := gridgraph.Build(grid)

	for _, n := range g.Nodes() {
		fmt.Println(n, "->", g.Neighbors(n))
	}
	// Output:
	// a(0,0) -> [b(0,1)]
	// b(0,1) -> [a(0,0)]
	// d(0,2) -> [b(0,1)]
}
