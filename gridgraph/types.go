package gridgraph

import "github.com/katalvlaran/hillpath/heightmap"

// MaxClimb is the largest elevation gain allowed on a single step.
const MaxClimb = 1

// Graph maps each node to the nodes reachable from it in one step.
// Nodes without any out-edge are present with an empty list; lookups on
// nodes outside the graph behave as "no neighbours".
type Graph struct {
	adj   map[heightmap.Node][]heightmap.Node
	edges int
}

// Climbable reports whether a single step from→to is allowed.
// Complexity: O(1).
func Climbable(from, to heightmap.Node) bool {
	return to.Level()-from.Level() <= MaxClimb
}
