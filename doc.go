// Package hillpath finds the shortest climb across a letter height map.
//
// What is a height map?
//
//	A grid of letters 'a' (lowest) to 'z' (highest) with one start square S
//	(counts as 'a') and one summit E (counts as 'z'). A step moves to an
//	orthogonal neighbour and may climb at most one level; descending any
//	amount is always allowed.
//
// Two questions are answered:
//
//   - Part 1: the fewest steps from S to E.
//   - Part 2: the fewest steps from any lowest square to E.
//
// Under the hood, the work is split into small packages:
//
//	heightmap/ — parse text into a Grid of Node values
//	gridgraph/ — derive the directed step graph (row pass + column pass)
//	dijkstra/  — unit-weight Dijkstra (heap or B-tree frontier), multi-source queries
//	bfs/       — breadth-first walks, used for reverse queries and route recovery
//	hillclimb/ — facade tying parse, build and search together
//	config/    — YAML/HCL run settings
//	metrics/   — Prometheus counters for searches
//	cmd/hillclimb — command-line entry point
//
// Quick example:
//
//	Sabqponm
//	abcryxxl
//	accszExk    Part 1: 31
//	acctuvwj    Part 2: 29
//	abdefghi
//
//	go run ./cmd/hillclimb input/day12.txt
package hillpath
