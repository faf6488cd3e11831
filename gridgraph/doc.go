// Package gridgraph derives a directed graph from a parsed height map.
//
// What:
//
//   - Every grid node becomes a vertex.
//   - Each pair of 4-adjacent nodes is examined in both orientations; a
//     directed edge from→to exists iff to.Level() ≤ from.Level()+MaxClimb.
//     Climbing is capped, descending is free, so a pair yields zero, one
//     or two edges.
//   - Horizontal pairs come from walking each row; vertical pairs come from
//     walking the transposed grid with the same routine.
//
// Views:
//
//   - Neighbors / HasEdge / Nodes answer adjacency queries.
//   - Reverse flips every edge, for searches that run from the target back.
//   - ToGonum exports the adjacency as a gonum simple.DirectedGraph.
//
// A Graph is immutable after Build and safe for concurrent readers.
//
// Complexity:
//
//   - Build:   O(W×H) time and memory (at most 4 out-edges per node).
//   - Reverse: O(V + E).
//   - ToGonum: O(V + E).
package gridgraph
