// Package bfs provides breadth-first search over a step graph, returning
// unit-step distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing step count from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → steps from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual steps via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Neighbours are enqueued in the order Adjacency.Neighbors returns them,
//	so the visit sequence is reproducible for a given graph.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	result, err := bfs.BFS(g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(30),
//	    bfs.WithOnVisit(func(n heightmap.Node, depth int) error { return nil }),
//	)
//	path, err := result.PathTo(end)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start node is not in the graph.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo when the node was never reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
