// Package dijkstra finds shortest step counts on a height-map step graph.
//
// Overview:
//
//   - Search runs a uniform-cost Dijkstra (every edge weighs 1) from one
//     source and stops as soon as the target leaves the frontier.
//   - MultiSource repeats Search for every candidate source and keeps the
//     smallest result.
//   - NearestSource answers the same question with a single breadth-first
//     search from the target over the reversed graph.
//
// Frontier:
//
//   - FrontierHeap (default): container/heap min-heap of (node, distance).
//   - FrontierBTree: tidwall/btree ordered by (distance, insertion order).
//   - Both use lazy deletion: a node may sit in the frontier several times
//     and stale entries are skipped when popped.
//
// Absence:
//
//	Search and MultiSource return (distance, true) on success and (0, false)
//	when the target cannot be reached. Absence is a normal outcome, not an
//	error; callers decide how to report it.
//
// Options:
//
//   - WithFrontier(f):      choose the frontier implementation.
//   - WithMaxDistance(d):   give up on paths longer than d (d ≥ 0).
//   - WithOnRelax(fn):      observe every distance-table write.
//   - WithOnPop(fn):        observe every frontier pop.
//   - WithMetrics(r):       count searches, expansions and pushes.
//
// Complexity:
//
//   - Search:        O((V + E) log V) time, O(V + E) memory.
//   - MultiSource:   O(k · (V + E) log V) for k sources.
//   - NearestSource: O(V + E).
//
// Thread safety:
//
//	Each call owns its distance table and frontier. Concurrent calls on the
//	same immutable graph are safe.
package dijkstra
