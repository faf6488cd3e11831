package dijkstra

import (
	"container/heap"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/hillpath/heightmap"
)

// entry is one frontier item: a node and the distance it was pushed with.
// seq orders equal distances by insertion so B-tree keys stay unique.
type entry struct {
	node heightmap.Node
	dist int
	seq  uint64
}

// frontier is a min-priority queue of entries ordered by dist.
type frontier interface {
	Push(e entry)
	Pop() entry
	Len() int
}

func newFrontier(kind Frontier, capacity int) frontier {
	switch kind {
	case FrontierBTree:
		return newBTreeFrontier()
	default:
		return newHeapFrontier(capacity)
	}
}

// entryLess orders by distance, then by insertion order.
func entryLess(a, b entry) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.seq < b.seq
}

// heapFrontier adapts nodePQ to the frontier interface.
type heapFrontier struct {
	pq nodePQ
}

func newHeapFrontier(capacity int) *heapFrontier {
	f := &heapFrontier{pq: make(nodePQ, 0, capacity)}
	heap.Init(&f.pq)

	return f
}

func (f *heapFrontier) Push(e entry) { heap.Push(&f.pq, e) }
func (f *heapFrontier) Pop() entry  { return heap.Pop(&f.pq).(entry) }
func (f *heapFrontier) Len() int    { return f.pq.Len() }

// nodePQ is a min-heap of entries, ordered by dist ascending.
// We use the “lazy-decrease-key” approach: when a shorter distance to a node
// is found, a new entry is pushed and the outdated one is skipped on pop.
type nodePQ []entry

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// btreeFrontier keeps entries in a B-tree keyed by (dist, seq).
type btreeFrontier struct {
	tr  *btree.BTreeG[entry]
	seq uint64
}

func newBTreeFrontier() *btreeFrontier {
	return &btreeFrontier{
		tr: btree.NewBTreeGOptions(entryLess, btree.Options{NoLocks: true}),
	}
}

func (f *btreeFrontier) Push(e entry) {
	f.seq++
	e.seq = f.seq
	f.tr.Set(e)
}

func (f *btreeFrontier) Pop() entry {
	e, _ := f.tr.PopMin()
	return e
}

func (f *btreeFrontier) Len() int { return f.tr.Len() }
