package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hillpath/heightmap"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  heightmap.Node
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   Adjacency
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[heightmap.Node]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error. The partial Result is returned
// alongside hook and cancellation errors.
func BFS(g Adjacency, start heightmap.Node, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, ErrStartVertexNotFound
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[heightmap.Node]bool),
		res: &Result{
			Depth:  make(map[heightmap.Node]int),
			Parent: make(map[heightmap.Node]heightmap.Node),
		},
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks n visited at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(n heightmap.Node, d int) {
	w.visited[n] = true
	w.res.Depth[n] = d
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each
// unseen neighbour.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.node) {
		if !w.opts.FilterNeighbor(item.node, nbr) {
			continue
		}
		if !w.visited[nbr] {
			w.res.Parent[nbr] = item.node
			w.enqueue(nbr, nextDepth)
		}
	}
}
