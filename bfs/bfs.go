// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning unweighted shortest routes, parent links, and visit order.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/indoornav/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  gridgraph.Coord
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *gridgraph.Grid
	opts  Options
	queue []queueItem
	head  int
	res   *Result
}

// FindPath returns the shortest route of walkable, 4-adjacent cells from
// start to end inclusive, or an empty Path when none exists. It never fails:
// out-of-bounds or blocked endpoints yield an empty Path, and start == end
// yields [start] without any traversal.
//
// Options are forwarded to Search; WithTarget(end) is always applied last.
func FindPath(g *gridgraph.Grid, start, end gridgraph.Coord, opts ...Option) gridgraph.Path {
	if g == nil || !g.InBounds(start) || !g.InBounds(end) {
		return nil
	}
	if start == end {
		return gridgraph.Path{start}
	}
	if !g.Walkable(start) || !g.Walkable(end) {
		return nil
	}

	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithTarget(end))
	res, err := Search(g, start, all...)
	if err != nil {
		return nil
	}
	path, err := res.PathTo(end)
	if err != nil {
		return nil
	}
	return path
}

// Distance returns the graph distance (steps) between start and end, and
// whether end is reachable. start == end is distance 0.
func Distance(g *gridgraph.Grid, start, end gridgraph.Coord) (int, bool) {
	p := FindPath(g, start, end)
	if !p.Found() {
		return 0, false
	}
	return p.Steps(), true
}

// Search runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGridNil, ErrStartOutOfBounds or ErrStartBlocked for invalid
// input, ErrOptionViolation for bad options, or any context / hook error.
func Search(g *gridgraph.Grid, start gridgraph.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start cell
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if !g.Walkable(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}

	// Prepare walker
	n := g.Size()
	w := &walker{
		grid:  g,
		opts:  o,
		queue: make([]queueItem, 0, g.WalkableCount()),
		res: &Result{
			Start:  start,
			Order:  make([]gridgraph.Coord, 0, g.WalkableCount()),
			grid:   g,
			depth:  make([]int, n),
			parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.depth[i] = -1
		w.res.parent[i] = -1
	}

	// Seed queue with start cell (no parent)
	w.enqueue(start, 0, -1)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks c discovered at depth d, records its parent,
// calls OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(c gridgraph.Coord, d int, parent int) {
	idx := w.grid.Index(c)
	w.res.depth[idx] = d
	w.res.parent[idx] = parent
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
}

// loop processes the queue until empty, target dequeued, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.opts.HasTarget && item.cell == w.opts.Target {
			return nil
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(item.cell, item.depth)
	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.cell)
	if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.cell, err)
	}
	return nil
}

// enqueueNeighbors applies the direction order and MaxDepth, and enqueues
// each undiscovered walkable neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	from := w.grid.Index(item.cell)
	for _, d := range w.opts.Order {
		nbr := item.cell.Step(d)
		if !w.grid.Walkable(nbr) {
			continue
		}
		// first time seen?
		if w.res.depth[w.grid.Index(nbr)] < 0 {
			w.enqueue(nbr, nextDepth, from)
		}
	}
}
