// Package bfs provides tunable options and error definitions
// for breadth-first search over a gridgraph.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/indoornav/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrStartOutOfBounds is returned when the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("bfs: start cell out of bounds")

	// ErrStartBlocked is returned when the start cell is not walkable.
	ErrStartBlocked = errors.New("bfs: start cell is blocked")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo when the cell was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Order fixes neighbor expansion order and therefore tie-breaking.
	Order gridgraph.DirectionOrder

	// Target, when HasTarget is set, stops the search once it is dequeued.
	Target    gridgraph.Coord
	HasTarget bool

	// OnEnqueue is called when a cell is first discovered.
	OnEnqueue func(c gridgraph.Coord, depth int)

	// OnDequeue is called immediately before visiting a cell.
	OnDequeue func(c gridgraph.Coord, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(c gridgraph.Coord, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - N, S, E, W expansion order
//   - no target, no depth limit
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Order:     gridgraph.OrderNSEW,
		OnEnqueue: func(gridgraph.Coord, int) {},
		OnDequeue: func(gridgraph.Coord, int) {},
		OnVisit:   func(gridgraph.Coord, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirectionOrder sets the neighbor expansion order.
// A non-permutation order is an ErrOptionViolation.
func WithDirectionOrder(order gridgraph.DirectionOrder) Option {
	return func(o *Options) {
		if !order.Valid() {
			o.err = fmt.Errorf("%w: direction order %v is not a permutation of N,S,E,W", ErrOptionViolation, [4]gridgraph.Direction(order))
			return
		}
		o.Order = order
	}
}

// WithTarget stops the search as soon as c is dequeued.
func WithTarget(c gridgraph.Coord) Option {
	return func(o *Options) {
		o.Target = c
		o.HasTarget = true
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c gridgraph.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c gridgraph.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(c gridgraph.Coord, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal.
// Order lists visited cells in visit sequence; depth and parent are indexed
// row-major and are -1 for cells never discovered.
type Result struct {
	Start gridgraph.Coord
	Order []gridgraph.Coord

	grid   *gridgraph.Grid
	depth  []int
	parent []int
}

// Reached reports whether c was discovered by the search.
func (r *Result) Reached(c gridgraph.Coord) bool {
	return r.grid.InBounds(c) && r.depth[r.grid.Index(c)] >= 0
}

// Distance returns the number of steps from Start to c.
func (r *Result) Distance(c gridgraph.Coord) (int, bool) {
	if !r.Reached(c) {
		return 0, false
	}
	return r.depth[r.grid.Index(c)], true
}

// Parent returns the predecessor of c in the BFS tree; ok is false for
// Start and for unreached cells.
func (r *Result) Parent(c gridgraph.Coord) (gridgraph.Coord, bool) {
	if !r.Reached(c) {
		return gridgraph.Coord{}, false
	}
	p := r.parent[r.grid.Index(c)]
	if p < 0 {
		return gridgraph.Coord{}, false
	}
	return r.grid.Coord(p), true
}

// PathTo reconstructs the path from Start to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest gridgraph.Coord) (gridgraph.Path, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %v unreachable from %v", ErrNoPath, dest, r.Start)
	}
	// build reversed path
	path := make(gridgraph.Path, 0, r.depth[r.grid.Index(dest)]+1)
	for at := r.grid.Index(dest); at >= 0; at = r.parent[at] {
		path = append(path, r.grid.Coord(at))
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
