// Package bfs provides breadth-first shortest-path search over a
// gridgraph.Grid, returning the fewest-step walkable route between two cells.
//
// What
//
//   - FindPath(grid, start, end) returns the shortest 4-connected route of
//     walkable cells from start to end inclusive, or an empty Path.
//   - Search(grid, start, ...) runs the full traversal and returns a Result
//     containing:
//   - Order: visit sequence
//   - Depth: steps from start for every reached cell
//   - Parent: predecessor of every reached cell in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a cell is first discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors a MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - The floor grid is unweighted, so BFS is optimal and simplest.
//   - Predictable output: the same inputs always yield the same route.
//
// Determinism
//
//	Neighbors are expanded in a fixed DirectionOrder (default N, S, E, W).
//	Predecessors are fixed the first time a cell is discovered, so when
//	several shortest routes exist the one recorded is decided solely by that
//	order. Swapping BFS for Dijkstra or A* would change which route wins.
//
// Termination
//
//	With a target set, the search stops when the target is DEQUEUED, not when
//	it is enqueued: the remaining neighbors of the cell that discovered it are
//	still processed. This does not change the route, only the visit Order.
//
// FindPath contract
//
//   - nil grid, or start/end out of bounds  → empty Path.
//   - start == end                          → [start], even if that cell is blocked.
//   - blocked start or blocked end          → empty Path.
//   - end unreachable                       → empty Path.
//
// FindPath never returns an error: "no route" is data, not failure.
//
// Complexity (R×C grid)
//
//   - Time:   O(R·C)   (each cell enqueued at most once, 4 neighbors each)
//   - Memory: O(R·C)   (visited flags, depth and parent arrays, queue)
//
// Usage
//
//	path := bfs.FindPath(g, gridgraph.C(0, 0), gridgraph.C(2, 2))
//	if !path.Found() {
//	    // no route
//	}
//
//	// With functional options:
//	res, err := bfs.Search(
//	    g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithDirectionOrder(gridgraph.OrderSNEW),
//	    bfs.WithMaxDepth(50),
//	    bfs.WithOnVisit(func(c gridgraph.Coord, depth int) error { /* ... */ return nil }),
//	)
//
// Errors (Search only)
//
//   - ErrGridNil             if the grid pointer is nil.
//   - ErrStartOutOfBounds    if start lies outside the grid.
//   - ErrStartBlocked        if start is not walkable.
//   - ErrOptionViolation     if an Option is invalid (negative depth, bad order).
//   - ErrNoPath              from Result.PathTo for unreached cells.
//   - Wrapped user-supplied hook errors from OnVisit, and context errors.
package bfs
