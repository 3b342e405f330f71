// Package gridgraph treats a floor-plan occupancy grid as an implicit,
// unweighted, 4-connected graph of walkable cells.
//
// What:
//
//   - Grid wraps a rectangular [][]int matrix of 0 (Blocked) and 1 (Walkable) cells.
//   - Coord is the single (Row, Col) value type used at every package boundary.
//   - DirectionOrder fixes the neighbor expansion order, which decides which of
//     several equally short paths a breadth-first search records.
//   - Regions labels connected walkable areas so "is there any route?" is O(1).
//   - NearestWalkable snaps a blocked or wall cell onto the closest walkable one.
//
// Why:
//
//   - Indoor navigation: rooms, corridors and doors rasterized onto a coarse grid.
//   - Reachability diagnostics: detect unreachable offices after a floor-plan edit.
//
// Immutability:
//
//	A Grid is deep-copied on construction and never mutated afterwards, so it is
//	safe to share between goroutines and to use as a cache scope.
//
// Complexity:
//
//   - NewGrid:          O(R×C) time and memory.
//   - Regions:          O(R×C×4), Memory: O(R×C).
//   - NearestWalkable:  O(R×C×4) worst case, Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid:          input grid has no rows or no columns.
//   - ErrNonRectangular:     rows have differing lengths.
//   - ErrCellValue:          a cell is neither 0 nor 1.
//   - ErrDimensionMismatch:  declared rows/cols disagree with the matrix.
//   - ErrLabel:              a coordinate label such as "B7" could not be parsed.
package gridgraph
