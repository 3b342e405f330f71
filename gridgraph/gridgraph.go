// Package gridgraph provides the occupancy grid used for indoor navigation.
// Cells with value 1 are walkable floor; cells with value 0 are blocked.
package gridgraph

import (
	"fmt"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of 0/1 values.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrCellValue for any
// value other than 0 or 1.
// Algorithmic complexity: O(R×C) time and memory.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}

	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for r, row := range values {
		for c, v := range row {
			switch v {
			case 0:
				// zero value is Blocked
			case 1:
				g.cells[r*cols+c] = Walkable
				g.walkable++
			default:
				return nil, fmt.Errorf("%w: cell (%d,%d) = %d", ErrCellValue, r, c, v)
			}
		}
	}

	return g, nil
}

// NewGridWithDims is NewGrid plus a check that the matrix matches the
// declared rows × cols, as carried by floor-plan documents.
func NewGridWithDims(rows, cols int, values [][]int) (*Grid, error) {
	g, err := NewGrid(values)
	if err != nil {
		return nil, err
	}
	if g.rows != rows || g.cols != cols {
		return nil, fmt.Errorf("%w: declared %dx%d, got %dx%d", ErrDimensionMismatch, rows, cols, g.rows, g.cols)
	}
	return g, nil
}

// MustGrid is NewGrid that panics on error. Intended for tests and fixtures.
func MustGrid(values [][]int) *Grid {
	g, err := NewGrid(values)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows*cols.
func (g *Grid) Size() int { return len(g.cells) }

// WalkableCount returns the number of walkable cells.
func (g *Grid) WalkableCount() int { return g.walkable }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the cell at c; ok is false when c is out of bounds.
func (g *Grid) At(c Coord) (cell Cell, ok bool) {
	if !g.InBounds(c) {
		return Blocked, false
	}
	return g.cells[g.Index(c)], true
}

// Walkable reports whether c is in bounds and walkable.
func (g *Grid) Walkable(c Coord) bool {
	cell, ok := g.At(c)
	return ok && cell == Walkable
}

// Index maps c to a row-major index: Row*Cols + Col.
// The caller guarantees c is in bounds.
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coord converts a row-major index back to a coordinate.
func (g *Grid) Coord(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// Neighbors returns the in-bounds walkable neighbors of c in the given order.
// An invalid order falls back to OrderNSEW.
func (g *Grid) Neighbors(c Coord, order DirectionOrder) []Coord {
	if !order.Valid() {
		order = OrderNSEW
	}
	out := make([]Coord, 0, 4)
	for _, d := range order {
		n := c.Step(d)
		if g.Walkable(n) {
			out = append(out, n)
		}
	}
	return out
}

// Values returns a fresh 0/1 matrix equal to the one g was built from.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		for c := range out[r] {
			out[r][c] = int(g.cells[r*g.cols+c])
		}
	}
	return out
}

// ValidPath reports whether p is a well-formed route on g: non-empty, every
// consecutive pair 4-adjacent, and every cell walkable. A single-cell path
// is accepted whatever the cell's state, mirroring the start == end rule.
func (g *Grid) ValidPath(p Path) bool {
	if len(p) == 0 {
		return false
	}
	if len(p) == 1 {
		return g.InBounds(p[0])
	}
	for i, c := range p {
		if !g.Walkable(c) {
			return false
		}
		if i > 0 && !Adjacent(p[i-1], c) {
			return false
		}
	}
	return true
}

// String renders g with '.' for walkable and '#' for blocked cells, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c] == Walkable {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		if r < g.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
