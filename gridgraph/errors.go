package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrCellValue indicates a cell value other than Blocked (0) or Walkable (1).
	ErrCellValue = errors.New("gridgraph: cell values must be 0 or 1")
	// ErrDimensionMismatch indicates declared dimensions disagree with the matrix.
	ErrDimensionMismatch = errors.New("gridgraph: declared dimensions do not match grid")
	// ErrLabel indicates a malformed coordinate label.
	ErrLabel = errors.New("gridgraph: malformed coordinate label")
	// ErrDirectionOrder indicates an order string that is not a permutation of N, S, E, W.
	ErrDirectionOrder = errors.New("gridgraph: direction order must be a permutation of NSEW")
)
