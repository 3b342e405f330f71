// Package gridgraph defines the grid value types shared by the pathfinding,
// caching and smoothing packages of github.com/katalvlaran/indoornav.
package gridgraph

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Cell is the occupancy state of one grid cell.
type Cell uint8

const (
	// Blocked marks walls, furniture and anything outside the floor.
	Blocked Cell = 0
	// Walkable marks floor a person can stand on.
	Walkable Cell = 1
)

// String returns "walkable" or "blocked".
func (c Cell) String() string {
	if c == Walkable {
		return "walkable"
	}
	return "blocked"
}

// Coord identifies a grid cell by row and column.
// Valid coordinates satisfy 0 ≤ Row < rows and 0 ≤ Col < cols.
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord { return Coord{Row: row, Col: col} }

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return "(" + strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col) + ")"
}

// Step returns the neighbor of c one unit in direction d.
func (c Coord) Step(d Direction) Coord {
	off := offsets[d]
	return Coord{Row: c.Row + off[0], Col: c.Col + off[1]}
}

// Adjacent reports whether a and b differ by exactly one unit on exactly one axis.
func Adjacent(a, b Coord) bool {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
	return dr+dc == 1
}

// Label renders c the way floor signage does: a row letter sequence
// (A..Z, AA..AZ, ...) followed by the 1-based column, e.g. (0,0) → "A1",
// (27,4) → "AB5". Negative coordinates fall back to String().
func (c Coord) Label() string {
	if c.Row < 0 || c.Col < 0 {
		return c.String()
	}
	var letters []byte
	for n := c.Row + 1; n > 0; n = (n - 1) / 26 {
		letters = append(letters, byte('A'+(n-1)%26))
	}
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}
	return string(letters) + strconv.Itoa(c.Col+1)
}

// ParseLabel is the inverse of Coord.Label. Letters are case-insensitive.
func ParseLabel(s string) (Coord, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	i := 0
	row := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		row = row*26 + int(s[i]-'A'+1)
		i++
	}
	if i == 0 || i == len(s) {
		return Coord{}, fmt.Errorf("%w: %q", ErrLabel, s)
	}
	col, err := strconv.Atoi(s[i:])
	if err != nil || col < 1 {
		return Coord{}, fmt.Errorf("%w: %q", ErrLabel, s)
	}
	return Coord{Row: row - 1, Col: col - 1}, nil
}

// Path is an ordered sequence of 4-adjacent walkable cells from start to end
// inclusive. An empty Path means no route exists.
type Path []Coord

// Found reports whether p holds a route.
func (p Path) Found() bool { return len(p) > 0 }

// Steps returns the number of moves in p (len-1), or 0 for an empty path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Clone returns an independent copy of p; nil stays nil.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Labels returns Label() for every cell of p.
func (p Path) Labels() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Label()
	}
	return out
}

// Direction is one of the four orthogonal moves.
type Direction int

const (
	// North decrements the row.
	North Direction = iota
	// South increments the row.
	South
	// East increments the column.
	East
	// West decrements the column.
	West
)

// offsets are {dRow, dCol} indexed by Direction.
var offsets = [4][2]int{
	North: {-1, 0},
	South: {1, 0},
	East:  {0, 1},
	West:  {0, -1},
}

// String returns the compass letter of d.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	}
	return "?"
}

// DirectionOrder is the sequence in which neighbors are expanded.
type DirectionOrder [4]Direction

var (
	// OrderNSEW is the canonical expansion order: north, south, east, west.
	OrderNSEW = DirectionOrder{North, South, East, West}
	// OrderSNEW expands row+1, row-1, col+1, col-1; legacy web clients
	// ship this order, so it is kept for parity with their routes.
	OrderSNEW = DirectionOrder{South, North, East, West}
)

// Valid reports whether o is a permutation of the four directions.
func (o DirectionOrder) Valid() bool {
	var seen [4]bool
	for _, d := range o {
		if d < North || d > West || seen[d] {
			return false
		}
		seen[d] = true
	}
	return true
}

// String renders o as e.g. "NSEW".
func (o DirectionOrder) String() string {
	var b strings.Builder
	for _, d := range o {
		b.WriteString(d.String())
	}
	return b.String()
}

// ParseDirectionOrder parses a four-letter order such as "NSEW" or "snew".
func ParseDirectionOrder(s string) (DirectionOrder, error) {
	var o DirectionOrder
	letters := strings.ToUpper(strings.TrimSpace(s))
	if len(letters) != len(o) {
		return o, fmt.Errorf("%w: %q", ErrDirectionOrder, s)
	}
	for i, ch := range letters {
		switch ch {
		case 'N':
			o[i] = North
		case 'S':
			o[i] = South
		case 'E':
			o[i] = East
		case 'W':
			o[i] = West
		default:
			return o, fmt.Errorf("%w: %q", ErrDirectionOrder, s)
		}
	}
	if !o.Valid() {
		return o, fmt.Errorf("%w: %q", ErrDirectionOrder, s)
	}
	return o, nil
}

// Grid is an immutable rectangular occupancy grid.
// cells is stored row-major; rows and cols are fixed at construction.
// Region labels are computed lazily, once, on first use.
type Grid struct {
	rows, cols int
	cells      []Cell
	walkable   int

	regionOnce sync.Once
	label      []int // region id per cell, -1 for blocked
	regions    [][]Coord
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
