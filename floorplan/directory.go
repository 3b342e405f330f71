package floorplan

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/indoornav/gridgraph"
)

// Directory indexes a floor's nodes and roof references for lookup.
// It is immutable after construction and safe for concurrent use.
type Directory struct {
	rows, cols int
	nodes      []Node
	refs       []RoofReference

	byID   map[ID]int
	byName map[string]int
	byCode map[string]int
}

// NewDirectory indexes p's nodes and refs. When ids, names or codes repeat,
// the first occurrence wins. Names and codes match case-insensitively.
func NewDirectory(p *Plan, refs []RoofReference) *Directory {
	d := &Directory{
		byID:   make(map[ID]int),
		byName: make(map[string]int),
		byCode: make(map[string]int),
	}
	if p != nil {
		d.rows, d.cols = p.Rows, p.Cols
		if d.rows == 0 && d.cols == 0 && len(p.Grid) > 0 {
			d.rows, d.cols = len(p.Grid), len(p.Grid[0])
		}
		d.nodes = append([]Node(nil), p.Nodes...)
	}
	d.refs = append([]RoofReference(nil), refs...)

	for i, n := range d.nodes {
		if _, ok := d.byID[n.ID]; !ok && n.ID != "" {
			d.byID[n.ID] = i
		}
		if key := fold(n.Name); key != "" {
			if _, ok := d.byName[key]; !ok {
				d.byName[key] = i
			}
		}
	}
	for i, r := range d.refs {
		if key := fold(r.Code); key != "" {
			if _, ok := d.byCode[key]; !ok {
				d.byCode[key] = i
			}
		}
	}
	return d
}

func fold(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Node returns the node with the given id.
func (d *Directory) Node(id ID) (Node, bool) {
	i, ok := d.byID[ID(strings.TrimSpace(string(id)))]
	if !ok {
		return Node{}, false
	}
	return d.nodes[i], true
}

// NodeByName returns the node whose name matches case-insensitively.
func (d *Directory) NodeByName(name string) (Node, bool) {
	i, ok := d.byName[fold(name)]
	if !ok {
		return Node{}, false
	}
	return d.nodes[i], true
}

// RoofRef returns the roof reference with the given code, case-insensitively.
func (d *Directory) RoofRef(code string) (RoofReference, bool) {
	i, ok := d.byCode[fold(code)]
	if !ok {
		return RoofReference{}, false
	}
	return d.refs[i], true
}

// Resolve turns a query into a Location, trying in order:
//  1. roof reference code
//  2. node id
//  3. node name
//  4. "row,col" pair
//  5. grid label such as "B3" (row letters, 1-based column)
//
// Grid points must lie inside the floor. Anything else is ErrLocationNotFound.
func (d *Directory) Resolve(query string) (Location, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, fmt.Errorf("%w: empty query", ErrLocationNotFound)
	}
	if r, ok := d.RoofRef(q); ok {
		return r, nil
	}
	if n, ok := d.Node(ID(q)); ok {
		return n, nil
	}
	if n, ok := d.NodeByName(q); ok {
		return n, nil
	}
	if c, ok := parsePair(q); ok {
		return d.gridPoint(q, c)
	}
	if c, err := gridgraph.ParseLabel(q); err == nil {
		return d.gridPoint(q, c)
	}
	return nil, fmt.Errorf("%w: %q", ErrLocationNotFound, query)
}

func (d *Directory) gridPoint(q string, c gridgraph.Coord) (Location, error) {
	if c.Row < 0 || c.Col < 0 || c.Row >= d.rows || c.Col >= d.cols {
		return nil, fmt.Errorf("%w: %q is outside the %dx%d floor", ErrLocationNotFound, q, d.rows, d.cols)
	}
	return GridPoint{At: c}, nil
}

func parsePair(s string) (gridgraph.Coord, bool) {
	r, c, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Coord{}, false
	}
	row, err1 := strconv.Atoi(strings.TrimSpace(r))
	col, err2 := strconv.Atoi(strings.TrimSpace(c))
	if err1 != nil || err2 != nil {
		return gridgraph.Coord{}, false
	}
	return gridgraph.C(row, col), true
}

// SearchNodes returns nodes whose name or type contains q, case-insensitively,
// sorted by name. An empty q returns every node.
func (d *Directory) SearchNodes(q string) []Node {
	q = fold(q)
	var out []Node
	for _, n := range d.SortedNodes() {
		if q == "" || strings.Contains(strings.ToLower(n.Name), q) || strings.Contains(strings.ToLower(n.Type), q) {
			out = append(out, n)
		}
	}
	return out
}

// SearchRoofRefs returns roof references whose code contains q,
// case-insensitively, in SortedRoofRefs order.
func (d *Directory) SearchRoofRefs(q string) []RoofReference {
	q = fold(q)
	var out []RoofReference
	for _, r := range d.SortedRoofRefs() {
		if q == "" || strings.Contains(strings.ToLower(r.Code), q) {
			out = append(out, r)
		}
	}
	return out
}

// SortedNodes returns the nodes ordered by name.
func (d *Directory) SortedNodes() []Node {
	out := append([]Node(nil), d.nodes...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

var (
	codePrefix = regexp.MustCompile(`^[A-Z]+`)
	codeNumber = regexp.MustCompile(`\d+`)
)

// SortedRoofRefs orders codes by their leading capital letters, then by the
// first run of digits read as a number: "A2" < "A10" < "B1".
func (d *Directory) SortedRoofRefs() []RoofReference {
	out := append([]RoofReference(nil), d.refs...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Code, out[j].Code
		if pa, pb := codePrefix.FindString(a), codePrefix.FindString(b); pa != pb {
			return pa < pb
		}
		return codeNum(a) < codeNum(b)
	})
	return out
}

func codeNum(code string) int {
	n, err := strconv.Atoi(codeNumber.FindString(code))
	if err != nil {
		return 0
	}
	return n
}

// Nodes returns every node in document order.
func (d *Directory) Nodes() []Node { return append([]Node(nil), d.nodes...) }

// RoofRefs returns every roof reference in document order.
func (d *Directory) RoofRefs() []RoofReference { return append([]RoofReference(nil), d.refs...) }
