package floorplan

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/indoornav/gridgraph"
)

// Kind names a Location variant.
type Kind string

const (
	KindGridPoint Kind = "grid"
	KindNode      Kind = "node"
	KindRoofRef   Kind = "roofRef"
)

// Location is anything a route can start or end at. The set of
// implementations is closed: GridPoint, Node and RoofReference.
type Location interface {
	Coord() gridgraph.Coord
	Kind() Kind
	String() string
	isLocation()
}

// GridPoint is a raw cell picked on the map.
type GridPoint struct {
	At gridgraph.Coord
}

// Point returns the GridPoint for (row, col).
func Point(row, col int) GridPoint { return GridPoint{At: gridgraph.C(row, col)} }

// Coord returns the picked cell.
func (p GridPoint) Coord() gridgraph.Coord { return p.At }

// Kind returns KindGridPoint.
func (p GridPoint) Kind() Kind { return KindGridPoint }

// String returns the signage label, e.g. "B3".
func (p GridPoint) String() string { return p.At.Label() }

func (GridPoint) isLocation() {}

// ID identifies a node. Floor documents write ids as numbers or strings.
type ID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*id = ""
	case string:
		*id = ID(x)
	case float64:
		*id = ID(strconv.FormatFloat(x, 'f', -1, 64))
	default:
		return fmt.Errorf("%w: node id %s is neither a string nor a number", ErrInvalidPlan, b)
	}
	return nil
}

// UnmarshalYAML accepts any scalar.
func (id *ID) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: node id at line %d is not a scalar", ErrInvalidPlan, n.Line)
	}
	*id = ID(n.Value)
	return nil
}

// Node is a named place on the floor, e.g. an office or a room.
type Node struct {
	ID   ID     `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
	Row  int    `json:"row" yaml:"row"`
	Col  int    `json:"col" yaml:"col"`
}

// Coord returns the node's cell.
func (n Node) Coord() gridgraph.Coord { return gridgraph.C(n.Row, n.Col) }

// Kind returns KindNode.
func (n Node) Kind() Kind { return KindNode }

func (Node) isLocation() {}

// String returns the node name, or its id when unnamed.
func (n Node) String() string {
	if n.Name != "" {
		return n.Name
	}
	return string(n.ID)
}

// RoofReference is a code printed on a ceiling tag at a known cell.
type RoofReference struct {
	Code string `json:"code" yaml:"code"`
	Row  int    `json:"row" yaml:"row"`
	Col  int    `json:"col" yaml:"col"`
}

// Coord returns the cell under the tag.
func (r RoofReference) Coord() gridgraph.Coord { return gridgraph.C(r.Row, r.Col) }

// Kind returns KindRoofRef.
func (r RoofReference) Kind() Kind { return KindRoofRef }

// String returns the tag code.
func (r RoofReference) String() string { return r.Code }

func (RoofReference) isLocation() {}
