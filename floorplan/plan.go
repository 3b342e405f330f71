package floorplan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/indoornav/gridgraph"
)

// Format selects a document decoder.
type Format int

const (
	// JSON decodes with encoding/json.
	JSON Format = iota
	// YAML decodes with gopkg.in/yaml.v3.
	YAML
)

// FormatOf picks the decoder from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", "":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Plan is the floor document: occupancy matrix plus named nodes.
type Plan struct {
	Rows  int     `json:"rows" yaml:"rows"`
	Cols  int     `json:"cols" yaml:"cols"`
	Grid  [][]int `json:"grid" yaml:"grid"`
	Nodes []Node  `json:"nodes" yaml:"nodes"`
}

// RoofRefs is the roof reference document.
type RoofRefs struct {
	RoofRefs []RoofReference `json:"roofRefs" yaml:"roofRefs"`
}

// Stats counts nodes by type.
type Stats struct {
	Total   int
	Offices int
	Rooms   int
	Others  int
}

// Decode reads a Plan from r and checks it with Build.
func Decode(r io.Reader, f Format) (*Plan, error) {
	var p Plan
	if err := decode(r, f, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	if _, err := p.Build(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads a Plan from a .json, .yaml or .yml file.
func Load(path string) (*Plan, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read floor plan %s: %w", path, err)
	}
	p, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("floor plan %s: %w", path, err)
	}
	return p, nil
}

// DecodeRoofRefs reads a roof reference document from r.
func DecodeRoofRefs(r io.Reader, f Format) ([]RoofReference, error) {
	var doc RoofRefs
	if err := decode(r, f, &doc); err != nil {
		return nil, fmt.Errorf("%w: roof references: %v", ErrInvalidPlan, err)
	}
	return doc.RoofRefs, nil
}

// LoadRoofRefs reads a roof reference document from a file.
func LoadRoofRefs(path string) ([]RoofReference, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roof references %s: %w", path, err)
	}
	refs, err := DecodeRoofRefs(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("roof references %s: %w", path, err)
	}
	return refs, nil
}

func decode(r io.Reader, f Format, v any) error {
	switch f {
	case JSON:
		return json.NewDecoder(r).Decode(v)
	case YAML:
		return yaml.NewDecoder(r).Decode(v)
	default:
		return fmt.Errorf("%w: format %d", ErrUnknownFormat, f)
	}
}

// Build turns the matrix into a Grid, checking the declared dimensions.
// A zero Rows or Cols means "infer from the matrix".
func (p *Plan) Build() (*gridgraph.Grid, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil plan", ErrInvalidPlan)
	}
	var (
		g   *gridgraph.Grid
		err error
	)
	if p.Rows == 0 && p.Cols == 0 {
		g, err = gridgraph.NewGrid(p.Grid)
	} else {
		g, err = gridgraph.NewGridWithDims(p.Rows, p.Cols, p.Grid)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	return g, nil
}

// Validate reports non-fatal problems: nodes or roof references that sit
// outside the grid or on a blocked cell, and duplicate ids or codes.
// It assumes Build succeeds.
func (p *Plan) Validate(refs []RoofReference) []error {
	g, err := p.Build()
	if err != nil {
		return []error{err}
	}

	var warnings []error
	check := func(what string, c gridgraph.Coord) {
		switch {
		case !g.InBounds(c):
			warnings = append(warnings, fmt.Errorf("%s at %v is outside the %dx%d grid", what, c, g.Rows(), g.Cols()))
		case !g.Walkable(c):
			warnings = append(warnings, fmt.Errorf("%s at %v sits on a blocked cell", what, c))
		}
	}

	ids := make(map[ID]bool, len(p.Nodes))
	for _, n := range p.Nodes {
		check(fmt.Sprintf("node %q", n.String()), n.Coord())
		if n.ID != "" && ids[n.ID] {
			warnings = append(warnings, fmt.Errorf("duplicate node id %q", n.ID))
		}
		ids[n.ID] = true
	}

	codes := make(map[string]bool, len(refs))
	for _, r := range refs {
		check(fmt.Sprintf("roof reference %q", r.Code), r.Coord())
		key := strings.ToUpper(r.Code)
		if codes[key] {
			warnings = append(warnings, fmt.Errorf("duplicate roof reference %q", r.Code))
		}
		codes[key] = true
	}
	return warnings
}

// Stats counts nodes of type "office", "room" and everything else.
func (p *Plan) Stats() Stats {
	s := Stats{Total: len(p.Nodes)}
	for _, n := range p.Nodes {
		switch n.Type {
		case "office":
			s.Offices++
		case "room":
			s.Rooms++
		}
	}
	s.Others = s.Total - s.Offices - s.Rooms
	return s
}
