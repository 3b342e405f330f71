package floorplan_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indoornav/floorplan"
	"github.com/katalvlaran/indoornav/gridgraph"
)

func loadFixture(t *testing.T) (*floorplan.Plan, []floorplan.RoofReference) {
	t.Helper()
	p, err := floorplan.Load(filepath.Join("testdata", "floor.json"))
	require.NoError(t, err)
	refs, err := floorplan.LoadRoofRefs(filepath.Join("testdata", "roofrefs.json"))
	require.NoError(t, err)
	return p, refs
}

func TestLoad_JSON(t *testing.T) {
	p, refs := loadFixture(t)

	assert.Equal(t, 5, p.Rows)
	assert.Equal(t, 8, p.Cols)
	require.Len(t, p.Nodes, 5)
	assert.Equal(t, floorplan.ID("1"), p.Nodes[0].ID, "numeric ids become strings")
	assert.Equal(t, floorplan.ID("lab-2"), p.Nodes[1].ID)
	assert.Len(t, refs, 4)

	g, err := p.Build()
	require.NoError(t, err)
	assert.True(t, g.Walkable(gridgraph.C(0, 0)))
	assert.False(t, g.Walkable(gridgraph.C(0, 4)))
}

func TestLoad_YAMLMatchesJSON(t *testing.T) {
	fromJSON, _ := loadFixture(t)
	fromYAML, err := floorplan.Load(filepath.Join("testdata", "floor.yaml"))
	require.NoError(t, err)
	assert.Equal(t, fromJSON, fromYAML)
}

func TestDecode_Errors(t *testing.T) {
	_, err := floorplan.Load(filepath.Join("testdata", "bad_dims.json"))
	require.ErrorIs(t, err, floorplan.ErrInvalidPlan)
	require.ErrorIs(t, err, gridgraph.ErrDimensionMismatch)

	_, err = floorplan.Decode(strings.NewReader(`{"grid": [[1, 2]]}`), floorplan.JSON)
	require.ErrorIs(t, err, gridgraph.ErrCellValue)

	_, err = floorplan.Decode(strings.NewReader(`{"grid": [[1]], "nodes": [{"id": [1]}]}`), floorplan.JSON)
	require.ErrorIs(t, err, floorplan.ErrInvalidPlan)

	_, err = floorplan.Decode(strings.NewReader(`not json`), floorplan.JSON)
	require.ErrorIs(t, err, floorplan.ErrInvalidPlan)

	_, err = floorplan.Load("floor.txt")
	require.ErrorIs(t, err, floorplan.ErrUnknownFormat)

	_, err = floorplan.Load(filepath.Join("testdata", "missing.json"))
	require.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestDecode_InferredDims(t *testing.T) {
	p, err := floorplan.Decode(strings.NewReader("grid:\n  - [1, 0]\n  - [1, 1]\n"), floorplan.YAML)
	require.NoError(t, err)
	g, err := p.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.WalkableCount())
}

func TestValidate(t *testing.T) {
	p, refs := loadFixture(t)
	assert.Empty(t, p.Validate(refs))

	bad := append(refs,
		floorplan.RoofReference{Code: "X1", Row: 9, Col: 9},
		floorplan.RoofReference{Code: "X2", Row: 1, Col: 1},
		floorplan.RoofReference{Code: "a2", Row: 0, Col: 1},
	)
	warnings := p.Validate(bad)
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0].Error(), "outside")
	assert.Contains(t, warnings[1].Error(), "blocked")
	assert.Contains(t, warnings[2].Error(), "duplicate")
}

func TestStats(t *testing.T) {
	p, _ := loadFixture(t)
	assert.Equal(t, floorplan.Stats{Total: 5, Offices: 1, Rooms: 2, Others: 2}, p.Stats())
}
