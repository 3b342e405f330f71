// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// TestRegions_Simple tests Regions on a 3×4 floor with two disjoint areas.
//
// Grid (1 = floor, 0 = wall):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 regions of sizes 4 and 2.
//
// Complexity: O(R·C·4) time, O(R·C) memory.
func TestRegions_Simple(t *testing.T) {
	g := MustGrid([][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	})

	regions := g.Regions()
	if len(regions) != 2 {
		t.Fatalf("got %d regions; want 2", len(regions))
	}

	sizes := []int{len(regions[0]), len(regions[1])}
	sort.Ints(sizes)
	if want := []int{2, 4}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("region sizes = %v; want %v", sizes, want)
	}

	// first region starts at the first walkable cell in row-major order
	if regions[0][0] != C(0, 1) {
		t.Errorf("regions[0][0] = %v; want (0,1)", regions[0][0])
	}
}

// TestRegions_NoDiagonals ensures corner-touching cells stay separate.
//
//	1 0
//	0 1
func TestRegions_NoDiagonals(t *testing.T) {
	g := MustGrid([][]int{{1, 0}, {0, 1}})
	if n := len(g.Regions()); n != 2 {
		t.Errorf("got %d regions; want 2", n)
	}
	if g.Connected(C(0, 0), C(1, 1)) {
		t.Error("diagonal cells reported connected")
	}
}

// TestRegions_AllBlockedAndSingle tests edge cases:
//   - all-wall grid → zero regions
//   - single floor cell → one region of size 1
func TestRegions_AllBlockedAndSingle(t *testing.T) {
	g1 := MustGrid([][]int{{0, 0}, {0, 0}})
	if n := len(g1.Regions()); n != 0 {
		t.Errorf("all-blocked: got %d regions; want 0", n)
	}

	g2 := MustGrid([][]int{{0, 1}})
	regions := g2.Regions()
	if len(regions) != 1 || len(regions[0]) != 1 {
		t.Fatalf("single floor: regions = %v", regions)
	}
}

// TestRegionOf_Labels checks per-cell labelling and Connected.
func TestRegionOf_Labels(t *testing.T) {
	g := MustGrid([][]int{
		{1, 1, 0},
		{0, 0, 0},
		{1, 0, 1},
	})
	if g.RegionOf(C(0, 0)) != g.RegionOf(C(0, 1)) {
		t.Error("(0,0) and (0,1) should share a region")
	}
	if g.RegionOf(C(1, 1)) != -1 {
		t.Error("blocked cell must have region -1")
	}
	if g.RegionOf(C(9, 9)) != -1 {
		t.Error("out-of-bounds cell must have region -1")
	}
	if g.Connected(C(2, 0), C(2, 2)) {
		t.Error("isolated corners reported connected")
	}
	if !g.Connected(C(2, 2), C(2, 2)) {
		t.Error("walkable cell must be connected to itself")
	}
	if g.Connected(C(1, 1), C(1, 1)) {
		t.Error("blocked cell must not be connected to itself")
	}
}
