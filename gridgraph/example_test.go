// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/indoornav/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Regions
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Regions demonstrates how to find floor areas that cannot reach
// each other, e.g. a storage room whose door was drawn as a wall.
// Scenario:
//
//   - 1 = floor, 0 = wall
//   - 4-directional adjacency (N/S/E/W)
//   - Expect two regions: the main corridor and the closed room at the right.
//
// Complexity: O(R·C·4), Memory: O(R·C)
func ExampleGrid_Regions() {
	g, _ := gridgraph.NewGrid([][]int{
		{1, 1, 1, 0, 1},
		{1, 0, 1, 0, 1},
		{1, 1, 1, 0, 1},
	})

	regions := g.Regions()
	fmt.Println("regions:", len(regions))
	for i, r := range regions {
		fmt.Printf("region %d: %d cells, starts at %s\n", i, len(r), r[0].Label())
	}
	fmt.Println("A1 reaches C3:", g.Connected(gridgraph.C(0, 0), gridgraph.C(2, 2)))
	fmt.Println("A1 reaches A5:", g.Connected(gridgraph.C(0, 0), gridgraph.C(0, 4)))

	// Output:
	// regions: 2
	// region 0: 8 cells, starts at A1
	// region 1: 3 cells, starts at A5
	// A1 reaches C3: true
	// A1 reaches A5: false
}

////////////////////////////////////////////////////////////////////////////////
// Example: NearestWalkable
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_NearestWalkable snaps a click on a wall to the closest floor cell.
func ExampleGrid_NearestWalkable() {
	g, _ := gridgraph.NewGrid([][]int{
		{1, 1, 1},
		{0, 0, 0},
		{0, 0, 1},
	})

	c, ok := g.NearestWalkable(gridgraph.C(1, 1))
	fmt.Println(c, ok)
	// Output:
	// (0,1) true
}
