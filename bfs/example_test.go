package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/indoornav/bfs"
	"github.com/katalvlaran/indoornav/gridgraph"
)

// ExampleFindPath routes across a small floor with two blocked corners.
func ExampleFindPath() {
	g := gridgraph.MustGrid([][]int{
		{1, 1, 0},
		{1, 1, 1},
		{0, 1, 1},
	})

	p := bfs.FindPath(g, gridgraph.C(0, 0), gridgraph.C(2, 2))
	fmt.Println(p)
	fmt.Println(p.Labels())

	// blocked endpoint: no route
	fmt.Println(bfs.FindPath(g, gridgraph.C(0, 2), gridgraph.C(2, 2)).Found())
	// Output:
	// [(0,0) (1,0) (1,1) (2,1) (2,2)]
	// [A1 B1 B2 C2 C3]
	// false
}

// ExampleSearch shows the visit order from a corner with a depth cap.
func ExampleSearch() {
	g := gridgraph.MustGrid([][]int{
		{1, 1, 1},
		{1, 1, 1},
	})
	res, err := bfs.Search(g, gridgraph.C(0, 0), bfs.WithMaxDepth(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [(0,0) (1,0) (0,1)]
}
