// Package indoornav is a toolkit for walking directions inside buildings:
// shortest routes on an occupancy grid, a route cache, and smooth curves for
// drawing and animating a route.
//
// What is in the box?
//
//	gridgraph/  immutable occupancy grid, coordinates, signage labels (A1, B3)
//	bfs/        breadth-first search with a fixed neighbour order
//	pathcache/  thread-safe memo of routes for one grid
//	spline/     Catmull-Rom to cubic Bezier smoothing, progress and heading
//	floorplan/  floor documents (JSON/YAML), named places, roof references
//	navigator/  resolves places, routes, smooths and records one session
//	cmd/        the indoornav CLI and terminal viewer
//
// A floor is a matrix of 0 (blocked) and 1 (walkable) cells. Routes move one
// cell north, south, east or west at a time:
//
//	A1 ─ A2   ██
//	 │        ██
//	B1 ─ B2 ─ B3
//
// Quick start:
//
//	g := gridgraph.MustGrid([][]int{{1, 1, 0}, {1, 1, 1}})
//	p := bfs.FindPath(g, gridgraph.C(0, 0), gridgraph.C(1, 2))
//	fmt.Println(p.Labels()) // [A1 B1 B2 B3]
//
//	segs := spline.SmoothPath(p, 10, 10)
//	pose, _ := spline.PointAtProgress(segs, 0.5)
//
//	go install github.com/katalvlaran/indoornav/cmd/indoornav@latest
package indoornav
