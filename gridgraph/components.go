package gridgraph

// Regions finds all connected areas of walkable cells under 4-connectivity.
// Each region lists its cells in BFS discovery order (N,S,E,W expansion from
// the region's first cell in row-major scan order). Regions are ordered by
// that first cell. The result is computed once and shared; callers must not
// modify it.
//
// Time:   O(R·C·4) on first call, O(1) afterwards.
// Memory: O(R·C) for labels and output.
func (g *Grid) Regions() [][]Coord {
	g.regionOnce.Do(g.labelRegions)
	return g.regions
}

// RegionOf returns the region index of c, or -1 if c is blocked or out of bounds.
func (g *Grid) RegionOf(c Coord) int {
	if !g.InBounds(c) {
		return -1
	}
	g.regionOnce.Do(g.labelRegions)
	return g.label[g.Index(c)]
}

// Connected reports whether a walkable route exists between a and b.
// Both cells must be walkable; a cell is connected to itself.
// Complexity: O(1) after the first region labelling.
func (g *Grid) Connected(a, b Coord) bool {
	ra := g.RegionOf(a)
	return ra >= 0 && ra == g.RegionOf(b)
}

func (g *Grid) labelRegions() {
	total := len(g.cells)
	g.label = make([]int, total)
	for i := range g.label {
		g.label[i] = -1
	}

	for i0 := 0; i0 < total; i0++ {
		if g.cells[i0] != Walkable || g.label[i0] >= 0 {
			continue
		}
		id := len(g.regions)
		// BFS to collect region
		queue := []int{i0}
		g.label[i0] = id
		var region []Coord

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coord(queue[qi])
			region = append(region, u)
			for _, d := range OrderNSEW {
				v := u.Step(d)
				if !g.Walkable(v) {
					continue
				}
				vi := g.Index(v)
				if g.label[vi] < 0 {
					g.label[vi] = id
					queue = append(queue, vi)
				}
			}
		}
		g.regions = append(g.regions, region)
	}
}
