package gridgraph

// NearestWalkable returns the walkable cell closest to c in 4-connected steps,
// travelling through blocked and walkable cells alike. When c itself is
// walkable it is returned unchanged. Ties resolve by expansion order
// (N,S,E,W), which makes the result deterministic.
//
// Returns ok=false when c is out of bounds or the grid has no walkable cell.
//
// Behavior:
//  1. Breadth-first flood from c over every in-bounds cell.
//  2. Stop at the first dequeued walkable cell.
//
// Complexity: O(R·C·4) worst case, Memory: O(R·C) for the seen flags.
func (g *Grid) NearestWalkable(c Coord) (Coord, bool) {
	if !g.InBounds(c) || g.walkable == 0 {
		return Coord{}, false
	}
	if g.Walkable(c) {
		return c, true
	}

	seen := make([]bool, len(g.cells))
	seen[g.Index(c)] = true
	queue := []Coord{c}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if g.cells[g.Index(u)] == Walkable {
			return u, true
		}
		for _, d := range OrderNSEW {
			v := u.Step(d)
			if !g.InBounds(v) {
				continue
			}
			vi := g.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return Coord{}, false
}
