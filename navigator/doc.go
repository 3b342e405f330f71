// Package navigator answers "how do I get from here to there" for one floor.
//
// A Session owns everything a route needs: the floor plan, the occupancy
// grid built from it, a Directory of named places, and a route cache tied
// to the current grid. Swapping floors through Reload invalidates the cache,
// so a route computed for an old floor is never served for a new one.
//
//	s, err := navigator.New(plan, refs, navigator.WithCellSize(24, 24))
//	r, err := s.RouteQuery(ctx, "Reception", "A101")
//	if errors.Is(err, navigator.ErrNoRoute) {
//	    // r.Found() == false, r is still populated with both endpoints
//	}
//	pose, _ := r.PoseAt(0.5) // halfway along the smoothed curve
//
// Each Route call is traced as a "navigator.Route" span and reported to the
// optional Recorder. Selection reproduces pick-to-route interaction: the
// first pick sets the start, the second the end (and computes the route),
// the third starts over.
package navigator
