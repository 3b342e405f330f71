package navigator

import (
	"context"
	"sync"

	"github.com/katalvlaran/indoornav/floorplan"
)

// Selection turns a stream of picks into routes:
//
//	pick 1 → start
//	pick 2 → end, route computed
//	pick 3 → new start, end and route cleared
//
// A grid pick on a blocked or off-floor cell is ignored.
type Selection struct {
	s *Session

	mu         sync.Mutex
	start, end floorplan.Location
	route      *Route
}

// NewSelection returns an empty Selection bound to s.
func (s *Session) NewSelection() *Selection {
	return &Selection{s: s}
}

// Select applies one pick. It returns the route when the pick completes a
// pair and nil otherwise; the error is that of Session.Route.
func (sel *Selection) Select(ctx context.Context, loc floorplan.Location) (*Route, error) {
	if loc == nil {
		return nil, ErrNilLocation
	}
	if p, ok := loc.(floorplan.GridPoint); ok && !sel.s.Grid().Walkable(p.At) {
		return nil, nil
	}

	sel.mu.Lock()
	defer sel.mu.Unlock()

	switch {
	case sel.start == nil:
		sel.start = loc
		return nil, nil
	case sel.end == nil:
		sel.end = loc
		r, err := sel.s.Route(ctx, sel.start, sel.end)
		sel.route = r
		return r, err
	default:
		sel.start, sel.end, sel.route = loc, nil, nil
		return nil, nil
	}
}

// Clear forgets both picks and the route.
func (sel *Selection) Clear() {
	sel.mu.Lock()
	sel.start, sel.end, sel.route = nil, nil, nil
	sel.mu.Unlock()
}

// State returns the current picks and route; any may be nil.
func (sel *Selection) State() (start, end floorplan.Location, route *Route) {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	return sel.start, sel.end, sel.route
}
