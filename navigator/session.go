package navigator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/indoornav/bfs"
	"github.com/katalvlaran/indoornav/floorplan"
	"github.com/katalvlaran/indoornav/gridgraph"
	"github.com/katalvlaran/indoornav/internal/logging"
	"github.com/katalvlaran/indoornav/pathcache"
	"github.com/katalvlaran/indoornav/spline"
)

const tracerName = "github.com/katalvlaran/indoornav/navigator"

// Session routes on one floor at a time. It is safe for concurrent use;
// Reload swaps the floor atomically with respect to Route.
type Session struct {
	cfg   config
	cache *pathcache.Cache

	mu   sync.RWMutex
	plan *floorplan.Plan
	grid *gridgraph.Grid
	dir  *floorplan.Directory
}

// New builds a Session for plan and its roof references.
func New(plan *floorplan.Plan, refs []floorplan.RoofReference, opts ...Option) (*Session, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.tracer == nil {
		cfg.tracer = otel.Tracer(tracerName)
	}

	s := &Session{cfg: cfg}
	s.cache = pathcache.New(
		pathcache.WithFinder(routeFinder(cfg.order)),
		pathcache.WithRecorder(cfg.rec),
		pathcache.WithLogger(cfg.log),
	)
	if err := s.Reload(plan, refs); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the floor and drops every cached route. Validation
// problems that do not prevent routing are logged as warnings.
func (s *Session) Reload(plan *floorplan.Plan, refs []floorplan.RoofReference) error {
	ctx := context.Background()
	g, err := plan.Build()
	if err != nil {
		return err
	}
	// label regions now so the first route's connectivity check is O(1)
	regions := len(g.Regions())
	for _, w := range plan.Validate(refs) {
		s.cfg.log.Warn(ctx, "floor plan warning", logging.Err(w))
	}
	dir := floorplan.NewDirectory(plan, refs)

	s.mu.Lock()
	s.plan, s.grid, s.dir = plan, g, dir
	s.cache.Invalidate()
	s.mu.Unlock()

	st := plan.Stats()
	s.cfg.log.Info(ctx, "floor loaded",
		logging.Int("rows", g.Rows()),
		logging.Int("cols", g.Cols()),
		logging.Int("walkable", g.WalkableCount()),
		logging.Int("regions", regions),
		logging.Int("nodes", st.Total),
		logging.Int("roof_refs", len(refs)),
	)
	return nil
}

// Plan returns the current floor plan.
func (s *Session) Plan() *floorplan.Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plan
}

// Grid returns the current occupancy grid.
func (s *Session) Grid() *gridgraph.Grid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid
}

// Directory returns the current place index.
func (s *Session) Directory() *floorplan.Directory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir
}

// CacheStats returns the route cache counters.
func (s *Session) CacheStats() pathcache.Stats { return s.cache.Stats() }

// CellSize returns the rendering size of one cell.
func (s *Session) CellSize() (w, h float64) { return s.cfg.cellW, s.cfg.cellH }

// Resolve looks a query up in the current Directory.
func (s *Session) Resolve(query string) (floorplan.Location, error) {
	return s.Directory().Resolve(query)
}

// RouteQuery resolves both queries and routes between them.
func (s *Session) RouteQuery(ctx context.Context, from, to string) (*Route, error) {
	a, err := s.Resolve(from)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	b, err := s.Resolve(to)
	if err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}
	return s.Route(ctx, a, b)
}

// Route computes the shortest walkable route from one location to another
// and smooths it for display. When no route exists the returned Route is
// still non-nil (Found reports false) and the error wraps ErrNoRoute.
func (s *Session) Route(ctx context.Context, from, to floorplan.Location) (*Route, error) {
	if from == nil || to == nil {
		return nil, ErrNilLocation
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := s.cfg.tracer.Start(ctx, "navigator.Route",
		trace.WithAttributes(
			attribute.String("route.from", from.String()),
			attribute.String("route.from_kind", string(from.Kind())),
			attribute.String("route.to", to.String()),
			attribute.String("route.to_kind", string(to.Kind())),
		),
	)
	defer span.End()
	began := time.Now()

	s.mu.RLock()
	g := s.grid
	s.mu.RUnlock()

	r := &Route{From: from, To: to, Start: from.Coord(), End: to.Coord()}
	if s.cfg.snap {
		r.Start, r.Snapped = snap(g, r.Start)
		var moved bool
		r.End, moved = snap(g, r.End)
		r.Snapped = r.Snapped || moved
		if r.Snapped {
			s.cfg.log.Debug(ctx, "snapped blocked endpoint",
				logging.Stringer("start", r.Start), logging.Stringer("end", r.End))
		}
	}

	_, cached := s.cache.Lookup(r.Start, r.End)
	r.Path = s.cache.GetOrCompute(g, r.Start, r.End)
	r.Segments = spline.Smooth(centres(r.Path, s.cfg.cellW, s.cfg.cellH), s.cfg.spline)
	r.Length = spline.TotalLength(r.Segments)

	elapsed := time.Since(began)
	s.cfg.rec.ObserveRoute(elapsed, r.Steps(), r.Length, r.Found())
	span.SetAttributes(
		attribute.Bool("route.found", r.Found()),
		attribute.Bool("route.cached", cached),
		attribute.Bool("route.snapped", r.Snapped),
		attribute.Int("route.steps", r.Steps()),
		attribute.Float64("route.length", r.Length),
	)

	if !r.Found() {
		err := fmt.Errorf("%w: %s to %s", ErrNoRoute, from, to)
		span.SetStatus(codes.Error, err.Error())
		s.cfg.log.Debug(ctx, "no route", logging.String("from", from.String()), logging.String("to", to.String()))
		return r, err
	}
	s.cfg.log.Debug(ctx, "route computed",
		logging.String("from", from.String()),
		logging.String("to", to.String()),
		logging.Int("steps", r.Steps()),
		logging.Float("length", r.Length),
		logging.Bool("cached", cached),
	)
	return r, nil
}

// routeFinder answers pairs in different regions without searching, and
// runs BFS in the given order otherwise. A cell always routes to itself.
func routeFinder(order gridgraph.DirectionOrder) pathcache.Finder {
	return func(g *gridgraph.Grid, a, b gridgraph.Coord) gridgraph.Path {
		if g == nil {
			return nil
		}
		if a != b && !g.Connected(a, b) {
			return nil
		}
		return bfs.FindPath(g, a, b, bfs.WithDirectionOrder(order))
	}
}

// snap moves a blocked in-bounds cell to its nearest walkable neighbour.
func snap(g *gridgraph.Grid, c gridgraph.Coord) (gridgraph.Coord, bool) {
	if !g.InBounds(c) || g.Walkable(c) {
		return c, false
	}
	if w, ok := g.NearestWalkable(c); ok {
		return w, true
	}
	return c, false
}

func centres(p gridgraph.Path, w, h float64) []spline.Point {
	pts := make([]spline.Point, len(p))
	for i, c := range p {
		pts[i] = spline.CellCenter(c, w, h)
	}
	return pts
}
