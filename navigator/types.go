package navigator

import (
	"errors"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/indoornav/floorplan"
	"github.com/katalvlaran/indoornav/gridgraph"
	"github.com/katalvlaran/indoornav/internal/logging"
	"github.com/katalvlaran/indoornav/pathcache"
	"github.com/katalvlaran/indoornav/spline"
)

var (
	// ErrNoRoute indicates that no walkable route joins the two locations.
	ErrNoRoute = errors.New("navigator: no route")
	// ErrNilLocation indicates a nil Location argument.
	ErrNilLocation = errors.New("navigator: nil location")
)

// Recorder receives cache and route metrics.
type Recorder interface {
	pathcache.Recorder
	ObserveRoute(elapsed time.Duration, steps int, length float64, found bool)
}

// Option configures a Session.
type Option func(*config)

type config struct {
	log    logging.Logger
	rec    Recorder
	tracer trace.Tracer
	cellW  float64
	cellH  float64
	spline *spline.Options
	snap   bool
	order  gridgraph.DirectionOrder
}

// Default rendering cell size.
const DefaultCellSize = 10

func defaultConfig() config {
	return config{
		log:    logging.Noop(),
		rec:    noopRecorder{},
		cellW:  DefaultCellSize,
		cellH:  DefaultCellSize,
		spline: spline.DefaultOptions(),
		order:  gridgraph.OrderNSEW,
	}
}

// WithLogger sets the session logger.
func WithLogger(l logging.Logger) Option {
	return func(c *config) { c.log = logging.OrNoop(l) }
}

// WithRecorder reports cache and route metrics to r.
func WithRecorder(r Recorder) Option {
	return func(c *config) {
		if r != nil {
			c.rec = r
		}
	}
}

// WithTracer overrides the tracer; the global otel provider is used otherwise.
func WithTracer(t trace.Tracer) Option {
	return func(c *config) { c.tracer = t }
}

// WithCellSize sets the rendering size of one grid cell. Non-positive
// values are ignored.
func WithCellSize(w, h float64) Option {
	return func(c *config) {
		if w > 0 && h > 0 {
			c.cellW, c.cellH = w, h
		}
	}
}

// WithSplineOptions tunes route smoothing.
func WithSplineOptions(o *spline.Options) Option {
	return func(c *config) {
		if o != nil {
			c.spline = o
		}
	}
}

// WithSnapBlocked moves a blocked endpoint to the nearest walkable cell
// instead of failing.
func WithSnapBlocked(on bool) Option {
	return func(c *config) { c.snap = on }
}

// WithDirectionOrder sets the search tie-break order. Invalid orders are ignored.
func WithDirectionOrder(o gridgraph.DirectionOrder) Option {
	return func(c *config) {
		if o.Valid() {
			c.order = o
		}
	}
}

// Route is the answer to one routing request. Start and End are the cells
// actually searched, which differ from From and To only after snapping.
type Route struct {
	From, To   floorplan.Location
	Start, End gridgraph.Coord
	Snapped    bool

	Path     gridgraph.Path
	Segments []spline.Segment
	Length   float64
}

// Found reports whether the route holds a path.
func (r *Route) Found() bool { return r != nil && r.Path.Found() }

// Steps returns the number of moves along the path.
func (r *Route) Steps() int {
	if r == nil {
		return 0
	}
	return r.Path.Steps()
}

// PoseAt returns the point and heading at progress t along the curve.
func (r *Route) PoseAt(t float64) (spline.Pose, bool) {
	if r == nil {
		return spline.Pose{}, false
	}
	return spline.PointAtProgress(r.Segments, t)
}

type noopRecorder struct{}

func (noopRecorder) CacheHit()                                      {}
func (noopRecorder) CacheMiss()                                     {}
func (noopRecorder) CacheSize(int)                                  {}
func (noopRecorder) ObserveRoute(time.Duration, int, float64, bool) {}
