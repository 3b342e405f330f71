package pathcache

import (
	"fmt"

	"github.com/katalvlaran/indoornav/bfs"
	"github.com/katalvlaran/indoornav/gridgraph"
	"github.com/katalvlaran/indoornav/internal/logging"
)

// Finder computes a route on g. bfs.FindPath is the default.
type Finder func(g *gridgraph.Grid, start, end gridgraph.Coord) gridgraph.Path

// Recorder receives cache activity, e.g. a Prometheus collector.
type Recorder interface {
	CacheHit()
	CacheMiss()
	CacheSize(n int)
}

// Key identifies one ordered route request.
type Key struct {
	FromRow, FromCol int
	ToRow, ToCol     int
}

// KeyOf builds the Key for start → end.
func KeyOf(start, end gridgraph.Coord) Key {
	return Key{FromRow: start.Row, FromCol: start.Col, ToRow: end.Row, ToCol: end.Col}
}

// String renders k as "r1,c1,r2,c2".
func (k Key) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", k.FromRow, k.FromCol, k.ToRow, k.ToCol)
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits          int64
	Misses        int64
	Invalidations int64
	Size          int
}

// HitRate returns hits / (hits + misses) in [0,1], or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Option configures a Cache.
type Option func(*Cache)

// WithFinder replaces the route finder; nil is ignored.
func WithFinder(f Finder) Option {
	return func(c *Cache) {
		if f != nil {
			c.finder = f
		}
	}
}

// WithRecorder reports hits, misses and size to r.
func WithRecorder(r Recorder) Option {
	return func(c *Cache) {
		if r != nil {
			c.rec = r
		}
	}
}

// WithLogger sets the logger used for invalidation events.
func WithLogger(l logging.Logger) Option {
	return func(c *Cache) {
		c.log = logging.OrNoop(l)
	}
}

func defaultFinder(g *gridgraph.Grid, start, end gridgraph.Coord) gridgraph.Path {
	return bfs.FindPath(g, start, end)
}

type noopRecorder struct{}

func (noopRecorder) CacheHit()     {}
func (noopRecorder) CacheMiss()    {}
func (noopRecorder) CacheSize(int) {}
