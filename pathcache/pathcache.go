package pathcache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/indoornav/gridgraph"
	"github.com/katalvlaran/indoornav/internal/logging"
)

// Cache stores previously computed routes for reuse.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]gridgraph.Path
	grid    *gridgraph.Grid

	finder Finder
	rec    Recorder
	log    logging.Logger

	hits          int64 // atomic
	misses        int64 // atomic
	invalidations int64 // atomic
}

// New returns an empty Cache backed by bfs.FindPath unless overridden.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[Key]gridgraph.Path),
		finder:  defaultFinder,
		rec:     noopRecorder{},
		log:     logging.Noop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrCompute returns the cached route for start → end, computing and
// storing it on a miss. Empty routes are stored as well. The returned Path is
// a copy the caller may modify.
func (c *Cache) GetOrCompute(g *gridgraph.Grid, start, end gridgraph.Coord) gridgraph.Path {
	key := KeyOf(start, end)

	c.mu.RLock()
	path, found := c.entries[key]
	same := c.grid == g
	c.mu.RUnlock()

	if found && same {
		atomic.AddInt64(&c.hits, 1)
		c.rec.CacheHit()
		return path.Clone()
	}
	if !same {
		c.rebind(g)
	}

	atomic.AddInt64(&c.misses, 1)
	c.rec.CacheMiss()
	path = c.finder(g, start, end)

	c.mu.Lock()
	if c.grid == g {
		c.entries[key] = path.Clone()
	}
	size := len(c.entries)
	c.mu.Unlock()
	c.rec.CacheSize(size)

	return path
}

// Lookup reports the stored route for start → end without computing.
// ok distinguishes "computed, no route" (empty Path, true) from "never
// computed" (nil, false).
func (c *Cache) Lookup(start, end gridgraph.Coord) (gridgraph.Path, bool) {
	c.mu.RLock()
	path, ok := c.entries[KeyOf(start, end)]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if path == nil {
		return gridgraph.Path{}, true
	}
	return path.Clone(), true
}

// Invalidate drops every entry. Counters other than Invalidations are kept.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	n := len(c.entries)
	c.entries = make(map[Key]gridgraph.Path)
	c.grid = nil
	c.mu.Unlock()

	atomic.AddInt64(&c.invalidations, 1)
	c.rec.CacheSize(0)
	c.log.Debug(context.Background(), "path cache invalidated", logging.Int("dropped", n))
}

// rebind clears the cache and pins it to g.
func (c *Cache) rebind(g *gridgraph.Grid) {
	c.mu.Lock()
	if c.grid == g {
		c.mu.Unlock()
		return
	}
	n := len(c.entries)
	had := c.grid != nil
	c.entries = make(map[Key]gridgraph.Path)
	c.grid = g
	c.mu.Unlock()

	if had {
		atomic.AddInt64(&c.invalidations, 1)
		c.rec.CacheSize(0)
		c.log.Debug(context.Background(), "path cache rebound to new grid", logging.Int("dropped", n))
	}
}

// Len returns the number of stored routes.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:          atomic.LoadInt64(&c.hits),
		Misses:        atomic.LoadInt64(&c.misses),
		Invalidations: atomic.LoadInt64(&c.invalidations),
		Size:          c.Len(),
	}
}

// String returns a string representation of cache statistics.
func (c *Cache) String() string {
	s := c.Stats()
	return fmt.Sprintf("PathCache[size=%d, hits=%d, misses=%d, hitRate=%.1f%%, invalidations=%d]",
		s.Size, s.Hits, s.Misses, s.HitRate()*100, s.Invalidations)
}
