package nav

import "github.com/udisondev/gridnav/internal/model"

// Request is the cache fingerprint for one path query.
type Request struct {
	Start    model.Position
	End      model.Position
	Category Category
}

// Cache memoizes path results within one grid-validity epoch.
// Invalidation is global: any grid mutation bumps the epoch and stales
// every entry. Pessimistic on large frequently-edited maps, but can never
// serve a path crossing a newly blocked cell. Not internally synchronized;
// callers serialize access per map together with the owning grid.
type Cache struct {
	epoch   uint64
	entries map[Request]cacheEntry
	hits    uint64
	misses  uint64
}

type cacheEntry struct {
	path  []model.Position
	epoch uint64
}

// NewCache creates an empty path cache at epoch 0.
func NewCache() *Cache {
	return &Cache{entries: make(map[Request]cacheEntry)}
}

// Epoch returns the current grid-validity epoch.
func (c *Cache) Epoch() uint64 { return c.epoch }

// Lookup returns the cached path for req, if present and current.
// A cached failed search returns (nil, true): repeated unreachable queries
// short-circuit without re-running A*. Stale entries are dropped on sight.
func (c *Cache) Lookup(req Request) ([]model.Position, bool) {
	e, ok := c.entries[req]
	if !ok {
		c.misses++
		return nil, false
	}
	if e.epoch != c.epoch {
		delete(c.entries, req)
		c.misses++
		return nil, false
	}
	c.hits++
	return e.path, true
}

// Store records path for req under the current epoch.
// Empty (failed) results are stored too.
func (c *Cache) Store(req Request, path []model.Position) {
	c.entries[req] = cacheEntry{path: path, epoch: c.epoch}
}

// Invalidate bumps the epoch, staling every entry.
// Called on every grid mutation event, and exposed for callers that mutate
// the grid outside its own setters (bulk map edits).
func (c *Cache) Invalidate() {
	c.epoch++
	// Entries expire lazily in Lookup; drop them eagerly once the map has
	// grown past any reasonable working set.
	if len(c.entries) > 4096 {
		clear(c.entries)
	}
}

// Size returns the current number of entries, stale ones included.
func (c *Cache) Size() int { return len(c.entries) }

// CacheStats holds hit/miss counters for profiling cache churn.
type CacheStats struct {
	Size    int
	Epoch   uint64
	Hits    uint64
	Misses  uint64
	HitRate float64
}

// Stats returns cache statistics.
func (c *Cache) Stats() CacheStats {
	total := c.hits + c.misses
	rate := 0.0
	if total > 0 {
		rate = float64(c.hits) / float64(total)
	}
	return CacheStats{
		Size:    len(c.entries),
		Epoch:   c.epoch,
		Hits:    c.hits,
		Misses:  c.misses,
		HitRate: rate,
	}
}
