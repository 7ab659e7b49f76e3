package eezdraw

import (
	"github.com/gogpu/gg"

	"github.com/eezkit/eezdraw/internal/fifo"
)

// DefaultCacheCapacity bounds the number of cached bitmaps across all
// namespaces.
const DefaultCacheCapacity = 1000

// NoCache as a key makes GetOrRender render without reading or storing.
const NoCache = ""

// RenderFunc draws onto a blank canvas.
type RenderFunc func(c *Canvas)

// CacheStats holds draw cache counters.
type CacheStats = fifo.Stats

// DrawCache maps namespace.key to rendered pixmaps, evicting the
// oldest-inserted entry when full. Re-hitting an entry does not protect it.
//
// Returned pixmaps are shared; callers must not draw on them.
//
// DrawCache is safe for concurrent use, but two goroutines missing on the
// same key both render and the later result is kept.
type DrawCache struct {
	store *fifo.Cache[string, *gg.Pixmap]
}

// NewDrawCache creates a cache holding at most capacity pixmaps.
// If capacity <= 0, DefaultCacheCapacity is used.
func NewDrawCache(capacity int) *DrawCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &DrawCache{store: fifo.New[string, *gg.Pixmap](capacity)}
}

// GetOrRender returns the pixmap cached under namespace.key, rendering it
// with fn on a miss. With key == NoCache fn always runs and nothing is
// stored. Non-positive sizes return nil without calling fn.
func (d *DrawCache) GetOrRender(namespace, key string, w, h int, fn RenderFunc) *gg.Pixmap {
	if w <= 0 || h <= 0 {
		return nil
	}
	if key == NoCache {
		return render(w, h, fn)
	}

	k := namespace + "." + key
	if pm, ok := d.store.Get(k); ok {
		return pm
	}

	Logger().Debug("draw cache miss", "key", k, "width", w, "height", h)
	pm := render(w, h, fn)
	if d.store.Len() >= d.store.Capacity() {
		Logger().Debug("draw cache full, evicting oldest entry", "capacity", d.store.Capacity())
	}
	d.store.Set(k, pm)
	return pm
}

// Contains reports whether namespace.key is cached.
func (d *DrawCache) Contains(namespace, key string) bool {
	return d.store.Contains(namespace + "." + key)
}

// Len returns the number of cached pixmaps.
func (d *DrawCache) Len() int {
	return d.store.Len()
}

// Capacity returns the maximum number of cached pixmaps.
func (d *DrawCache) Capacity() int {
	return d.store.Capacity()
}

// Stats returns hit, miss and eviction counters.
func (d *DrawCache) Stats() CacheStats {
	return d.store.Stats()
}

// Clear drops every cached pixmap.
func (d *DrawCache) Clear() {
	d.store.Clear()
}

func render(w, h int, fn RenderFunc) *gg.Pixmap {
	c := NewCanvas(w, h)
	fn(c)
	_ = c.Close()
	return c.Pixmap()
}
