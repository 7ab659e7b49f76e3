package eezdraw

import (
	"strconv"
	"strings"

	"github.com/eezkit/eezdraw/style"
)

// Cache namespaces used by the renderers.
const (
	nsText      = "text"
	nsMultiline = "multiline"
	nsBitmap    = "bitmap"
	nsRectangle = "rectangle"
	nsButtons   = "buttons"
	nsScale     = "scale"
	nsBarGraph  = "bargraph"
	nsUpDown    = "updown"
	nsListGraph = "listgraph"
	nsYTGraph   = "ytgraph"
)

// Renderer draws widget primitives. It only reads from its registry.
type Renderer struct {
	resolver *style.Resolver
	cache    *DrawCache
}

// NewRenderer creates a renderer over reg.
func NewRenderer(reg style.Registry, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	cache := o.cache
	if cache == nil {
		cache = NewDrawCache(o.cacheCapacity)
	}
	return &Renderer{
		resolver: style.NewResolver(reg),
		cache:    cache,
	}
}

// Cache returns the renderer's draw cache.
func (r *Renderer) Cache() *DrawCache {
	return r.cache
}

// Resolver returns the style resolver.
func (r *Renderer) Resolver() *style.Resolver {
	return r.resolver
}

// Registry returns the registry styles are resolved against.
func (r *Renderer) Registry() style.Registry {
	return r.resolver.Registry()
}

// prepare resolves s and computes its cache identity.
func (r *Renderer) prepare(s *style.Style) (style.Resolved, string, error) {
	res, err := r.resolver.Resolve(s)
	if err != nil {
		return style.Resolved{}, "", err
	}
	id, err := r.resolver.CacheID(s)
	if err != nil {
		return style.Resolved{}, "", err
	}
	return res, id, nil
}

// cacheKey joins key parts with '.'.
func cacheKey(parts ...any) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteByte('.')
		}
		switch v := p.(type) {
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(strconv.Itoa(v))
		case bool:
			b.WriteString(strconv.FormatBool(v))
		}
	}
	return b.String()
}
