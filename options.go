package eezdraw

// Option configures a Renderer during creation.
//
// Example:
//
//	// Share one cache between two renderers
//	cache := eezdraw.NewDrawCache(2000)
//	a := eezdraw.NewRenderer(libA, eezdraw.WithCache(cache))
//	b := eezdraw.NewRenderer(libB, eezdraw.WithCache(cache))
type Option func(*options)

type options struct {
	cache         *DrawCache
	cacheCapacity int
}

func defaultOptions() options {
	return options{
		cacheCapacity: DefaultCacheCapacity,
	}
}

// WithCacheCapacity sets the capacity of the renderer's own draw cache.
// Ignored when WithCache is also given.
func WithCacheCapacity(n int) Option {
	return func(o *options) {
		o.cacheCapacity = n
	}
}

// WithCache makes the renderer use an existing draw cache.
func WithCache(c *DrawCache) Option {
	return func(o *options) {
		o.cache = c
	}
}
