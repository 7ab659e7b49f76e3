// Package fifo provides a bounded generic cache with insertion-order
// eviction.
//
// When an insert would exceed capacity, the single oldest-inserted entry is
// dropped first. Reads never change an entry's position, so a frequently hit
// entry is evicted as soon as it becomes the oldest one:
//
//	c := fifo.New[string, int](2)
//	c.Set("a", 1)
//	c.Set("b", 2)
//	c.Get("a")    // hit, position unchanged
//	c.Set("c", 3) // evicts "a"
//
// Cache is safe for concurrent use. It does not deduplicate work: two
// goroutines that miss on the same key both compute a value and the later
// Set wins, keeping the first insertion position.
package fifo
