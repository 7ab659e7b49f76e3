package eezdraw

import (
	"github.com/gogpu/gg"

	"github.com/eezkit/eezdraw/style"
)

// DrawRectangle renders just the frame of s: border and background.
func (r *Renderer) DrawRectangle(w, h int, s *style.Style, inverse bool) (*gg.Pixmap, error) {
	if w <= 0 || h <= 0 {
		return nil, nil
	}
	res, id, err := r.prepare(s)
	if err != nil {
		return nil, err
	}

	key := cacheKey(id, w, h, inverse)
	return r.cache.GetOrRender(nsRectangle, key, w, h, func(c *Canvas) {
		NewFrame(w, h, res).paint(c, res, inverse, "")
	}), nil
}
