package eezdraw

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/eezkit/eezdraw/style"
)

// DrawBitmap renders b aligned inside the frame of s. The bitmap's own
// background color is painted behind the image. A nil bitmap, or one
// without image data, draws nothing.
func (r *Renderer) DrawBitmap(b *style.Bitmap, w, h int, s *style.Style, inverse bool) (*gg.Pixmap, error) {
	if b == nil || b.Image == nil {
		return nil, nil
	}
	res, id, err := r.prepare(s)
	if err != nil {
		return nil, err
	}

	key := cacheKey(id, w, h, inverse, b.CacheID())
	return r.cache.GetOrRender(nsBitmap, key, w, h, func(c *Canvas) {
		frame := NewFrame(w, h, res)
		frame.paint(c, res, inverse, "")

		iw, ih := b.Size()
		x, y := AlignX(frame.Inner, iw, res), AlignY(frame.Inner, ih, res)
		c.FillRect(image.Rect(x, y, x+iw, y+ih), 0, b.BackgroundColor)
		c.Blit(b.Image, x, y)
	}), nil
}
