package eezdraw

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/eezkit/eezdraw/style"
)

// TextPlacement is where a single line of text lands inside its bitmap.
type TextPlacement struct {
	X, Y          int
	Width, Height int
}

// PlaceText computes single-line placement of content of the given width
// inside box. The width is clamped to the box so centered text never
// starts left of it.
func PlaceText(box image.Rectangle, width, height int, s style.Resolved) TextPlacement {
	width = min(width, box.Dx())
	return TextPlacement{
		X:      AlignX(box, width, s),
		Y:      AlignY(box, height, s),
		Width:  width,
		Height: height,
	}
}

// DrawText renders a single line of text. bg, when not empty, replaces the
// style background. With inverse the foreground and background colors swap.
func (r *Renderer) DrawText(text string, w, h int, s *style.Style, inverse bool, bg string) (*gg.Pixmap, error) {
	res, id, err := r.prepare(s)
	if err != nil {
		return nil, err
	}

	key := cacheKey(id, w, h, inverse, bg, text)
	return r.cache.GetOrRender(nsText, key, w, h, func(c *Canvas) {
		frame := NewFrame(w, h, res)
		fg := frame.paint(c, res, inverse, bg)
		drawLine(c, frame.Inner, unescapeText(text), res, fg)
	}), nil
}

func drawLine(c *Canvas, box image.Rectangle, text string, s style.Resolved, fg string) {
	font := s.Font
	if font == nil {
		return
	}
	width, height := font.Measure(text), font.Height()
	if width <= 0 || height <= 0 {
		return
	}
	p := PlaceText(box, width, height, s)
	c.Text(text, p.X, p.Y, font, fg)
}
