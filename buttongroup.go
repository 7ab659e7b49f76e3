package eezdraw

import (
	"image"
	"strings"

	"github.com/gogpu/gg"

	"github.com/eezkit/eezdraw/style"
)

// ButtonGroupLayout splits a w×h area into n equal buttons along the longer
// axis: side by side when w > h, stacked otherwise. Space that does not
// divide evenly is shared before the first and after the last button.
func ButtonGroupLayout(n, w, h int) []image.Rectangle {
	if n <= 0 || w <= 0 || h <= 0 {
		return nil
	}
	rects := make([]image.Rectangle, 0, n)
	if w > h {
		bw := w / n
		x := (w - bw*n) / 2
		for i := 0; i < n; i++ {
			rects = append(rects, image.Rect(x+i*bw, 0, x+(i+1)*bw, h))
		}
		return rects
	}
	bh := h / n
	y := (h - bh*n) / 2
	for i := 0; i < n; i++ {
		rects = append(rects, image.Rect(0, y+i*bh, w, y+(i+1)*bh))
	}
	return rects
}

// DrawButtonGroup renders one labeled button per label, drawing the
// selected one inverted. A selected index out of range selects nothing.
func (r *Renderer) DrawButtonGroup(labels []string, selected, w, h int, s *style.Style) (*gg.Pixmap, error) {
	rects := ButtonGroupLayout(len(labels), w, h)
	if len(rects) == 0 {
		return nil, nil
	}

	// Resolve once up front so a cycle surfaces before anything is drawn.
	_, id, err := r.prepare(s)
	if err != nil {
		return nil, err
	}

	buttons := make([]*gg.Pixmap, len(labels))
	for i, label := range labels {
		pm, err := r.DrawText(label, rects[i].Dx(), rects[i].Dy(), s, i == selected, "")
		if err != nil {
			return nil, err
		}
		buttons[i] = pm
	}

	key := cacheKey(id, w, h, selected, strings.Join(labels, "\x1f"))
	return r.cache.GetOrRender(nsButtons, key, w, h, func(c *Canvas) {
		for i, pm := range buttons {
			if pm != nil {
				c.Blit(pm, rects[i].Min.X, rects[i].Min.Y)
			}
		}
	}), nil
}
