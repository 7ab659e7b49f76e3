package eezdraw

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/eezkit/eezdraw/style"
)

// UpDownLayout places the down button, the value and the up button in a
// w×h strip. Buttons are h×h squares, narrowed to a third of the width when
// the strip is too short for two squares and a value.
func UpDownLayout(w, h int) (down, value, up image.Rectangle) {
	bw := h
	if 2*bw >= w {
		bw = w / 3
	}
	down = image.Rect(0, 0, bw, h)
	value = image.Rect(bw, 0, w-bw, h)
	up = image.Rect(w-bw, 0, w, h)
	return down, value, up
}

// DrawUpDown renders a value between a down and an up button. The value is
// live data, so the composed result is not cached; its parts are.
func (r *Renderer) DrawUpDown(value, downText, upText string, w, h int, s, buttonsStyle *style.Style) (*gg.Pixmap, error) {
	if w <= 0 || h <= 0 {
		return nil, nil
	}
	if buttonsStyle == nil {
		buttonsStyle = s
	}
	down, mid, up := UpDownLayout(w, h)

	parts := []struct {
		text string
		rect image.Rectangle
		s    *style.Style
	}{
		{downText, down, buttonsStyle},
		{value, mid, s},
		{upText, up, buttonsStyle},
	}
	pms := make([]*gg.Pixmap, len(parts))
	for i, p := range parts {
		pm, err := r.DrawText(p.text, p.rect.Dx(), p.rect.Dy(), p.s, false, "")
		if err != nil {
			return nil, err
		}
		pms[i] = pm
	}

	return r.cache.GetOrRender(nsUpDown, NoCache, w, h, func(c *Canvas) {
		for i, pm := range pms {
			if pm != nil {
				c.Blit(pm, parts[i].rect.Min.X, parts[i].rect.Min.Y)
			}
		}
	}), nil
}
