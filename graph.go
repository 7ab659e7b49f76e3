package eezdraw

import (
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/eezkit/eezdraw/style"
)

// ListGraphPoints maps values onto box, spreading them evenly from left to
// right with min at the bottom edge and max at the top.
func ListGraphPoints(values []float64, min, max float64, box image.Rectangle) []image.Point {
	if len(values) == 0 || box.Empty() || max <= min {
		return nil
	}
	pts := make([]image.Point, len(values))
	for i, v := range values {
		x := box.Min.X
		if len(values) > 1 {
			x += int(math.Round(float64(i) * float64(box.Dx()-1) / float64(len(values)-1)))
		}
		y := box.Max.Y - 1 - BarPosition(v, min, max, box.Dy()-1)
		pts[i] = image.Pt(x, y)
	}
	return pts
}

// DrawListGraph renders the frame of s with a polyline of values in the
// foreground color. Not cached: the values are live data.
func (r *Renderer) DrawListGraph(values []float64, min, max float64, w, h int, s *style.Style) (*gg.Pixmap, error) {
	res, err := r.resolver.Resolve(s)
	if err != nil {
		return nil, err
	}
	return r.cache.GetOrRender(nsListGraph, NoCache, w, h, func(c *Canvas) {
		frame := NewFrame(w, h, res)
		fg := frame.paint(c, res, false, "")
		c.Polyline(ListGraphPoints(values, min, max, frame.Inner), fg)
	}), nil
}

// YTGraphGrid returns the grid lines of a YT graph placeholder: one
// horizontal midline and vertical lines at each quarter.
func YTGraphGrid(box image.Rectangle) []image.Rectangle {
	if box.Dx() < 4 || box.Dy() < 2 {
		return nil
	}
	midY := box.Min.Y + box.Dy()/2
	lines := []image.Rectangle{image.Rect(box.Min.X, midY, box.Max.X, midY+1)}
	for q := 1; q < 4; q++ {
		x := box.Min.X + box.Dx()*q/4
		lines = append(lines, image.Rect(x, box.Min.Y, x+1, box.Max.Y))
	}
	return lines
}

// DrawYTGraph renders the placeholder for a time-series graph: the frame
// of s with a grid in the border color.
func (r *Renderer) DrawYTGraph(w, h int, s *style.Style) (*gg.Pixmap, error) {
	res, id, err := r.prepare(s)
	if err != nil {
		return nil, err
	}
	key := cacheKey(id, w, h)
	return r.cache.GetOrRender(nsYTGraph, key, w, h, func(c *Canvas) {
		frame := NewFrame(w, h, res)
		fg := frame.paint(c, res, false, "")
		color := res.BorderColor
		if color == "" {
			color = fg
		}
		for _, line := range YTGraphGrid(frame.Inner) {
			c.FillRect(line, 0, color)
		}
	}), nil
}
