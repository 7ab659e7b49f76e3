package eezdraw

import (
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/eezkit/eezdraw/style"
)

// BarOrientation is the direction a bar grows in.
type BarOrientation string

const (
	BarLeftRight BarOrientation = "left-right"
	BarRightLeft BarOrientation = "right-left"
	BarTopBottom BarOrientation = "top-bottom"
	BarBottomTop BarOrientation = "bottom-top"
)

// Horizontal reports whether the bar grows along the x axis. Unknown
// orientations are treated as left-right.
func (o BarOrientation) Horizontal() bool {
	return o != BarTopBottom && o != BarBottomTop
}

// ThresholdLine marks a value across the bar.
type ThresholdLine struct {
	Value float64
	Style *style.Style
}

// BarGraphParams are the live inputs of a bar graph.
type BarGraphParams struct {
	Value, Min, Max float64
	Orientation     BarOrientation
	// Text is drawn next to the bar's leading edge; empty draws no text.
	Text string
	// TextStyle styles Text; nil uses the bar style.
	TextStyle *style.Style
	// Lines holds up to two threshold lines.
	Lines []ThresholdLine
}

// BarPosition maps value within [min, max] to a pixel extent in [0, d].
// Values outside the range clamp to the ends; an empty range yields 0.
func BarPosition(value, min, max float64, d int) int {
	if max <= min || d <= 0 || math.IsNaN(value) {
		return 0
	}
	if value <= min {
		return 0
	}
	if value >= max {
		return d
	}
	t := (value - min) / (max - min)
	if math.IsNaN(t) {
		return 0
	}
	return int(math.Round(t * float64(d)))
}

// BarGeometry is the computed layout of a bar graph.
type BarGeometry struct {
	Bar image.Rectangle
	// Text is the top-left corner of the value text.
	Text image.Point
	// TextInside reports whether the text overlays the filled bar.
	TextInside bool
	Lines      []image.Rectangle
}

// LayoutBarGraph computes the bar, the value text position for text of
// size tw×th, and the threshold lines inside box.
func LayoutBarGraph(p BarGraphParams, box image.Rectangle, tw, th int) BarGeometry {
	var g BarGeometry
	d := box.Dy()
	if p.Orientation.Horizontal() {
		d = box.Dx()
	}
	pos := BarPosition(p.Value, p.Min, p.Max, d)

	switch p.Orientation {
	case BarRightLeft:
		edge := box.Max.X - pos
		g.Bar = image.Rect(edge, box.Min.Y, box.Max.X, box.Max.Y)
		g.Text.Y = box.Min.Y + floorDiv(box.Dy()-th, 2)
		if edge-tw >= box.Min.X {
			g.Text.X = edge - tw
		} else {
			g.Text.X, g.TextInside = edge, true
		}
	case BarTopBottom:
		edge := box.Min.Y + pos
		g.Bar = image.Rect(box.Min.X, box.Min.Y, box.Max.X, edge)
		g.Text.X = box.Min.X + floorDiv(box.Dx()-tw, 2)
		if edge+th <= box.Max.Y {
			g.Text.Y = edge
		} else {
			g.Text.Y, g.TextInside = edge-th, true
		}
	case BarBottomTop:
		edge := box.Max.Y - pos
		g.Bar = image.Rect(box.Min.X, edge, box.Max.X, box.Max.Y)
		g.Text.X = box.Min.X + floorDiv(box.Dx()-tw, 2)
		if edge-th >= box.Min.Y {
			g.Text.Y = edge - th
		} else {
			g.Text.Y, g.TextInside = edge, true
		}
	default:
		edge := box.Min.X + pos
		g.Bar = image.Rect(box.Min.X, box.Min.Y, edge, box.Max.Y)
		g.Text.Y = box.Min.Y + floorDiv(box.Dy()-th, 2)
		if edge+tw <= box.Max.X {
			g.Text.X = edge
		} else {
			g.Text.X, g.TextInside = edge-tw, true
		}
	}

	for i, line := range p.Lines {
		if i == 2 {
			break
		}
		g.Lines = append(g.Lines, thresholdRect(p, box, d, line.Value))
	}
	return g
}

func thresholdRect(p BarGraphParams, box image.Rectangle, d int, v float64) image.Rectangle {
	if d <= 0 {
		return image.Rectangle{}
	}
	at := min(BarPosition(v, p.Min, p.Max, d), d-1)
	switch p.Orientation {
	case BarRightLeft:
		x := box.Max.X - 1 - at
		return image.Rect(x, box.Min.Y, x+1, box.Max.Y)
	case BarTopBottom:
		y := box.Min.Y + at
		return image.Rect(box.Min.X, y, box.Max.X, y+1)
	case BarBottomTop:
		y := box.Max.Y - 1 - at
		return image.Rect(box.Min.X, y, box.Max.X, y+1)
	default:
		x := box.Min.X + at
		return image.Rect(x, box.Min.Y, x+1, box.Max.Y)
	}
}

// DrawBarGraph renders a bar filled in proportion to p.Value. The result
// is never cached because the value changes constantly.
func (r *Renderer) DrawBarGraph(p BarGraphParams, w, h int, s *style.Style) (*gg.Pixmap, error) {
	res, err := r.resolver.Resolve(s)
	if err != nil {
		return nil, err
	}
	textRes := res
	if p.TextStyle != nil {
		if textRes, err = r.resolver.Resolve(p.TextStyle); err != nil {
			return nil, err
		}
	}
	lineColors := make([]string, len(p.Lines))
	for i, line := range p.Lines {
		lr, err := r.resolver.Resolve(line.Style)
		if err != nil {
			return nil, err
		}
		lineColors[i] = lr.Color
	}

	text := unescapeText(p.Text)
	var tw, th int
	if text != "" && textRes.Font != nil {
		tw, th = textRes.Font.Measure(text), textRes.Font.Height()
	}

	return r.cache.GetOrRender(nsBarGraph, NoCache, w, h, func(c *Canvas) {
		frame := NewFrame(w, h, res)
		fg := frame.paint(c, res, false, "")
		g := LayoutBarGraph(p, frame.Inner, tw, th)

		c.FillRect(g.Bar.Intersect(frame.Inner), 0, fg)
		if tw > 0 && th > 0 {
			color := textRes.Color
			if g.TextInside {
				color = textRes.BackgroundColor
			}
			c.Text(text, g.Text.X, g.Text.Y, textRes.Font, color)
		}
		for i, line := range g.Lines {
			color := lineColors[i]
			if color == "" {
				color = fg
			}
			c.FillRect(line, 0, color)
		}
	}), nil
}
