package eezdraw

import (
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/eezkit/eezdraw/style"
)

// NeedlePosition selects the edge of a scale the needle sits on.
type NeedlePosition string

const (
	NeedleLeft   NeedlePosition = "left"
	NeedleRight  NeedlePosition = "right"
	NeedleTop    NeedlePosition = "top"
	NeedleBottom NeedlePosition = "bottom"
)

// Vertical reports whether the scale axis runs top to bottom.
func (p NeedlePosition) Vertical() bool {
	return p == NeedleLeft || p == NeedleRight
}

// Flipped reports whether the needle sits on the origin side (left or top)
// of the cross axis.
func (p NeedlePosition) Flipped() bool {
	return p == NeedleLeft || p == NeedleTop
}

// ScaleParams are the live inputs of a scale.
type ScaleParams struct {
	Value, Min, Max float64
	NeedlePosition  NeedlePosition
	// NeedleWidth is the needle's extent across the axis. Zero uses a third
	// of the available breadth.
	NeedleWidth int
	// NeedleHeight is the needle's extent along the axis. Zero uses
	// NeedleWidth.
	NeedleHeight int
}

// Tick kinds, by stride in scale units.
const (
	TickMinor = 1
	TickMid   = 5
	TickMajor = 10
)

// ScaleTick is one tick mark.
type ScaleTick struct {
	Value float64
	Kind  int
	Rect  image.Rectangle
}

// ScaleGeometry is the computed layout of a scale.
type ScaleGeometry struct {
	Ticks []ScaleTick
	// Needle is the triangle marking the value, valid when HasNeedle.
	Needle    [3]image.Point
	HasNeedle bool
	// PixelsPerUnit is the axis length covered by one scale unit.
	PixelsPerUnit float64
}

// minTickSpacing is the closest two ticks of one kind are allowed to be.
const minTickSpacing = 2

// LayoutScale computes ticks and needle for p inside box. Values increase
// upward on a vertical scale and rightward on a horizontal one.
func LayoutScale(p ScaleParams, box image.Rectangle) ScaleGeometry {
	var g ScaleGeometry
	if box.Empty() || p.Max <= p.Min {
		return g
	}

	vertical := p.NeedlePosition.Vertical()
	flipped := p.NeedlePosition.Flipped()

	length, breadth := box.Dx(), box.Dy()
	if vertical {
		length, breadth = box.Dy(), box.Dx()
	}

	needleW := p.NeedleWidth
	if needleW <= 0 {
		needleW = breadth / 3
	}
	needleW = min(needleW, breadth)
	needleH := p.NeedleHeight
	if needleH <= 0 {
		needleH = needleW
	}
	tickZone := breadth - needleW

	g.PixelsPerUnit = float64(length-1) / (p.Max - p.Min)

	// pos maps a value to a pixel offset along the axis from the origin.
	pos := func(v float64) int {
		v = math.Max(p.Min, math.Min(p.Max, v))
		return int(math.Round((v - p.Min) * g.PixelsPerUnit))
	}
	// place converts (along, across, length along, length across) to a
	// rectangle in box coordinates.
	place := func(along, across, la, lc int) image.Rectangle {
		if vertical {
			y := box.Max.Y - 1 - along
			return image.Rect(box.Min.X+across, y-la+1, box.Min.X+across+lc, y+1)
		}
		x := box.Min.X + along
		return image.Rect(x, box.Min.Y+across, x+la, box.Min.Y+across+lc)
	}

	if tickZone > 0 && TickMajor*g.PixelsPerUnit >= minTickSpacing {
		for v := math.Ceil(p.Min); v <= p.Max; v++ {
			kind, size := tickKind(v, tickZone)
			if float64(kind)*g.PixelsPerUnit < minTickSpacing {
				continue
			}
			// Ticks grow away from the needle.
			across := needleW
			if !flipped {
				across = tickZone - size
			}
			g.Ticks = append(g.Ticks, ScaleTick{
				Value: v,
				Kind:  kind,
				Rect:  place(pos(v), across, 1, size),
			})
		}
	}

	if needleW > 0 {
		at := pos(p.Value)
		half := needleH / 2
		base, tip := 0, needleW
		if !flipped {
			base, tip = breadth, tickZone
		}
		point := func(along, across int) image.Point {
			if vertical {
				return image.Pt(box.Min.X+across, box.Max.Y-1-along)
			}
			return image.Pt(box.Min.X+along, box.Min.Y+across)
		}
		g.HasNeedle = true
		g.Needle = [3]image.Point{
			point(at-half, base),
			point(at+half, base),
			point(at, tip),
		}
	}
	return g
}

func tickKind(v float64, zone int) (kind, size int) {
	switch {
	case math.Mod(v, TickMajor) == 0:
		return TickMajor, zone
	case math.Mod(v, TickMid) == 0:
		return TickMid, max(zone*2/3, 1)
	default:
		return TickMinor, max(zone/3, 1)
	}
}

// DrawScale renders a tick axis and a needle at p.Value. The result is
// never cached because the value changes constantly.
func (r *Renderer) DrawScale(p ScaleParams, w, h int, s *style.Style) (*gg.Pixmap, error) {
	res, err := r.resolver.Resolve(s)
	if err != nil {
		return nil, err
	}

	return r.cache.GetOrRender(nsScale, NoCache, w, h, func(c *Canvas) {
		frame := NewFrame(w, h, res)
		fg := frame.paint(c, res, false, "")
		g := LayoutScale(p, frame.Inner)
		for _, t := range g.Ticks {
			c.FillRect(t.Rect, 0, fg)
		}
		if g.HasNeedle {
			c.FillPolygon(g.Needle[:], fg)
		}
	}), nil
}
