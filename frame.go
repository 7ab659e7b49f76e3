package eezdraw

import (
	"image"

	"github.com/eezkit/eezdraw/style"
)

// Frame is the computed box model of a styled bitmap.
type Frame struct {
	// Outer is the full bitmap rectangle.
	Outer image.Rectangle
	// Inner is Outer inset by the border size.
	Inner image.Rectangle
	// Radius is the corner radius of Outer.
	Radius int
	// InnerRadius is Radius reduced by the border size, floored at 0.
	InnerRadius int
	// Border is the border size actually applied.
	Border int
}

// NewFrame computes the frame of a w×h bitmap drawn with s.
func NewFrame(w, h int, s style.Resolved) Frame {
	f := Frame{
		Outer:       image.Rect(0, 0, w, h),
		Radius:      s.BorderRadius,
		InnerRadius: s.BorderRadius,
	}
	f.Inner = f.Outer
	if s.BorderSize > 0 {
		f.Border = s.BorderSize
		f.Inner = f.Outer.Inset(s.BorderSize)
		f.InnerRadius = max(s.BorderRadius-s.BorderSize, 0)
	}
	return f
}

// colors returns the foreground and background colors to paint with.
// A non-empty bg overrides the style background; inverse swaps the two.
func colors(s style.Resolved, inverse bool, bg string) (fg, back string) {
	fg, back = s.Color, s.BackgroundColor
	if bg != "" {
		back = bg
	}
	if inverse {
		fg, back = back, fg
	}
	return fg, back
}

// paint draws the border and background of f and returns the foreground
// color for content.
func (f Frame) paint(c *Canvas, s style.Resolved, inverse bool, bg string) string {
	if f.Border > 0 {
		c.FillRect(f.Outer, f.Radius, s.BorderColor)
	}
	fg, back := colors(s, inverse, bg)
	c.FillRect(f.Inner, f.InnerRadius, back)
	return fg
}

// AlignX returns the left edge of content of the given width inside box.
// Right alignment measures from the last pixel column, Max.X-1.
func AlignX(box image.Rectangle, width int, s style.Resolved) int {
	switch {
	case s.IsHorzAlignLeft():
		return box.Min.X + s.PaddingHorizontal
	case s.IsHorzAlignRight():
		return box.Max.X - 1 - s.PaddingHorizontal - width
	default:
		return box.Min.X + floorDiv(box.Dx()-width, 2)
	}
}

// AlignY returns the top edge of content of the given height inside box.
// Bottom alignment measures from the last pixel row, Max.Y-1.
func AlignY(box image.Rectangle, height int, s style.Resolved) int {
	switch {
	case s.IsVertAlignTop():
		return box.Min.Y + s.PaddingVertical
	case s.IsVertAlignBottom():
		return box.Max.Y - 1 - s.PaddingVertical - height
	default:
		return box.Min.Y + floorDiv(box.Dy()-height, 2)
	}
}

// padded returns box shrunk by the style padding.
func padded(box image.Rectangle, s style.Resolved) image.Rectangle {
	r := image.Rect(
		box.Min.X+s.PaddingHorizontal,
		box.Min.Y+s.PaddingVertical,
		box.Max.X-s.PaddingHorizontal,
		box.Max.Y-s.PaddingVertical,
	)
	if r.Empty() {
		return image.Rectangle{Min: r.Min, Max: r.Min}
	}
	return r
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
