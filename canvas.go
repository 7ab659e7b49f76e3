package eezdraw

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/eezkit/eezdraw/style"
)

// Canvas is a blank raster surface handed to a RenderFunc.
// Coordinates are integer pixels; rectangles are half-open like
// image.Rectangle.
type Canvas struct {
	dc *gg.Context
	pm *gg.Pixmap
}

// NewCanvas creates a transparent w×h canvas.
func NewCanvas(w, h int) *Canvas {
	pm := gg.NewPixmap(w, h)
	return &Canvas{
		dc: gg.NewContext(w, h, gg.WithPixmap(pm)),
		pm: pm,
	}
}

func (c *Canvas) Width() int  { return c.pm.Width() }
func (c *Canvas) Height() int { return c.pm.Height() }

// Bounds returns the full canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return c.pm.Bounds()
}

// Pixmap returns the pixels drawn so far.
func (c *Canvas) Pixmap() *gg.Pixmap {
	return c.pm
}

// Close releases the drawing context. The pixmap stays valid.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

// FillRect fills r with color, rounding corners by radius.
// Transparent or malformed colors and empty rectangles draw nothing.
func (c *Canvas) FillRect(r image.Rectangle, radius int, color string) {
	col, ok := ParseColor(color)
	if !ok || r.Empty() {
		return
	}
	c.fillRect(r, radius, col)
}

func (c *Canvas) fillRect(r image.Rectangle, radius int, col gg.RGBA) {
	x, y := float64(r.Min.X), float64(r.Min.Y)
	w, h := float64(r.Dx()), float64(r.Dy())

	c.dc.SetColor(col.Color())
	if radius > 0 {
		c.dc.DrawRoundedRectangle(x, y, w, h, float64(radius))
	} else {
		c.dc.DrawRectangle(x, y, w, h)
	}
	_ = c.dc.Fill()
}

// FillPolygon fills the closed polygon through pts.
func (c *Canvas) FillPolygon(pts []image.Point, color string) {
	col, ok := ParseColor(color)
	if !ok || len(pts) < 3 {
		return
	}
	c.dc.SetColor(col.Color())
	c.dc.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	for _, p := range pts[1:] {
		c.dc.LineTo(float64(p.X), float64(p.Y))
	}
	c.dc.ClosePath()
	_ = c.dc.Fill()
}

// Polyline strokes a 1px line through the pixel centers of pts.
func (c *Canvas) Polyline(pts []image.Point, color string) {
	col, ok := ParseColor(color)
	if !ok || len(pts) < 2 {
		return
	}
	c.dc.SetColor(col.Color())
	c.dc.SetLineWidth(1)
	c.dc.MoveTo(float64(pts[0].X)+0.5, float64(pts[0].Y)+0.5)
	for _, p := range pts[1:] {
		c.dc.LineTo(float64(p.X)+0.5, float64(p.Y)+0.5)
	}
	_ = c.dc.Stroke()
}

// Text draws s with its top-left corner at (x, y). A nil font draws
// nothing.
func (c *Canvas) Text(s string, x, y int, f *style.Font, color string) {
	col, ok := ParseColor(color)
	if !ok || s == "" || f == nil || f.Face == nil {
		return
	}
	c.dc.SetFont(f.Face)
	c.dc.SetColor(col.Color())
	c.dc.DrawString(s, float64(x), float64(y+f.Ascent()))
}

// Blit copies img onto the canvas with its top-left corner at (x, y),
// blending over what is already there.
func (c *Canvas) Blit(img image.Image, x, y int) {
	if img == nil || img.Bounds().Empty() {
		return
	}
	c.dc.DrawImage(gg.ImageBufFromImage(img), float64(x), float64(y))
}
