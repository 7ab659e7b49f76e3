package widget

import (
	"github.com/gogpu/gg"

	"github.com/eezkit/eezdraw"
	"github.com/eezkit/eezdraw/data"
)

type textAdapter struct{}

func (textAdapter) Type() string { return TypeText }

func (textAdapter) Draw(ctx *Context, w *Widget) (*gg.Pixmap, error) {
	return ctx.Renderer.DrawText(ctx.text(w), w.Width, w.Height, ctx.Style(w.Style), w.Invert, "")
}

type multilineTextAdapter struct{}

func (multilineTextAdapter) Type() string { return TypeMultilineText }

func (multilineTextAdapter) Draw(ctx *Context, w *Widget) (*gg.Pixmap, error) {
	return ctx.Renderer.DrawMultilineText(ctx.text(w), w.Width, w.Height, ctx.Style(w.Style), w.Invert)
}

// displayDataAdapter always shows the bound value, ignoring Text.
type displayDataAdapter struct{}

func (displayDataAdapter) Type() string { return TypeDisplayData }

func (displayDataAdapter) Draw(ctx *Context, w *Widget) (*gg.Pixmap, error) {
	text := data.Format(ctx.Value(w.Data))
	return ctx.Renderer.DrawText(text, w.Width, w.Height, ctx.Style(w.Style), w.Invert, "")
}

// bitmapAdapter draws the named bitmap, or the one whose name is the
// bound value.
type bitmapAdapter struct{}

func (bitmapAdapter) Type() string { return TypeBitmap }

func (bitmapAdapter) Draw(ctx *Context, w *Widget) (*gg.Pixmap, error) {
	name := w.Bitmap
	if name == "" {
		name = data.Format(ctx.Value(w.Data))
	}
	b := ctx.Renderer.Registry().FindBitmap(name)
	if b == nil {
		eezdraw.Logger().Debug("bitmap not found", "bitmap", name, "widget", w.Name)
		return nil, nil
	}
	return ctx.Renderer.DrawBitmap(b, w.Width, w.Height, ctx.Style(w.Style), w.Invert)
}

type rectangleAdapter struct{}

func (rectangleAdapter) Type() string { return TypeRectangle }

func (rectangleAdapter) Draw(ctx *Context, w *Widget) (*gg.Pixmap, error) {
	return ctx.Renderer.DrawRectangle(w.Width, w.Height, ctx.Style(w.Style), w.Invert)
}

// buttonAdapter switches to DisabledStyle when EnabledData reads false.
type buttonAdapter struct{}

func (buttonAdapter) Type() string { return TypeButton }

func (buttonAdapter) Draw(ctx *Context, w *Widget) (*gg.Pixmap, error) {
	name := w.Style
	if w.EnabledData != "" && w.DisabledStyle != "" && !ctx.Data.GetBool(w.EnabledData) {
		name = w.DisabledStyle
	}
	return ctx.Renderer.DrawText(ctx.text(w), w.Width, w.Height, ctx.Style(name), w.Invert, "")
}

// buttonGroupAdapter takes labels from the value list of Data and the
// selected index from its value.
type buttonGroupAdapter struct{}

func (buttonGroupAdapter) Type() string { return TypeButtonGroup }

func (buttonGroupAdapter) Draw(ctx *Context, w *Widget) (*gg.Pixmap, error) {
	labels := ctx.Data.GetValueList(w.Data)
	selected, ok := data.Int(ctx.Value(w.Data))
	if !ok {
		selected = -1
	}
	return ctx.Renderer.DrawButtonGroup(labels, selected, w.Width, w.Height, ctx.Style(w.Style))
}

type scaleAdapter struct{}

func (scaleAdapter) Type() string { return TypeScale }

func (scaleAdapter) Draw(ctx *Context, w *Widget) (*gg.Pixmap, error) {
	pos := eezdraw.NeedlePosition(w.NeedlePosition)
	if pos == "" {
		pos = eezdraw.NeedleLeft
	}
	p := eezdraw.ScaleParams{
		Value:          ctx.Float(w.Data),
		Min:            ctx.Data.GetMin(w.Data),
		Max:            ctx.Data.GetMax(w.Data),
		NeedlePosition: pos,
		NeedleWidth:    w.NeedleWidth,
		NeedleHeight:   w.NeedleHeight,
	}
	return ctx.Renderer.DrawScale(p, w.Width, w.Height, ctx.Style(w.Style))
}

// barGraphAdapter shows the bound value with up to two threshold lines
// read from Line1Data and Line2Data.
type barGraphAdapter struct{}

func (barGraphAdapter) Type() string { return TypeBarGraph }

func (barGraphAdapter) Draw(ctx *Context, w *Widget) (*gg.Pixmap, error) {
	orientation := eezdraw.BarOrientation(w.Orientation)
	if orientation == "" {
		orientation = eezdraw.BarLeftRight
	}
	value := ctx.Value(w.Data)
	f, _ := data.Float(value)

	p := eezdraw.BarGraphParams{
		Value:       f,
		Min:         ctx.Data.GetMin(w.Data),
		Max:         ctx.Data.GetMax(w.Data),
		Orientation: orientation,
		Text:        data.Format(value),
		TextStyle:   ctx.Style(w.TextStyle),
	}
	p.Lines = appendLine(ctx, p.Lines, w.Line1Data, w.Line1Style)
	p.Lines = appendLine(ctx, p.Lines, w.Line2Data, w.Line2Style)
	return ctx.Renderer.DrawBarGraph(p, w.Width, w.Height, ctx.Style(w.Style))
}

func appendLine(ctx *Context, lines []eezdraw.ThresholdLine, ref, styleName string) []eezdraw.ThresholdLine {
	if ref == "" {
		return lines
	}
	v, ok := data.Float(ctx.Value(ref))
	if !ok {
		return lines
	}
	return append(lines, eezdraw.ThresholdLine{Value: v, Style: ctx.Style(styleName)})
}

type upDownAdapter struct{}

func (upDownAdapter) Type() string { return TypeUpDown }

func (upDownAdapter) Draw(ctx *Context, w *Widget) (*gg.Pixmap, error) {
	down, up := w.DownButtonText, w.UpButtonText
	if down == "" {
		down = "<"
	}
	if up == "" {
		up = ">"
	}
	value := data.Format(ctx.Value(w.Data))
	return ctx.Renderer.DrawUpDown(value, down, up, w.Width, w.Height, ctx.Style(w.Style), ctx.Style(w.ButtonsStyle))
}

// listGraphAdapter plots the numeric entries of Data's value list.
type listGraphAdapter struct{}

func (listGraphAdapter) Type() string { return TypeListGraph }

func (listGraphAdapter) Draw(ctx *Context, w *Widget) (*gg.Pixmap, error) {
	list := ctx.Data.GetValueList(w.Data)
	values := make([]float64, 0, len(list))
	for _, s := range list {
		if f, ok := data.Float(s); ok {
			values = append(values, f)
		}
	}
	return ctx.Renderer.DrawListGraph(values, ctx.Data.GetMin(w.Data), ctx.Data.GetMax(w.Data),
		w.Width, w.Height, ctx.Style(w.Style))
}

type ytGraphAdapter struct{}

func (ytGraphAdapter) Type() string { return TypeYTGraph }

func (ytGraphAdapter) Draw(ctx *Context, w *Widget) (*gg.Pixmap, error) {
	return ctx.Renderer.DrawYTGraph(w.Width, w.Height, ctx.Style(w.Style))
}

// containerAdapter draws its frame and then its children relative to its
// own top-left corner. The result is not cached since children may show
// live data.
type containerAdapter struct {
	reg *Registry
}

func (containerAdapter) Type() string { return TypeContainer }

func (a containerAdapter) Draw(ctx *Context, w *Widget) (*gg.Pixmap, error) {
	if w.Width <= 0 || w.Height <= 0 {
		return nil, nil
	}
	frame, err := ctx.Renderer.DrawRectangle(w.Width, w.Height, ctx.Style(w.Style), w.Invert)
	if err != nil {
		return nil, err
	}

	c := eezdraw.NewCanvas(w.Width, w.Height)
	defer c.Close()
	if frame != nil {
		c.Blit(frame, 0, 0)
	}
	a.reg.compose(ctx, c, w.Widgets)
	return c.Pixmap(), nil
}
