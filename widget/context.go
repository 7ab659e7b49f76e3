package widget

import (
	"github.com/eezkit/eezdraw"
	"github.com/eezkit/eezdraw/data"
	"github.com/eezkit/eezdraw/style"
)

// Context carries what adapters need to draw: the renderer, holding the
// project registry and draw cache, and the current data snapshot.
type Context struct {
	Renderer *eezdraw.Renderer
	Data     data.Source
}

// NewContext creates a drawing context. A nil src reads as empty data.
func NewContext(r *eezdraw.Renderer, src data.Source) *Context {
	if src == nil {
		src = data.NewStatic()
	}
	return &Context{Renderer: r, Data: src}
}

// Style looks up a style by name. An empty or unknown name yields nil,
// which renderers treat as the default style.
func (c *Context) Style(name string) *style.Style {
	if name == "" {
		return nil
	}
	s := c.Renderer.Registry().FindStyle(name)
	if s == nil {
		eezdraw.Logger().Debug("style not found", "style", name)
	}
	return s
}

// Value returns the data bound to ref, or nil for an empty ref.
func (c *Context) Value(ref string) any {
	if ref == "" {
		return nil
	}
	return c.Data.Get(ref)
}

// Float returns the numeric data bound to ref, or 0.
func (c *Context) Float(ref string) float64 {
	f, _ := data.Float(c.Value(ref))
	return f
}

// text returns the literal text of w, falling back to its bound data.
func (c *Context) text(w *Widget) string {
	if w.Text != "" {
		return w.Text
	}
	return data.Format(c.Value(w.Data))
}
