package widget

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/gogpu/gg"

	"github.com/eezkit/eezdraw"
)

// ErrUnknownType is returned when no adapter handles a widget's type.
var ErrUnknownType = errors.New("widget: unknown type")

// Adapter draws one widget type.
type Adapter interface {
	// Type returns the widget type name handled.
	Type() string
	// Draw renders w at its own size. A nil pixmap with a nil error means
	// there is nothing to draw.
	Draw(ctx *Context, w *Widget) (*gg.Pixmap, error)
}

// Option configures a Registry.
type Option func(*Registry)

// WithAdapter registers a, replacing any built-in adapter of the same
// type.
func WithAdapter(a Adapter) Option {
	return func(r *Registry) {
		r.Register(a)
	}
}

// WithLogger sets the logger for skipped widgets. By default the eezdraw
// logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		r.log = l
	}
}

// Registry maps widget types to adapters.
type Registry struct {
	adapters map[string]Adapter
	log      *slog.Logger
}

// NewRegistry creates a registry with adapters for all built-in types.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{adapters: make(map[string]Adapter)}

	r.Register(textAdapter{})
	r.Register(multilineTextAdapter{})
	r.Register(displayDataAdapter{})
	r.Register(bitmapAdapter{})
	r.Register(rectangleAdapter{})
	r.Register(buttonAdapter{})
	r.Register(buttonGroupAdapter{})
	r.Register(scaleAdapter{})
	r.Register(barGraphAdapter{})
	r.Register(upDownAdapter{})
	r.Register(listGraphAdapter{})
	r.Register(ytGraphAdapter{})
	r.Register(containerAdapter{reg: r})

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a, replacing any adapter of the same type.
func (r *Registry) Register(a Adapter) {
	r.adapters[a.Type()] = a
}

// Lookup returns the adapter for typ.
func (r *Registry) Lookup(typ string) (Adapter, bool) {
	a, ok := r.adapters[typ]
	return a, ok
}

// Types returns the registered type names in sorted order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.adapters))
	for t := range r.adapters {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Draw renders w with the adapter for its type.
func (r *Registry) Draw(ctx *Context, w *Widget) (*gg.Pixmap, error) {
	a, ok := r.adapters[w.Type]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownType, w.Type)
	}
	return a.Draw(ctx, w)
}

// RenderPage draws the page background and every widget of p at its
// position. Widgets that fail to draw are logged and skipped.
func (r *Registry) RenderPage(ctx *Context, p *Page) (*gg.Pixmap, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("widget: page %q has empty size %dx%d", p.Name, p.Width, p.Height)
	}

	bg, err := ctx.Renderer.DrawRectangle(p.Width, p.Height, ctx.Style(p.Style), false)
	if err != nil {
		return nil, fmt.Errorf("widget: page %q: %w", p.Name, err)
	}

	c := eezdraw.NewCanvas(p.Width, p.Height)
	defer c.Close()
	if bg != nil {
		c.Blit(bg, 0, 0)
	}
	r.compose(ctx, c, p.Widgets)
	return c.Pixmap(), nil
}

// compose draws widgets onto c at their relative positions.
func (r *Registry) compose(ctx *Context, c *eezdraw.Canvas, widgets []*Widget) {
	for _, w := range widgets {
		if w == nil {
			continue
		}
		pm, err := r.Draw(ctx, w)
		if err != nil {
			r.logger().Warn("widget skipped", "type", w.Type, "name", w.Name, "err", err)
			continue
		}
		if pm != nil {
			c.Blit(pm, w.Left, w.Top)
		}
	}
}

func (r *Registry) logger() *slog.Logger {
	if r.log != nil {
		return r.log
	}
	return eezdraw.Logger()
}
