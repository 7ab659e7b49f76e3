// Package widget turns project widgets into drawn bitmaps.
//
// Each widget type has an Adapter that reads the widget's bound data and
// style, then calls one primitive renderer of package eezdraw with the
// widget's size. Adapters do no layout of their own. A Registry maps type
// names to adapters and composes whole pages:
//
//	reg := widget.NewRegistry()
//	ctx := widget.NewContext(eezdraw.NewRenderer(proj), snapshot)
//	img, err := reg.RenderPage(ctx, page)
package widget
