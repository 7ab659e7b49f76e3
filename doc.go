// Package eezdraw rasterizes widgets of embedded-instrument GUI projects
// into cached offscreen bitmaps for live preview.
//
// # Overview
//
// A Renderer reads styles, fonts and bitmaps through a style.Registry and
// draws widget primitives (text, multiline text, bitmaps, rectangles,
// button groups, scales, bar graphs, up/down controls and graph
// placeholders) onto gg canvases. Results are kept in a DrawCache keyed by
// the style's cache identity plus the draw parameters, so an unchanged
// widget is rasterized once.
//
//	lib := style.NewLibrary()
//	// ... add styles and fonts
//	r := eezdraw.NewRenderer(lib)
//	pm, err := r.DrawText("Volts", 80, 20, lib.FindStyle("label"), false, "")
//
// A nil pixmap with a nil error means there is nothing to draw, for example
// a zero-sized rectangle or a missing bitmap. The only error renderers
// return is an inheritance cycle in the style graph.
//
// # Geometry
//
// Every renderer starts from the full bitmap. A border of size B is painted
// first and the content box is inset by B on each side, with the corner
// radius reduced by B. The background (or the foreground color when
// inverted) fills the inset box and content is aligned inside it, honoring
// the style's padding and alignment.
//
// # Caching
//
// The draw cache holds at most DefaultCacheCapacity bitmaps across all
// namespaces and evicts the oldest-inserted entry first. Widgets showing
// fast-changing live data (scales, bar graphs) bypass it with NoCache.
//
// # Logging
//
// Nothing is logged by default; see SetLogger.
package eezdraw
