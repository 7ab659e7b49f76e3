// Package style holds the visual resources a widget preview reads: styles
// with single-parent inheritance, fonts and bitmaps. It also resolves
// effective style properties and builds cache identities for them.
//
// # Resolution
//
// A property is looked up on the style itself, then along its InheritFrom
// chain, then on the registry's default style. Absent properties resolve to
// documented defaults: 0 for sizes and padding, transparent for colors,
// centered alignment and no font.
//
//	r := style.NewResolver(lib)
//	resolved, err := r.Resolve(lib.FindStyle("button"))
//
// # Cache identity
//
// CacheID combines a style's ID and modification time with the identities
// of its font and ancestors, so an edit anywhere along the chain changes
// the identity of every style resolving through it.
//
// Inheritance chains must be acyclic. Both resolution and identity building
// detect cycles and return ErrInheritanceCycle.
package style
