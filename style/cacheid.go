package style

import "strings"

// CacheID returns a string identifying everything that affects how s
// renders: its own version, its font's version and, recursively, the
// identity of the style it falls back to.
//
// The fallback is the InheritFrom target when it exists, otherwise the
// default style unless s is the default style itself.
func (r *Resolver) CacheID(s *Style) (string, error) {
	if s == nil {
		s = r.reg.DefaultStyle()
		if s == nil {
			return "", nil
		}
	}
	var b strings.Builder
	if err := r.writeCacheID(&b, s, nil); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (r *Resolver) writeCacheID(b *strings.Builder, s *Style, visited []*Style) error {
	for _, v := range visited {
		if v == s {
			return cycleError(visited, s)
		}
	}
	visited = append(visited, s)

	b.WriteString(EntityID(s.ID, s.ModTime))

	font, err := r.Font(s)
	if err != nil {
		return err
	}
	if font != nil {
		b.WriteByte('+')
		b.WriteString(font.CacheID())
	}

	parent := r.parent(s)
	if parent == nil {
		return nil
	}
	b.WriteByte('<')
	return r.writeCacheID(b, parent, visited)
}

// parent returns the style s resolves through next.
func (r *Resolver) parent(s *Style) *Style {
	if s.InheritFrom != "" {
		if p := r.reg.FindStyle(s.InheritFrom); p != nil {
			return p
		}
	}
	if def := r.reg.DefaultStyle(); def != nil && def != s {
		return def
	}
	return nil
}
