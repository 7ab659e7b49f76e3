package style

import "strings"

// Resolved is a style with every property flattened along its chain.
type Resolved struct {
	BorderSize        int
	BorderRadius      int
	BorderColor       string
	Color             string
	BackgroundColor   string
	Font              *Font
	AlignHorizontal   string
	AlignVertical     string
	PaddingHorizontal int
	PaddingVertical   int
}

func (r Resolved) IsHorzAlignLeft() bool  { return r.AlignHorizontal == AlignLeft }
func (r Resolved) IsHorzAlignRight() bool { return r.AlignHorizontal == AlignRight }
func (r Resolved) IsVertAlignTop() bool   { return r.AlignVertical == AlignTop }
func (r Resolved) IsVertAlignBottom() bool {
	return r.AlignVertical == AlignBottom
}

// Resolver walks style inheritance chains against a Registry.
type Resolver struct {
	reg Registry
}

// NewResolver creates a resolver reading from reg.
func NewResolver(reg Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Registry returns the registry the resolver reads from.
func (r *Resolver) Registry() Registry {
	return r.reg
}

// Chain returns s followed by its ancestors and, unless already present,
// the default style. A nil s yields just the default style. An InheritFrom
// naming an unknown style ends the explicit part of the chain.
func (r *Resolver) Chain(s *Style) ([]*Style, error) {
	var chain []*Style
	seen := make(map[*Style]bool)

	for cur := s; cur != nil; {
		if seen[cur] {
			return nil, cycleError(chain, cur)
		}
		seen[cur] = true
		chain = append(chain, cur)

		if cur.InheritFrom == "" {
			break
		}
		cur = r.reg.FindStyle(cur.InheritFrom)
	}

	if def := r.reg.DefaultStyle(); def != nil && !seen[def] {
		chain = append(chain, def)
	}
	return chain, nil
}

// Lookup returns the effective value of p for s, or nil if no style in the
// chain defines it.
func (r *Resolver) Lookup(s *Style, p Property) (any, error) {
	chain, err := r.Chain(s)
	if err != nil {
		return nil, err
	}
	return lookup(chain, p), nil
}

func lookup(chain []*Style, p Property) any {
	for _, s := range chain {
		if v := s.Property(p); v != nil {
			return v
		}
	}
	return nil
}

// Resolve flattens s into a Resolved value.
func (r *Resolver) Resolve(s *Style) (Resolved, error) {
	chain, err := r.Chain(s)
	if err != nil {
		return Resolved{}, err
	}

	res := Resolved{
		BorderSize:        lookupInt(chain, PropBorderSize),
		BorderRadius:      lookupInt(chain, PropBorderRadius),
		BorderColor:       lookupString(chain, PropBorderColor),
		Color:             lookupString(chain, PropColor),
		BackgroundColor:   lookupString(chain, PropBackgroundColor),
		AlignHorizontal:   lookupString(chain, PropAlignHorizontal),
		AlignVertical:     lookupString(chain, PropAlignVertical),
		PaddingHorizontal: lookupInt(chain, PropPaddingHorizontal),
		PaddingVertical:   lookupInt(chain, PropPaddingVertical),
	}
	if res.AlignHorizontal == "" {
		res.AlignHorizontal = AlignCenter
	}
	if res.AlignVertical == "" {
		res.AlignVertical = AlignCenter
	}
	if name := lookupString(chain, PropFont); name != "" {
		res.Font = r.reg.FindFont(name)
	}
	return res, nil
}

// Font resolves the font of s. A nil font with a nil error means the chain
// names no font, or names one the registry does not know.
func (r *Resolver) Font(s *Style) (*Font, error) {
	v, err := r.Lookup(s, PropFont)
	if err != nil {
		return nil, err
	}
	name, _ := v.(string)
	if name == "" {
		return nil, nil
	}
	return r.reg.FindFont(name), nil
}

func lookupInt(chain []*Style, p Property) int {
	v, _ := lookup(chain, p).(int)
	if v < 0 {
		return 0
	}
	return v
}

func lookupString(chain []*Style, p Property) string {
	v, _ := lookup(chain, p).(string)
	return strings.TrimSpace(v)
}

func cycleError(chain []*Style, repeat *Style) error {
	names := make([]string, 0, len(chain)+1)
	for _, s := range chain {
		names = append(names, s.Name)
	}
	names = append(names, repeat.Name)
	return &CycleError{Chain: names}
}
