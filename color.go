package eezdraw

import (
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ParseColor converts a style color to RGBA. It accepts SVG color names
// and hex forms "#rgb", "#rgba", "#rrggbb" and "#rrggbbaa".
// Empty, "transparent" and malformed colors report false.
func ParseColor(s string) (gg.RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "transparent" || s == "none" {
		return gg.RGBA{}, false
	}
	if c, ok := colornames.Map[s]; ok {
		return gg.FromColor(c), true
	}

	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, false
	}
	for _, r := range hex {
		if !isHexDigit(r) {
			return gg.RGBA{}, false
		}
	}
	return gg.Hex(hex), true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}
