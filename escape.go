package eezdraw

import (
	"encoding/json"

	"golang.org/x/text/unicode/norm"
)

// unescapeText interprets backslash escapes the way a JSON string literal
// does, so "\n" typed into a text property becomes a line break. Malformed
// input is logged and returned unchanged. The result is NFC-normalized so
// combining sequences measure as the glyphs they compose.
func unescapeText(s string) string {
	var out string
	if err := json.Unmarshal([]byte(`"`+s+`"`), &out); err != nil {
		Logger().Warn("malformed text escape", "text", s, "err", err)
		out = s
	}
	return norm.NFC.String(out)
}
