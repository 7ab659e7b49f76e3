package style

import (
	"image"
	"math"
	"strconv"

	"github.com/gogpu/gg/text"
)

// Property names a style property.
type Property string

// Style properties.
const (
	PropBorderSize        Property = "borderSize"
	PropBorderRadius      Property = "borderRadius"
	PropBorderColor       Property = "borderColor"
	PropColor             Property = "color"
	PropBackgroundColor   Property = "backgroundColor"
	PropFont              Property = "font"
	PropAlignHorizontal   Property = "alignHorizontal"
	PropAlignVertical     Property = "alignVertical"
	PropPaddingHorizontal Property = "paddingHorizontal"
	PropPaddingVertical   Property = "paddingVertical"
)

// Properties lists every style property in a stable order.
var Properties = []Property{
	PropBorderSize,
	PropBorderRadius,
	PropBorderColor,
	PropColor,
	PropBackgroundColor,
	PropFont,
	PropAlignHorizontal,
	PropAlignVertical,
	PropPaddingHorizontal,
	PropPaddingVertical,
}

// Alignment values.
const (
	AlignLeft   = "left"
	AlignRight  = "right"
	AlignTop    = "top"
	AlignBottom = "bottom"
	AlignCenter = "center"
)

// Style is a named set of visual properties.
//
// A nil property is absent and is looked up along the inheritance chain.
// A non-nil zero is a real value and stops the lookup.
type Style struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ModTime     int64  `json:"modificationTime,omitempty"`
	InheritFrom string `json:"inheritFrom,omitempty"`

	BorderSize        *int    `json:"borderSize,omitempty"`
	BorderRadius      *int    `json:"borderRadius,omitempty"`
	BorderColor       *string `json:"borderColor,omitempty"`
	Color             *string `json:"color,omitempty"`
	BackgroundColor   *string `json:"backgroundColor,omitempty"`
	Font              *string `json:"font,omitempty"`
	AlignHorizontal   *string `json:"alignHorizontal,omitempty"`
	AlignVertical     *string `json:"alignVertical,omitempty"`
	PaddingHorizontal *int    `json:"paddingHorizontal,omitempty"`
	PaddingVertical   *int    `json:"paddingVertical,omitempty"`
}

// Property returns the style's own value for p, or nil when absent.
// Sizes are returned as int, everything else as string.
func (s *Style) Property(p Property) any {
	if s == nil {
		return nil
	}
	switch p {
	case PropBorderSize:
		return intValue(s.BorderSize)
	case PropBorderRadius:
		return intValue(s.BorderRadius)
	case PropBorderColor:
		return stringValue(s.BorderColor)
	case PropColor:
		return stringValue(s.Color)
	case PropBackgroundColor:
		return stringValue(s.BackgroundColor)
	case PropFont:
		return stringValue(s.Font)
	case PropAlignHorizontal:
		return stringValue(s.AlignHorizontal)
	case PropAlignVertical:
		return stringValue(s.AlignVertical)
	case PropPaddingHorizontal:
		return intValue(s.PaddingHorizontal)
	case PropPaddingVertical:
		return intValue(s.PaddingVertical)
	}
	return nil
}

func intValue(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func stringValue(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

// Int returns a pointer to v, for building styles in code.
func Int(v int) *int { return &v }

// String returns a pointer to v, for building styles in code.
func String(v string) *string { return &v }

// EntityID is the versioned identity of a resource. A zero modTime means
// the resource is unversioned and the bare id is used.
func EntityID(id string, modTime int64) string {
	if modTime == 0 {
		return id
	}
	return id + "@" + strconv.FormatInt(modTime, 10)
}

// Font is a named font face.
type Font struct {
	ID      string
	Name    string
	ModTime int64
	Face    text.Face
}

// CacheID returns the font's versioned identity.
func (f *Font) CacheID() string {
	if f == nil {
		return ""
	}
	return EntityID(f.ID, f.ModTime)
}

// Height is the pixel height of a line: ascent plus descent, rounded up.
func (f *Font) Height() int {
	if f == nil || f.Face == nil {
		return 0
	}
	m := f.Face.Metrics()
	return int(math.Ceil(m.Ascent + m.Descent))
}

// Ascent is the distance from the top of a line to its baseline.
func (f *Font) Ascent() int {
	if f == nil || f.Face == nil {
		return 0
	}
	return int(math.Ceil(f.Face.Metrics().Ascent))
}

// Measure returns the advance width of s in whole pixels.
func (f *Font) Measure(s string) int {
	if f == nil || f.Face == nil || s == "" {
		return 0
	}
	return int(math.Ceil(f.Face.Advance(s)))
}

// Bitmap is a decoded image resource.
type Bitmap struct {
	ID      string
	Name    string
	ModTime int64
	Image   image.Image
	// BackgroundColor is painted behind the image; empty means transparent.
	BackgroundColor string
}

// CacheID returns the bitmap's versioned identity.
func (b *Bitmap) CacheID() string {
	if b == nil {
		return ""
	}
	return EntityID(b.ID, b.ModTime)
}

// Size returns the image dimensions, or zero for a bitmap without image.
func (b *Bitmap) Size() (int, int) {
	if b == nil || b.Image == nil {
		return 0, 0
	}
	r := b.Image.Bounds()
	return r.Dx(), r.Dy()
}
