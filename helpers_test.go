package eezdraw

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/eezkit/eezdraw/style"
)

// newTestLibrary returns a library with a default style, a 12pt font and
// a few styles used across tests.
func newTestLibrary(t *testing.T) *style.Library {
	t.Helper()

	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}

	lib := style.NewLibrary()
	lib.AddFont(&style.Font{Name: "regular", Face: src.Face(12)})
	lib.AddStyle(&style.Style{
		Name:            style.DefaultStyleName,
		Color:           style.String("#ffffff"),
		BackgroundColor: style.String("#000000"),
		Font:            style.String("regular"),
	})
	lib.AddStyle(&style.Style{
		Name:            "boxed",
		BorderSize:      style.Int(1),
		BorderRadius:    style.Int(0),
		BorderColor:     style.String("black"),
		Color:           style.String("black"),
		BackgroundColor: style.String("white"),
	})
	lib.AddStyle(&style.Style{
		Name:              "left",
		AlignHorizontal:   style.String(style.AlignLeft),
		PaddingHorizontal: style.Int(2),
	})
	return lib
}

// fixedMeasurer measures every byte as the same width.
type fixedMeasurer int

func (m fixedMeasurer) Measure(s string) int { return int(m) * len(s) }

func assertPixel(t *testing.T, pm *gg.Pixmap, x, y int, want gg.RGBA) {
	t.Helper()
	got := pm.GetPixel(x, y)
	const eps = 0.02
	if math.Abs(got.R-want.R) > eps || math.Abs(got.G-want.G) > eps ||
		math.Abs(got.B-want.B) > eps || math.Abs(got.A-want.A) > eps {
		t.Errorf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
	}
}

func samePixels(a, b *gg.Pixmap) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	da, db := a.Data(), b.Data()
	for i := range da {
		if da[i] != db[i] {
			return false
		}
	}
	return true
}
