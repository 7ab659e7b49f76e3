package widget

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/eezkit/eezdraw"
	"github.com/eezkit/eezdraw/data"
	"github.com/eezkit/eezdraw/style"
)

func newTestContext(t *testing.T) (*Context, *data.Static) {
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
	lib.AddStyle(&style.Style{Name: "page", BackgroundColor: style.String("#0000ff")})
	lib.AddStyle(&style.Style{Name: "red", BackgroundColor: style.String("#ff0000")})
	lib.AddStyle(&style.Style{Name: "green", BackgroundColor: style.String("#00ff00")})
	lib.AddStyle(&style.Style{Name: "marker", Color: style.String("#ff0000")})
	lib.AddStyle(&style.Style{Name: "loop", InheritFrom: "loop"})

	snapshot := data.NewStatic()
	return NewContext(eezdraw.NewRenderer(lib), snapshot), snapshot
}

func assertPixel(t *testing.T, pm *gg.Pixmap, x, y int, want gg.RGBA) {
	t.Helper()
	got := pm.GetPixel(x, y)
	const eps = 0.02
	if math.Abs(got.R-want.R) > eps || math.Abs(got.G-want.G) > eps ||
		math.Abs(got.B-want.B) > eps || math.Abs(got.A-want.A) > eps {
		t.Errorf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
	}
}

func TestRegistryTypes(t *testing.T) {
	reg := NewRegistry()
	want := []string{
		TypeBarGraph, TypeBitmap, TypeButton, TypeButtonGroup, TypeContainer,
		TypeDisplayData, TypeListGraph, TypeMultilineText, TypeRectangle,
		TypeScale, TypeText, TypeUpDown, TypeYTGraph,
	}
	got := reg.Types()
	if len(got) != len(want) {
		t.Fatalf("expected %d types, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected type %q at %d, got %q", want[i], i, got[i])
		}
	}
}

func TestRegistryUnknownType(t *testing.T) {
	ctx, _ := newTestContext(t)
	_, err := NewRegistry().Draw(ctx, &Widget{Type: "gauge", Width: 10, Height: 10})
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}
}

type stubAdapter struct{ calls *int }

func (stubAdapter) Type() string { return TypeText }

func (a stubAdapter) Draw(*Context, *Widget) (*gg.Pixmap, error) {
	*a.calls++
	return nil, nil
}

func TestWithAdapterReplacesBuiltin(t *testing.T) {
	ctx, _ := newTestContext(t)
	var calls int
	reg := NewRegistry(WithAdapter(stubAdapter{calls: &calls}))

	if _, err := reg.Draw(ctx, &Widget{Type: TypeText}); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("expected the custom adapter to be called once, got %d", calls)
	}
}

func TestDisplayDataMatchesText(t *testing.T) {
	ctx, snapshot := newTestContext(t)
	snapshot.Set("voltage", 12.5)
	reg := NewRegistry()

	literal, err := reg.Draw(ctx, &Widget{Type: TypeText, Text: "12.5", Width: 40, Height: 16})
	if err != nil {
		t.Fatal(err)
	}
	bound, err := reg.Draw(ctx, &Widget{Type: TypeDisplayData, Data: "voltage", Width: 40, Height: 16})
	if err != nil {
		t.Fatal(err)
	}
	if literal != bound {
		t.Error("expected bound data to reuse the cached literal text bitmap")
	}
}

func TestButtonDisabledStyle(t *testing.T) {
	ctx, snapshot := newTestContext(t)
	reg := NewRegistry()
	w := &Widget{
		Type:          TypeButton,
		Width:         20,
		Height:        10,
		Style:         "green",
		EnabledData:   "output",
		DisabledStyle: "red",
	}

	snapshot.Set("output", true)
	pm, err := reg.Draw(ctx, w)
	if err != nil {
		t.Fatal(err)
	}
	assertPixel(t, pm, 1, 1, gg.Green)

	snapshot.Set("output", false)
	pm, err = reg.Draw(ctx, w)
	if err != nil {
		t.Fatal(err)
	}
	assertPixel(t, pm, 1, 1, gg.Red)
}

func TestMissingBitmapDrawsNothing(t *testing.T) {
	ctx, _ := newTestContext(t)
	pm, err := NewRegistry().Draw(ctx, &Widget{Type: TypeBitmap, Bitmap: "logo", Width: 10, Height: 10})
	if pm != nil || err != nil {
		t.Errorf("expected (nil, nil), got (%v, %v)", pm, err)
	}
}

func TestLiveWidgetsDraw(t *testing.T) {
	ctx, snapshot := newTestContext(t)
	snapshot.Set("level", 30)
	snapshot.SetRange("level", 0, 100)
	snapshot.Set("limit", 80)
	snapshot.Set("mode", 1)
	snapshot.SetValueList("mode", []string{"CV", "CC"})
	snapshot.SetValueList("trace", []string{"1", "5", "x", "3"})
	reg := NewRegistry()

	widgets := []*Widget{
		{Type: TypeScale, Data: "level", Width: 20, Height: 60},
		{Type: TypeBarGraph, Data: "level", Line1Data: "limit", Line1Style: "red", Width: 60, Height: 16},
		{Type: TypeButtonGroup, Data: "mode", Width: 60, Height: 16},
		{Type: TypeUpDown, Data: "level", Width: 60, Height: 16},
		{Type: TypeListGraph, Data: "trace", Width: 40, Height: 20},
		{Type: TypeYTGraph, Width: 40, Height: 20},
		{Type: TypeMultilineText, Text: "two words", Width: 40, Height: 30},
	}
	for _, w := range widgets {
		pm, err := reg.Draw(ctx, w)
		if err != nil {
			t.Errorf("%s: %v", w.Type, err)
			continue
		}
		if pm == nil || pm.Width() != w.Width || pm.Height() != w.Height {
			t.Errorf("%s: expected a %dx%d bitmap, got %v", w.Type, w.Width, w.Height, pm)
		}
	}
}

func TestBarGraphThresholdLine(t *testing.T) {
	ctx, snapshot := newTestContext(t)
	snapshot.Set("level", 0)
	snapshot.Set("limit", 50)
	w := &Widget{Type: TypeBarGraph, Data: "level", Line1Data: "limit", Line1Style: "marker", Width: 100, Height: 20}

	pm, err := NewRegistry().Draw(ctx, w)
	if err != nil {
		t.Fatal(err)
	}
	assertPixel(t, pm, 50, 18, gg.Red)
}

func TestRenderPage(t *testing.T) {
	ctx, _ := newTestContext(t)
	page := &Page{
		Name:   "main",
		Width:  40,
		Height: 20,
		Style:  "page",
		Widgets: []*Widget{
			{Type: TypeRectangle, Style: "red", Left: 2, Top: 2, Width: 6, Height: 6},
			{Type: TypeRectangle, Style: "loop", Left: 10, Top: 2, Width: 6, Height: 6},
			{Type: TypeContainer, Left: 20, Top: 0, Width: 20, Height: 20, Widgets: []*Widget{
				{Type: TypeRectangle, Style: "green", Left: 5, Top: 5, Width: 5, Height: 5},
			}},
		},
	}

	pm, err := NewRegistry().RenderPage(ctx, page)
	if err != nil {
		t.Fatal(err)
	}
	assertPixel(t, pm, 4, 4, gg.Red)
	assertPixel(t, pm, 0, 0, gg.Blue)
	// The cyclic style is skipped, leaving the page background.
	assertPixel(t, pm, 12, 4, gg.Blue)
	// Container children are offset by the container position.
	assertPixel(t, pm, 27, 7, gg.Green)
	assertPixel(t, pm, 22, 2, gg.Black)
}

func TestRenderPageEmpty(t *testing.T) {
	ctx, _ := newTestContext(t)
	if _, err := NewRegistry().RenderPage(ctx, &Page{Name: "empty"}); err == nil {
		t.Error("expected an error for a zero-sized page")
	}
}
