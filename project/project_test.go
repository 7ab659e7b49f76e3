package project

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/eezkit/eezdraw/style"
)

func testImage() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	return img
}

func dataURI(t *testing.T, mime string, encode func(*bytes.Buffer) error) string {
	t.Helper()
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		t.Fatal(err)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestParse(t *testing.T) {
	pngURI := dataURI(t, "image/png", func(b *bytes.Buffer) error { return png.Encode(b, testImage()) })
	bmpURI := dataURI(t, "image/bmp", func(b *bytes.Buffer) error { return bmp.Encode(b, testImage()) })

	src := fmt.Sprintf(`{
		"styles": [
			{"name": "default", "color": "white", "backgroundColor": "black", "font": "small"},
			{"name": "button", "inheritFrom": "default", "borderSize": 1, "modificationTime": 4}
		],
		"fonts": [
			{"name": "small", "source": "goregular", "size": 10},
			{"name": "mono", "source": "gomono"}
		],
		"bitmaps": [
			{"name": "logo", "image": %q},
			{"name": "icon", "image": %q, "backgroundColor": "#ff0000"}
		],
		"pages": [
			{"name": "main", "width": 320, "height": 240, "widgets": [
				{"type": "text", "text": "Hi", "left": 4, "top": 4, "width": 40, "height": 20}
			]}
		],
		"data": {"voltage": {"value": 5, "max": 40}}
	}`, pngURI, bmpURI)

	p, err := Parse(strings.NewReader(src), "")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	def := p.DefaultStyle()
	if def == nil || def.Color == nil || *def.Color != "white" {
		t.Fatalf("expected default style with color white, got %+v", def)
	}
	button := p.FindStyle("button")
	if button == nil || button.InheritFrom != "default" || button.ModTime != 4 {
		t.Errorf("unexpected button style %+v", button)
	}
	if button.BorderSize == nil || *button.BorderSize != 1 {
		t.Error("expected borderSize 1")
	}

	if f := p.FindFont("small"); f == nil || f.Face == nil {
		t.Error("expected font small to be loaded")
	}
	if f := p.FindFont("mono"); f == nil || f.Height() <= 0 {
		t.Error("expected font mono with the default size")
	}

	for _, name := range []string{"logo", "icon"} {
		b := p.FindBitmap(name)
		if b == nil {
			t.Fatalf("expected bitmap %s", name)
		}
		if w, h := b.Size(); w != 3 || h != 2 {
			t.Errorf("%s: expected 3x2, got %dx%d", name, w, h)
		}
	}
	if p.FindBitmap("icon").BackgroundColor != "#ff0000" {
		t.Error("expected icon background color")
	}

	page := p.Page("main")
	if page == nil || len(page.Widgets) != 1 || page.Widgets[0].Text != "Hi" {
		t.Fatalf("unexpected page %+v", page)
	}
	if p.Page("missing") != nil {
		t.Error("expected nil for an unknown page")
	}

	if p.Data.GetMax("voltage") != 40 {
		t.Errorf("expected max 40, got %v", p.Data.GetMax("voltage"))
	}

	id, err := style.NewResolver(p).CacheID(button)
	if err != nil {
		t.Fatal(err)
	}
	if want := "button@4+small<default+small"; id != want {
		t.Errorf("expected cache id %q, got %q", want, id)
	}
}

func TestParseDuplicateStyle(t *testing.T) {
	src := `{"styles": [{"name": "a"}, {"name": "a"}]}`
	_, err := Parse(strings.NewReader(src), "")
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
}

func TestParseNullEntries(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"style", `{"styles": [{"name": "default"}, null]}`},
		{"page", `{"pages": [null]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src), "")
			if !errors.Is(err, ErrNullEntry) {
				t.Errorf("expected ErrNullEntry, got %v", err)
			}
		})
	}
}

func TestParseBadBitmap(t *testing.T) {
	src := `{"bitmaps": [{"name": "broken", "image": "data:image/png;base64,AAAA"}]}`
	_, err := Parse(strings.NewReader(src), "")

	var assetErr *AssetError
	if !errors.As(err, &assetErr) {
		t.Fatalf("expected *AssetError, got %v", err)
	}
	if assetErr.Kind != "bitmap" || assetErr.Name != "broken" {
		t.Errorf("unexpected asset error %+v", assetErr)
	}
}

func TestParseMissingFontFile(t *testing.T) {
	src := `{"fonts": [{"name": "custom", "source": "fonts/missing.ttf"}]}`
	_, err := Parse(strings.NewReader(src), t.TempDir())

	var assetErr *AssetError
	if !errors.As(err, &assetErr) || assetErr.Kind != "font" {
		t.Errorf("expected a font *AssetError, got %v", err)
	}
}

func TestLoadResolvesRelativeAssets(t *testing.T) {
	dir := t.TempDir()

	f, err := os.Create(filepath.Join(dir, "logo.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, testImage()); err != nil {
		t.Fatal(err)
	}
	f.Close()

	path := filepath.Join(dir, "project.json")
	src := `{"bitmaps": [{"name": "logo", "image": "logo.png"}], "pages": [{"name": "p", "width": 10, "height": 10}]}`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.FindBitmap("logo") == nil {
		t.Error("expected logo loaded relative to the project file")
	}
	if p.Dir != dir {
		t.Errorf("expected dir %q, got %q", dir, p.Dir)
	}
}

func TestDecodeDataURI(t *testing.T) {
	tests := []struct {
		uri     string
		want    string
		wantErr bool
	}{
		{"data:text/plain;base64,aGk=", "hi", false},
		{"data:,a%20b", "a b", false},
		{"data:text/plain", "", true},
		{"data:;base64,!!", "", true},
	}
	for _, tt := range tests {
		got, err := decodeDataURI(tt.uri)
		if (err != nil) != tt.wantErr {
			t.Errorf("decodeDataURI(%q): unexpected error %v", tt.uri, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("decodeDataURI(%q): expected %q, got %q", tt.uri, tt.want, got)
		}
	}
}
