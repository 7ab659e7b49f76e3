package project

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DefaultFontSize is used for fonts without a size.
const DefaultFontSize = 12

var builtinFonts = map[string][]byte{
	"goregular":  goregular.TTF,
	"gobold":     gobold.TTF,
	"goitalic":   goitalic.TTF,
	"gomedium":   gomedium.TTF,
	"gomono":     gomono.TTF,
	"gomonobold": gomonobold.TTF,
}

// fontLoader parses each font source once per project.
type fontLoader struct {
	dir     string
	sources map[string]*text.FontSource
}

func newFontLoader(dir string) *fontLoader {
	return &fontLoader{dir: dir, sources: make(map[string]*text.FontSource)}
}

// face returns a face of src at size. An empty src is the built-in
// regular font.
func (l *fontLoader) face(src string, size float64) (text.Face, error) {
	if src == "" {
		src = "goregular"
	}
	if size <= 0 {
		size = DefaultFontSize
	}

	fs, ok := l.sources[src]
	if !ok {
		var err error
		if ttf, builtin := builtinFonts[src]; builtin {
			fs, err = text.NewFontSource(ttf)
		} else {
			fs, err = text.NewFontSourceFromFile(l.resolve(src))
		}
		if err != nil {
			return nil, err
		}
		l.sources[src] = fs
	}
	return fs.Face(size), nil
}

func (l *fontLoader) resolve(path string) string {
	if filepath.IsAbs(path) || l.dir == "" {
		return path
	}
	return filepath.Join(l.dir, path)
}

// loadImage decodes a data URI or an image file relative to dir.
func loadImage(ref, dir string) (image.Image, error) {
	if ref == "" {
		return nil, errors.New("no image")
	}
	var b []byte
	var err error
	if strings.HasPrefix(ref, "data:") {
		b, err = decodeDataURI(ref)
	} else {
		if !filepath.IsAbs(ref) && dir != "" {
			ref = filepath.Join(dir, ref)
		}
		b, err = os.ReadFile(ref)
	}
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return img, nil
}

// decodeDataURI returns the payload of a "data:[<mediatype>][;base64],<data>"
// URI.
func decodeDataURI(uri string) ([]byte, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !ok {
		return nil, errors.New("malformed data URI")
	}
	if strings.HasSuffix(header, ";base64") {
		b, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("data URI: %w", err)
		}
		return b, nil
	}
	s, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("data URI: %w", err)
	}
	return []byte(s), nil
}
