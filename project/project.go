package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/eezkit/eezdraw"
	"github.com/eezkit/eezdraw/data"
	"github.com/eezkit/eezdraw/style"
	"github.com/eezkit/eezdraw/widget"
)

// Project is a loaded project. The embedded Library makes it a
// style.Registry.
type Project struct {
	*style.Library

	// Pages in declaration order.
	Pages []*widget.Page
	// Data is the snapshot embedded in the project; empty if none.
	Data *data.Static
	// Dir is the directory relative asset paths resolve against.
	Dir string
}

type fontSpec struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	ModTime int64   `json:"modificationTime"`
	Source  string  `json:"source"`
	Size    float64 `json:"size"`
}

type bitmapSpec struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ModTime         int64  `json:"modificationTime"`
	Image           string `json:"image"`
	BackgroundColor string `json:"backgroundColor"`
}

type projectFile struct {
	Styles  []*style.Style  `json:"styles"`
	Fonts   []fontSpec      `json:"fonts"`
	Bitmaps []bitmapSpec    `json:"bitmaps"`
	Pages   []*widget.Page  `json:"pages"`
	Data    json.RawMessage `json:"data"`
}

// Load reads the project file at path. Assets resolve relative to the
// file's directory.
func Load(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}
	defer f.Close()
	return Parse(f, filepath.Dir(path))
}

// Parse reads a project from r, resolving assets relative to dir.
func Parse(r io.Reader, dir string) (*Project, error) {
	var pf projectFile
	if err := json.NewDecoder(r).Decode(&pf); err != nil {
		return nil, fmt.Errorf("project: decode: %w", err)
	}

	p := &Project{
		Library: style.NewLibrary(),
		Pages:   pf.Pages,
		Data:    data.NewStatic(),
		Dir:     dir,
	}

	names := make(map[string]bool)
	for i, s := range pf.Styles {
		if s == nil {
			return nil, fmt.Errorf("%w: styles[%d]", ErrNullEntry, i)
		}
		if err := unique(names, "style", s.Name); err != nil {
			return nil, err
		}
		p.AddStyle(s)
	}
	if p.DefaultStyle() == nil {
		eezdraw.Logger().Warn("project has no default style", "name", style.DefaultStyleName)
	}

	fonts := newFontLoader(dir)
	clear(names)
	for _, fs := range pf.Fonts {
		if err := unique(names, "font", fs.Name); err != nil {
			return nil, err
		}
		face, err := fonts.face(fs.Source, fs.Size)
		if err != nil {
			return nil, &AssetError{Kind: "font", Name: fs.Name, Err: err}
		}
		p.AddFont(&style.Font{ID: fs.ID, Name: fs.Name, ModTime: fs.ModTime, Face: face})
	}

	clear(names)
	for _, bs := range pf.Bitmaps {
		if err := unique(names, "bitmap", bs.Name); err != nil {
			return nil, err
		}
		img, err := loadImage(bs.Image, dir)
		if err != nil {
			return nil, &AssetError{Kind: "bitmap", Name: bs.Name, Err: err}
		}
		p.AddBitmap(&style.Bitmap{
			ID:              bs.ID,
			Name:            bs.Name,
			ModTime:         bs.ModTime,
			Image:           img,
			BackgroundColor: bs.BackgroundColor,
		})
	}

	clear(names)
	for i, page := range pf.Pages {
		if page == nil {
			return nil, fmt.Errorf("%w: pages[%d]", ErrNullEntry, i)
		}
		if err := unique(names, "page", page.Name); err != nil {
			return nil, err
		}
	}

	if len(pf.Data) > 0 && string(pf.Data) != "null" {
		snapshot, err := data.ParseStatic(bytes.NewReader(pf.Data))
		if err != nil {
			return nil, fmt.Errorf("project: %w", err)
		}
		p.Data = snapshot
	}

	eezdraw.Logger().Debug("project loaded",
		"styles", len(pf.Styles), "fonts", len(pf.Fonts),
		"bitmaps", len(pf.Bitmaps), "pages", len(pf.Pages))
	return p, nil
}

func unique(seen map[string]bool, kind, name string) error {
	if seen[name] {
		return fmt.Errorf("%w: %s %q", ErrDuplicateName, kind, name)
	}
	seen[name] = true
	return nil
}

// Page returns the page named name, or nil.
func (p *Project) Page(name string) *widget.Page {
	for _, page := range p.Pages {
		if page.Name == name {
			return page
		}
	}
	return nil
}

var _ style.Registry = (*Project)(nil)
