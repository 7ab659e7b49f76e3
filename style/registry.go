package style

// StyleFinder looks up styles by name.
type StyleFinder interface {
	FindStyle(name string) *Style
}

// FontFinder looks up fonts by name.
type FontFinder interface {
	FindFont(name string) *Font
}

// BitmapFinder looks up bitmaps by name.
type BitmapFinder interface {
	FindBitmap(name string) *Bitmap
}

// DefaultStyler provides the style every chain falls back to.
type DefaultStyler interface {
	DefaultStyle() *Style
}

// Registry is the read-only view of a project's resources.
type Registry interface {
	StyleFinder
	FontFinder
	BitmapFinder
	DefaultStyler
}

// DefaultStyleName is the name Library uses for its fallback style.
const DefaultStyleName = "default"

// Library is an in-memory Registry keyed by name.
// It is not safe for concurrent mutation.
type Library struct {
	styles  map[string]*Style
	fonts   map[string]*Font
	bitmaps map[string]*Bitmap
}

var _ Registry = (*Library)(nil)

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{
		styles:  make(map[string]*Style),
		fonts:   make(map[string]*Font),
		bitmaps: make(map[string]*Bitmap),
	}
}

// AddStyle registers s under s.Name. An empty ID defaults to the name.
func (l *Library) AddStyle(s *Style) {
	if s.ID == "" {
		s.ID = s.Name
	}
	l.styles[s.Name] = s
}

// AddFont registers f under f.Name. An empty ID defaults to the name.
func (l *Library) AddFont(f *Font) {
	if f.ID == "" {
		f.ID = f.Name
	}
	l.fonts[f.Name] = f
}

// AddBitmap registers b under b.Name. An empty ID defaults to the name.
func (l *Library) AddBitmap(b *Bitmap) {
	if b.ID == "" {
		b.ID = b.Name
	}
	l.bitmaps[b.Name] = b
}

func (l *Library) FindStyle(name string) *Style {
	return l.styles[name]
}

func (l *Library) FindFont(name string) *Font {
	return l.fonts[name]
}

func (l *Library) FindBitmap(name string) *Bitmap {
	return l.bitmaps[name]
}

// DefaultStyle returns the style named DefaultStyleName, or nil.
func (l *Library) DefaultStyle() *Style {
	return l.styles[DefaultStyleName]
}

// Len returns the number of registered styles.
func (l *Library) Len() int {
	return len(l.styles)
}
