package widget

// Widget type names.
const (
	TypeText          = "text"
	TypeMultilineText = "multiline_text"
	TypeDisplayData   = "display_data"
	TypeBitmap        = "bitmap"
	TypeRectangle     = "rectangle"
	TypeButton        = "button"
	TypeButtonGroup   = "button_group"
	TypeScale         = "scale"
	TypeBarGraph      = "bar_graph"
	TypeUpDown        = "up_down"
	TypeListGraph     = "list_graph"
	TypeYTGraph       = "yt_graph"
	TypeContainer     = "container"
)

// Widget is a placed element of a page. Position is relative to the
// enclosing page or container. Style and bitmap fields hold names looked
// up in the project; data fields hold references into a data.Source.
type Widget struct {
	Type   string `json:"type"`
	Name   string `json:"name,omitempty"`
	Left   int    `json:"left"`
	Top    int    `json:"top"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	Style  string `json:"style,omitempty"`
	Data   string `json:"data,omitempty"`
	Text   string `json:"text,omitempty"`
	Bitmap string `json:"bitmap,omitempty"`
	Invert bool   `json:"invertColors,omitempty"`

	// Button.
	EnabledData   string `json:"enabled,omitempty"`
	DisabledStyle string `json:"disabledStyle,omitempty"`

	// Scale.
	NeedlePosition string `json:"needlePosition,omitempty"`
	NeedleWidth    int    `json:"needleWidth,omitempty"`
	NeedleHeight   int    `json:"needleHeight,omitempty"`

	// Bar graph.
	Orientation string `json:"orientation,omitempty"`
	TextStyle   string `json:"textStyle,omitempty"`
	Line1Data   string `json:"line1Data,omitempty"`
	Line1Style  string `json:"line1Style,omitempty"`
	Line2Data   string `json:"line2Data,omitempty"`
	Line2Style  string `json:"line2Style,omitempty"`

	// Up/down.
	DownButtonText string `json:"downButtonText,omitempty"`
	UpButtonText   string `json:"upButtonText,omitempty"`
	ButtonsStyle   string `json:"buttonsStyle,omitempty"`

	// Container children.
	Widgets []*Widget `json:"widgets,omitempty"`
}

// Page is a top-level canvas of widgets.
type Page struct {
	Name    string    `json:"name"`
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	Style   string    `json:"style,omitempty"`
	Widgets []*Widget `json:"widgets,omitempty"`
}
