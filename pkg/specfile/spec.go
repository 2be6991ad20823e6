package specfile

// Spec is the declarative description of one diagram.
type Spec struct {
	// Name identifies the diagram, e.g. in gallery listings and cache keys.
	Name        string       `json:"name,omitempty" toml:"name,omitempty"`
	Canvas      Canvas       `json:"canvas" toml:"canvas"`
	Containers  []Container  `json:"containers,omitempty" toml:"containers,omitempty"`
	Chips       []Chip       `json:"chips,omitempty" toml:"chips,omitempty"`
	Connectors  []Connector  `json:"connectors,omitempty" toml:"connectors,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty" toml:"annotations,omitempty"`
}

// ElementCount returns the total number of elements across all lists.
func (s Spec) ElementCount() int {
	return len(s.Containers) + len(s.Chips) + len(s.Connectors) + len(s.Annotations)
}

// Canvas describes the drawing surface: physical size in inches and the
// data coordinate ranges elements are placed in.
type Canvas struct {
	Width      float64 `json:"width" toml:"width"`
	Height     float64 `json:"height" toml:"height"`
	XMin       float64 `json:"x_min,omitempty" toml:"x_min,omitempty"`
	XMax       float64 `json:"x_max" toml:"x_max"`
	YMin       float64 `json:"y_min,omitempty" toml:"y_min,omitempty"`
	YMax       float64 `json:"y_max" toml:"y_max"`
	Background string  `json:"background,omitempty" toml:"background,omitempty"`
	ShowAxes   bool    `json:"show_axes,omitempty" toml:"show_axes,omitempty"`
}

// Container is a grouping rectangle. Containers carry no label; captions
// are annotations.
type Container struct {
	X            float64 `json:"x" toml:"x"`
	Y            float64 `json:"y" toml:"y"`
	Width        float64 `json:"width" toml:"width"`
	Height       float64 `json:"height" toml:"height"`
	Fill         string  `json:"fill,omitempty" toml:"fill,omitempty"`
	Stroke       string  `json:"stroke,omitempty" toml:"stroke,omitempty"`
	StrokeWidth  float64 `json:"stroke_width,omitempty" toml:"stroke_width,omitempty"`
	Opacity      float64 `json:"opacity,omitempty" toml:"opacity,omitempty"`
	CornerRadius float64 `json:"corner_radius,omitempty" toml:"corner_radius,omitempty"`
	Layer        int     `json:"layer,omitempty" toml:"layer,omitempty"`
}

// Chip is a labeled component rectangle.
type Chip struct {
	X            float64 `json:"x" toml:"x"`
	Y            float64 `json:"y" toml:"y"`
	Width        float64 `json:"width" toml:"width"`
	Height       float64 `json:"height" toml:"height"`
	Label        string  `json:"label" toml:"label"`
	Fill         string  `json:"fill,omitempty" toml:"fill,omitempty"`
	Stroke       string  `json:"stroke,omitempty" toml:"stroke,omitempty"`
	StrokeWidth  float64 `json:"stroke_width,omitempty" toml:"stroke_width,omitempty"`
	Opacity      float64 `json:"opacity,omitempty" toml:"opacity,omitempty"`
	CornerRadius float64 `json:"corner_radius,omitempty" toml:"corner_radius,omitempty"`
	FontSize     float64 `json:"font_size,omitempty" toml:"font_size,omitempty"`
	Bold         bool    `json:"bold,omitempty" toml:"bold,omitempty"`
	Italic       bool    `json:"italic,omitempty" toml:"italic,omitempty"`
	FontColor    string  `json:"font_color,omitempty" toml:"font_color,omitempty"`
	Layer        int     `json:"layer,omitempty" toml:"layer,omitempty"`
}

// Point is an absolute position in data coordinates.
type Point struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// Connector is a straight line between two absolute points with a
// semantic kind. Style fields override the kind's defaults.
type Connector struct {
	From      Point     `json:"from" toml:"from"`
	To        Point     `json:"to" toml:"to"`
	Kind      string    `json:"kind" toml:"kind"`
	Color     string    `json:"color,omitempty" toml:"color,omitempty"`
	Width     float64   `json:"width,omitempty" toml:"width,omitempty"`
	Dash      []float64 `json:"dash,omitempty" toml:"dash,omitempty"`
	Arrows    string    `json:"arrows,omitempty" toml:"arrows,omitempty"`
	ArrowSize float64   `json:"arrow_size,omitempty" toml:"arrow_size,omitempty"`
	Opacity   float64   `json:"opacity,omitempty" toml:"opacity,omitempty"`
	Layer     int       `json:"layer,omitempty" toml:"layer,omitempty"`
}

// Annotation is a free text block, optionally boxed.
type Annotation struct {
	X      float64 `json:"x" toml:"x"`
	Y      float64 `json:"y" toml:"y"`
	Text   string  `json:"text" toml:"text"`
	Align  string  `json:"align,omitempty" toml:"align,omitempty"`     // left|center|right
	VAlign string  `json:"v_align,omitempty" toml:"v_align,omitempty"` // top|center|bottom
	Size   float64 `json:"size,omitempty" toml:"size,omitempty"`
	Bold   bool    `json:"bold,omitempty" toml:"bold,omitempty"`
	Italic bool    `json:"italic,omitempty" toml:"italic,omitempty"`
	Color  string  `json:"color,omitempty" toml:"color,omitempty"`
	Box    *Box    `json:"box,omitempty" toml:"box,omitempty"`
	Layer  int     `json:"layer,omitempty" toml:"layer,omitempty"`
}

// Box is the rounded background behind an annotation.
type Box struct {
	Fill         string  `json:"fill,omitempty" toml:"fill,omitempty"`
	Opacity      float64 `json:"opacity,omitempty" toml:"opacity,omitempty"`
	Pad          float64 `json:"pad,omitempty" toml:"pad,omitempty"`
	CornerRadius float64 `json:"corner_radius,omitempty" toml:"corner_radius,omitempty"`
}
