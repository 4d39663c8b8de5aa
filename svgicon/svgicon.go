// Package svgicon holds the parsed representation of an icon: a viewport
// and an ordered list of styled paths. Path data is kept as raw text and
// interpreted only at raster time, so weight variants can be derived by
// rewriting attributes without touching geometry.
package svgicon

// CurrentColor is the foreground sentinel: any path painted with it (or any
// other token that is not None) renders in the caller's foreground color.
const CurrentColor = "currentColor"

// None disables a paint operation.
const None = "none"

// ViewBox is the rectangular coordinate space the path data is authored in.
type ViewBox struct {
	X, Y, W, H float64
}

// DefaultViewBox is used when the markup has no usable viewport declaration.
var DefaultViewBox = ViewBox{0, 0, 256, 256}

// FillRule selects the winding rule used when filling.
type FillRule uint8

const (
	RuleUnset FillRule = iota // rasterizes as nonzero
	NonZero
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "unset"
	}
}

// StyledPath is one drawable shape: raw path data plus paint attributes.
// Zero values mean "attribute absent": empty Fill or Stroke disables that
// paint, zero StrokeWidth falls back to the 1.5 default when stroking, and
// zero FillOpacity renders fully opaque.
type StyledPath struct {
	Data        string
	Fill        string
	Stroke      string
	StrokeWidth float64
	FillRule    FillRule
	FillOpacity float64
}

// Icon is a parsed icon document. It is immutable after construction and may
// be shared by concurrent readers; WithWeight copies rather than mutates.
type Icon struct {
	ViewBox ViewBox
	Paths   []StyledPath
}
