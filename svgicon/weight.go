package svgicon

import "fmt"

// Weight is a stylistic variant derived from one canonical path set.
type Weight string

const (
	Regular Weight = "regular"
	Thin    Weight = "thin"
	Light   Weight = "light"
	Bold    Weight = "bold"
	Fill    Weight = "fill"
	Duotone Weight = "duotone"
)

// defaultStrokeWidth applies when a path carries no stroke-width attribute.
const defaultStrokeWidth = 1.5

// duotoneSecondaryOpacity is the fill opacity of odd-indexed paths in the
// duotone variant; even-indexed paths stay fully opaque.
const duotoneSecondaryOpacity = 0.2

// ParseWeight maps a weight name to its Weight, defaulting to Regular for
// the empty string.
func ParseWeight(s string) (Weight, error) {
	switch Weight(s) {
	case "":
		return Regular, nil
	case Regular, Thin, Light, Bold, Fill, Duotone:
		return Weight(s), nil
	}
	return "", fmt.Errorf("svgicon: unknown weight %q", s)
}

// WithWeight returns a copy of the icon rewritten for the given weight. The
// receiver is never mutated, so cached documents can be shared freely across
// concurrent renders.
//
// Weights are approximated by attribute rewriting (stroke-width scaling and
// fill/stroke substitution), not by geometric outline offsetting; the
// canonical icon geometry is weight-neutral by design convention.
func (ic *Icon) WithWeight(w Weight) *Icon {
	out := &Icon{
		ViewBox: ic.ViewBox,
		Paths:   make([]StyledPath, len(ic.Paths)),
	}
	copy(out.Paths, ic.Paths)
	for i := range out.Paths {
		transformPath(&out.Paths[i], w, i)
	}
	return out
}

func transformPath(p *StyledPath, w Weight, index int) {
	sw := p.StrokeWidth
	if sw == 0 {
		sw = defaultStrokeWidth
	}
	switch w {
	case Thin:
		p.Fill = None
		p.Stroke = CurrentColor
		p.StrokeWidth = sw * 0.67
	case Light:
		p.Fill = None
		p.Stroke = CurrentColor
		p.StrokeWidth = sw * 0.83
	case Bold:
		if p.StrokeWidth > 0 {
			p.StrokeWidth = sw * 1.67
		} else {
			p.Fill = CurrentColor
			p.Stroke = CurrentColor
			p.StrokeWidth = 2.5
		}
	case Fill:
		p.Fill = CurrentColor
		p.Stroke = ""
		p.StrokeWidth = 0
		p.FillRule = NonZero
	case Duotone:
		p.Fill = CurrentColor
		p.Stroke = ""
		p.StrokeWidth = 0
		if p.FillRule == RuleUnset {
			p.FillRule = NonZero
		}
		if index%2 == 1 {
			p.FillOpacity = duotoneSecondaryOpacity
		} else {
			p.FillOpacity = 1
		}
	}
}
