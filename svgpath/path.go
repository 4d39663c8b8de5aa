// Package svgpath interprets the restricted SVG path-data dialect used by
// the icon set: absolute and relative move, line, horizontal/vertical line,
// cubic curve and close commands. Higher-level SVG features (arcs, smooth
// shorthands, quadratic curves) are outside the dialect.
package svgpath

import (
	"fmt"
	"strings"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Point is a position in viewport coordinates.
type Point struct {
	X, Y float64
}

// Transform maps viewport coordinates onto a raster target: scale then
// translate. It is what remains of a full affine matrix once rotation and
// skew are out of the dialect.
type Transform struct {
	Scale  float64
	Dx, Dy float64
}

// Identity maps viewport coordinates unchanged.
var Identity = Transform{Scale: 1}

func (t Transform) apply(p Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6((p.X*t.Scale + t.Dx) * 64),
		Y: fixed.Int26_6((p.Y*t.Scale + t.Dy) * 64),
	}
}

// Operation is one path-construction step, in absolute viewport coordinates.
type Operation interface {
	// drawTo adds the operation to the adder `d`, after applying `t`.
	drawTo(d rasterx.Adder, t Transform)
}

// MoveTo starts a new subpath at the given point.
type MoveTo Point

// LineTo draws a line from the current point.
type LineTo Point

// CubicTo draws a cubic bezier curve through the two control points to End.
type CubicTo struct {
	C1, C2, End Point
}

// Close closes the current subpath.
type Close struct{}

func (op MoveTo) drawTo(d rasterx.Adder, t Transform) {
	d.Stop(false) // implicit end of any open subpath
	d.Start(t.apply(Point(op)))
}

func (op LineTo) drawTo(d rasterx.Adder, t Transform) {
	d.Line(t.apply(Point(op)))
}

func (op CubicTo) drawTo(d rasterx.Adder, t Transform) {
	d.CubeBezier(t.apply(op.C1), t.apply(op.C2), t.apply(op.End))
}

func (op Close) drawTo(d rasterx.Adder, _ Transform) {
	d.Stop(true)
}

// Path is an ordered sequence of operations. An empty path draws nothing.
type Path []Operation

// AddTo replays the path on the rasterx adder `d` with transform `t`,
// closing any trailing open subpath.
func (p Path) AddTo(d rasterx.Adder, t Transform) {
	for _, op := range p {
		op.drawTo(d, t)
	}
	d.Stop(false)
}

// String returns an SVG-like representation of the path, for debugging.
func (p Path) String() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%g,%g", op.X, op.Y)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%g,%g", op.X, op.Y)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%g,%g,%g,%g,%g,%g",
				op.C1.X, op.C1.Y, op.C2.X, op.C2.Y, op.End.X, op.End.Y)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}
