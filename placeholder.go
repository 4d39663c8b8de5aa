package phosphor

import "github.com/will4381/phosphor-quick/svgicon"

// placeholderIcon is rendered when markup for an icon cannot be resolved or
// parsed: a stroked square with a question mark cutout, built directly as a
// document so the fallback can never itself fail to parse. Placeholder
// renders are not stored in the bitmap cache.
var placeholderIcon = &svgicon.Icon{
	ViewBox: svgicon.DefaultViewBox,
	Paths: []svgicon.StyledPath{
		{
			// rounded-square frame
			Data: "M60,28 L196,28 C214,28 228,42 228,60 L228,196 C228,214 214,228 196,228" +
				" L60,228 C42,228 28,214 28,196 L28,60 C28,42 42,28 60,28 Z",
			Stroke:      svgicon.CurrentColor,
			StrokeWidth: 16,
		},
		{
			// question mark
			Data: "M96,100 C96,82 110,68 128,68 C146,68 160,82 160,100" +
				" C160,118 146,124 128,132 L128,156",
			Stroke:      svgicon.CurrentColor,
			StrokeWidth: 16,
		},
		{
			Data:     "M118,186 L138,186 L138,196 L118,196 Z",
			Fill:     svgicon.CurrentColor,
			FillRule: svgicon.NonZero,
		},
	},
}
