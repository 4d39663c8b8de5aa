package svgicon

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// ErrNoPaths reports markup with zero path elements. An icon without paths
// is a parse failure, not a valid empty document.
var ErrNoPaths = errors.New("svgicon: no path elements in markup")

// Parse reads icon markup and extracts the viewport and every path element
// with its styling attributes.
//
// Only the restricted dialect is understood: the first viewBox declaration
// (exactly four numeric fields, anything else falls back to DefaultViewBox)
// and self-contained path elements carrying d, fill, stroke, stroke-width
// and fill-rule attributes. All other elements are skipped. Path data is
// captured verbatim and not validated here; malformed data later
// rasterizes as a no-op.
func Parse(data []byte) (*Icon, error) {
	icon := &Icon{ViewBox: DefaultViewBox}
	seenViewBox := false

	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("svgicon: invalid markup: %w", err)
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "svg":
			if !seenViewBox {
				for _, attr := range se.Attr {
					if attr.Name.Local == "viewBox" {
						icon.ViewBox = parseViewBox(attr.Value)
						seenViewBox = true
					}
				}
			}
		case "path":
			if p, ok := readPathElement(se.Attr); ok {
				icon.Paths = append(icon.Paths, p)
			}
		}
	}
	if len(icon.Paths) == 0 {
		return nil, ErrNoPaths
	}
	return icon, nil
}

// parseViewBox splits the declaration on whitespace and requires exactly
// four numeric fields; a malformed viewport never fails the parse, it only
// falls back to the default.
func parseViewBox(v string) ViewBox {
	fields := strings.Fields(v)
	if len(fields) != 4 {
		return DefaultViewBox
	}
	var nums [4]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return DefaultViewBox
		}
		nums[i] = n
	}
	return ViewBox{nums[0], nums[1], nums[2], nums[3]}
}

// readPathElement captures the styling attributes of one path element.
// Attribute scoping is per element; nothing leaks between paths.
func readPathElement(attrs []xml.Attr) (StyledPath, bool) {
	var p StyledPath
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "d":
			p.Data = attr.Value
		case "fill":
			p.Fill = strings.TrimSpace(attr.Value)
		case "stroke":
			p.Stroke = strings.TrimSpace(attr.Value)
		case "stroke-width":
			v := strings.TrimSuffix(strings.TrimSpace(attr.Value), "px")
			if w, err := strconv.ParseFloat(v, 64); err == nil && w > 0 {
				p.StrokeWidth = w
			}
		case "fill-rule":
			switch strings.TrimSpace(attr.Value) {
			case "nonzero":
				p.FillRule = NonZero
			case "evenodd":
				p.FillRule = EvenOdd
			}
		}
	}
	if p.Data == "" {
		return StyledPath{}, false
	}
	return p, true
}
