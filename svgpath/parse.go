package svgpath

import "strconv"

// pathCursor scans path data left to right, accumulating relative
// coordinates into absolute ones.
type pathCursor struct {
	data string
	pos  int

	path  Path
	cur   Point // current point
	start Point // start of the current subpath

	// lastControl mirrors the trailing control point of the last cubic
	// command. The dialect has no smooth-shorthand commands, so nothing
	// reads it yet; S/T support would reflect it.
	lastControl Point

	points [6]float64 // operand scratch space
}

// arity of each recognized command letter.
var cmdArity = map[byte]int{
	'M': 2, 'm': 2,
	'L': 2, 'l': 2,
	'H': 1, 'h': 1,
	'V': 1, 'v': 1,
	'C': 6, 'c': 6,
	'Z': 0, 'z': 0,
}

// Parse interprets path data into a Path of absolute operations.
//
// Unrecognized command letters are skipped and commands with malformed or
// missing operands are dropped; interpretation always continues with the
// next token, so Parse never fails. Malformed input simply yields a shorter
// (possibly empty) path.
func Parse(data string) Path {
	c := pathCursor{data: data}
	prev := byte(0)
	for {
		c.skipSeparators()
		if c.pos >= len(c.data) {
			break
		}
		cmd := c.data[c.pos]
		if _, ok := cmdArity[cmd]; ok {
			c.pos++
		} else if isNumberStart(cmd) && prev != 0 && prev != 'Z' && prev != 'z' {
			// Operands without a letter repeat the previous command;
			// a repeated moveto continues as lineto. Close takes no
			// operands, so a number after it is junk, not a repeat.
			switch prev {
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			default:
				cmd = prev
			}
		} else {
			// Unknown letter (or leading junk): skip it.
			c.pos++
			prev = 0
			continue
		}
		if !c.readOperands(cmdArity[cmd]) {
			// Malformed operands drop this one command only.
			prev = 0
			continue
		}
		c.emit(cmd)
		prev = cmd
	}
	return c.path
}

func (c *pathCursor) emit(cmd byte) {
	p := c.points
	switch cmd {
	case 'M':
		c.cur = Point{p[0], p[1]}
		c.start = c.cur
		c.path = append(c.path, MoveTo(c.cur))
	case 'm':
		c.cur = Point{c.cur.X + p[0], c.cur.Y + p[1]}
		c.start = c.cur
		c.path = append(c.path, MoveTo(c.cur))
	case 'L':
		c.cur = Point{p[0], p[1]}
		c.path = append(c.path, LineTo(c.cur))
	case 'l':
		c.cur = Point{c.cur.X + p[0], c.cur.Y + p[1]}
		c.path = append(c.path, LineTo(c.cur))
	case 'H':
		c.cur.X = p[0]
		c.path = append(c.path, LineTo(c.cur))
	case 'h':
		c.cur.X += p[0]
		c.path = append(c.path, LineTo(c.cur))
	case 'V':
		c.cur.Y = p[0]
		c.path = append(c.path, LineTo(c.cur))
	case 'v':
		c.cur.Y += p[0]
		c.path = append(c.path, LineTo(c.cur))
	case 'C':
		op := CubicTo{
			C1:  Point{p[0], p[1]},
			C2:  Point{p[2], p[3]},
			End: Point{p[4], p[5]},
		}
		c.lastControl = op.C2
		c.cur = op.End
		c.path = append(c.path, op)
	case 'c':
		op := CubicTo{
			C1:  Point{c.cur.X + p[0], c.cur.Y + p[1]},
			C2:  Point{c.cur.X + p[2], c.cur.Y + p[3]},
			End: Point{c.cur.X + p[4], c.cur.Y + p[5]},
		}
		c.lastControl = op.C2
		c.cur = op.End
		c.path = append(c.path, op)
	case 'Z', 'z':
		c.path = append(c.path, Close{})
		c.cur = c.start
	}
}

func isSeparator(b byte) bool {
	return b == ' ' || b == ',' || b == '\t' || b == '\n' || b == '\r'
}

func isNumberStart(b byte) bool {
	return b >= '0' && b <= '9' || b == '-' || b == '+' || b == '.'
}

func (c *pathCursor) skipSeparators() {
	for c.pos < len(c.data) && isSeparator(c.data[c.pos]) {
		c.pos++
	}
}

// readOperands scans n numbers into the scratch slice, reporting whether
// all of them were present and well formed.
func (c *pathCursor) readOperands(n int) bool {
	for i := 0; i < n; i++ {
		c.skipSeparators()
		f, ok := c.readFloat()
		if !ok {
			return false
		}
		c.points[i] = f
	}
	return true
}

// readFloat consumes one numeric token at the cursor. A sign or dot that is
// not followed by a valid number consumes nothing and fails, leaving the
// offending byte to be handled by the command loop.
func (c *pathCursor) readFloat() (float64, bool) {
	start := c.pos
	i := c.pos
	if i < len(c.data) && (c.data[i] == '-' || c.data[i] == '+') {
		i++
	}
	seenDot := false
	for i < len(c.data) {
		b := c.data[i]
		if b >= '0' && b <= '9' {
			i++
			continue
		}
		if b == '.' && !seenDot {
			seenDot = true
			i++
			continue
		}
		if (b == 'e' || b == 'E') && i > start {
			// exponent: optional sign then digits
			j := i + 1
			if j < len(c.data) && (c.data[j] == '-' || c.data[j] == '+') {
				j++
			}
			if j < len(c.data) && c.data[j] >= '0' && c.data[j] <= '9' {
				i = j
				continue
			}
		}
		break
	}
	f, err := strconv.ParseFloat(c.data[start:i], 64)
	if err != nil {
		return 0, false
	}
	c.pos = i
	return f, true
}
