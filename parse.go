package pathops

import (
	"github.com/tdewolff/parse/v2/strconv"
)

// ParsePath parses SVG path data using the default options.
//
// All commands of the SVG 1.1 path grammar are supported. Elliptical arcs
// are approximated with cubic Béziers. An empty string, or one consisting only
// of whitespace, results in an empty path.
func ParsePath(data string) (*Path, error) {
	return ParsePathWith(data, nil)
}

// ParsePathWith is like [ParsePath] but uses opts.ArcTolerance for the
// approximation of arcs.
func ParsePathWith(data string, opts *Options) (*Path, error) {
	opts = opts.orDefault()
	ps := pathScanner{
		data:   []byte(data),
		arcTol: opts.ArcTolerance,
	}
	p, err := ps.parse()
	if err != nil {
		opts.logger().Debug("parsing path data failed", "err", err)
		return nil, err
	}
	return p, nil
}

// argCounts maps upper-case command letters to their number of arguments.
var argCounts = [...]int{
	'M': 2,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
	'Z': 0,
}

func isCommand(c byte) bool {
	u := c &^ 0x20
	switch u {
	case 'M', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A', 'Z':
		return 'A' <= c && c <= 'z'
	default:
		return false
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isNumberStart(c byte) bool {
	return '0' <= c && c <= '9' || c == '.' || c == '-' || c == '+'
}

type pathScanner struct {
	data   []byte
	off    int
	arcTol float64

	b PathBuilder
	// ctrl is the last control point of the previous curve, for reflection
	// by S and T.
	ctrl    Point
	prevCmd byte
	args    [7]float64
}

func (ps *pathScanner) skipSpace() {
	for ps.off < len(ps.data) && isSpace(ps.data[ps.off]) {
		ps.off++
	}
}

// skipSeparator skips whitespace and at most one comma.
func (ps *pathScanner) skipSeparator() {
	ps.skipSpace()
	if ps.off < len(ps.data) && ps.data[ps.off] == ',' {
		ps.off++
		ps.skipSpace()
	}
}

func (ps *pathScanner) number(cmd byte) (float64, error) {
	if ps.off >= len(ps.data) {
		return 0, malformed(ps.off, "missing argument for command %q", cmd)
	}
	f, n := strconv.ParseFloat(ps.data[ps.off:])
	if n == 0 {
		return 0, malformed(ps.off, "expected number for command %q, found %q", cmd, ps.data[ps.off])
	}
	ps.off += n
	return f, nil
}

func (ps *pathScanner) flag(cmd byte) (float64, error) {
	if ps.off >= len(ps.data) {
		return 0, malformed(ps.off, "missing arc flag for command %q", cmd)
	}
	switch ps.data[ps.off] {
	case '0':
		ps.off++
		return 0, nil
	case '1':
		ps.off++
		return 1, nil
	default:
		return 0, malformed(ps.off, "arc flags must be 0 or 1, found %q", ps.data[ps.off])
	}
}

func (ps *pathScanner) parse() (*Path, error) {
	ps.skipSpace()
	var cmd byte
	for ps.off < len(ps.data) {
		start := ps.off
		c := ps.data[ps.off]
		switch {
		case isCommand(c):
			cmd = c
			ps.off++
			ps.skipSpace()
		case isNumberStart(c) && cmd != 0 && cmd&^0x20 != 'Z':
			// Implicit repetition. Repeated moves are lines.
			switch cmd {
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			}
		case isNumberStart(c):
			if cmd == 0 {
				return nil, malformed(start, "path data must start with a command")
			}
			return nil, malformed(start, "close path takes no arguments")
		default:
			return nil, malformed(start, "unknown command %q", c)
		}

		if _, ok := ps.b.CurrentPoint(); !ok && cmd&^0x20 != 'M' {
			return nil, &ParseError{
				Kind:   MissingContext,
				Offset: start,
				Msg:    "command " + string(cmd) + " before any moveto",
			}
		}

		upper := cmd &^ 0x20
		n := argCounts[upper]
		for j := range n {
			var err error
			if upper == 'A' && (j == 3 || j == 4) {
				ps.args[j], err = ps.flag(cmd)
			} else {
				ps.args[j], err = ps.number(cmd)
			}
			if err != nil {
				return nil, err
			}
			if j < n-1 {
				ps.skipSeparator()
			}
		}
		ps.apply(cmd)
		// A single comma may separate argument groups of repeated commands.
		ps.skipSpace()
		if n > 0 && ps.off < len(ps.data) && ps.data[ps.off] == ',' {
			ps.off++
			ps.skipSpace()
			if ps.off >= len(ps.data) || !isNumberStart(ps.data[ps.off]) {
				return nil, malformed(ps.off, "expected number after comma")
			}
		}
	}
	return ps.b.Path(), nil
}

func (ps *pathScanner) apply(cmd byte) {
	b := &ps.b
	cur, _ := b.CurrentPoint()
	rel := 'a' <= cmd && cmd <= 'z'
	a := ps.args
	pt := func(x, y float64) Point {
		if rel {
			return Point{cur.X + x, cur.Y + y}
		}
		return Point{x, y}
	}
	// Reflected control point for smooth curves.
	reflect := func(kinds string) Point {
		prev := ps.prevCmd &^ 0x20
		for i := range len(kinds) {
			if prev == kinds[i] {
				return Point{2*cur.X - ps.ctrl.X, 2*cur.Y - ps.ctrl.Y}
			}
		}
		return cur
	}

	switch cmd &^ 0x20 {
	case 'M':
		if rel && ps.prevCmd == 0 {
			// A leading relative moveto is treated as absolute.
			b.MoveTo(Point{a[0], a[1]})
		} else {
			b.MoveTo(pt(a[0], a[1]))
		}
	case 'L':
		b.LineTo(pt(a[0], a[1]))
	case 'H':
		x := a[0]
		if rel {
			x += cur.X
		}
		b.LineTo(Point{x, cur.Y})
	case 'V':
		y := a[0]
		if rel {
			y += cur.Y
		}
		b.LineTo(Point{cur.X, y})
	case 'C':
		c2 := pt(a[2], a[3])
		b.CubicTo(pt(a[0], a[1]), c2, pt(a[4], a[5]))
		ps.ctrl = c2
	case 'S':
		c1 := reflect("CS")
		c2 := pt(a[0], a[1])
		b.CubicTo(c1, c2, pt(a[2], a[3]))
		ps.ctrl = c2
	case 'Q':
		c := pt(a[0], a[1])
		b.QuadTo(c, pt(a[2], a[3]))
		ps.ctrl = c
	case 'T':
		c := reflect("QT")
		b.QuadTo(c, pt(a[0], a[1]))
		ps.ctrl = c
	case 'A':
		ps.arc(cur, a[0], a[1], a[2], a[3] == 1, a[4] == 1, pt(a[5], a[6]))
	case 'Z':
		b.ClosePath()
	}
	ps.prevCmd = cmd
}

func (ps *pathScanner) arc(p0 Point, rx, ry, rot float64, largeArc, sweep bool, p1 Point) {
	arc, ok := NewSVGArc(p0, rx, ry, rot, largeArc, sweep, p1)
	if !ok {
		if p0 != p1 {
			ps.b.LineTo(p1)
		}
		return
	}
	var last CubicBez
	have := false
	for c := range arc.Cubics(ps.arcTol) {
		if have {
			ps.b.CubicTo(last.P1, last.P2, last.P3)
		}
		last, have = c, true
	}
	if have {
		// The approximation's end point is subject to rounding; the path
		// must continue from the exact end point.
		ps.b.CubicTo(last.P1, last.P2, p1)
	}
}
