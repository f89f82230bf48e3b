package pathops

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// FillRule decides which regions of the plane a path covers.
type FillRule int

const (
	// Winding (also known as nonzero) covers points with a non-zero winding
	// number.
	Winding FillRule = iota
	// EvenOdd covers points with an odd winding number.
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case Winding:
		return "winding"
	case EvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("FillRule(%d)", int(r))
	}
}

// ParseFillRule parses the names used by SVG's fill-rule property as well as
// the names returned by [FillRule.String].
func ParseFillRule(s string) (FillRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nonzero", "winding":
		return Winding, nil
	case "evenodd":
		return EvenOdd, nil
	default:
		return 0, fmt.Errorf("unknown fill rule %q", s)
	}
}

// Inside reports whether a point with winding number w is covered.
func (r FillRule) Inside(w int) bool {
	switch r {
	case Winding:
		return w != 0
	case EvenOdd:
		return w%2 != 0
	default:
		panic(fmt.Sprintf("unhandled case %d", int(r)))
	}
}

// Contour is a connected sequence of segments. The end of each segment is the
// start of the next.
type Contour struct {
	Segments []Segment
	// Closed reports whether the contour was explicitly closed. The last
	// segment of a closed contour ends at the start of the first.
	Closed bool
}

func (c Contour) Start() Point {
	if len(c.Segments) == 0 {
		return Point{}
	}
	return c.Segments[0].P0
}

func (c Contour) End() Point {
	if len(c.Segments) == 0 {
		return Point{}
	}
	return c.Segments[len(c.Segments)-1].End()
}

// filled returns the contour's segments as they are filled: open contours are
// implicitly closed with a straight line.
func (c Contour) filled() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for _, seg := range c.Segments {
			if !yield(seg) {
				return
			}
		}
		if start, end := c.Start(), c.End(); len(c.Segments) > 0 && start != end {
			yield(Line{end, start}.Seg())
		}
	}
}

// SignedArea returns the area enclosed by the contour, positive if the
// enclosed region is to the left of its segments. Open contours are treated
// as closed.
func (c Contour) SignedArea() float64 {
	var area float64
	for seg := range c.filled() {
		area += seg.SignedArea()
	}
	return area
}

// Winding returns the winding number of pt with respect to the contour.
func (c Contour) Winding(pt Point) int {
	var w int
	for seg := range c.filled() {
		w += seg.Winding(pt)
	}
	return w
}

func (c Contour) clone() Contour {
	return Contour{Segments: slices.Clone(c.Segments), Closed: c.Closed}
}

// Path is an immutable sequence of contours plus a fill rule.
type Path struct {
	contours []Contour
	rule     FillRule
}

// NewPath returns a path made of copies of the given contours. Contours
// without segments are dropped.
func NewPath(rule FillRule, contours ...Contour) *Path {
	p := &Path{rule: rule}
	for _, c := range contours {
		if len(c.Segments) > 0 {
			p.contours = append(p.contours, c.clone())
		}
	}
	return p
}

// FillRule returns the path's fill rule.
func (p *Path) FillRule() FillRule { return p.rule }

// WithFillRule returns a copy of p that uses rule. p is not modified.
func (p *Path) WithFillRule(rule FillRule) *Path {
	out := NewPath(rule, p.contours...)
	return out
}

// Contours returns a copy of the path's contours.
func (p *Path) Contours() []Contour {
	out := make([]Contour, len(p.contours))
	for i, c := range p.contours {
		out[i] = c.clone()
	}
	return out
}

// Len returns the number of contours.
func (p *Path) Len() int { return len(p.contours) }

// IsEmpty reports whether the path has no contours.
func (p *Path) IsEmpty() bool { return len(p.contours) == 0 }

// Segments returns all segments of all contours, in order.
func (p *Path) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for _, c := range p.contours {
			for _, seg := range c.Segments {
				if !yield(seg) {
					return
				}
			}
		}
	}
}

// BoundingBox returns the tight bounding box of the path. It returns the zero
// Rect for empty paths.
func (p *Path) BoundingBox() Rect {
	var r Rect
	first := true
	for seg := range p.Segments() {
		bb := seg.BoundingBox()
		if first {
			r = bb
			first = false
		} else {
			r = r.Union(bb)
		}
	}
	return r
}

// Winding returns the winding number of pt with respect to the whole path.
func (p *Path) Winding(pt Point) int {
	var w int
	for _, c := range p.contours {
		w += c.Winding(pt)
	}
	return w
}

// Contains reports whether pt is covered by the path under its fill rule.
func (p *Path) Contains(pt Point) bool {
	return p.rule.Inside(p.Winding(pt))
}

// String returns the path as SVG path data with default options.
func (p *Path) String() string {
	return p.SVG()
}

// PathBuilder builds a [Path] from drawing commands. The zero value is ready
// to use and builds a path with the [Winding] fill rule.
type PathBuilder struct {
	Rule FillRule

	contours []Contour
	cur      []Segment
	start    Point
	pt       Point
	// hasPoint is set once there is a current point.
	hasPoint bool
}

// CurrentPoint returns the current point, if any.
func (b *PathBuilder) CurrentPoint() (Point, bool) {
	return b.pt, b.hasPoint
}

// MoveTo starts a new contour at pt.
func (b *PathBuilder) MoveTo(pt Point) {
	b.flush(false)
	b.start = pt
	b.pt = pt
	b.hasPoint = true
}

// LineTo draws a line from the current point to pt. Without a current point,
// it acts like MoveTo.
func (b *PathBuilder) LineTo(pt Point) {
	if !b.hasPoint {
		b.MoveTo(pt)
		return
	}
	b.push(Line{b.pt, pt}.Seg())
}

// QuadTo draws a quadratic Bézier from the current point.
func (b *PathBuilder) QuadTo(p1, p2 Point) {
	if !b.hasPoint {
		b.MoveTo(p1)
	}
	b.push(QuadBez{b.pt, p1, p2}.Seg())
}

// CubicTo draws a cubic Bézier from the current point.
func (b *PathBuilder) CubicTo(p1, p2, p3 Point) {
	if !b.hasPoint {
		b.MoveTo(p1)
	}
	b.push(CubicBez{b.pt, p1, p2, p3}.Seg())
}

// ClosePath closes the current contour with a straight line back to its
// start. The start becomes the current point, so drawing may continue with a
// new contour without an intervening MoveTo.
func (b *PathBuilder) ClosePath() {
	if !b.hasPoint {
		return
	}
	if b.pt != b.start {
		b.push(Line{b.pt, b.start}.Seg())
	}
	b.flush(true)
	b.pt = b.start
}

// Path returns the path built so far. The builder may be reused.
func (b *PathBuilder) Path() *Path {
	contours := slices.Clone(b.contours)
	if len(b.cur) > 0 {
		contours = append(contours, Contour{Segments: b.cur})
	}
	return NewPath(b.Rule, contours...)
}

func (b *PathBuilder) push(seg Segment) {
	b.cur = append(b.cur, seg)
	b.pt = seg.End()
}

func (b *PathBuilder) flush(closed bool) {
	if len(b.cur) > 0 {
		b.contours = append(b.contours, Contour{Segments: b.cur, Closed: closed})
	}
	b.cur = nil
}
