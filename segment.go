package pathops

import (
	"fmt"
	"math"
)

type SegmentKind int

const (
	// A line segment.
	LineKind SegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
)

func (k SegmentKind) String() string {
	switch k {
	case LineKind:
		return "line"
	case QuadKind:
		return "quad"
	case CubicKind:
		return "cubic"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Segment represents a segment of a path. This type acts as a tagged union
// representing all possible path segments ([Line], [QuadBez], and [CubicBez]).
type Segment struct {
	// We don't use an interface for Segment because the set of kinds is closed
	// and every stage of the pipeline switches over all of them. This also
	// avoids having to allocate for segments.

	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

// LineIntersection is an intersection of a [Line] and a [Segment].
type LineIntersection struct {
	// The 'time' that the intersection occurs, on the line.
	LineT float64
	// The 'time' that the intersection occurs, on the segment.
	SegmentT float64
}

// Line returns the line represented by this segment. This is only valid when Kind ==
// LineKind.
func (seg Segment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only valid when Kind ==
// QuadKind.
func (seg Segment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic converts seg to a cubic Bézier. This is valid for any Kind.
func (seg Segment) Cubic() CubicBez {
	switch seg.Kind {
	case LineKind:
		p0 := seg.P0
		p1 := seg.P1
		return CubicBez{p0, p0, p1, p1}
	case QuadKind:
		return seg.Quad().Raise()
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		return CubicBez{}
	}
}

func (seg Segment) Start() Point {
	return seg.P0
}

func (seg Segment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	case CubicKind:
		return seg.P3
	default:
		return Point{}
	}
}

// controlPoints returns the segment's points, including both end points.
func (seg Segment) controlPoints() ([4]Point, int) {
	switch seg.Kind {
	case LineKind:
		return [4]Point{seg.P0, seg.P1}, 2
	case QuadKind:
		return [4]Point{seg.P0, seg.P1, seg.P2}, 3
	case CubicKind:
		return [4]Point{seg.P0, seg.P1, seg.P2, seg.P3}, 4
	default:
		return [4]Point{}, 0
	}
}

// withEndpoints returns the segment with its end points replaced, leaving
// inner control points where they are.
func (seg Segment) withEndpoints(p0, p1 Point) Segment {
	seg.P0 = p0
	switch seg.Kind {
	case LineKind:
		seg.P1 = p1
	case QuadKind:
		seg.P2 = p1
	case CubicKind:
		seg.P3 = p1
	}
	return seg
}

func (seg Segment) IsInf() bool {
	pts, n := seg.controlPoints()
	for _, pt := range pts[:n] {
		if pt.IsInf() {
			return true
		}
	}
	return false
}

func (seg Segment) IsNaN() bool {
	pts, n := seg.controlPoints()
	for _, pt := range pts[:n] {
		if pt.IsNaN() {
			return true
		}
	}
	return false
}

func (seg Segment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		return Point{}
	}
}

// Deriv returns the first derivative at t.
func (seg Segment) Deriv(t float64) Vec2 {
	switch seg.Kind {
	case LineKind:
		return seg.P1.Sub(seg.P0)
	case QuadKind:
		return Vec2(seg.Quad().Differentiate().Eval(t))
	case CubicKind:
		return Vec2(seg.Cubic().Differentiate().Eval(t))
	default:
		return Vec2{}
	}
}

func (seg Segment) deriv2(t float64) Vec2 {
	switch seg.Kind {
	case QuadKind:
		d := seg.Quad().Differentiate()
		return d.P1.Sub(d.P0)
	case CubicKind:
		return Vec2(seg.Cubic().Differentiate().Differentiate().Eval(t))
	default:
		return Vec2{}
	}
}

func (seg Segment) Subsegment(start, end float64) Segment {
	if start == 0 && end == 1 {
		return seg
	}
	switch seg.Kind {
	case LineKind:
		return seg.Line().Subsegment(start, end).Seg()
	case QuadKind:
		return seg.Quad().Subsegment(start, end).Seg()
	case CubicKind:
		return seg.Cubic().Subsegment(start, end).Seg()
	default:
		return Segment{}
	}
}

func (seg Segment) Subdivide() (Segment, Segment) {
	return seg.Subsegment(0.0, 0.5), seg.Subsegment(0.5, 1.0)
}

// BoundingBox returns the tight bounding box of the segment.
func (seg Segment) BoundingBox() Rect {
	switch seg.Kind {
	case LineKind:
		return seg.Line().BoundingBox()
	case QuadKind:
		return seg.Quad().BoundingBox()
	case CubicKind:
		return seg.Cubic().BoundingBox()
	default:
		return Rect{}
	}
}

// ControlBox returns the bounding box of the segment's control points, which
// always encloses the segment.
func (seg Segment) ControlBox() Rect {
	pts, n := seg.controlPoints()
	r := NewRectFromPoints(pts[0], pts[0])
	for _, pt := range pts[1:n] {
		r = r.UnionPoint(pt)
	}
	return r
}

func (seg Segment) Extrema() ([MaxExtrema]float64, int) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Extrema()
	case QuadKind:
		return seg.Quad().Extrema()
	case CubicKind:
		return seg.Cubic().Extrema()
	default:
		return [MaxExtrema]float64{}, 0
	}
}

func (seg Segment) SignedArea() float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().SignedArea()
	case QuadKind:
		return seg.Quad().SignedArea()
	case CubicKind:
		return seg.Cubic().SignedArea()
	default:
		return 0
	}
}

// Tangents returns the tangent directions at the start and the end of the
// segment. Coincident control points are skipped over, so the result is only
// zero for segments that are a single point.
func (seg Segment) Tangents() (Vec2, Vec2) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Tangents()
	case QuadKind:
		return seg.Quad().Tangents()
	case CubicKind:
		return seg.Cubic().Tangents()
	default:
		return Vec2{}, Vec2{}
	}
}

// Reverse returns a new Segment describing the same path as this one, but with the
// points reversed.
func (seg Segment) Reverse() Segment {
	switch seg.Kind {
	case LineKind:
		seg.P0, seg.P1 = seg.P1, seg.P0
		return seg
	case QuadKind:
		seg.P0, seg.P2 = seg.P2, seg.P0
		return seg
	case CubicKind:
		seg.P0, seg.P1, seg.P2, seg.P3 = seg.P3, seg.P2, seg.P1, seg.P0
		return seg
	default:
		return Segment{}
	}
}

// IntersectLine intersects the segment with a line.
func (seg Segment) IntersectLine(line Line, slack float64) ([3]LineIntersection, int) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().IntersectLine(line, slack)
	case QuadKind:
		return seg.Quad().IntersectLine(line, slack)
	case CubicKind:
		return seg.Cubic().IntersectLine(line, slack)
	default:
		return [3]LineIntersection{}, 0
	}
}

// Nearest finds the point on the segment nearest to pt, returning the squared
// distance and the parameter.
//
// Curves are sampled and then refined with Newton's method on the derivative
// of the squared distance.
func (seg Segment) Nearest(pt Point) (distSq, t float64) {
	if seg.Kind == LineKind {
		return seg.Line().Nearest(pt)
	}
	const samples = 16
	best, bestT := pt.DistanceSquared(seg.P0), 0.0
	for i := 1; i <= samples; i++ {
		ti := float64(i) / samples
		if d := pt.DistanceSquared(seg.Eval(ti)); d < best {
			best, bestT = d, ti
		}
	}
	t = bestT
	for range 8 {
		diff := seg.Eval(t).Sub(pt)
		d1 := seg.Deriv(t)
		g := diff.Dot(d1)
		dg := d1.Dot(d1) + diff.Dot(seg.deriv2(t))
		if dg <= 0 {
			break
		}
		next := min(max(t-g/dg, 0), 1)
		if math.Abs(next-t) < 1e-15 {
			t = next
			break
		}
		t = next
	}
	if d := pt.DistanceSquared(seg.Eval(t)); d < best {
		best, bestT = d, t
	}
	return best, bestT
}

// isDegenerate reports whether all of the segment's points lie within tol of
// its start.
func (seg Segment) isDegenerate(tol float64) bool {
	pts, n := seg.controlPoints()
	tol2 := tol * tol
	for _, pt := range pts[1:n] {
		if pt.DistanceSquared(pts[0]) > tol2 {
			return false
		}
	}
	return true
}

// Winding computes the winding number contribution of a single segment.
//
// Cast a ray to the left and count intersections.
func (seg Segment) Winding(pt Point) int {
	if seg.Kind == LineKind {
		return seg.windingMonotone(pt)
	}
	exs, n := ExtremaRanges(seg)
	var w int
	for _, ex := range exs[:n] {
		w += seg.Subsegment(ex[0], ex[1]).windingMonotone(pt)
	}
	return w
}

// windingMonotone is Winding for segments that are monotonic in y.
//
// The half-open range [min y, max y) makes a ray through a shared end point
// count exactly once for two segments that continue in the same vertical
// direction, and zero or two times for a turning point.
func (seg Segment) windingMonotone(pt Point) int {
	start := seg.P0
	end := seg.End()
	var sign int
	if end.Y > start.Y {
		if pt.Y < start.Y || pt.Y >= end.Y {
			return 0
		}
		sign = -1
	} else if end.Y < start.Y {
		if pt.Y < end.Y || pt.Y >= start.Y {
			return 0
		}
		sign = 1
	} else {
		return 0
	}
	switch seg.Kind {
	case LineKind:
		if pt.X < min(start.X, end.X) {
			return 0
		}
		if pt.X >= max(start.X, end.X) {
			return sign
		}
		// line equation ax + by = c
		a := end.Y - start.Y
		b := start.X - end.X
		c := a*start.X + b*start.Y
		if (a*pt.X+b*pt.Y-c)*float64(sign) <= 0.0 {
			return sign
		} else {
			return 0
		}
	case QuadKind, CubicKind:
		cb := seg.ControlBox()
		if pt.X < cb.X0 {
			return 0
		}
		if pt.X >= cb.X1 {
			return sign
		}
		if pt.X >= seg.Eval(seg.solveY(pt.Y)).X {
			return sign
		}
		return 0
	default:
		return 0
	}
}

// solveY returns the parameter at which a y-monotonic segment reaches y.
func (seg Segment) solveY(y float64) float64 {
	y0 := seg.P0.Y
	y1 := seg.End().Y
	guess := (y - y0) / (y1 - y0)
	return polishRoot(func(t float64) (float64, float64) {
		return seg.Eval(t).Y - y, seg.Deriv(t).Y
	}, guess, 0, 1)
}
