package pathops

import "math"

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance between pt and the line segment, and
// the parameter of the nearest point.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	if n := d.Hypot2(); n > 0 {
		t = min(max(d.Dot(pt.Sub(l.P0))/n, 0), 1)
	}
	switch t {
	case 0:
		return pt.DistanceSquared(l.P0), 0
	case 1:
		return pt.DistanceSquared(l.P1), 1
	default:
		return pt.DistanceSquared(l.Eval(t)), t
	}
}

// DistanceToLine returns the distance between pt and the infinite line through
// l.
func (l Line) DistanceToLine(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	n := d.Hypot()
	if n == 0 {
		return pt.Distance(l.P0)
	}
	return math.Abs(d.Cross(pt.Sub(l.P0))) / n
}

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

func (l Line) Subdivide() (Line, Line) {
	return l.Subsegment(0.0, 0.5), l.Subsegment(0.5, 1.0)
}

func (l Line) Extrema() ([MaxExtrema]float64, int) {
	return [MaxExtrema]float64{}, 0
}

func (l Line) SignedArea() float64 {
	return Vec2(l.P0).Cross(Vec2(l.P1)) * 0.5
}

func (l Line) Tangents() (Vec2, Vec2) {
	d := l.P1.Sub(l.P0)
	return d, d
}

func (l Line) Seg() Segment {
	return Segment{Kind: LineKind, P0: l.P0, P1: l.P1}
}

// IntersectLine intersects l with the probe line o. Both parameters of a
// reported intersection lie in [0, 1]; parameters within slack of the range
// are clamped into it.
func (l Line) IntersectLine(o Line, slack float64) ([3]LineIntersection, int) {
	const epsilon = 1e-12
	p0 := o.P0
	p1 := o.P1
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	ex := l.P1.X - l.P0.X
	ey := l.P1.Y - l.P0.Y
	det := dx*ey - dy*ex
	if math.Abs(det) <= epsilon*math.Hypot(dx, dy)*math.Hypot(ex, ey) {
		// Parallel or coincident; coincident runs are found by projecting
		// endpoints instead.
		return [3]LineIntersection{}, 0
	}
	// t = position on self
	t := (dx*(p0.Y-l.P0.Y) - dy*(p0.X-l.P0.X)) / det
	// u = position on probe line
	u := ((l.P0.X-p0.X)*ey - (l.P0.Y-p0.Y)*ex) / det
	t, ok1 := clampParam(t, slack)
	u, ok2 := clampParam(u, slack)
	if !ok1 || !ok2 {
		return [3]LineIntersection{}, 0
	}
	return [3]LineIntersection{{LineT: u, SegmentT: t}}, 1
}

// clampParam clamps t to [0, 1] if it lies within slack of that range.
func clampParam(t, slack float64) (float64, bool) {
	if t < -slack || t > 1+slack || math.IsNaN(t) {
		return 0, false
	}
	return min(max(t, 0), 1), true
}

// signedDistance returns the cross product of the line's direction and the
// vector from its start to pt. It is the distance of pt from the infinite
// line, scaled by the line's length, and positive to the left.
func (l Line) signedDistance(pt Point) float64 {
	return l.P1.Sub(l.P0).Cross(pt.Sub(l.P0))
}

// hits converts the parameters ts, at which a curve evaluated by eval meets
// the infinite line through l, into intersections with the line segment.
func (l Line) hits(ts []float64, slack float64, eval func(float64) Point) ([3]LineIntersection, int) {
	d := l.P1.Sub(l.P0)
	inv := 1 / d.Hypot2()
	var out [3]LineIntersection
	var n int
	for _, t := range ts {
		t, ok := clampParam(t, slack)
		if !ok {
			continue
		}
		u, ok := clampParam(eval(t).Sub(l.P0).Dot(d)*inv, slack)
		if !ok {
			continue
		}
		out[n] = LineIntersection{LineT: u, SegmentT: t}
		n++
	}
	return out, n
}

// leadingTangent returns the vector from p to the first of pts that is not
// too close to it, or to the last of pts.
func leadingTangent(p Point, pts ...Point) Vec2 {
	const epsilon = 1e-12
	var d Vec2
	for _, q := range pts {
		d = q.Sub(p)
		if d.Hypot2() > epsilon {
			break
		}
	}
	return d
}
