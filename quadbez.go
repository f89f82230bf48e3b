package pathops

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0, P1, P2 Point
}

func (q QuadBez) BoundingBox() Rect {
	return boundingBox(q)
}

// Raise returns the cubic Bézier that traces the same curve.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Lerp(q.P1, 2.0/3.0),
		q.P2.Lerp(q.P1, 2.0/3.0),
		q.P2,
	}
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1 - t
	b0 := mt * mt
	b1 := 2 * mt * t
	b2 := t * t
	return Point{
		X: b0*q.P0.X + b1*q.P1.X + b2*q.P2.X,
		Y: b0*q.P0.Y + b1*q.P1.Y + b2*q.P2.Y,
	}
}

// Split splits the curve at t using de Casteljau's algorithm.
func (q QuadBez) Split(t float64) (QuadBez, QuadBez) {
	p01 := q.P0.Lerp(q.P1, t)
	p12 := q.P1.Lerp(q.P2, t)
	m := p01.Lerp(p12, t)
	return QuadBez{q.P0, p01, m}, QuadBez{m, p12, q.P2}
}

// Subdivide splits the curve into halves.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	return q.Split(0.5)
}

func (q QuadBez) blossom(a, b float64) Point {
	return q.P0.Lerp(q.P1, a).Lerp(q.P1.Lerp(q.P2, a), b)
}

// Subsegment returns the part of the curve between t0 and t1, reparametrized
// to [0, 1].
func (q QuadBez) Subsegment(t0, t1 float64) QuadBez {
	return QuadBez{q.blossom(t0, t0), q.blossom(t0, t1), q.blossom(t1, t1)}
}

// Differentiate returns the derivative, which is a line in hodograph space.
func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

// Extrema returns the interior parameters at which the curve is parallel to
// one of the axes, in ascending order.
func (q QuadBez) Extrema() ([MaxExtrema]float64, int) {
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	return interiorRoots(
		[3]float64{d0.X, d1.X - d0.X, 0},
		[3]float64{d0.Y, d1.Y - d0.Y, 0},
	)
}

func (q QuadBez) SignedArea() float64 {
	return q.Raise().SignedArea()
}

// Tangents returns the directions at the start and the end of the curve.
func (q QuadBez) Tangents() (Vec2, Vec2) {
	return leadingTangent(q.P0, q.P1, q.P2), leadingTangent(q.P2, q.P1, q.P0).Negate()
}

func (q QuadBez) Seg() Segment {
	return Segment{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2}
}

// IntersectLine intersects q with a line. Parameters within slack of [0, 1]
// are clamped into the range.
func (q QuadBez) IntersectLine(line Line, slack float64) ([3]LineIntersection, int) {
	e0 := line.signedDistance(q.P0)
	e1 := line.signedDistance(q.P1)
	e2 := line.signedDistance(q.P2)
	ts, n := SolveQuadratic(e0, 2*(e1-e0), e0-2*e1+e2)
	return line.hits(ts[:n], slack, q.Eval)
}
