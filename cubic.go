package pathops

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

func (c CubicBez) BoundingBox() Rect {
	return boundingBox(c)
}

// Eval evaluates the curve in Bernstein form.
func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	b0 := mt * mt * mt
	b1 := 3 * mt * mt * t
	b2 := 3 * mt * t * t
	b3 := t * t * t
	return Point{
		X: b0*c.P0.X + b1*c.P1.X + b2*c.P2.X + b3*c.P3.X,
		Y: b0*c.P0.Y + b1*c.P1.Y + b2*c.P2.Y + b3*c.P3.Y,
	}
}

// Split splits the curve at t using de Casteljau's algorithm.
func (c CubicBez) Split(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	m := p012.Lerp(p123, t)
	return CubicBez{c.P0, p01, p012, m}, CubicBez{m, p123, p23, c.P3}
}

// Subdivide splits the curve into halves.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	return c.Split(0.5)
}

// blossom evaluates the polar form of the curve. It is symmetric in its
// arguments and blossom(t, t, t) == Eval(t).
func (c CubicBez) blossom(a, b, d float64) Point {
	p01 := c.P0.Lerp(c.P1, a)
	p12 := c.P1.Lerp(c.P2, a)
	p23 := c.P2.Lerp(c.P3, a)
	return p01.Lerp(p12, b).Lerp(p12.Lerp(p23, b), d)
}

// Subsegment returns the part of the curve between t0 and t1, reparametrized
// to [0, 1].
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	return CubicBez{
		c.blossom(t0, t0, t0),
		c.blossom(t0, t0, t1),
		c.blossom(t0, t1, t1),
		c.blossom(t1, t1, t1),
	}
}

// Differentiate returns the derivative, which is a quadratic Bézier in
// hodograph space.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// Extrema returns the interior parameters at which the curve is parallel to
// one of the axes, in ascending order.
func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	// The derivative, up to a factor of 3, in power basis.
	poly := func(a, b, c float64) [3]float64 {
		return [3]float64{a, 2 * (b - a), a - 2*b + c}
	}
	return interiorRoots(poly(d0.X, d1.X, d2.X), poly(d0.Y, d1.Y, d2.Y))
}

// SignedArea returns the area between the curve and the chord through the
// origin, by Green's theorem.
func (c CubicBez) SignedArea() float64 {
	v := c.P0.X*(6.0*c.P1.Y+3.0*c.P2.Y+c.P3.Y) +
		3.0*(c.P1.X*(-2.0*c.P0.Y+c.P2.Y+c.P3.Y)-c.P2.X*(c.P0.Y+c.P1.Y-2.0*c.P3.Y)) -
		c.P3.X*(c.P0.Y+3.0*c.P1.Y+6.0*c.P2.Y)
	return v * (1.0 / 20.0)
}

// Tangents returns the directions at the start and the end of the curve,
// skipping control points that coincide with the end points.
func (c CubicBez) Tangents() (Vec2, Vec2) {
	return leadingTangent(c.P0, c.P1, c.P2, c.P3), leadingTangent(c.P3, c.P2, c.P1, c.P0).Negate()
}

func (c CubicBez) Seg() Segment {
	return Segment{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}

// IntersectLine intersects c with a line. Parameters within slack of [0, 1]
// are clamped into the range.
func (c CubicBez) IntersectLine(line Line, slack float64) ([3]LineIntersection, int) {
	// The signed distance from the line is a cubic whose Bernstein
	// coefficients are the distances of the control points.
	e0 := line.signedDistance(c.P0)
	e1 := line.signedDistance(c.P1)
	e2 := line.signedDistance(c.P2)
	e3 := line.signedDistance(c.P3)
	ts, n := SolveCubic(e0, 3*(e1-e0), 3*(e2-2*e1+e0), e3-3*e2+3*e1-e0)
	return line.hits(ts[:n], slack, c.Eval)
}
