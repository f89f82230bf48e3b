package pathops

// classify computes the winding numbers on both sides of every edge and
// marks the edges that separate inside from outside under rule.
//
// The winding number on the left is measured at a point offset from the
// edge's midpoint by a quarter of the tolerance. The winding number on the
// right follows from the edge's weight: crossing the edge from left to right
// changes the winding number by exactly that amount.
func (arr *arrangement) classify(rule FillRule) int {
	var n int
	for i := range arr.edges {
		e := &arr.edges[i]
		if e.weight == 0 {
			// Input segments that cancel out, such as a segment and its
			// reverse. Both sides have the same winding number.
			e.boundary = false
			continue
		}
		q := sideSample(e.seg, arr.tol/4)
		e.windLeft = arr.winding(q)
		e.boundary = rule.Inside(e.windLeft) != rule.Inside(e.windRight())
		if e.boundary {
			n++
		}
	}
	return n
}

// sideSample returns a point at distance d to the left of seg's midpoint.
func sideSample(seg Segment, d float64) Point {
	m := seg.Eval(0.5)
	dir := seg.Deriv(0.5)
	if dir.Hypot2() == 0 {
		dir = seg.End().Sub(seg.P0)
	}
	return m.Translate(dir.Perp().Normalize().Mul(d))
}

// winding returns the winding number of pt with respect to all edges.
func (arr *arrangement) winding(pt Point) int {
	var w int
	for i := range arr.edges {
		e := &arr.edges[i]
		if e.weight == 0 {
			continue
		}
		bb := e.seg.ControlBox()
		if pt.Y < bb.Y0 || pt.Y > bb.Y1 || pt.X < bb.X0 {
			continue
		}
		w += e.weight * e.seg.windingMonotone(pt)
	}
	return w
}
