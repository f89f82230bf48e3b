package pathops

import (
	"fmt"
	"math"
	"slices"
)

// piece is a part of an input segment that is monotonic in x and y.
type piece struct {
	seg Segment
	// src is the index of the input segment the piece was split from and
	// t0, t1 is the parameter range it covers on it.
	src    int
	t0, t1 float64
	bbox   Rect
	cuts   []cut
}

// cut is a point at which a piece has to be split.
type cut struct {
	t  float64
	pt Point
}

// srcParam maps a parameter on the piece to a parameter on its source.
// The end points map exactly, so that neighbouring pieces agree.
func (pc *piece) srcParam(t float64) float64 {
	switch t {
	case 0:
		return pc.t0
	case 1:
		return pc.t1
	default:
		return pc.t0 + (pc.t1-pc.t0)*t
	}
}

// intersector finds the points at which pieces meet and records them as
// cuts.
type intersector struct {
	pieces []piece
	// tol is the absolute spatial tolerance.
	tol      float64
	paramTol float64
	opts     *Options

	nCuts int
	// work counts subdivision steps across all curve pairs.
	work int
}

// splitMonotone splits the input segments into monotonic pieces, dropping
// degenerate ones.
func splitMonotone(srcs []Segment, tol float64, opts *Options) ([]piece, error) {
	var out []piece
	for i, seg := range srcs {
		if seg.isDegenerate(tol) {
			continue
		}
		if seg.Kind == LineKind {
			out = append(out, piece{seg: seg, src: i, t0: 0, t1: 1, bbox: seg.Line().BoundingBox()})
		} else {
			ex, n := seg.Extrema()
			t0 := 0.0
			add := func(t1 float64) {
				sub := seg.Subsegment(t0, t1)
				if !sub.isDegenerate(tol) {
					out = append(out, piece{
						seg:  sub,
						src:  i,
						t0:   t0,
						t1:   t1,
						bbox: NewRectFromPoints(sub.P0, sub.End()),
					})
				}
				t0 = t1
			}
			for _, t := range ex[:n] {
				if t-t0 <= opts.ParamTolerance || 1-t <= opts.ParamTolerance {
					continue
				}
				add(t)
			}
			add(1)
		}
		if len(out) > opts.MaxSegments {
			return nil, &GeometryError{
				Kind: TooComplex,
				Msg:  fmt.Sprintf("more than %d monotonic segments", opts.MaxSegments),
			}
		}
	}
	return out, nil
}

// run intersects all pairs of pieces whose bounding boxes overlap.
func (in *intersector) run() error {
	order := make([]int, len(in.pieces))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(i, j int) int {
		return cmpFloat(in.pieces[i].bbox.X0, in.pieces[j].bbox.X0)
	})

	// Sweep and prune along x.
	for oi, i := range order {
		bi := in.pieces[i].bbox.Inflate(in.tol, in.tol)
		for _, j := range order[oi+1:] {
			bj := in.pieces[j].bbox
			if bj.X0 > bi.X1 {
				break
			}
			if !bi.Overlaps(bj) {
				continue
			}
			a, b := min(i, j), max(i, j)
			if err := in.intersectPair(a, b); err != nil {
				return err
			}
		}
	}
	return nil
}

func (in *intersector) addCut(i int, t float64, pt Point) error {
	pc := &in.pieces[i]
	tol2 := in.tol * in.tol
	if pt.DistanceSquared(pc.seg.P0) <= tol2 || pt.DistanceSquared(pc.seg.End()) <= tol2 {
		// End points are always vertices.
		return nil
	}
	if t <= in.paramTol || t >= 1-in.paramTol {
		return nil
	}
	for _, c := range pc.cuts {
		if c.pt.DistanceSquared(pt) <= tol2 {
			// Found twice, for example by an end point check and by the
			// line intersection.
			return nil
		}
	}
	pc.cuts = append(pc.cuts, cut{t, pt})
	in.nCuts++
	if in.nCuts > in.opts.MaxIntersections {
		return &GeometryError{
			Kind: TooComplex,
			Msg:  fmt.Sprintf("more than %d intersections", in.opts.MaxIntersections),
		}
	}
	return nil
}

// endpointHit is an end point of one piece that lies on the other piece.
type endpointHit struct {
	// ta is the parameter of the point on the first piece of the pair.
	ta float64
	pt Point
}

func (in *intersector) intersectPair(ia, ib int) error {
	a := in.pieces[ia].seg
	b := in.pieces[ib].seg
	tol2 := in.tol * in.tol

	// End points lying on the other piece. This finds T junctions as well
	// as the ends of overlapping runs.
	var hits [4]endpointHit
	var nHits int
	addHit := func(h endpointHit) {
		for _, o := range hits[:nHits] {
			if o.pt.DistanceSquared(h.pt) <= tol2 {
				return
			}
		}
		hits[nHits] = h
		nHits++
	}
	for k, e := range [2]Point{a.P0, a.End()} {
		if d2, t := b.Nearest(e); d2 <= tol2 {
			if err := in.addCut(ib, t, e); err != nil {
				return err
			}
			addHit(endpointHit{float64(k), e})
		}
	}
	for _, e := range [2]Point{b.P0, b.End()} {
		if d2, t := a.Nearest(e); d2 <= tol2 {
			if err := in.addCut(ia, t, e); err != nil {
				return err
			}
			addHit(endpointHit{t, e})
		}
	}

	switch {
	case a.Kind == LineKind && b.Kind == LineKind:
		// Parallel lines report no intersection; collinear runs are fully
		// described by the end point hits.
		xs, n := a.Line().IntersectLine(b.Line(), 0)
		for _, x := range xs[:n] {
			pt := a.Eval(x.SegmentT)
			if err := in.addCut(ia, x.SegmentT, pt); err != nil {
				return err
			}
			if err := in.addCut(ib, x.LineT, pt); err != nil {
				return err
			}
		}
		return nil
	case in.overlapping(a, b, hits[:nHits]):
		return nil
	case a.Kind == LineKind:
		return in.lineCurve(ia, ib)
	case b.Kind == LineKind:
		return in.lineCurve(ib, ia)
	default:
		return in.curveCurve(ia, ib)
	}
}

// overlapping reports whether a and b run along each other between the end
// point hits.
func (in *intersector) overlapping(a, b Segment, hits []endpointHit) bool {
	if len(hits) < 2 {
		return false
	}
	lo, hi := hits[0].ta, hits[0].ta
	for _, h := range hits[1:] {
		lo = min(lo, h.ta)
		hi = max(hi, h.ta)
	}
	if hi-lo <= in.paramTol {
		return false
	}
	const samples = 5
	lim := 4 * in.tol * in.tol
	for k := 1; k <= samples; k++ {
		t := lo + (hi-lo)*float64(k)/(samples+1)
		if d2, _ := b.Nearest(a.Eval(t)); d2 > lim {
			return false
		}
	}
	return true
}

func (in *intersector) lineCurve(il, ic int) error {
	l := in.pieces[il].seg.Line()
	c := in.pieces[ic].seg
	xs, n := c.IntersectLine(l, in.paramTol)
	for _, x := range xs[:n] {
		pt := c.Eval(x.SegmentT)
		if err := in.addCut(ic, x.SegmentT, pt); err != nil {
			return err
		}
		if err := in.addCut(il, x.LineT, pt); err != nil {
			return err
		}
	}
	return nil
}

// span is a pair of parameter ranges in the curve/curve work stack.
type span struct {
	a0, a1 float64
	b0, b1 float64
	depth  int
}

// maxDepth bounds the subdivision of a single span. 2⁻⁵² is below the
// resolution of float64 parameters.
const maxDepth = 52

// curveCurve intersects two curves by de Casteljau subdivision. Pieces are
// monotonic, so the end points of a sub-range bound it.
func (in *intersector) curveCurve(ia, ib int) error {
	a := in.pieces[ia].seg
	b := in.pieces[ib].seg
	box := func(seg Segment, t0, t1 float64) Rect {
		return NewRectFromPoints(seg.Eval(t0), seg.Eval(t1))
	}

	var leaves []span
	stack := []span{{0, 1, 0, 1, 0}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		in.work++
		if in.work > in.opts.MaxSubdivisions {
			return &GeometryError{
				Kind: TooComplex,
				Msg:  fmt.Sprintf("more than %d subdivisions", in.opts.MaxSubdivisions),
			}
		}

		ba := box(a, s.a0, s.a1)
		bb := box(b, s.b0, s.b1)
		if !ba.Inflate(in.tol, in.tol).Overlaps(bb) {
			continue
		}
		splitA := ba.MaxSide() > in.tol
		splitB := bb.MaxSide() > in.tol
		if (!splitA && !splitB) || s.depth >= maxDepth {
			leaves = append(leaves, s)
			continue
		}
		am, bm := 0.5*(s.a0+s.a1), 0.5*(s.b0+s.b1)
		d := s.depth + 1
		switch {
		case splitA && splitB:
			stack = append(stack,
				span{s.a0, am, s.b0, bm, d},
				span{s.a0, am, bm, s.b1, d},
				span{am, s.a1, s.b0, bm, d},
				span{am, s.a1, bm, s.b1, d})
		case splitA:
			stack = append(stack,
				span{s.a0, am, s.b0, s.b1, d},
				span{am, s.a1, s.b0, s.b1, d})
		default:
			stack = append(stack,
				span{s.a0, s.a1, s.b0, bm, d},
				span{s.a0, s.a1, bm, s.b1, d})
		}
	}

	for _, cl := range clusterSpans(leaves) {
		best := cl[0]
		bestD := math.Inf(1)
		for _, s := range cl {
			ta, tb := 0.5*(s.a0+s.a1), 0.5*(s.b0+s.b1)
			if d := a.Eval(ta).DistanceSquared(b.Eval(tb)); d < bestD {
				best, bestD = s, d
			}
		}
		ta, tb := polishIntersection(a, b, 0.5*(best.a0+best.a1), 0.5*(best.b0+best.b1))
		pa, pb := a.Eval(ta), b.Eval(tb)
		if pa.DistanceSquared(pb) > 4*in.tol*in.tol {
			continue
		}
		pt := pa.Midpoint(pb)
		if err := in.addCut(ia, ta, pt); err != nil {
			return err
		}
		if err := in.addCut(ib, tb, pt); err != nil {
			return err
		}
	}
	return nil
}

// clusterSpans groups leaves whose parameter ranges touch on both curves.
// Each group is one intersection.
func clusterSpans(leaves []span) [][]span {
	if len(leaves) == 0 {
		return nil
	}
	slices.SortFunc(leaves, func(x, y span) int {
		if c := cmpFloat(x.a0, y.a0); c != 0 {
			return c
		}
		return cmpFloat(x.b0, y.b0)
	})

	parent := make([]int, len(leaves))
	for i := range parent {
		parent[i] = i
	}
	find := func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	for i, x := range leaves {
		for j := i + 1; j < len(leaves); j++ {
			y := leaves[j]
			if y.a0 > x.a1 {
				break
			}
			if y.b0 <= x.b1 && x.b0 <= y.b1 {
				parent[find(j)] = find(i)
			}
		}
	}

	groups := map[int]int{}
	var out [][]span
	for i, s := range leaves {
		r := find(i)
		g, ok := groups[r]
		if !ok {
			g = len(out)
			groups[r] = g
			out = append(out, nil)
		}
		out[g] = append(out[g], s)
	}
	return out
}

// polishIntersection refines an approximate intersection of a and b with
// Newton's method on a(s) - b(u) = 0.
func polishIntersection(a, b Segment, s, u float64) (float64, float64) {
	bestS, bestU := s, u
	bestD := a.Eval(s).DistanceSquared(b.Eval(u))
	for range 8 {
		f := a.Eval(s).Sub(b.Eval(u))
		if f.Hypot2() == 0 {
			break
		}
		da := a.Deriv(s)
		db := b.Deriv(u)
		det := db.X*da.Y - da.X*db.Y
		if math.Abs(det) <= 1e-12*da.Hypot()*db.Hypot() {
			// Tangent curves; Newton doesn't converge quadratically and the
			// leaf center is as good as it gets.
			break
		}
		ds := (f.X*db.Y - db.X*f.Y) / det
		du := (da.Y*f.X - da.X*f.Y) / det
		s = min(max(s+ds, 0), 1)
		u = min(max(u+du, 0), 1)
		if d := a.Eval(s).DistanceSquared(b.Eval(u)); d < bestD {
			bestS, bestU, bestD = s, u, d
		}
	}
	return bestS, bestU
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
