package pathops

import (
	"fmt"
	"math"
	"slices"
)

// dirEdge is a boundary edge oriented so that the filled region is on its
// left.
type dirEdge struct {
	edge     int
	reversed bool
	from, to int
	seg      Segment
	// src is the input segment the edge was cut from. ps and pe are the
	// parameters on it at the start and the end of the directed edge.
	src    int
	ps, pe float64
}

// reassemble stitches the boundary edges into closed contours. Contours are
// put in canonical order at prec decimal places. Slivers are dropped.
func (arr *arrangement) reassemble(srcs []Segment, rule FillRule, prec int) ([]Contour, error) {
	var des []dirEdge
	for i := range arr.edges {
		e := &arr.edges[i]
		if !e.boundary {
			continue
		}
		de := dirEdge{
			edge: i,
			from: e.v0,
			to:   e.v1,
			seg:  e.seg,
			src:  e.src,
			ps:   e.t0,
			pe:   e.t1,
		}
		if !rule.Inside(e.windLeft) {
			de.reversed = true
			de.from, de.to = de.to, de.from
			de.seg = de.seg.Reverse()
			de.ps, de.pe = de.pe, de.ps
		}
		des = append(des, de)
	}

	outgoing := make([][]int, len(arr.vertices))
	for i, de := range des {
		outgoing[de.from] = append(outgoing[de.from], i)
	}

	visited := make([]bool, len(des))
	var contours [][]dirEdge
	for first := range des {
		if visited[first] {
			continue
		}
		var chain []dirEdge
		cur := first
		startV := des[first].from
		for {
			visited[cur] = true
			chain = append(chain, des[cur])
			v := des[cur].to
			next := arr.nextEdge(des, outgoing[v], visited, cur, first, v == startV)
			if next == -1 {
				return nil, &GeometryError{
					Kind: UnclosedBoundary,
					Msg:  fmt.Sprintf("no continuation at %v", arr.vertices[v]),
				}
			}
			if next == first {
				break
			}
			cur = next
		}
		contours = append(contours, chain)
	}

	order := newPointOrder(prec)
	out := make([]Contour, 0, len(contours))
	for _, chain := range contours {
		chain = arr.mergeRuns(chain, srcs)
		segs := make([]Segment, len(chain))
		for i, de := range chain {
			segs[i] = de.seg
		}
		c := canonicalContour(segs, order)
		if isSliver(c, arr.tol) {
			continue
		}
		out = append(out, c)
	}
	slices.SortStableFunc(out, order.compareContours)
	return out, nil
}

// nextEdge picks the edge that continues a contour arriving at a vertex via
// edge in. It is the first candidate found by turning clockwise from the
// reversed incoming direction, which bounds the filled region on the left
// as tightly as possible. This splits contours that touch at a single point.
//
// The starting edge is a candidate if the contour is back at its start.
func (arr *arrangement) nextEdge(des []dirEdge, cands []int, visited []bool, in, first int, atStart bool) int {
	_, endTan := des[in].seg.Tangents()
	back := endTan.Negate()
	backChord := des[in].seg.P0.Sub(des[in].seg.End())

	best := -1
	var bestAngle, bestChordAngle float64
	for _, c := range cands {
		if visited[c] && !(atStart && c == first) {
			continue
		}
		startTan, _ := des[c].seg.Tangents()
		a := clockwiseAngle(back, startTan)
		ca := clockwiseAngle(backChord, des[c].seg.End().Sub(des[c].seg.P0))
		switch {
		case best == -1,
			a < bestAngle-angleEpsilon,
			math.Abs(a-bestAngle) <= angleEpsilon && ca < bestChordAngle:
			best, bestAngle, bestChordAngle = c, a, ca
		}
	}
	return best
}

const angleEpsilon = 1e-9

// clockwiseAngle returns the angle in [0, 2π) by which from has to be turned
// clockwise to point in the direction of to.
func clockwiseAngle(from, to Vec2) float64 {
	a := -math.Atan2(from.Cross(to), from.Dot(to))
	if a <= 0 {
		// A turn by zero degrees means going back the way we came, which is
		// the last option, not the first.
		a += 2 * math.Pi
	}
	return a
}

// mergeRuns joins consecutive edges that are pieces of the same input
// segment, as well as consecutive collinear lines.
func (arr *arrangement) mergeRuns(chain []dirEdge, srcs []Segment) []dirEdge {
	join := func(a, b dirEdge) (dirEdge, bool) {
		if a.src >= 0 && a.src == b.src && a.reversed == b.reversed && a.pe == b.ps {
			seg := srcs[a.src].Subsegment(min(a.ps, b.pe), max(a.ps, b.pe))
			if a.reversed {
				seg = seg.Reverse()
			}
			a.seg = seg.withEndpoints(arr.vertices[a.from], arr.vertices[b.to])
			a.to = b.to
			a.pe = b.pe
			return a, true
		}
		if a.seg.Kind == LineKind && b.seg.Kind == LineKind {
			da := a.seg.P1.Sub(a.seg.P0)
			db := b.seg.P1.Sub(b.seg.P0)
			l := Line{a.seg.P0, b.seg.P1}
			if da.Dot(db) > 0 && l.DistanceToLine(a.seg.P1) <= arr.tol {
				a.seg = l.Seg()
				a.to = b.to
				// The merged line no longer corresponds to one input
				// segment.
				a.src = -1
				return a, true
			}
		}
		return dirEdge{}, false
	}

	out := chain[:0:0]
	for _, de := range chain {
		if n := len(out); n > 0 {
			if m, ok := join(out[n-1], de); ok {
				out[n-1] = m
				continue
			}
		}
		out = append(out, de)
	}
	// Wrap around.
	for len(out) > 2 {
		m, ok := join(out[len(out)-1], out[0])
		if !ok {
			break
		}
		out[0] = m
		out = out[:len(out)-1]
	}
	return out
}

// isSliver reports whether c encloses no more area than a band of width tol
// along its boundary. Such contours are left over from snapping vertices
// and would not survive another round of simplification unchanged.
func isSliver(c Contour, tol float64) bool {
	var perimeter float64
	for _, seg := range c.Segments {
		pts, n := seg.controlPoints()
		for i := 1; i < n; i++ {
			perimeter += pts[i].Distance(pts[i-1])
		}
	}
	return math.Abs(c.SignedArea()) <= tol*perimeter
}

// pointOrder orders points by x, then by y, after rounding them to the
// number of decimal places that Serialize writes. Parsing serialized output
// thus doesn't change which point comes first. Exact coordinates break ties.
type pointOrder struct {
	scale float64
}

func newPointOrder(prec int) pointOrder {
	return pointOrder{scale: math.Pow(10, float64(prec))}
}

func (o pointOrder) compare(a, b Point) int {
	if c := cmpFloat(math.Round(a.X*o.scale), math.Round(b.X*o.scale)); c != 0 {
		return c
	}
	if c := cmpFloat(math.Round(a.Y*o.scale), math.Round(b.Y*o.scale)); c != 0 {
		return c
	}
	if c := cmpFloat(a.X, b.X); c != 0 {
		return c
	}
	return cmpFloat(a.Y, b.Y)
}

// canonicalContour returns a closed contour that starts at the smallest of
// the segments' start points.
func canonicalContour(segs []Segment, order pointOrder) Contour {
	start := 0
	for i, seg := range segs {
		if order.compare(seg.P0, segs[start].P0) < 0 {
			start = i
		}
	}
	rotated := make([]Segment, 0, len(segs))
	rotated = append(rotated, segs[start:]...)
	rotated = append(rotated, segs[:start]...)
	return Contour{Segments: rotated, Closed: true}
}

func (o pointOrder) compareContours(a, b Contour) int {
	if c := o.compare(a.Start(), b.Start()); c != 0 {
		return c
	}
	// Contours touching at their start point.
	if c := o.compare(a.Segments[0].End(), b.Segments[0].End()); c != 0 {
		return c
	}
	return len(a.Segments) - len(b.Segments)
}
