package pathops

import (
	"math"
	"slices"
)

// vertexIndex deduplicates points on a grid with a cell size of tol. Points
// within tol of an existing vertex map to that vertex; the first point
// inserted for a location wins.
type vertexIndex struct {
	tol   float64
	cells map[[2]int64][]int
	pts   []Point
}

func newVertexIndex(tol float64) *vertexIndex {
	return &vertexIndex{
		tol:   tol,
		cells: map[[2]int64][]int{},
	}
}

func (vi *vertexIndex) cell(pt Point) [2]int64 {
	return [2]int64{
		int64(math.Floor(pt.X / vi.tol)),
		int64(math.Floor(pt.Y / vi.tol)),
	}
}

// insert returns the vertex for pt, creating it if necessary.
func (vi *vertexIndex) insert(pt Point) int {
	c := vi.cell(pt)
	tol2 := vi.tol * vi.tol
	best, bestD := -1, math.Inf(1)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, v := range vi.cells[[2]int64{c[0] + dx, c[1] + dy}] {
				d := vi.pts[v].DistanceSquared(pt)
				if d <= tol2 && (d < bestD || d == bestD && v < best) {
					best, bestD = v, d
				}
			}
		}
	}
	if best != -1 {
		return best
	}
	v := len(vi.pts)
	vi.pts = append(vi.pts, pt)
	vi.cells[c] = append(vi.cells[c], v)
	return v
}

// edge is a sub-segment of the input between two vertices. No two edges of
// an arrangement cross at an interior point.
type edge struct {
	v0, v1 int
	seg    Segment
	// weight is the number of input segments running along the edge from
	// v0 to v1, minus the number running from v1 to v0.
	weight int

	// src is the input segment the edge was first cut from, and t0 and t1
	// are the parameters on it at v0 and v1.
	src    int
	t0, t1 float64

	// Filled in by the classifier.
	windLeft int
	boundary bool
}

// windRight returns the winding number on the right side of the edge.
func (e *edge) windRight() int {
	return e.windLeft - e.weight
}

// arrangement is a planar graph of vertices and edges. Edges refer to
// vertices by index.
type arrangement struct {
	vertices []Point
	edges    []edge
	tol      float64
	// byPair maps an unordered pair of vertices to the edges joining them.
	byPair map[[2]int][]int
}

// buildArrangement splits every piece at its cuts and collects the
// resulting sub-segments as edges.
func buildArrangement(pieces []piece, tol, paramTol float64) *arrangement {
	vi := newVertexIndex(tol)
	// End points first, so that their coordinates survive.
	for i := range pieces {
		vi.insert(pieces[i].seg.P0)
		vi.insert(pieces[i].seg.End())
	}

	arr := &arrangement{
		tol:    tol,
		byPair: map[[2]int][]int{},
	}
	var ts []cut
	for i := range pieces {
		pc := &pieces[i]
		ts = append(ts[:0], cut{0, pc.seg.P0})
		slices.SortStableFunc(pc.cuts, func(a, b cut) int { return cmpFloat(a.t, b.t) })
		for _, c := range pc.cuts {
			if c.t-ts[len(ts)-1].t <= paramTol {
				continue
			}
			ts = append(ts, c)
		}
		if len(ts) > 1 && 1-ts[len(ts)-1].t <= paramTol {
			ts = ts[:len(ts)-1]
		}
		ts = append(ts, cut{1, pc.seg.End()})

		prevV := vi.insert(ts[0].pt)
		for k := 1; k < len(ts); k++ {
			v := vi.insert(ts[k].pt)
			if v == prevV {
				continue
			}
			// ts[k-1] maps to prevV, even if it was skipped.
			t0 := ts[k-1].t
			t1 := ts[k].t
			seg := pc.seg.Subsegment(t0, t1)
			arr.addEdge(edge{
				v0:     prevV,
				v1:     v,
				seg:    seg,
				weight: 1,
				src:    pc.src,
				t0:     pc.srcParam(t0),
				t1:     pc.srcParam(t1),
			})
			prevV = v
		}
	}
	arr.vertices = vi.pts
	for i := range arr.edges {
		e := &arr.edges[i]
		e.seg = e.seg.withEndpoints(arr.vertices[e.v0], arr.vertices[e.v1])
	}
	return arr
}

// addEdge adds e, merging it into an existing edge with the same end points
// and the same geometry.
func (arr *arrangement) addEdge(e edge) {
	key := [2]int{min(e.v0, e.v1), max(e.v0, e.v1)}
	probe := e.seg.Eval(0.5)
	for _, idx := range arr.byPair[key] {
		o := &arr.edges[idx]
		if d2, _ := o.seg.Nearest(probe); d2 > 4*arr.tol*arr.tol {
			continue
		}
		if o.v0 == e.v0 {
			o.weight += e.weight
		} else {
			o.weight -= e.weight
		}
		return
	}
	arr.byPair[key] = append(arr.byPair[key], len(arr.edges))
	arr.edges = append(arr.edges, e)
}
