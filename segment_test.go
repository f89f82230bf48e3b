package pathops

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSegmentEnds(t *testing.T) {
	tests := []struct {
		seg        Segment
		start, end Point
	}{
		{Line{Pt(1, 2), Pt(3, 4)}.Seg(), Pt(1, 2), Pt(3, 4)},
		{QuadBez{Pt(1, 2), Pt(3, 4), Pt(5, 6)}.Seg(), Pt(1, 2), Pt(5, 6)},
		{CubicBez{Pt(1, 2), Pt(3, 4), Pt(5, 6), Pt(7, 8)}.Seg(), Pt(1, 2), Pt(7, 8)},
	}
	for _, tt := range tests {
		if got := tt.seg.Start(); got != tt.start {
			t.Errorf("%v: got start %v, want %v", tt.seg.Kind, got, tt.start)
		}
		if got := tt.seg.End(); got != tt.end {
			t.Errorf("%v: got end %v, want %v", tt.seg.Kind, got, tt.end)
		}
		rev := tt.seg.Reverse()
		if rev.Start() != tt.end || rev.End() != tt.start {
			t.Errorf("%v: reversed segment runs from %v to %v", tt.seg.Kind, rev.Start(), rev.End())
		}
		for _, ts := range []float64{0, 0.3, 0.5, 1} {
			assertNear(t, tt.seg.Eval(ts), rev.Eval(1-ts), 1e-12)
		}
		if got := tt.seg.Subsegment(0, 1); got != tt.seg {
			t.Errorf("%v: full subsegment differs: %v", tt.seg.Kind, got)
		}
		moved := tt.seg.withEndpoints(Pt(0, 0), Pt(10, 10))
		if moved.Start() != Pt(0, 0) || moved.End() != Pt(10, 10) {
			t.Errorf("%v: withEndpoints gave %v", tt.seg.Kind, moved)
		}
	}
}

func TestSegmentKindString(t *testing.T) {
	diff(t, "line", LineKind.String())
	diff(t, "quad", QuadKind.String())
	diff(t, "cubic", CubicKind.String())
	diff(t, "SegmentKind(9)", SegmentKind(9).String())
}

func TestSegmentCubic(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(1, 2), Pt(3, 0)}
	c := q.Seg().Cubic()
	for _, ts := range []float64{0, 0.25, 0.5, 0.9, 1} {
		assertNear(t, q.Eval(ts), c.Eval(ts), 1e-12)
	}
	l := Line{Pt(0, 0), Pt(4, 2)}
	c = l.Seg().Cubic()
	for _, ts := range []float64{0, 1} {
		assertNear(t, l.Eval(ts), c.Eval(ts), 1e-12)
	}
}

func TestSegmentIsDegenerate(t *testing.T) {
	tests := []struct {
		seg  Segment
		want bool
	}{
		{Line{Pt(0, 0), Pt(0, 0)}.Seg(), true},
		{Line{Pt(0, 0), Pt(1e-9, 0)}.Seg(), true},
		{Line{Pt(0, 0), Pt(1e-3, 0)}.Seg(), false},
		// Returns to its start, but the control point is far away.
		{QuadBez{Pt(0, 0), Pt(10, 10), Pt(0, 0)}.Seg(), false},
		{CubicBez{Pt(5, 5), Pt(5, 5), Pt(5, 5 + 1e-8), Pt(5, 5)}.Seg(), true},
	}
	for _, tt := range tests {
		if got := tt.seg.isDegenerate(1e-6); got != tt.want {
			t.Errorf("%v: got %t, want %t", tt.seg, got, tt.want)
		}
	}
}

func TestSegmentWinding(t *testing.T) {
	// A square with corners (0, 0) and (10, 10), with positive area.
	square := []Segment{
		Line{Pt(0, 0), Pt(10, 0)}.Seg(),
		Line{Pt(10, 0), Pt(10, 10)}.Seg(),
		Line{Pt(10, 10), Pt(0, 10)}.Seg(),
		Line{Pt(0, 10), Pt(0, 0)}.Seg(),
	}
	winding := func(segs []Segment, pt Point) int {
		var w int
		for _, seg := range segs {
			w += seg.Winding(pt)
		}
		return w
	}
	tests := []struct {
		pt   Point
		want int
	}{
		{Pt(5, 5), 1},
		{Pt(-5, 5), 0},
		{Pt(15, 5), 0},
		{Pt(5, -5), 0},
		{Pt(5, 15), 0},
		// On the horizontal line through a vertex.
		{Pt(5, 0), 1},
		{Pt(15, 0), 0},
	}
	for _, tt := range tests {
		if got := winding(square, tt.pt); got != tt.want {
			t.Errorf("winding at %v: got %d, want %d", tt.pt, got, tt.want)
		}
	}

	// A circle-like shape made of two curves.
	lens := []Segment{
		CubicBez{Pt(0, 0), Pt(0, -10), Pt(10, -10), Pt(10, 0)}.Seg(),
		CubicBez{Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(0, 0)}.Seg(),
	}
	for _, tt := range []struct {
		pt   Point
		want int
	}{
		{Pt(5, 0), 1},
		{Pt(5, 7), 1},
		{Pt(5, 7.6), 0},
		{Pt(-1, 0), 0},
		{Pt(0.1, 3), 0},
	} {
		if got := winding(lens, tt.pt); got != tt.want {
			t.Errorf("winding at %v: got %d, want %d", tt.pt, got, tt.want)
		}
	}
}

func TestSegmentSolveY(t *testing.T) {
	// y = x^2 on [0, 1], monotonic in y.
	seg := QuadBez{Pt(0, 0), Pt(0.5, 0), Pt(1, 1)}.Seg()
	for _, y := range []float64{0, 0.1, 0.25, 0.81, 1} {
		ts := seg.solveY(y)
		diff(t, y, seg.Eval(ts).Y, cmpopts.EquateApprox(0, 1e-12))
		diff(t, math.Sqrt(y), seg.Eval(ts).X, cmpopts.EquateApprox(0, 1e-9))
	}
}

func TestSegmentNearestLine(t *testing.T) {
	seg := Line{Pt(0, 0), Pt(0, 10)}.Seg()
	d2, ts := seg.Nearest(Pt(3, 4))
	diff(t, 9.0, d2)
	diff(t, 0.4, ts, cmpopts.EquateApprox(0, 1e-15))
}
