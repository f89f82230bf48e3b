package pathops

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	want := math.Sqrt(2.0)
	if d := math.Abs(l.Length() - want); d > 1e-12 {
		t.Errorf("%g > %g", d, 1e-12)
	}
}

func TestLineIsInf(t *testing.T) {
	if (Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}).Seg().IsInf() {
		t.Error("line is infinite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(math.Inf(1), 1.0)}).Seg().IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(0.0, math.Inf(1))}).Seg().IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}
}

func TestIntersectLine(t *testing.T) {
	hLine := Line{Pt(0.0, 0.0), Pt(100.0, 0.0)}
	vLine := Line{Pt(10.0, -10.0), Pt(10.0, 10.0)}
	xs, n := hLine.IntersectLine(vLine, 0)
	want := []LineIntersection{{0.5, 0.1}}
	diff(t, xs[:n], want, cmpopts.EquateApprox(0, 1e-7))

	vLine = Line{Pt(-10.0, -10.0), Pt(-10.0, 10.0)}
	if xs, n := hLine.IntersectLine(vLine, 0); n != 0 {
		t.Errorf("expected no intersections, got %v", xs[:n])
	}

	vLine = Line{Pt(10.0, 10.0), Pt(10.0, 20.0)}
	if xs, n := hLine.IntersectLine(vLine, 0); n != 0 {
		t.Errorf("expected no intersections, got %v", xs[:n])
	}
}

func TestIntersectLineSlack(t *testing.T) {
	hLine := Line{Pt(0.0, 0.0), Pt(100.0, 0.0)}
	// Misses the start of hLine by 1e-10 in parameter space.
	vLine := Line{Pt(-1e-8, -10.0), Pt(-1e-8, 10.0)}
	if xs, n := hLine.IntersectLine(vLine, 0); n != 0 {
		t.Errorf("expected no intersections, got %v", xs[:n])
	}
	xs, n := hLine.IntersectLine(vLine, 1e-9)
	want := []LineIntersection{{0.5, 0}}
	diff(t, xs[:n], want, cmpopts.EquateApprox(0, 1e-7))
}

func TestIntersectLineParallel(t *testing.T) {
	a := Line{Pt(0, 0), Pt(10, 0)}
	for _, b := range []Line{
		{Pt(0, 1), Pt(10, 1)},
		{Pt(5, 0), Pt(15, 0)}, // collinear
		{Pt(10, 0), Pt(0, 0)}, // reversed
	} {
		if xs, n := a.IntersectLine(b, 0); n != 0 {
			t.Errorf("%v and %v: expected no intersections, got %v", a, b, xs[:n])
		}
	}
}

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	tests := []struct {
		pt     Point
		distSq float64
		t      float64
	}{
		{Pt(5, 3), 9, 0.5},
		{Pt(-4, 3), 25, 0},
		{Pt(13, 4), 25, 1},
		{Pt(2.5, 0), 0, 0.25},
	}
	for _, tt := range tests {
		d, ts := l.Nearest(tt.pt)
		diff(t, [2]float64{tt.distSq, tt.t}, [2]float64{d, ts}, cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestLineDistanceToLine(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 10)}
	diff(t, math.Sqrt2, l.DistanceToLine(Pt(20, 22)), cmpopts.EquateApprox(0, 1e-12))
	diff(t, 5.0, Line{Pt(1, 1), Pt(1, 1)}.DistanceToLine(Pt(4, 5)))
}

func TestLineCrossingPoint(t *testing.T) {
	a := Line{Pt(0, 0), Pt(1, 1)}
	b := Line{Pt(10, 0), Pt(9, 1)}
	pt, ok := a.CrossingPoint(b)
	if !ok {
		t.Fatal("expected lines to cross")
	}
	assertNear(t, pt, Pt(5, 5), 1e-12)

	if _, ok := a.CrossingPoint(Line{Pt(0, 1), Pt(1, 2)}); ok {
		t.Error("parallel lines reported as crossing")
	}
}
