package pathops

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewSVGArc(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	tests := []struct {
		name            string
		largeArc, sweep bool
		center          Point
		sweepAngle      float64
	}{
		// Both circles of radius 10 through (0, 0) and (20, 0) coincide, so
		// the flags only pick the direction.
		{"small ccw", false, false, Pt(10, 0), -math.Pi},
		{"small cw", false, true, Pt(10, 0), math.Pi},
		{"large ccw", true, false, Pt(10, 0), -math.Pi},
		{"large cw", true, true, Pt(10, 0), math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := NewSVGArc(Pt(0, 0), 10, 10, 0, tt.largeArc, tt.sweep, Pt(20, 0))
			if !ok {
				t.Fatal("arc unexpectedly degenerate")
			}
			assertNear(t, a.Center, tt.center, 1e-9)
			diff(t, Vec(10, 10), a.Radii, approx)
			diff(t, tt.sweepAngle, a.SweepAngle, approx)
		})
	}
}

func TestNewSVGArcQuarter(t *testing.T) {
	// Quarter circles from (10, 0) to (0, 10).
	small, ok := NewSVGArc(Pt(10, 0), 10, 10, 0, false, true, Pt(0, 10))
	if !ok {
		t.Fatal("arc unexpectedly degenerate")
	}
	assertNear(t, small.Center, Pt(0, 0), 1e-9)
	diff(t, math.Pi/2, small.SweepAngle, cmpopts.EquateApprox(0, 1e-12))

	large, ok := NewSVGArc(Pt(10, 0), 10, 10, 0, true, true, Pt(0, 10))
	if !ok {
		t.Fatal("arc unexpectedly degenerate")
	}
	assertNear(t, large.Center, Pt(10, 10), 1e-9)
	diff(t, 3*math.Pi/2, large.SweepAngle, cmpopts.EquateApprox(0, 1e-12))
}

func TestNewSVGArcScalesRadii(t *testing.T) {
	a, ok := NewSVGArc(Pt(0, 0), 1, 1, 0, false, true, Pt(20, 0))
	if !ok {
		t.Fatal("arc unexpectedly degenerate")
	}
	diff(t, Vec(10, 10), a.Radii, cmpopts.EquateApprox(0, 1e-12))
	assertNear(t, a.Center, Pt(10, 0), 1e-9)
}

func TestNewSVGArcDegenerate(t *testing.T) {
	if _, ok := NewSVGArc(Pt(5, 5), 10, 10, 0, false, false, Pt(5, 5)); ok {
		t.Error("arc with coincident end points should be degenerate")
	}
	if _, ok := NewSVGArc(Pt(0, 0), 0, 10, 0, false, false, Pt(5, 5)); ok {
		t.Error("arc with zero radius should be degenerate")
	}
	if _, ok := NewSVGArc(Pt(0, 0), 10, 0, 0, false, false, Pt(5, 5)); ok {
		t.Error("arc with zero radius should be degenerate")
	}
}

func TestArcCubics(t *testing.T) {
	const tolerance = 0.01
	p0, p1 := Pt(10, 0), Pt(-10, 0)
	a, ok := NewSVGArc(p0, 10, 10, 0, false, true, p1)
	if !ok {
		t.Fatal("arc unexpectedly degenerate")
	}
	var cubics []CubicBez
	for c := range a.Cubics(tolerance) {
		cubics = append(cubics, c)
	}
	if len(cubics) < 2 {
		t.Fatalf("got %d cubics, want at least 2", len(cubics))
	}
	assertNear(t, cubics[0].P0, p0, 1e-9)
	assertNear(t, cubics[len(cubics)-1].P3, p1, 1e-9)
	for i, c := range cubics {
		if i > 0 && c.P0 != cubics[i-1].P3 {
			t.Errorf("cubic %d doesn't start where cubic %d ends", i, i-1)
		}
		for _, ts := range []float64{0.25, 0.5, 0.75} {
			r := c.Eval(ts).Distance(Pt(0, 0))
			if math.Abs(r-10) > tolerance {
				t.Errorf("cubic %d at %g is %g away from the center", i, ts, r)
			}
		}
		// Sweeping clockwise from (10, 0) through positive y.
		if c.Eval(0.5).Y <= 0 {
			t.Errorf("cubic %d is on the wrong side: %v", i, c.Eval(0.5))
		}
	}
}

func TestArcCubicsStop(t *testing.T) {
	a, _ := NewSVGArc(Pt(10, 0), 10, 10, 0, true, true, Pt(0, -10))
	var n int
	for range a.Cubics(1e-6) {
		n++
		break
	}
	diff(t, 1, n)
}
