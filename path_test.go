package pathops

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillRule(t *testing.T) {
	tests := []struct {
		in   string
		want FillRule
	}{
		{"nonzero", Winding},
		{"winding", Winding},
		{" NonZero ", Winding},
		{"evenodd", EvenOdd},
		{"EvenOdd", EvenOdd},
	}
	for _, tt := range tests {
		got, err := ParseFillRule(tt.in)
		if err != nil {
			t.Errorf("ParseFillRule(%q): %s", tt.in, err)
			continue
		}
		diff(t, tt.want, got)
		// Round trip through String.
		again, err := ParseFillRule(got.String())
		require.NoError(t, err)
		diff(t, got, again)
	}
	if _, err := ParseFillRule("inherit"); err == nil {
		t.Error("expected error for unknown fill rule")
	}
	diff(t, "FillRule(7)", FillRule(7).String())
}

func TestFillRuleInside(t *testing.T) {
	for w := -3; w <= 3; w++ {
		assert.Equal(t, w != 0, Winding.Inside(w), "winding, w=%d", w)
		assert.Equal(t, w%2 != 0, EvenOdd.Inside(w), "evenodd, w=%d", w)
	}
}

func TestPathBuilder(t *testing.T) {
	var b PathBuilder
	if _, ok := b.CurrentPoint(); ok {
		t.Fatal("empty builder has a current point")
	}
	b.MoveTo(Pt(0, 0))
	b.LineTo(Pt(10, 0))
	b.QuadTo(Pt(15, 5), Pt(10, 10))
	b.CubicTo(Pt(8, 12), Pt(2, 12), Pt(0, 10))
	b.ClosePath()
	// Continues from the start of the closed contour.
	b.LineTo(Pt(-10, 0))
	b.LineTo(Pt(0, -10))

	pt, ok := b.CurrentPoint()
	require.True(t, ok)
	diff(t, Pt(0, -10), pt)

	p := b.Path()
	require.Equal(t, 2, p.Len())
	cs := p.Contours()

	want0 := []Segment{
		Line{Pt(0, 0), Pt(10, 0)}.Seg(),
		QuadBez{Pt(10, 0), Pt(15, 5), Pt(10, 10)}.Seg(),
		CubicBez{Pt(10, 10), Pt(8, 12), Pt(2, 12), Pt(0, 10)}.Seg(),
		Line{Pt(0, 10), Pt(0, 0)}.Seg(),
	}
	diff(t, want0, cs[0].Segments)
	assert.True(t, cs[0].Closed)

	want1 := []Segment{
		Line{Pt(0, 0), Pt(-10, 0)}.Seg(),
		Line{Pt(-10, 0), Pt(0, -10)}.Seg(),
	}
	diff(t, want1, cs[1].Segments)
	assert.False(t, cs[1].Closed)
}

func TestPathBuilderClose(t *testing.T) {
	var b PathBuilder
	// Closing without a current point does nothing.
	b.ClosePath()
	// Already back at the start, so no closing line is added.
	b.MoveTo(Pt(0, 0))
	b.LineTo(Pt(10, 0))
	b.LineTo(Pt(0, 10))
	b.LineTo(Pt(0, 0))
	b.ClosePath()
	// A lone move produces no contour.
	b.MoveTo(Pt(50, 50))
	b.ClosePath()
	b.MoveTo(Pt(60, 60))

	p := b.Path()
	require.Equal(t, 1, p.Len())
	c := p.Contours()[0]
	assert.Len(t, c.Segments, 3)
	assert.True(t, c.Closed)
}

func TestPathBuilderImplicitMove(t *testing.T) {
	var b PathBuilder
	b.LineTo(Pt(5, 5))
	b.LineTo(Pt(10, 5))
	p := b.Path()
	require.Equal(t, 1, p.Len())
	diff(t, []Segment{Line{Pt(5, 5), Pt(10, 5)}.Seg()}, p.Contours()[0].Segments)
}

func TestPathImmutable(t *testing.T) {
	p := mustParse(t, "M0 0L10 0L10 10Z")
	cs := p.Contours()
	cs[0].Segments[0] = Line{Pt(99, 99), Pt(10, 0)}.Seg()
	diff(t, Pt(0, 0), p.Contours()[0].Start())

	q := p.WithFillRule(EvenOdd)
	diff(t, Winding, p.FillRule())
	diff(t, EvenOdd, q.FillRule())
	diff(t, p.Contours(), q.Contours())
}

func TestNewPathDropsEmpty(t *testing.T) {
	p := NewPath(Winding, Contour{}, Contour{Segments: []Segment{Line{Pt(0, 0), Pt(1, 1)}.Seg()}}, Contour{Closed: true})
	diff(t, 1, p.Len())
	assert.False(t, p.IsEmpty())
	assert.True(t, NewPath(EvenOdd).IsEmpty())
}

func TestContourImplicitClose(t *testing.T) {
	open := Contour{Segments: []Segment{
		Line{Pt(0, 0), Pt(10, 0)}.Seg(),
		Line{Pt(10, 0), Pt(10, 10)}.Seg(),
	}}
	var segs []Segment
	for seg := range open.filled() {
		segs = append(segs, seg)
	}
	diff(t, 3, len(segs))
	diff(t, Line{Pt(10, 10), Pt(0, 0)}.Seg(), segs[2])
	diff(t, 50.0, open.SignedArea())
	diff(t, 1, open.Winding(Pt(8, 2)))
	diff(t, 0, open.Winding(Pt(2, 8)))
}

func TestPathContains(t *testing.T) {
	// Two nested squares with the same orientation.
	p := mustParse(t, "M0 0H100V100H0ZM25 25H75V75H25Z")
	tests := []struct {
		pt      Point
		winding int
	}{
		{Pt(10, 10), 1},
		{Pt(50, 50), 2},
		{Pt(150, 50), 0},
	}
	for _, tt := range tests {
		diff(t, tt.winding, p.Winding(tt.pt))
		assert.Equal(t, tt.winding != 0, p.Contains(tt.pt))
		assert.Equal(t, tt.winding%2 != 0, p.WithFillRule(EvenOdd).Contains(tt.pt))
	}
}

func TestPathBoundingBox(t *testing.T) {
	diff(t, Rect{}, NewPath(Winding).BoundingBox())
	p := mustParse(t, "M0 0Q50 100 100 0Z")
	diff(t, Rect{0, 0, 100, 50}, p.BoundingBox(), cmpopts.EquateApprox(0, 1e-12))
}
