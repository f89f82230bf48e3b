package pathops

import (
	"image"
	"image/draw"
	"testing"

	"golang.org/x/image/vector"
)

const (
	rasterSize   = 192
	flattenSteps = 64
)

// rasterize fills p with the nonzero rule, offset by (16, 16).
func rasterize(p *Path) *image.Alpha {
	const off = 16
	z := vector.NewRasterizer(rasterSize, rasterSize)
	z.DrawOp = draw.Src
	f := func(pt Point) (float32, float32) {
		return float32(pt.X + off), float32(pt.Y + off)
	}
	for _, c := range p.Contours() {
		z.MoveTo(f(c.Start()))
		for _, seg := range c.Segments {
			if seg.Kind == LineKind {
				z.LineTo(f(seg.P1))
				continue
			}
			// The rasterizer's own flattening is coarse enough to show up
			// in the comparison.
			for k := 1; k <= flattenSteps; k++ {
				z.LineTo(f(seg.Eval(float64(k) / flattenSteps)))
			}
		}
		z.ClosePath()
	}
	dst := image.NewAlpha(image.Rect(0, 0, rasterSize, rasterSize))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

var coverageCases = []struct {
	name string
	data string
}{
	{"bowtie", "M0 0L100 100L100 0L0 100Z"},
	{"pentagram", "M50 0L79 91L2 35L98 35L21 91Z"},
	{"star", "M50 0L61 35L98 35L68 57L79 91L50 70L21 91L32 57L2 35L39 35Z"},
	{"squares", "M0 0H50V50H0ZM25 25H75V75H25Z"},
	{"nested", "M0 0H100V100H0ZM25 25H75V75H25Z"},
	{"circles", "M0 50A50 50 0 1 0 100 50A50 50 0 1 0 0 50ZM60 50A50 50 0 1 0 160 50A50 50 0 1 0 60 50Z"},
	{"loop", "M10 150C190 0-10 0 150 150Z"},
	{"curve and line", "M0 0Q80 160 160 0ZM0 40H160V60H0Z"},
}

// TestCoverageNonZero checks that the simplified path covers the same
// pixels as its input.
func TestCoverageNonZero(t *testing.T) {
	for _, tt := range coverageCases {
		t.Run(tt.name, func(t *testing.T) {
			in := mustParse(t, tt.data)
			out, err := Simplify(in, nil)
			if err != nil {
				t.Fatal(err)
			}
			want := rasterize(in)
			got := rasterize(out)
			var bad int
			for i := range want.Pix {
				d := int(want.Pix[i]) - int(got.Pix[i])
				if d < -16 || d > 16 {
					bad++
				}
			}
			if bad > 4 {
				t.Errorf("%d pixels differ", bad)
			}
		})
	}
}

// TestCoverageEvenOdd compares the rasterized output against point
// containment of the input under the even-odd rule. The output fills the
// same under either rule, so the nonzero rasterizer can draw it.
func TestCoverageEvenOdd(t *testing.T) {
	for _, tt := range coverageCases {
		t.Run(tt.name, func(t *testing.T) {
			in := mustParse(t, tt.data).WithFillRule(EvenOdd)
			out, err := Simplify(in, nil)
			if err != nil {
				t.Fatal(err)
			}
			got := rasterize(out)
			var bad int
			for y := range rasterSize {
				for x := range rasterSize {
					a := got.AlphaAt(x, y).A
					if a != 0 && a != 0xFF {
						continue
					}
					center := Pt(float64(x)+0.5-16, float64(y)+0.5-16)
					if in.Contains(center) != (a == 0xFF) {
						bad++
					}
				}
			}
			if bad > 0 {
				t.Errorf("%d pixels differ", bad)
			}
		})
	}
}
