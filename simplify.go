package pathops

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
)

// Simplify resolves the self-intersections and overlaps of p according to
// its fill rule and returns a new path that fills the same region.
//
// The result consists of closed contours that neither cross themselves nor
// each other. Every contour has the filled region on its left, so the result
// fills the same region under both fill rules; it keeps p's fill rule.
// Contours start at their smallest point and are sorted. Contours thinner
// than the tolerance are dropped.
//
// Simplify is idempotent: it reruns the pipeline on its own output until the
// output reproduces itself. The number of reruns is bounded; if the bound is
// hit, a warning is logged and the last output is returned.
//
// Open contours are closed implicitly. Segments shorter than the tolerance
// are dropped. Coordinates that aren't finite result in an error of kind
// [DegenerateInput]. A nil opts uses [DefaultOptions].
//
// p is not modified.
func Simplify(p *Path, opts *Options) (*Path, error) {
	opts = opts.orDefault()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.logger()

	out, err := simplifyOnce(p, opts, log)
	if err != nil {
		return nil, err
	}
	for pass := 1; pass < maxPasses; pass++ {
		next, err := simplifyOnce(out, opts, log)
		if err != nil {
			log.Warn("output doesn't simplify", "pass", pass, "err", err)
			return out, nil
		}
		if samePath(out, next, opts) {
			log.Debug("reached fixed point", "passes", pass)
			return out, nil
		}
		out = next
	}
	log.Warn("no fixed point", "passes", maxPasses)
	return out, nil
}

// maxPasses bounds how often Simplify runs the pipeline. The first rerun
// usually confirms the result. Curves rebuilt from sub-ranges of their
// source can move by a few ulps and take another pass to settle.
const maxPasses = 8

// samePath reports whether a and b have identical contours, or serialize to
// the same path data.
func samePath(a, b *Path, opts *Options) bool {
	same := slices.EqualFunc(a.contours, b.contours, func(x, y Contour) bool {
		return x.Closed == y.Closed && slices.Equal(x.Segments, y.Segments)
	})
	return same || Serialize(a, opts) == Serialize(b, opts)
}

// absTolerance scales the relative tolerance rel by the extent of bbox,
// rounded up to a power of two. Rounding keeps the tolerance the same for
// paths whose extents differ only slightly, such as a path and its
// simplified form.
func absTolerance(rel float64, bbox Rect) float64 {
	e := max(1, bbox.extent())
	frac, exp := math.Frexp(e)
	if frac == 0.5 {
		return rel * e
	}
	return rel * math.Ldexp(1, exp)
}

// simplifyOnce runs the pipeline a single time.
func simplifyOnce(p *Path, opts *Options, log *slog.Logger) (*Path, error) {
	var srcs []Segment
	for _, c := range p.contours {
		for seg := range c.filled() {
			if seg.IsNaN() || seg.IsInf() {
				return nil, &GeometryError{
					Kind: DegenerateInput,
					Msg:  fmt.Sprintf("segment %d has non-finite coordinates", len(srcs)),
				}
			}
			srcs = append(srcs, seg)
		}
	}
	if len(srcs) == 0 {
		return &Path{rule: p.rule}, nil
	}

	tol := absTolerance(opts.Tolerance, p.BoundingBox())
	pieces, err := splitMonotone(srcs, tol, opts)
	if err != nil {
		log.Warn("too many segments", "segments", len(srcs), "limit", opts.MaxSegments)
		return nil, err
	}
	log.Debug("split input", "segments", len(srcs), "pieces", len(pieces), "tolerance", tol)

	in := intersector{
		pieces:   pieces,
		tol:      tol,
		paramTol: opts.ParamTolerance,
		opts:     opts,
	}
	if err := in.run(); err != nil {
		log.Warn("intersection aborted", "err", err, "cuts", in.nCuts, "subdivisions", in.work)
		return nil, err
	}
	log.Debug("found intersections", "cuts", in.nCuts, "subdivisions", in.work)

	arr := buildArrangement(in.pieces, tol, opts.ParamTolerance)
	nb := arr.classify(p.rule)
	log.Debug("classified edges", "vertices", len(arr.vertices), "edges", len(arr.edges), "boundary", nb)
	if nb == 0 {
		return &Path{rule: p.rule}, nil
	}

	contours, err := arr.reassemble(srcs, p.rule, opts.Precision)
	if err != nil {
		log.Warn("reassembly failed", "err", err, "boundary", nb)
		return nil, err
	}
	log.Debug("reassembled contours", "contours", len(contours))
	return &Path{contours: contours, rule: p.rule}, nil
}

// Simplify is shorthand for [Simplify](p, opts).
func (p *Path) Simplify(opts *Options) (*Path, error) {
	return Simplify(p, opts)
}

// SimplifySVGPath parses data, simplifies it under rule and serializes the
// result, all with default options.
//
// The boolean result reports success. Any error, be it in parsing or in
// simplification, results in ("", false). If the input describes no area,
// for example because it is empty or because its contours cancel out, the
// result is ("", true).
func SimplifySVGPath(data string, rule FillRule) (string, bool) {
	p, err := ParsePath(data)
	if err != nil {
		return "", false
	}
	out, err := Simplify(p.WithFillRule(rule), nil)
	if err != nil {
		return "", false
	}
	return out.SVG(), true
}
