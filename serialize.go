package pathops

import (
	"strconv"
	"strings"
)

// Serialize returns p as SVG path data.
//
// Every contour starts with an absolute M. Consecutive segments of the same
// kind share one command letter. The straight line that closes a closed
// contour is implied by its Z. Numbers are rounded to opts.Precision decimal
// places, with trailing zeros removed.
//
// The empty path serializes to the empty string.
func Serialize(p *Path, opts *Options) string {
	opts = opts.orDefault()
	var sb strings.Builder
	for _, c := range p.contours {
		writeContour(&sb, c, opts.Precision)
	}
	return sb.String()
}

// SVG returns p as SVG path data, using the default options.
func (p *Path) SVG() string {
	return Serialize(p, nil)
}

func writeContour(sb *strings.Builder, c Contour, prec int) {
	segs := c.Segments
	if len(segs) == 0 {
		return
	}
	if c.Closed && len(segs) > 1 {
		if last := segs[len(segs)-1]; last.Kind == LineKind && last.P1 == segs[0].P0 {
			segs = segs[:len(segs)-1]
		}
	}

	sb.WriteByte('M')
	writePoint(sb, segs[0].P0, prec)
	var prev SegmentKind
	for _, seg := range segs {
		if seg.Kind != prev {
			switch seg.Kind {
			case LineKind:
				sb.WriteByte('L')
			case QuadKind:
				sb.WriteByte('Q')
			case CubicKind:
				sb.WriteByte('C')
			default:
				panic("unreachable")
			}
			prev = seg.Kind
		} else {
			sb.WriteByte(' ')
		}
		pts, n := seg.controlPoints()
		for i, pt := range pts[1:n] {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writePoint(sb, pt, prec)
		}
	}
	if c.Closed {
		sb.WriteByte('Z')
	}
}

func writePoint(sb *strings.Builder, pt Point, prec int) {
	sb.WriteString(formatNumber(pt.X, prec))
	sb.WriteByte(' ')
	sb.WriteString(formatNumber(pt.Y, prec))
}

// formatNumber formats v with at most prec decimal places, without trailing
// zeros and without a negative sign on zero.
func formatNumber(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.IndexByte(s, '.') != -1 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
