// Package geomconv converts between [pathops.Path] and the path type of
// seehuhn.de/go/geom, which is used by the seehuhn rasteriser and PDF writer.
package geomconv

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"honnef.co/go/pathops"
)

func toVec(pt pathops.Point) vec.Vec2 {
	return vec.Vec2{X: pt.X, Y: pt.Y}
}

func toPoint(v vec.Vec2) pathops.Point {
	return pathops.Point{X: v.X, Y: v.Y}
}

// ToData converts p to path data. Closed contours end with a close command;
// their final straight line, if any, is left to the close command.
//
// path.Data doesn't carry a fill rule; callers pick FillNonZero or
// FillEvenOdd based on p.FillRule().
func ToData(p *pathops.Path) *path.Data {
	d := &path.Data{}
	for _, c := range p.Contours() {
		segs := c.Segments
		if c.Closed && len(segs) > 1 {
			if last := segs[len(segs)-1]; last.Kind == pathops.LineKind && last.P1 == segs[0].P0 {
				segs = segs[:len(segs)-1]
			}
		}
		d = d.MoveTo(toVec(c.Start()))
		for _, seg := range segs {
			switch seg.Kind {
			case pathops.LineKind:
				d = d.LineTo(toVec(seg.P1))
			case pathops.QuadKind:
				d = d.QuadTo(toVec(seg.P1), toVec(seg.P2))
			case pathops.CubicKind:
				d = d.CubeTo(toVec(seg.P1), toVec(seg.P2), toVec(seg.P3))
			default:
				panic(fmt.Sprintf("unhandled case %v", seg.Kind))
			}
		}
		if c.Closed {
			d = d.Close()
		}
	}
	return d
}

// coords returns the number of coordinates cmd consumes.
func coords(cmd path.Command) (int, bool) {
	switch cmd {
	case path.CmdMoveTo, path.CmdLineTo:
		return 1, true
	case path.CmdQuadTo:
		return 2, true
	case path.CmdCubeTo:
		return 3, true
	case path.CmdClose:
		return 0, true
	default:
		return 0, false
	}
}

func apply(b *pathops.PathBuilder, cmd path.Command, pts []vec.Vec2) {
	switch cmd {
	case path.CmdMoveTo:
		b.MoveTo(toPoint(pts[0]))
	case path.CmdLineTo:
		b.LineTo(toPoint(pts[0]))
	case path.CmdQuadTo:
		b.QuadTo(toPoint(pts[0]), toPoint(pts[1]))
	case path.CmdCubeTo:
		b.CubicTo(toPoint(pts[0]), toPoint(pts[1]), toPoint(pts[2]))
	case path.CmdClose:
		b.ClosePath()
	}
}

// FromData converts path data to a path with the given fill rule. It
// returns an error if d has fewer coordinates than its commands need.
func FromData(d *path.Data, rule pathops.FillRule) (*pathops.Path, error) {
	b := pathops.PathBuilder{Rule: rule}
	coordIdx := 0
	for i, cmd := range d.Cmds {
		n, ok := coords(cmd)
		if !ok {
			return nil, fmt.Errorf("geomconv: unknown path command %d at index %d", cmd, i)
		}
		if coordIdx+n > len(d.Coords) {
			return nil, fmt.Errorf("geomconv: command %d at index %d needs %d coordinates, %d left", cmd, i, n, len(d.Coords)-coordIdx)
		}
		apply(&b, cmd, d.Coords[coordIdx:coordIdx+n])
		coordIdx += n
	}
	return b.Path(), nil
}

// FromPath is like [FromData] but consumes a path iterator.
func FromPath(p path.Path, rule pathops.FillRule) (*pathops.Path, error) {
	b := pathops.PathBuilder{Rule: rule}
	for cmd, pts := range p {
		n, ok := coords(cmd)
		if !ok {
			return nil, fmt.Errorf("geomconv: unknown path command %d", cmd)
		}
		if len(pts) < n {
			return nil, fmt.Errorf("geomconv: command %d needs %d coordinates, got %d", cmd, n, len(pts))
		}
		apply(&b, cmd, pts)
	}
	return b.Path(), nil
}
