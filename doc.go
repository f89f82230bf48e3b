// Package pathops simplifies filled vector paths. Given SVG path data that may
// contain self-intersections, overlapping subpaths or redundant segments, it
// produces an equivalent path whose contours don't cross each other or
// themselves, resolved according to a fill rule, and writes it back out as
// canonical SVG path data.
//
// # Pipeline
//
// [ParsePath] turns a string into a [Path]. [Simplify] runs the path through
// three stages:
//
//   - the intersection engine cuts every segment at every point where it meets
//     another segment, producing a planar arrangement of vertices and edges;
//   - the winding classifier computes the winding number on both sides of
//     every edge and applies the [FillRule];
//   - the reassembler stitches the edges that separate inside from outside
//     into new closed contours, merging runs that were split needlessly.
//
// The result is a new [Path] that never aliases the input.
//
// [Serialize] writes a path as SVG path data. [SimplifySVGPath] does all of the
// above in one call.
//
// # Segments
//
// Paths consist of lines, quadratic Béziers and cubic Béziers. [Segment] is a
// tagged union over the three; [Line], [QuadBez] and [CubicBez] are the
// concrete types. Elliptical arcs are converted to cubic Béziers while parsing.
//
// # Tolerances
//
// All numeric tolerances live in [Options], which is passed explicitly to every
// operation that needs it. There is no package-level state. A nil *Options is
// equivalent to [DefaultOptions].
//
// # Orientation
//
// The package doesn't care whether the y axis points up or down. "Left" of a
// segment means the side with a positive cross product relative to its
// direction. Simplified contours always have the filled region on their left,
// so they fill identically under both fill rules.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//   - [SVG path data grammar]
//   - [SVG elliptical arc implementation notes]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
// [SVG path data grammar]: https://www.w3.org/TR/SVG/paths.html#PathDataBNF
// [SVG elliptical arc implementation notes]: https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
package pathops
