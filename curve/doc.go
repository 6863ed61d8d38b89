// Package curve provides the 2D geometry used to describe synthesized
// contours: points, vectors, affine transforms, rectangles, circles, and
// Bézier paths, plus serialization of paths to SVG path data.
//
// # Bézier paths
//
// Bézier paths consist of lines and quadratic and cubic Béziers. [BezPath]
// represents Bézier paths as a slice of path elements and provides methods for
// building paths as well as for any path manipulation that needs access to the
// collection of path elements.
//
// # Path elements and segments
//
// This package provides two representations for paths: [PathElement] and
// [PathSegment]. Path elements are akin to drawing commands in graphics APIs
// like PostScript or SVG path data, consisting of pen moves ([MoveTo]) and
// various drawing commands ([LineTo], [QuadTo], etc.) Each command moves the
// current position of the pen, which acts as the start position of the
// following drawing command.
//
// Segments, on the other hand, are self-contained descriptions of a portion of
// the path, containing explicit start points.
//
// Using [Elements] and [Segments], you can freely convert between the two
// representations.
//
// # Smooth elements
//
// Unlike kurbo, from which much of this package's geometry is derived, path
// elements can be "smooth": [SmoothQuadTo] and [SmoothCubicTo] leave their
// first control point implied, to be reconstructed by reflecting the previous
// element's last control point about the current point. This is a first-class
// feature of SVG path data (the S and T commands) and is preserved by
// [WriteSVG]. [ResolveSmooth] computes the implied control points explicitly
// for consumers that lack this feature; [Segments] does so implicitly.
//
// # Iterators
//
// Functions that don't need random access accept and return iterators.
// Functions that cannot work with iterators directly will instead accept or
// return slices, to make it clear that they allocate. You can use
// [slices.Collect] to turn iterators into slices, and [slices.Values] to turn
// slices into iterators.
package curve
