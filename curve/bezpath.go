package curve

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

type PathElementKind int

const (
	/// Move directly to the point without drawing anything, starting a new
	/// subpath.
	MoveToKind PathElementKind = iota + 1
	/// Draw a line from the current location to the point.
	LineToKind
	/// Draw a quadratic bezier using the current location and the two points.
	QuadToKind
	/// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	/// Close off the path.
	ClosePathKind
	/// Draw a quadratic bezier whose control point is the reflection of the
	/// previous quadratic's control point about the current location.
	SmoothQuadToKind
	/// Draw a cubic bezier whose first control point is the reflection of the
	/// previous cubic's second control point about the current location.
	SmoothCubicToKind
)

// The element of a Bézier path.
//
// A valid path has MoveTo at the beginning of each subpath.
//
// The meaning of the points depends on Kind. P0 is always the first explicit
// point: the end point for MoveTo, LineTo and SmoothQuadTo, the (first)
// control point otherwise. SmoothCubicTo stores its second control point in
// P0 and its end point in P1.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case SmoothQuadToKind:
		kind = "SmoothQuadTo"
	case SmoothCubicToKind:
		kind = "SmoothCubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

// Transform applies aff to every point of the element. Reflection commutes
// with affine maps, so smooth elements stay smooth.
func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case QuadToKind:
		return QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case SmoothQuadToKind:
		return SmoothQuadTo(el.P0.Transform(aff))
	case SmoothCubicToKind:
		return SmoothCubicTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() ||
		el.P1.IsNaN() ||
		el.P2.IsNaN()
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind, SmoothQuadToKind:
		return el.P0, true
	case QuadToKind, SmoothCubicToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

// SmoothQuadTo returns a quadratic element ending at pt whose control point is
// implied by the previous element.
func SmoothQuadTo(pt Point) PathElement {
	return PathElement{Kind: SmoothQuadToKind, P0: pt}
}

// SmoothCubicTo returns a cubic element with second control point p1 and end
// point p2. The first control point is implied by the previous element.
func SmoothCubicTo(p1, p2 Point) PathElement {
	return PathElement{Kind: SmoothCubicToKind, P0: p1, P1: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

type PathSegmentKind int

const (
	// A line segment.
	LineKind PathSegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
)

// PathSegment represents a segment of a Bézier path. This type acts as a sort of tagged
// union representing all possible path segments ([Line], [QuadBez], and [CubicBez]).
type PathSegment struct {
	// We don't use an interface for PathSegment because we want {Line, Quad,
	// Cubic}.Transform to return their respective types, not PathSegment. But we cannot
	// encode that in Go interfaces.
	//
	// This also avoids having to allocate for path segments.

	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

var _ ParametricCurve = PathSegment{}
var _ Extremer = PathSegment{}

func (seg PathSegment) BoundingBox() Rect {
	switch seg.Kind {
	case LineKind:
		return seg.Line().BoundingBox()
	case QuadKind:
		return seg.Quad().BoundingBox()
	case CubicKind:
		return seg.Cubic().BoundingBox()
	default:
		return Rect{}
	}
}

// Line returns the line represented by this segment. This is only valid when Kind ==
// LineKind.
func (seg PathSegment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only valid when Kind ==
// QuadKind.
func (seg PathSegment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic converts seg to a cubic Bézier. This is valid for any Kind.
func (seg PathSegment) Cubic() CubicBez {
	switch seg.Kind {
	case LineKind:
		p0 := seg.P0
		p1 := seg.P1
		return CubicBez{p0, p0, p1, p1}
	case QuadKind:
		return seg.Quad().Raise()
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		return CubicBez{}
	}
}

func (seg PathSegment) Transform(aff Affine) PathSegment {
	return PathSegment{
		Kind: seg.Kind,
		P0:   seg.P0.Transform(aff),
		P1:   seg.P1.Transform(aff),
		P2:   seg.P2.Transform(aff),
		P3:   seg.P3.Transform(aff),
	}
}

func (seg PathSegment) IsNaN() bool {
	return seg.P0.IsNaN() || seg.P1.IsNaN() || seg.P2.IsNaN() || seg.P3.IsNaN()
}

func (seg PathSegment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		return Point{}
	}
}

func (seg PathSegment) Start() Point {
	return seg.Eval(0)
}

func (seg PathSegment) End() Point {
	return seg.Eval(1)
}

func (seg PathSegment) Extrema() ([MaxExtrema]float64, int) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Extrema()
	case QuadKind:
		return seg.Quad().Extrema()
	case CubicKind:
		return seg.Cubic().Extrema()
	default:
		return [MaxExtrema]float64{}, 0
	}
}

// PathElement returns the PathElement corresponding to the segment, discarding the
// segment's starting point.
func (seg PathSegment) PathElement() PathElement {
	switch seg.Kind {
	case LineKind:
		return LineTo(seg.P1)
	case QuadKind:
		return QuadTo(seg.P1, seg.P2)
	case CubicKind:
		return CubicTo(seg.P1, seg.P2, seg.P3)
	default:
		return PathElement{}
	}
}

// BezPath is a Bézier path: a sequence of path elements.
//
// Conceptually, a BezPath contains zero or more subpaths. Each subpath always
// begins with a MoveTo, then has zero or more drawing elements, and optionally
// ends with a ClosePath.
//
// Paths may contain smooth elements ([SmoothQuadTo], [SmoothCubicTo]) whose
// first control point is implied by the preceding element, mirroring the S
// and T commands of SVG path data. Operations that need explicit geometry
// (segments, bounding boxes, reversal) resolve them first; see
// [BezPath.ResolveSmooth].
type BezPath []PathElement

// Transform returns a new path with an affine transformation applied to each
// element.
func (p BezPath) Transform(aff Affine) BezPath {
	els := make([]PathElement, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" element onto the path.
func (p *BezPath) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// CubicTo pushes a "curve to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// SmoothQuadTo pushes a "smooth quad to" element onto the path.
func (p *BezPath) SmoothQuadTo(pt Point) { p.Push(SmoothQuadTo(pt)) }

// SmoothCubicTo pushes a "smooth curve to" element onto the path.
func (p *BezPath) SmoothCubicTo(p2, p3 Point) { p.Push(SmoothCubicTo(p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Segments returns an iterator over the path's segments.
func (p BezPath) Segments() iter.Seq[PathSegment] { return Segments(slices.Values(p)) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// CurrentPoint returns the position of the pen after drawing the path, or
// false if the path is empty.
func (p BezPath) CurrentPoint() (Point, bool) {
	var start option[Point]
	var cur option[Point]
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			start.set(el.P0)
			cur.set(el.P0)
		case ClosePathKind:
			if start.isSet {
				cur.set(start.value)
			}
		default:
			pt, _ := el.EndPoint()
			cur.set(pt)
		}
	}
	return cur.value, cur.isSet
}

// ResolveSmooth returns a copy of the path in which every smooth element has
// been replaced by its explicit equivalent. Use it for consumers whose path
// model lacks implicit control point reflection.
func (p BezPath) ResolveSmooth() BezPath {
	return slices.Collect(ResolveSmooth(p.Elements()))
}

func (p BezPath) BoundingBox() Rect {
	return SegmentsBoundingBox(p.Segments())
}

// Segment returns the segment at the given element index, if any.
//
// This returns the segment that ends at the provided element
// index. In effect this means it is 1-indexed: since no segment ends at
// the first element (which is presumed to be a [MoveTo]) Segment(0) will
// always return false.
func (p BezPath) Segment(idx int) (PathSegment, bool) {
	if idx == 0 || idx >= len(p) {
		return PathSegment{}, false
	}
	resolved := p[:idx+1].ResolveSmooth()
	var last Point
	switch prev := resolved[idx-1]; prev.Kind {
	case ClosePathKind:
		return PathSegment{}, false
	default:
		last, _ = prev.EndPoint()
	}

	switch el := resolved[idx]; el.Kind {
	case LineToKind:
		return Line{last, el.P0}.Seg(), true
	case QuadToKind:
		return QuadBez{last, el.P0, el.P1}.Seg(), true
	case CubicToKind:
		return CubicBez{last, el.P0, el.P1, el.P2}.Seg(), true
	case ClosePathKind:
		for i := idx - 1; i >= 0; i-- {
			el := resolved[i]
			if el.Kind == MoveToKind && el.P0 != last {
				return Line{last, el.P0}.Seg(), true
			}
		}
		return PathSegment{}, false

	default:
		return PathSegment{}, false
	}
}

func (p BezPath) IsNaN() bool {
	for i := range p {
		if p[i].IsNaN() {
			return true
		}
	}
	return false
}

// ControlBox returns a rectangle that conservatively encloses the path.
//
// Unlike [BezPath.BoundingBox], this uses control points directly rather than computing
// tight bounds for curve elements. Implied control points of smooth elements
// are included.
func (p BezPath) ControlBox() Rect {
	first := true
	var cbox Rect
	addPt := func(pt Point) {
		if first {
			first = false
			cbox = NewRectFromPoints(pt, pt)
		} else {
			cbox = cbox.UnionPoint(pt)
		}
	}
	for el := range ResolveSmooth(p.Elements()) {
		switch el.Kind {
		case MoveToKind, LineToKind:
			addPt(el.P0)
		case QuadToKind:
			addPt(el.P0)
			addPt(el.P1)
		case CubicToKind:
			addPt(el.P0)
			addPt(el.P1)
			addPt(el.P2)
		case ClosePathKind:
		}
	}

	return cbox
}

// SVG converts the path to an SVG path string representation.
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// ReverseSubpaths returns a new path with the winding direction of all subpaths
// reversed. Smooth elements are resolved first, since their implied control
// points depend on drawing order.
func (p BezPath) ReverseSubpaths() BezPath {
	elements := p.ResolveSmooth()
	startIdx := 1
	startPt := Point{}
	reversed := BezPath(make([]PathElement, 0, len(elements)))
	// Pending move is used to capture degenerate subpaths that should
	// remain in the reversed output.
	pendingMove := false
	for ix, el := range elements {
		switch el.Kind {
		case MoveToKind:
			pt := el.P0
			if pendingMove {
				reversed.Push(MoveTo(startPt))
			}
			if startIdx < ix {
				reverseSubpath(startPt, elements[startIdx:ix], &reversed)
			}
			pendingMove = true
			startPt = pt
			startIdx = ix + 1
		case ClosePathKind:
			if startIdx <= ix {
				reverseSubpath(startPt, elements[startIdx:ix], &reversed)
			}
			reversed.Push(ClosePath())
			startIdx = ix + 1
			pendingMove = false
		default:
			pendingMove = false
		}
	}
	if startIdx < len(elements) {
		reverseSubpath(startPt, elements[startIdx:], &reversed)
	} else if pendingMove {
		reversed.Push(MoveTo(startPt))
	}
	return reversed
}

// reverseSubpath is a helper for reversing a subpath.
//
// The els parameter must not contain any MoveTo, ClosePath or smooth elements.
func reverseSubpath(startPt Point, els []PathElement, reversed *BezPath) {
	var endPt Point
	if len(els) > 0 {
		endPt, _ = els[len(els)-1].EndPoint()
	} else {
		endPt = startPt
	}
	reversed.Push(MoveTo(endPt))
	for ix := len(els) - 1; ix >= 0; ix-- {
		el := &els[ix]

		var endPt Point
		if ix > 0 {
			endPt, _ = els[ix-1].EndPoint()
		} else {
			endPt = startPt
		}
		switch el.Kind {
		case LineToKind:
			reversed.Push(LineTo(endPt))
		case QuadToKind:
			reversed.Push(QuadTo(el.P0, endPt))
		case CubicToKind:
			reversed.Push(CubicTo(el.P1, el.P0, endPt))
		default:
			panic("reverseSubpath expects MoveTo, ClosePath and smooth elements to be removed")
		}
	}
}

// ResolveSmooth replaces smooth elements in a sequence with explicit quadratic
// and cubic elements, following the SVG rules: the implied control point is
// the reflection of the previous element's last control point about the
// current point if the previous element is of the same family (quadratic for
// SmoothQuadTo, cubic for SmoothCubicTo), and the current point otherwise.
func ResolveSmooth(seq iter.Seq[PathElement]) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		var cur, start Point
		var lastCtrl Point
		var lastKind PathElementKind
		for el := range seq {
			out := el
			switch el.Kind {
			case MoveToKind:
				cur, start = el.P0, el.P0
			case LineToKind:
				cur = el.P0
			case QuadToKind:
				lastCtrl = el.P0
				cur = el.P1
			case CubicToKind:
				lastCtrl = el.P1
				cur = el.P2
			case SmoothQuadToKind:
				ctrl := cur
				if lastKind == QuadToKind {
					ctrl = lastCtrl.ReflectAbout(cur)
				}
				out = QuadTo(ctrl, el.P0)
				lastCtrl = ctrl
				cur = el.P0
			case SmoothCubicToKind:
				ctrl := cur
				if lastKind == CubicToKind {
					ctrl = lastCtrl.ReflectAbout(cur)
				}
				out = CubicTo(ctrl, el.P0, el.P1)
				lastCtrl = el.P0
				cur = el.P1
			case ClosePathKind:
				cur = start
			}
			lastKind = out.Kind
			if !yield(out) {
				return
			}
		}
	}
}

// Elements converts a sequence of path segments to a sequence of path elements.
func Elements(seq iter.Seq[PathSegment]) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		var currentPos option[Point]
		for seg := range seq {
			start := seg.Start()
			if !currentPos.isSet || currentPos.value != start {
				if !yield(MoveTo(start)) {
					return
				}
			}
			if !yield(seg.PathElement()) {
				return
			}
			currentPos.set(seg.End())
		}
	}
}

// Segments converts a sequence of path elements to a sequence of path segments.
// Smooth elements are resolved on the fly.
func Segments(seq iter.Seq[PathElement]) iter.Seq[PathSegment] {
	return func(yield func(PathSegment) bool) {
		first := true
		var start, last Point
		for el := range ResolveSmooth(seq) {
			if first {
				first = false
				if el.Kind == ClosePathKind {
					panic("first path element mustn't be ClosePath")
				}
				start, _ = el.EndPoint()
				last = start
			}

			switch el.Kind {
			case MoveToKind:
				start = el.P0
				last = el.P0
			case LineToKind:
				p := last
				last = el.P0

				if !yield(Line{p, el.P0}.Seg()) {
					return
				}
			case QuadToKind:
				p := last
				last = el.P1
				if !yield(QuadBez{p, el.P0, el.P1}.Seg()) {
					return
				}
			case CubicToKind:
				p := last
				last = el.P2
				if !yield(CubicBez{p, el.P0, el.P1, el.P2}.Seg()) {
					return
				}
			case ClosePathKind:
				if last != start {
					p := last
					last = start
					if !yield(Line{p, start}.Seg()) {
						return
					}
				}
			default:
				panic(fmt.Sprintf("unhandled case %v", el.Kind))
			}
		}
	}
}

func SegmentsBoundingBox(seq iter.Seq[PathSegment]) Rect {
	var bbox Rect
	first := true
	for s := range seq {
		sbbox := BoundingBox(s)
		if first {
			first = false
			bbox = sbbox
		} else {
			bbox = bbox.Union(sbbox)
		}
	}
	return bbox
}
