// Package contour turns decoded segment traits into Bézier paths.
//
// A contour is made of exactly four [Segment]s drawn one after another from a
// start point. Each segment advances the pen by (DX, DY); its kind and
// tension only shape the control geometry in between.
package contour

import (
	"honnef.co/go/tender/curve"
)

// DefaultTensionRatio bounds control point deviation to a quarter of the
// segment's horizontal extent.
const DefaultTensionRatio = 0.25

// Segment is one piece of a contour.
type Segment struct {
	Kind Kind
	// DX and DY are the extents of the segment, relative to its start.
	DX, DY float64
	// Tension in [-1, 1] moves control points off the chord.
	Tension float64
}

// Segments is a complete contour.
type Segments [4]Segment

// ShiftDY returns a copy of segs with every DY shifted by dy.
func (segs Segments) ShiftDY(dy float64) Segments {
	for i := range segs {
		segs[i].DY += dy
	}
	return segs
}

// ControlOffset returns the vertical displacement of control points for a
// segment. For |tension| <= 1 its magnitude is at most dx*ratio.
func ControlOffset(tension, dx, ratio float64) float64 {
	return tension * dx * ratio
}

// Synthesizer builds paths from segments.
type Synthesizer struct {
	// TensionRatio scales [Segment.Tension] into a control offset. Tensions
	// are not validated; callers must keep them within [-1, 1] for the bound
	// documented on [ControlOffset] to hold.
	TensionRatio float64
}

// Build returns a path starting with a move to start, followed by one
// element per segment, in absolute coordinates.
//
// Smooth kinds produce [curve.SmoothCubicTo] and [curve.SmoothQuadTo]
// elements; use [curve.BezPath.ResolveSmooth] when the consumer cannot
// reflect control points itself.
func (s Synthesizer) Build(start curve.Point, segs Segments) curve.BezPath {
	p := make(curve.BezPath, 0, len(segs)+1)
	p.MoveTo(start)
	s.Append(&p, start, segs)
	return p
}

// Append draws segs onto p, starting at cur, which must be p's current point.
func (s Synthesizer) Append(p *curve.BezPath, cur curve.Point, segs Segments) curve.Point {
	at := func(seg Segment, t, off float64) curve.Point {
		return cur.Translate(curve.Vec(seg.DX*t, seg.DY*t+off))
	}
	for _, seg := range segs {
		off := ControlOffset(seg.Tension, seg.DX, s.TensionRatio)
		end := cur.Translate(curve.Vec(seg.DX, seg.DY))
		switch seg.Kind {
		case Line:
			p.LineTo(end)
		case Cubic:
			p.CubicTo(at(seg, 0.25, off), at(seg, 0.75, off), end)
		case Quad:
			p.QuadTo(at(seg, 0.5, off), end)
		case SmoothCubic:
			p.SmoothCubicTo(at(seg, 0.75, off), end)
		case SmoothQuad:
			p.SmoothQuadTo(end)
		default:
			panic("invalid segment kind " + seg.Kind.String())
		}
		cur = end
	}
	return cur
}
