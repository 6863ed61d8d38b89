package curve

import (
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestElementsToSegmentsClosePathReferstoLastMove(t *testing.T) {
	last := func(seq iter.Seq[PathSegment]) PathSegment {
		var el PathSegment
		for el = range seq {
		}
		return el
	}
	var p BezPath
	p.MoveTo(Pt(5.0, 5.0))
	p.LineTo(Pt(15.0, 15.0))
	p.MoveTo(Pt(10.0, 10.0))
	p.LineTo(Pt(15.0, 15.0))
	p.ClosePath()

	want := Line{Pt(15, 15), Pt(10, 10)}.Seg()
	diff(t, want, last(p.Segments()))
}

func TestResolveSmoothCubicAfterCubic(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(10, 10), Pt(20, 10), Pt(30, 0))
	p.SmoothCubicTo(Pt(50, -10), Pt(60, 0))

	want := BezPath{
		MoveTo(Pt(0, 0)),
		CubicTo(Pt(10, 10), Pt(20, 10), Pt(30, 0)),
		CubicTo(Pt(40, -10), Pt(50, -10), Pt(60, 0)),
	}
	diff(t, p.ResolveSmooth(), want)
}

func TestResolveSmoothCubicAfterLine(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.SmoothCubicTo(Pt(15, 5), Pt(20, 0))

	want := BezPath{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(10, 0)),
		CubicTo(Pt(10, 0), Pt(15, 5), Pt(20, 0)),
	}
	diff(t, p.ResolveSmooth(), want)
}

func TestResolveSmoothQuadChain(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.QuadTo(Pt(5, 10), Pt(10, 0))
	p.SmoothQuadTo(Pt(20, 0))
	p.SmoothQuadTo(Pt(30, 0))

	want := BezPath{
		MoveTo(Pt(0, 0)),
		QuadTo(Pt(5, 10), Pt(10, 0)),
		QuadTo(Pt(15, -10), Pt(20, 0)),
		QuadTo(Pt(25, 10), Pt(30, 0)),
	}
	diff(t, p.ResolveSmooth(), want)
}

func TestResolveSmoothQuadAfterCubic(t *testing.T) {
	// A T command only reflects quadratic control points. After a cubic the
	// control point collapses onto the current point, making a straight line.
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(1, 5), Pt(2, 5), Pt(3, 0))
	p.SmoothQuadTo(Pt(9, 0))

	got := p.ResolveSmooth()
	diff(t, got[2], QuadTo(Pt(3, 0), Pt(9, 0)))
}

func TestResolveSmoothAfterClose(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(1, 1))
	p.QuadTo(Pt(2, 3), Pt(4, 1))
	p.ClosePath()
	p.SmoothQuadTo(Pt(6, 1))

	got := p.ResolveSmooth()
	diff(t, got[3], QuadTo(Pt(1, 1), Pt(6, 1)))
}

func TestSegmentsResolveSmooth(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(10, 10), Pt(20, 10), Pt(30, 0))
	p.SmoothCubicTo(Pt(50, -10), Pt(60, 0))

	segs := slices.Collect(p.Segments())
	want := []PathSegment{
		CubicBez{Pt(0, 0), Pt(10, 10), Pt(20, 10), Pt(30, 0)}.Seg(),
		CubicBez{Pt(30, 0), Pt(40, -10), Pt(50, -10), Pt(60, 0)}.Seg(),
	}
	diff(t, segs, want)
}

func TestSmoothTransformCommutes(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(10, 10), Pt(20, 10), Pt(30, 0))
	p.SmoothCubicTo(Pt(50, -10), Pt(60, 0))
	p.QuadTo(Pt(65, 5), Pt(70, 0))
	p.SmoothQuadTo(Pt(80, 0))

	aff := Scale(0.5, 0.5).ThenTranslate(Vec(3, -7))
	a := p.Transform(aff).ResolveSmooth()
	b := p.ResolveSmooth().Transform(aff)
	diff(t, a, b, cmpopts.EquateApprox(0, 1e-12))
}

func TestCurrentPoint(t *testing.T) {
	var p BezPath
	if _, ok := p.CurrentPoint(); ok {
		t.Fatal("empty path has a current point")
	}
	p.MoveTo(Pt(1, 2))
	p.LineTo(Pt(3, 4))
	p.SmoothCubicTo(Pt(5, 6), Pt(7, 8))
	if pt, _ := p.CurrentPoint(); pt != Pt(7, 8) {
		t.Errorf("got %v, want (7, 8)", pt)
	}
	p.ClosePath()
	if pt, _ := p.CurrentPoint(); pt != Pt(1, 2) {
		t.Errorf("got %v, want (1, 2)", pt)
	}
}

func TestControlBoxIncludesImpliedPoints(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(0, 10), Pt(10, -20), Pt(10, 0))
	// The implied control point is (10, 20).
	p.SmoothCubicTo(Pt(20, 0), Pt(20, 0))
	want := Rect{0, -20, 20, 20}
	diff(t, p.ControlBox(), want)
}

func TestBoundingBox(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.QuadTo(Pt(5, 10), Pt(10, 0))
	diff(t, p.BoundingBox(), Rect{0, 0, 10, 5}, cmpopts.EquateApprox(0, 1e-12))
}

func TestGetSegment(t *testing.T) {
	// Segment(i) should produce the same results as Segments()[i-1]
	var p BezPath
	p.MoveTo(Pt(0, 72))
	p.CubicTo(Pt(5, 60), Pt(15, 55), Pt(20, 50))
	p.SmoothCubicTo(Pt(40, 45), Pt(50, 48))
	p.LineTo(Pt(80, 60))
	p.QuadTo(Pt(100, 70), Pt(120, 70))
	p.SmoothQuadTo(Pt(140, 72))
	segments := slices.Collect(p.Segments())
	var getSegments []PathSegment
	for i := 1; ; i++ {
		seg, ok := p.Segment(i)
		if !ok {
			break
		}
		getSegments = append(getSegments, seg)
	}
	diff(t, segments, getSegments)
}

func TestReverseUnclosed(t *testing.T) {
	reverseHelper(
		t,
		[]PathElement{
			MoveTo(Pt(10, 10)),
			QuadTo(Pt(40, 40), Pt(60, 10)),
			LineTo(Pt(100, 10)),
			CubicTo(Pt(125, 10), Pt(150, 50), Pt(125, 60)),
		},
		[]PathElement{
			MoveTo(Pt(125, 60)),
			CubicTo(Pt(150, 50), Pt(125, 10), Pt(100, 10)),
			LineTo(Pt(60, 10)),
			QuadTo(Pt(40, 40), Pt(10, 10)),
		},
	)
}

func TestReverseClosedShape(t *testing.T) {
	reverseHelper(
		t,
		[]PathElement{
			MoveTo(Pt(125, 100)),
			QuadTo(Pt(200, 150), Pt(175, 300)),
			CubicTo(Pt(150, 150), Pt(50, 150), Pt(25, 300)),
			QuadTo(Pt(0, 150), Pt(75, 100)),
			LineTo(Pt(100, 50)),
			ClosePath(),
		},
		[]PathElement{
			MoveTo(Pt(100, 50)),
			LineTo(Pt(75, 100)),
			QuadTo(Pt(0, 150), Pt(25, 300)),
			CubicTo(Pt(50, 150), Pt(150, 150), Pt(175, 300)),
			QuadTo(Pt(200, 150), Pt(125, 100)),
			ClosePath(),
		},
	)
}

func TestReverseSmooth(t *testing.T) {
	reverseHelper(
		t,
		[]PathElement{
			MoveTo(Pt(0, 0)),
			CubicTo(Pt(10, 10), Pt(20, 10), Pt(30, 0)),
			SmoothCubicTo(Pt(50, -10), Pt(60, 0)),
		},
		[]PathElement{
			MoveTo(Pt(60, 0)),
			CubicTo(Pt(50, -10), Pt(40, -10), Pt(30, 0)),
			CubicTo(Pt(20, 10), Pt(10, 10), Pt(0, 0)),
		},
	)
}

func TestReverseMultipleMoves(t *testing.T) {
	reverseHelper(
		t,
		[]PathElement{
			MoveTo(Pt(2.0, 2.0)),
			MoveTo(Pt(3.0, 3.0)),
			ClosePath(),
			MoveTo(Pt(4.0, 4.0)),
		},
		[]PathElement{
			MoveTo(Pt(2.0, 2.0)),
			MoveTo(Pt(3.0, 3.0)),
			ClosePath(),
			MoveTo(Pt(4.0, 4.0)),
		},
	)
}

func TestReverseEmpty(t *testing.T) {
	reverseHelper(t, []PathElement{}, []PathElement{})
}

func TestReverseSinglePointClosed(t *testing.T) {
	reverseHelper(
		t,
		[]PathElement{MoveTo(Pt(0.0, 0.0)), ClosePath()},
		[]PathElement{MoveTo(Pt(0.0, 0.0)), ClosePath()},
	)
}

func reverseHelper(t *testing.T, contour, want []PathElement) {
	t.Helper()

	var got []PathElement = BezPath(contour).ReverseSubpaths()
	diff(t, got, want)
}
