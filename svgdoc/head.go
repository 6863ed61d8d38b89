package svgdoc

import (
	"io"

	"honnef.co/go/tender/curve"
	"honnef.co/go/tender/phenotype"
)

// landmarkRadius is the radius of landmark dots on a 360 unit tall head.
const landmarkRadius = 5

func (c *canvas) head(h phenotype.Head) {
	stroke := []string{`fill="none"`, `stroke="black"`, c.strokeWidth(h.StrokeWidth)}
	c.path(h.Right, stroke...)
	c.path(h.Left, stroke...)
}

func (c *canvas) landmarks(h phenotype.Head) {
	r := landmarkRadius * h.Height / 360
	for _, lm := range h.Landmarks {
		c.circle(curve.Circle{Center: lm.Point, Radius: r}, `fill="red"`)
	}
}

func headView(h phenotype.Head) curve.Rect {
	return curve.Rect{X0: 0, Y0: 0, X1: 2 * h.CenterX, Y1: 2*h.Top + h.Height}
}

// WriteHead writes a head on a white background with its center line. With
// showPoints, the construction landmarks are marked.
func WriteHead(w io.Writer, h phenotype.Head, showPoints bool) error {
	view := headView(h)
	c := newCanvas(w)
	c.start(view)
	c.rect(view, `fill="white"`)
	c.line(curve.Pt(h.CenterX, view.Y0), curve.Pt(h.CenterX, view.Y1), `stroke="#eeeeee"`, `stroke-width="1"`)
	c.head(h)
	if showPoints {
		c.landmarks(h)
	}
	return c.end()
}

// WriteFace writes a face: the head outline and both eyes.
func WriteFace(w io.Writer, f phenotype.Face) error {
	c := newCanvas(w)
	c.start(f.ViewBox)
	c.Gid("head")
	c.head(f.Head)
	c.Gend()
	c.Gid("leftEye")
	c.eye(f.LeftEye, "leftEyeClip")
	c.Gend()
	c.Gid("rightEye")
	c.eye(f.RightEye, "rightEyeClip")
	c.Gend()
	return c.end()
}
