// Package svgdoc writes eyes, heads and faces as SVG documents.
//
// Documents are built with the float64 flavor of svgo, which writes
// coordinates with two decimals. All functions report the first error
// returned by the underlying writer.
package svgdoc

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
	"github.com/lucasb-eyer/go-colorful"

	"honnef.co/go/tender/curve"
)

// PathOptions controls how path data is serialized.
var PathOptions = curve.SVGOptions{Relative: true, MaxPrecision: 2}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err
	return n, err
}

// canvas adapts an svgo document to curve geometry.
type canvas struct {
	*svg.SVG
	ew *errWriter
}

func newCanvas(w io.Writer) *canvas {
	ew := &errWriter{w: w}
	return &canvas{SVG: svg.New(ew), ew: ew}
}

// start opens a document whose size and viewBox are view.
func (c *canvas) start(view curve.Rect) {
	c.Startview(view.Width(), view.Height(), view.X0, view.Y0, view.Width(), view.Height())
}

func (c *canvas) end() error {
	c.End()
	return c.ew.err
}

func (c *canvas) circle(circ curve.Circle, s ...string) {
	c.Circle(circ.Center.X, circ.Center.Y, circ.Radius, s...)
}

func (c *canvas) polygon(pts []curve.Point, s ...string) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, pt := range pts {
		xs[i], ys[i] = pt.X, pt.Y
	}
	c.Polygon(xs, ys, s...)
}

func (c *canvas) rect(r curve.Rect, s ...string) {
	c.Rect(r.X0, r.Y0, r.Width(), r.Height(), s...)
}

func (c *canvas) line(a, b curve.Point, s ...string) {
	c.Line(a.X, a.Y, b.X, b.Y, s...)
}

func (c *canvas) path(p curve.BezPath, s ...string) {
	c.Path(p.SVG(PathOptions), s...)
}

func (c *canvas) strokeWidth(w float64) string {
	return fmt.Sprintf(`stroke-width="%.*f"`, c.Decimals, w)
}

func fill(col colorful.Color) string {
	return fmt.Sprintf(`fill="%s"`, col.Clamped().Hex())
}
