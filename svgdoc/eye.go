package svgdoc

import (
	"fmt"
	"io"

	"honnef.co/go/tender/curve"
	"honnef.co/go/tender/phenotype"
)

func (c *canvas) eye(e phenotype.Eye, clipID string) {
	clip := fmt.Sprintf(`clip-path="url(#%s)"`, clipID)
	stroke := []string{`fill="none"`, `stroke="black"`, c.strokeWidth(e.StrokeWidth)}

	c.Def()
	c.ClipPath(fmt.Sprintf(`id="%s"`, clipID), `clipPathUnits="userSpaceOnUse"`)
	c.path(e.Opening())
	c.ClipEnd()
	c.DefEnd()

	c.circle(e.Iris, fill(e.IrisColor), clip)
	c.polygon(e.Highlight, fill(e.HighlightColor), clip)
	c.circle(e.Pupil, `fill="black"`, clip)

	c.path(e.Upper, stroke...)
	c.path(e.Fold, stroke...)
	c.path(e.Lower, stroke...)
}

// WriteEye writes a document containing a single eye. clipID names the clip
// path of the eye opening.
func WriteEye(w io.Writer, e phenotype.Eye, clipID string) error {
	c := newCanvas(w)
	c.start(e.Bounds().Inflate(e.StrokeWidth, e.StrokeWidth))
	c.eye(e, clipID)
	return c.end()
}

// Grid lays out eyes row-major in cells of a fixed size.
type Grid struct {
	Cols       int
	CellWidth  int
	CellHeight int
}

// WriteGrid writes eyes into a grid document. The number of rows follows
// from len(eyes) and g.Cols.
func WriteGrid(w io.Writer, eyes []phenotype.Eye, g Grid) error {
	if g.Cols <= 0 || g.CellWidth <= 0 || g.CellHeight <= 0 {
		return fmt.Errorf("invalid grid %d columns of %d×%d", g.Cols, g.CellWidth, g.CellHeight)
	}
	rows := (len(eyes) + g.Cols - 1) / g.Cols
	c := newCanvas(w)
	c.start(curve.Rect{X1: float64(g.Cols * g.CellWidth), Y1: float64(rows * g.CellHeight)})
	for i, e := range eyes {
		row, col := i/g.Cols, i%g.Cols
		c.Translate(float64(col*g.CellWidth), float64(row*g.CellHeight))
		c.eye(e, fmt.Sprintf("eyeClip_%d_%d", row, col))
		c.Gend()
	}
	return c.end()
}
