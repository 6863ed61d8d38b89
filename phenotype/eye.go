// Package phenotype assembles eyes, heads and faces from genomes.
//
// The geometry comes from [trait] and [contour]; this package adds the
// static shapes around it (iris, pupil, highlight, head outline), colors,
// and placement. Every shape is kept as [curve] geometry so that a whole
// organ can be moved, mirrored or normalized with a single [curve.Affine].
package phenotype

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"honnef.co/go/tender/contour"
	"honnef.co/go/tender/curve"
	"honnef.co/go/tender/genome"
	"honnef.co/go/tender/trait"
)

// Eye is a synthesized eye.
type Eye struct {
	Upper curve.BezPath
	Lower curve.BezPath
	// Fold is the lid crease, drawn with the upper lid's kinds and tensions.
	Fold curve.BezPath

	Iris      curve.Circle
	Pupil     curve.Circle
	Highlight []curve.Point

	IrisColor      colorful.Color
	HighlightColor colorful.Color

	StrokeWidth float64
	// Width is the horizontal extent of the lids: the configured width, or
	// 1 for normalized eyes.
	Width float64

	Traits trait.Traits
}

// NewEye decodes g with cfg and builds the eye.
func NewEye(g *genome.Genome, cfg EyeConfig) (Eye, error) {
	if err := cfg.Validate(); err != nil {
		return Eye{}, err
	}
	table, err := cfg.KindTable()
	if err != nil {
		return Eye{}, err
	}
	d, err := trait.NewDecoder(g, cfg.Layout)
	if err != nil {
		return Eye{}, err
	}
	tr, err := d.Decode(trait.Config{
		Width:       cfg.Width,
		KindTable:   table,
		DeltaRanges: cfg.DeltaRanges,
	})
	if err != nil {
		return Eye{}, fmt.Errorf("decoding eye: %w", err)
	}
	e := assemble(tr, cfg)
	if cfg.Normalize {
		e = e.Transform(curve.Scale(1/cfg.Width, 1/cfg.Width))
	}
	return e, nil
}

func assemble(tr trait.Traits, cfg EyeConfig) Eye {
	synth := contour.Synthesizer{TensionRatio: cfg.TensionRatio}
	start := curve.Pt(0, cfg.BaseY)

	upper := tr.Segments(trait.Upper)
	fold := upper.ShiftDY(-cfg.Width * cfg.FoldRatio)

	center := IrisCenter(tr, cfg.BaseY)
	iris := colorful.Color{
		R: float64(tr.Iris.R) / 255,
		G: float64(tr.Iris.G) / 255,
		B: float64(tr.Iris.B) / 255,
	}
	return Eye{
		Upper:          synth.Build(start, upper),
		Lower:          synth.Build(start, tr.Segments(trait.Lower)),
		Fold:           synth.Build(start, fold),
		Iris:           curve.Circle{Center: center, Radius: cfg.IrisRadius},
		Pupil:          curve.Circle{Center: center, Radius: cfg.PupilRadius},
		Highlight:      curve.Circle{Center: center, Radius: cfg.IrisRadius * cfg.HighlightRatio}.Polygon(cfg.HighlightSides),
		IrisColor:      iris,
		HighlightColor: Lighten(iris, cfg.LightenFactor),
		StrokeWidth:    cfg.StrokeWidth,
		Width:          cfg.Width,
		Traits:         tr,
	}
}

// IrisCenter returns the iris anchor: horizontally after the first two
// segments, vertically halfway between the lids at the end of their third
// segments' deltas.
func IrisCenter(tr trait.Traits, baseY float64) curve.Point {
	return curve.Pt(
		tr.DX[0]+tr.DX[1],
		(baseY+baseY+tr.Upper[2]+tr.Lower[2])/2,
	)
}

// Lighten blends c toward white by factor.
func Lighten(c colorful.Color, factor float64) colorful.Color {
	return c.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, factor).Clamped()
}

// RGBA converts c to an 8-bit color.
func RGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Transform returns the eye with aff applied to all geometry. Radii and the
// stroke width are scaled by [curve.Affine.LinearScale].
func (e Eye) Transform(aff curve.Affine) Eye {
	s := aff.LinearScale()
	e.Upper = e.Upper.Transform(aff)
	e.Lower = e.Lower.Transform(aff)
	e.Fold = e.Fold.Transform(aff)
	e.Iris = e.Iris.Transform(aff)
	e.Pupil = e.Pupil.Transform(aff)
	hl := make([]curve.Point, len(e.Highlight))
	for i, pt := range e.Highlight {
		hl[i] = pt.Transform(aff)
	}
	e.Highlight = hl
	e.StrokeWidth *= s
	e.Width *= s
	return e
}

// Opening returns the closed outline between the lids: the upper lid
// followed by the lower lid drawn backwards.
func (e Eye) Opening() curve.BezPath {
	rev := e.Lower.ReverseSubpaths()
	out := make(curve.BezPath, 0, len(e.Upper)+len(rev))
	out = append(out, e.Upper...)
	if len(rev) > 0 {
		// Skip the reversed lid's move; the upper lid already ends there.
		out = append(out, rev[1:]...)
	}
	out.ClosePath()
	return out
}

// Bounds returns the bounding box of the lids, crease and iris.
func (e Eye) Bounds() curve.Rect {
	return e.Upper.BoundingBox().
		Union(e.Lower.BoundingBox()).
		Union(e.Fold.BoundingBox()).
		Union(e.Iris.BoundingBox())
}
