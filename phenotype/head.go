package phenotype

import (
	"fmt"

	"honnef.co/go/tender/curve"
	"honnef.co/go/tender/genome"
)

// Landmark is a named point of a head outline.
type Landmark struct {
	Name  string
	Point curve.Point
}

// Head is a head outline made of two mirrored halves meeting at the crown
// and the chin.
type Head struct {
	Right curve.BezPath
	Left  curve.BezPath
	// Landmarks are the construction points of both halves: crown, chin,
	// then ear tops, ear bottoms, jaws and chin sides, left before right.
	Landmarks []Landmark

	CenterX, Top, Height, Width float64
	StrokeWidth                 float64
}

// headGene returns a multiplicative factor in [1-variation, 1+variation].
func headGene(g *genome.Genome, idx int, variation float64) (float64, error) {
	v, err := g.Resolve(idx)
	if err != nil {
		return 0, fmt.Errorf("decoding head: %w", err)
	}
	return 1 + variation*(float64(v)/127.5-1), nil
}

// NewHead builds a head. Genes from cfg.Layout vary the width, jaw, chin and
// crown proportions of g's head; a nil g yields the unvaried base head.
func NewHead(g *genome.Genome, cfg HeadConfig) (Head, error) {
	if err := cfg.Validate(); err != nil {
		return Head{}, err
	}
	if g != nil {
		if n := cfg.Layout.MinGenes(); g.Len() < n {
			return Head{}, fmt.Errorf("genome of %d genes does not cover head layout of %d: %w", g.Len(), n, genome.ErrIndexOutOfRange)
		}
		for _, f := range []struct {
			idx int
			v   *float64
		}{
			{cfg.Layout.WidthRatio, &cfg.WidthRatio},
			{cfg.Layout.JawOffset, &cfg.JawOffset},
			{cfg.Layout.ChinSide, &cfg.ChinSideOffset},
			{cfg.Layout.CrownPull, &cfg.CrownPull},
		} {
			m, err := headGene(g, f.idx, cfg.Variation)
			if err != nil {
				return Head{}, err
			}
			*f.v *= m
		}
	}

	h := cfg.Height
	width := h * cfg.WidthRatio
	half := width / 2
	cx, top := cfg.CenterX, cfg.Top
	at := func(ratio float64) float64 { return top + h*ratio }

	crown := curve.Pt(cx, top)
	chin := curve.Pt(cx, top+h)
	earTop := curve.Pt(cx+half, at(cfg.EarTop))
	earBottom := curve.Pt(cx+half, at(cfg.EarBottom))
	jaw := curve.Pt(cx+half*cfg.JawOffset, at(cfg.Jaw))
	chinSide := curve.Pt(cx+half*cfg.ChinSideOffset, at(cfg.ChinSide))

	var right curve.BezPath
	right.MoveTo(crown)
	right.CubicTo(
		curve.Pt(cx+half*cfg.CrownPull, top),
		curve.Pt(earTop.X, earTop.Y-h*cfg.CrownDrop),
		earTop,
	)
	right.LineTo(earBottom)
	right.LineTo(jaw)
	right.LineTo(chinSide)
	right.LineTo(chin)

	mirror := curve.FlipX.ThenTranslate(curve.Vec(2*cx, 0))
	landmarks := []Landmark{
		{"crown", crown},
		{"chin", chin},
	}
	for _, lm := range []Landmark{
		{"ear top", earTop},
		{"ear bottom", earBottom},
		{"jaw", jaw},
		{"chin side", chinSide},
	} {
		landmarks = append(landmarks,
			Landmark{"left " + lm.Name, lm.Point.Transform(mirror)},
			Landmark{"right " + lm.Name, lm.Point},
		)
	}

	return Head{
		Right:       right,
		Left:        right.Transform(mirror),
		Landmarks:   landmarks,
		CenterX:     cx,
		Top:         top,
		Height:      h,
		Width:       width,
		StrokeWidth: cfg.StrokeWidth,
	}, nil
}

// Bounds returns the bounding box of the outline.
func (h Head) Bounds() curve.Rect {
	return h.Right.BoundingBox().Union(h.Left.BoundingBox())
}
