package trait

import (
	"fmt"
	"image/color"

	"honnef.co/go/tender/contour"
)

// Config holds the numeric inputs of [Decoder.Decode].
type Config struct {
	// Width is the total horizontal extent the segment widths are scaled to.
	Width       float64
	KindTable   Categorical[contour.Kind]
	DeltaRanges DeltaRanges
}

// Traits is a fully decoded eye.
type Traits struct {
	DX [4]float64
	// Lower has already been balanced against Upper.
	Upper, Lower               [4]float64
	UpperKinds, LowerKinds     [4]contour.Kind
	UpperTension, LowerTension [4]float64

	Iris                color.RGBA
	Highlight           color.RGBA
	HighlightMultiplier float64
}

// Decode decodes every eye trait. It fails on the first invalid input and
// returns no partial result.
func (d *Decoder) Decode(cfg Config) (Traits, error) {
	if cfg.KindTable.Len() == 0 {
		return Traits{}, fmt.Errorf("%w: no entries", ErrInvalidWeightTable)
	}
	if !(cfg.Width > 0) {
		return Traits{}, fmt.Errorf("width must be positive, got %v", cfg.Width)
	}

	var tr Traits
	var raw [4]float64
	for seg := range 4 {
		var err error
		if raw[seg], err = d.WidthDelta(seg); err != nil {
			return Traits{}, err
		}
		if tr.Upper[seg], err = d.VerticalDelta(Upper, seg, cfg.DeltaRanges); err != nil {
			return Traits{}, err
		}
		if tr.Lower[seg], err = d.VerticalDelta(Lower, seg, cfg.DeltaRanges); err != nil {
			return Traits{}, err
		}
		if tr.UpperKinds[seg], err = d.SegmentKind(Upper, seg, cfg.KindTable); err != nil {
			return Traits{}, err
		}
		if tr.LowerKinds[seg], err = d.SegmentKind(Lower, seg, cfg.KindTable); err != nil {
			return Traits{}, err
		}
		if tr.UpperTension[seg], err = d.Tension(Upper, seg); err != nil {
			return Traits{}, err
		}
		if tr.LowerTension[seg], err = d.Tension(Lower, seg); err != nil {
			return Traits{}, err
		}
	}
	tr.DX = NormalizeWidths(raw, cfg.Width)
	tr.Lower = contour.Balance(tr.Upper, tr.Lower)

	var err error
	if tr.Iris, err = d.IrisColor(); err != nil {
		return Traits{}, err
	}
	if tr.Highlight, err = d.HighlightColor(); err != nil {
		return Traits{}, err
	}
	if tr.HighlightMultiplier, err = d.HighlightMultiplier(); err != nil {
		return Traits{}, err
	}
	return tr, nil
}

// Segments assembles the contour segments of boundary b.
func (tr Traits) Segments(b Boundary) contour.Segments {
	dy, kinds, tension := tr.Upper, tr.UpperKinds, tr.UpperTension
	if b == Lower {
		dy, kinds, tension = tr.Lower, tr.LowerKinds, tr.LowerTension
	}
	var segs contour.Segments
	for i := range segs {
		segs[i] = contour.Segment{
			Kind:    kinds[i],
			DX:      tr.DX[i],
			DY:      dy[i],
			Tension: tension[i],
		}
	}
	return segs
}
