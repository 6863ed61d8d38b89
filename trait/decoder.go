// Package trait decodes genomes into phenotypic traits.
//
// A [Layout] names the gene ranges of each trait group. A [Decoder] reads a
// genome through a layout and turns resolved gene values into segment
// widths, vertical deltas, segment kinds, tensions and colors. Decoding is
// deterministic: the same genome, layout and configuration always produce
// the same traits.
package trait

import (
	"fmt"
	"image/color"

	"honnef.co/go/tender/contour"
	"honnef.co/go/tender/genome"
)

// Boundary selects the upper or lower lid of an eye.
type Boundary int

const (
	Upper Boundary = iota
	Lower
)

func (b Boundary) String() string {
	switch b {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return fmt.Sprintf("Boundary(%d)", int(b))
	}
}

// Interval is a closed range of values.
type Interval struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Lerp maps t in [0, 1] onto the interval.
func (iv Interval) Lerp(t float64) float64 {
	return iv.Min + t*(iv.Max-iv.Min)
}

// DeltaRanges holds the vertical delta range of every segment of both lids.
type DeltaRanges struct {
	Upper [4]Interval `yaml:"upper"`
	Lower [4]Interval `yaml:"lower"`
}

// DefaultDeltaRanges are the vertical ranges of a 140 unit wide eye.
var DefaultDeltaRanges = DeltaRanges{
	Upper: [4]Interval{{-41, -23}, {-14, 10}, {-10, 20}, {-16, 35}},
	Lower: [4]Interval{{10, 24}, {-4, 12}, {-6, 16}, {4, 16}},
}

// Scale returns the ranges multiplied by f.
func (dr DeltaRanges) Scale(f float64) DeltaRanges {
	for i := range 4 {
		dr.Upper[i] = Interval{dr.Upper[i].Min * f, dr.Upper[i].Max * f}
		dr.Lower[i] = Interval{dr.Lower[i].Min * f, dr.Lower[i].Max * f}
	}
	return dr
}

// DefaultKindTable weights segment kinds l, c, q, s, t as 0.25, 0.35, 0.20,
// 0.10 and 0.10.
var DefaultKindTable = MustCategorical(
	Weighted[contour.Kind]{contour.Line, 0.25},
	Weighted[contour.Kind]{contour.Cubic, 0.35},
	Weighted[contour.Kind]{contour.Quad, 0.20},
	Weighted[contour.Kind]{contour.SmoothCubic, 0.10},
	Weighted[contour.Kind]{contour.SmoothQuad, 0.10},
)

// Decoder reads eye traits from a genome.
type Decoder struct {
	g      *genome.Genome
	layout Layout
}

// NewDecoder returns a decoder for g. It fails if the layout is invalid or
// g is nil or too short to hold it.
func NewDecoder(g *genome.Genome, layout Layout) (*Decoder, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("no genome to decode: %w", genome.ErrIndexOutOfRange)
	}
	if n := layout.MinGenes(); g.Len() < n {
		return nil, fmt.Errorf("genome of %d genes does not cover layout of %d: %w", g.Len(), n, genome.ErrIndexOutOfRange)
	}
	return &Decoder{g: g, layout: layout}, nil
}

// Layout returns the decoder's layout.
func (d *Decoder) Layout() Layout { return d.layout }

func (d *Decoder) gene(r Range, i int) (uint8, error) {
	if i < 0 || i >= r.Len {
		return 0, fmt.Errorf("gene %d of a %d gene group: %w", i, r.Len, genome.ErrIndexOutOfRange)
	}
	return d.g.Resolve(r.Index(i))
}

func (d *Decoder) perBoundary(b Boundary, upper, lower Range) (Range, error) {
	switch b {
	case Upper:
		return upper, nil
	case Lower:
		return lower, nil
	default:
		return Range{}, fmt.Errorf("invalid boundary %d", int(b))
	}
}

// WidthDelta returns the raw width of segment seg, the mean of its four
// width genes, floored at 1.
func (d *Decoder) WidthDelta(seg int) (float64, error) {
	if seg < 0 || seg >= 4 {
		return 0, fmt.Errorf("segment %d: %w", seg, genome.ErrIndexOutOfRange)
	}
	var sum int
	for i := range 4 {
		v, err := d.gene(d.layout.Width, seg*4+i)
		if err != nil {
			return 0, err
		}
		sum += int(v)
	}
	return max(1, float64(sum)/4), nil
}

// NormalizeWidths scales raw so that it sums to total.
func NormalizeWidths(raw [4]float64, total float64) [4]float64 {
	scale := total / (raw[0] + raw[1] + raw[2] + raw[3])
	for i := range raw {
		raw[i] *= scale
	}
	return raw
}

// VerticalDelta maps the delta gene of a segment into its range.
func (d *Decoder) VerticalDelta(b Boundary, seg int, ranges DeltaRanges) (float64, error) {
	r, err := d.perBoundary(b, d.layout.UpperDelta, d.layout.LowerDelta)
	if err != nil {
		return 0, err
	}
	v, err := d.gene(r, seg)
	if err != nil {
		return 0, err
	}
	iv := ranges.Upper
	if b == Lower {
		iv = ranges.Lower
	}
	return iv[seg].Lerp(float64(v) / 255), nil
}

// SegmentKind decodes the kind gene of a segment through table.
func (d *Decoder) SegmentKind(b Boundary, seg int, table Categorical[contour.Kind]) (contour.Kind, error) {
	if table.Len() == 0 {
		return 0, fmt.Errorf("%w: no entries", ErrInvalidWeightTable)
	}
	r, err := d.perBoundary(b, d.layout.UpperKind, d.layout.LowerKind)
	if err != nil {
		return 0, err
	}
	v, err := d.gene(r, seg)
	if err != nil {
		return 0, err
	}
	return table.Decode(v), nil
}

// Tension maps the tension gene of a segment onto [-1, 1].
func (d *Decoder) Tension(b Boundary, seg int) (float64, error) {
	r, err := d.perBoundary(b, d.layout.UpperTension, d.layout.LowerTension)
	if err != nil {
		return 0, err
	}
	v, err := d.gene(r, seg)
	if err != nil {
		return 0, err
	}
	return float64(v)/127.5 - 1, nil
}

// ColorChannelAverage returns the truncated mean of the genes at indices.
func (d *Decoder) ColorChannelAverage(indices []int) (uint8, error) {
	if len(indices) == 0 {
		return 0, fmt.Errorf("%w: empty color channel", ErrInvalidLayout)
	}
	var sum int
	for _, i := range indices {
		v, err := d.g.Resolve(i)
		if err != nil {
			return 0, err
		}
		sum += int(v)
	}
	return uint8(sum / len(indices)), nil
}

func (d *Decoder) rgb(n int) (color.RGBA, error) {
	var out [3]uint8
	for i, r := range []Range{d.layout.IrisRed, d.layout.IrisGreen, d.layout.IrisBlue} {
		idx := make([]int, n)
		for j := range idx {
			idx[j] = r.Index(j)
		}
		v, err := d.ColorChannelAverage(idx)
		if err != nil {
			return color.RGBA{}, err
		}
		out[i] = v
	}
	return color.RGBA{R: out[0], G: out[1], B: out[2], A: 0xff}, nil
}

// IrisColor averages all four genes of each color channel.
func (d *Decoder) IrisColor() (color.RGBA, error) { return d.rgb(4) }

// HighlightColor averages the first three genes of each color channel.
func (d *Decoder) HighlightColor() (color.RGBA, error) { return d.rgb(3) }

// HighlightMultiplier returns the highlight gene scaled to [0, 1].
func (d *Decoder) HighlightMultiplier() (float64, error) {
	v, err := d.gene(d.layout.Highlight, 0)
	if err != nil {
		return 0, err
	}
	return float64(v) / 255, nil
}
