package trait

import (
	"errors"
	"image/color"
	"math"
	"math/rand/v2"
	"testing"

	"honnef.co/go/tender/contour"
	"honnef.co/go/tender/genome"
)

func TestNormalizeWidths(t *testing.T) {
	diff(t, [4]float64{25, 25, 25, 25}, NormalizeWidths([4]float64{1, 1, 1, 1}, 100))

	r := rand.New(rand.NewPCG(3, 4))
	for range 1000 {
		var raw [4]float64
		for i := range raw {
			raw[i] = 1 + r.Float64()*254
		}
		total := 1 + r.Float64()*500
		got := NormalizeWidths(raw, total)
		sum := got[0] + got[1] + got[2] + got[3]
		if math.Abs(sum-total) > 1e-6*total {
			t.Fatalf("NormalizeWidths(%v, %v) sums to %v", raw, total, sum)
		}
	}
}

func TestNewDecoder(t *testing.T) {
	g := expressed(t, filled(52, 0))
	if _, err := NewDecoder(g, DefaultLayout); !errors.Is(err, genome.ErrIndexOutOfRange) {
		t.Errorf("short genome: got error %v, want %v", err, genome.ErrIndexOutOfRange)
	}
	bad := DefaultLayout
	bad.Highlight = Range{0, 1}
	if _, err := NewDecoder(expressed(t, filled(60, 0)), bad); !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("bad layout: got error %v, want %v", err, ErrInvalidLayout)
	}
	if _, err := NewDecoder(nil, DefaultLayout); !errors.Is(err, genome.ErrIndexOutOfRange) {
		t.Errorf("nil genome: got error %v, want %v", err, genome.ErrIndexOutOfRange)
	}
	if _, err := NewDecoder(expressed(t, filled(53, 0)), DefaultLayout); err != nil {
		t.Errorf("minimal genome: %v", err)
	}
}

func TestWidthDelta(t *testing.T) {
	vals := filled(53, 0)
	// segment 1: genes 12..15
	vals[12], vals[13], vals[14], vals[15] = 10, 20, 30, 41
	d, err := NewDecoder(expressed(t, vals), DefaultLayout)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := d.WidthDelta(1); got != 25.25 {
		t.Errorf("WidthDelta(1) = %v, want 25.25", got)
	}
	// All-zero genes are clamped rather than rejected.
	if got, _ := d.WidthDelta(0); got != 1 {
		t.Errorf("WidthDelta(0) = %v, want 1", got)
	}
	if _, err := d.WidthDelta(4); !errors.Is(err, genome.ErrIndexOutOfRange) {
		t.Errorf("WidthDelta(4): got error %v", err)
	}
}

func TestVerticalDelta(t *testing.T) {
	vals := filled(53, 0)
	vals[0] = 255 // upper segment 0
	vals[5] = 51  // lower segment 1
	d, err := NewDecoder(expressed(t, vals), DefaultLayout)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		b    Boundary
		seg  int
		want float64
	}{
		{Upper, 0, -23},
		{Upper, 1, -14},
		{Lower, 0, 10},
		{Lower, 1, -4 + 0.2*16},
	}
	for _, tt := range tests {
		got, err := d.VerticalDelta(tt.b, tt.seg, DefaultDeltaRanges)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("VerticalDelta(%v, %d) = %v, want %v", tt.b, tt.seg, got, tt.want)
		}
	}
	if _, err := d.VerticalDelta(Upper, -1, DefaultDeltaRanges); !errors.Is(err, genome.ErrIndexOutOfRange) {
		t.Errorf("segment -1: got error %v", err)
	}
	if _, err := d.VerticalDelta(Boundary(2), 0, DefaultDeltaRanges); err == nil {
		t.Error("invalid boundary accepted")
	}
}

func TestSegmentKindAndTension(t *testing.T) {
	vals := filled(53, 0)
	vals[24] = 0   // upper kind 0
	vals[31] = 255 // lower kind 3
	vals[32] = 255 // upper tension 0
	vals[37] = 0   // lower tension 1
	d, err := NewDecoder(expressed(t, vals), DefaultLayout)
	if err != nil {
		t.Fatal(err)
	}
	if k, _ := d.SegmentKind(Upper, 0, DefaultKindTable); k != contour.Line {
		t.Errorf("upper kind 0 = %v, want l", k)
	}
	if k, _ := d.SegmentKind(Lower, 3, DefaultKindTable); k != contour.SmoothQuad {
		t.Errorf("lower kind 3 = %v, want t", k)
	}
	if _, err := d.SegmentKind(Upper, 0, Categorical[contour.Kind]{}); !errors.Is(err, ErrInvalidWeightTable) {
		t.Errorf("empty table: got error %v", err)
	}
	if v, _ := d.Tension(Upper, 0); v != 1 {
		t.Errorf("upper tension 0 = %v, want 1", v)
	}
	if v, _ := d.Tension(Lower, 1); v != -1 {
		t.Errorf("lower tension 1 = %v, want -1", v)
	}
}

func TestColors(t *testing.T) {
	vals := filled(53, 0)
	copy(vals[40:], []uint8{
		10, 11, 12, 200, // red
		0, 0, 1, 2, // green
		255, 255, 255, 255, // blue
		128, // highlight
	})
	d, err := NewDecoder(expressed(t, vals), DefaultLayout)
	if err != nil {
		t.Fatal(err)
	}
	iris, err := d.IrisColor()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, color.RGBA{R: 58, G: 0, B: 255, A: 255}, iris)
	hl, err := d.HighlightColor()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, color.RGBA{R: 11, G: 0, B: 255, A: 255}, hl)
	if m, _ := d.HighlightMultiplier(); math.Abs(m-128.0/255) > 1e-12 {
		t.Errorf("HighlightMultiplier() = %v", m)
	}
	if _, err := d.ColorChannelAverage(nil); !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("empty channel: got error %v", err)
	}
	if _, err := d.ColorChannelAverage([]int{1, 53}); !errors.Is(err, genome.ErrIndexOutOfRange) {
		t.Errorf("out of range channel: got error %v", err)
	}
}

func TestDecode(t *testing.T) {
	cfg := Config{Width: 140, KindTable: DefaultKindTable, DeltaRanges: DefaultDeltaRanges}
	for seed := range uint64(50) {
		g := genome.Random(genome.NewRand(seed, 0), 200)
		d, err := NewDecoder(g, DefaultLayout)
		if err != nil {
			t.Fatal(err)
		}
		tr, err := d.Decode(cfg)
		if err != nil {
			t.Fatal(err)
		}
		if sum := tr.DX[0] + tr.DX[1] + tr.DX[2] + tr.DX[3]; math.Abs(sum-140) > 1e-6*140 {
			t.Errorf("seed %d: widths sum to %v", seed, sum)
		}
		if gap := contour.Sum(tr.Lower) - contour.Sum(tr.Upper); math.Abs(gap) > 1e-6 {
			t.Errorf("seed %d: lids end %v apart", seed, gap)
		}
		for i := range 4 {
			if tr.UpperTension[i] < -1 || tr.UpperTension[i] > 1 {
				t.Errorf("seed %d: tension %v out of range", seed, tr.UpperTension[i])
			}
		}

		again, err := d.Decode(cfg)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, tr, again)
	}
}

func TestDecodeFailsAtomically(t *testing.T) {
	d, err := NewDecoder(expressed(t, filled(53, 7)), DefaultLayout)
	if err != nil {
		t.Fatal(err)
	}
	tr, err := d.Decode(Config{Width: 140, DeltaRanges: DefaultDeltaRanges})
	if !errors.Is(err, ErrInvalidWeightTable) {
		t.Fatalf("got error %v, want %v", err, ErrInvalidWeightTable)
	}
	diff(t, Traits{}, tr)

	if _, err := d.Decode(Config{Width: 0, KindTable: DefaultKindTable}); err == nil {
		t.Error("zero width accepted")
	}
}

func TestTraitsSegments(t *testing.T) {
	tr := Traits{
		DX:           [4]float64{1, 2, 3, 4},
		Upper:        [4]float64{-1, -2, -3, -4},
		Lower:        [4]float64{5, 6, 7, 8},
		UpperKinds:   [4]contour.Kind{contour.Line, contour.Cubic, contour.Quad, contour.SmoothQuad},
		LowerKinds:   [4]contour.Kind{contour.Cubic, contour.Cubic, contour.SmoothCubic, contour.Line},
		UpperTension: [4]float64{0.1, 0.2, 0.3, 0.4},
		LowerTension: [4]float64{-0.1, -0.2, -0.3, -0.4},
	}
	want := contour.Segments{
		{Kind: contour.Cubic, DX: 1, DY: 5, Tension: -0.1},
		{Kind: contour.Cubic, DX: 2, DY: 6, Tension: -0.2},
		{Kind: contour.SmoothCubic, DX: 3, DY: 7, Tension: -0.3},
		{Kind: contour.Line, DX: 4, DY: 8, Tension: -0.4},
	}
	diff(t, want, tr.Segments(Lower))
	diff(t, [4]float64{-1, -2, -3, -4}, tr.Segments(Upper).Deltas())
}
