package trait

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"honnef.co/go/tender/contour"
)

func TestDefaultKindTableThresholds(t *testing.T) {
	diff(t, []float64{0.25, 0.60, 0.80, 0.90, 1.00}, DefaultKindTable.Thresholds(), cmpopts.EquateApprox(0, 1e-12))
}

func TestCategoricalBoundaries(t *testing.T) {
	tests := []struct {
		v    uint8
		want contour.Kind
	}{
		{0, contour.Line},
		{63, contour.Line},
		{64, contour.Cubic},
		{150, contour.Cubic},
		{160, contour.Quad},
		{210, contour.SmoothCubic},
		{240, contour.SmoothQuad},
		{255, contour.SmoothQuad},
	}
	for _, tt := range tests {
		if got := DefaultKindTable.Decode(tt.v); got != tt.want {
			t.Errorf("Decode(%d) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestCategoricalPure(t *testing.T) {
	again := MustCategorical(
		Weighted[contour.Kind]{contour.Line, 0.25},
		Weighted[contour.Kind]{contour.Cubic, 0.35},
		Weighted[contour.Kind]{contour.Quad, 0.20},
		Weighted[contour.Kind]{contour.SmoothCubic, 0.10},
		Weighted[contour.Kind]{contour.SmoothQuad, 0.10},
	)
	for v := range 256 {
		a := DefaultKindTable.Decode(uint8(v))
		b := DefaultKindTable.Decode(uint8(v))
		c := again.Decode(uint8(v))
		if a != b || a != c {
			t.Fatalf("Decode(%d) not deterministic: %v %v %v", v, a, b, c)
		}
	}
}

func TestCategoricalMonotonic(t *testing.T) {
	prev := DefaultKindTable.Decode(0)
	for v := 1; v < 256; v++ {
		k := DefaultKindTable.Decode(uint8(v))
		if k < prev {
			t.Fatalf("Decode(%d) = %v went back from %v", v, k, prev)
		}
		prev = k
	}
}

func TestCategoricalRelativeWeights(t *testing.T) {
	// Weights need not sum to one.
	c, err := NewCategorical(Weighted[string]{"a", 1}, Weighted[string]{"b", 3})
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Decode(63); got != "a" {
		t.Errorf("Decode(63) = %q, want a", got)
	}
	if got := c.Decode(64); got != "b" {
		t.Errorf("Decode(64) = %q, want b", got)
	}
}

func TestCategoricalInvalid(t *testing.T) {
	tables := map[string][]Weighted[int]{
		"empty":    nil,
		"zero sum": {{1, 0}, {2, 0}},
		"negative": {{1, 2}, {2, -1}},
		"NaN":      {{1, math.NaN()}},
		"infinite": {{1, math.Inf(1)}},
	}
	for name, table := range tables {
		if _, err := NewCategorical(table...); !errors.Is(err, ErrInvalidWeightTable) {
			t.Errorf("%s: got error %v, want %v", name, err, ErrInvalidWeightTable)
		}
	}
}

func TestCategoricalZeroValue(t *testing.T) {
	var c Categorical[contour.Kind]
	if c.Len() != 0 {
		t.Fatal("zero value has categories")
	}
	if got := c.Decode(200); got != contour.Line {
		t.Errorf("got %v, want zero kind", got)
	}
}

func TestBoolCategorical(t *testing.T) {
	c, err := BoolCategorical(0.5)
	if err != nil {
		t.Fatal(err)
	}
	for v := range 256 {
		if got, want := c.Decode(uint8(v)), v < 128; got != want {
			t.Errorf("Decode(%d) = %v, want %v", v, got, want)
		}
	}
	for _, p := range []float64{-0.1, 1.1} {
		if _, err := BoolCategorical(p); !errors.Is(err, ErrInvalidWeightTable) {
			t.Errorf("BoolCategorical(%v): got error %v", p, err)
		}
	}
}

func TestTwoWayKindTableMatchesBool(t *testing.T) {
	// A line-or-cubic choice is a two-entry kind table.
	for _, p := range []float64{0, 0.1, 0.5, 0.73, 1} {
		b, err := BoolCategorical(p)
		if err != nil {
			t.Fatal(err)
		}
		k, err := NewCategorical(
			Weighted[contour.Kind]{contour.Line, p},
			Weighted[contour.Kind]{contour.Cubic, 1 - p},
		)
		if err != nil {
			t.Fatal(err)
		}
		for v := range 256 {
			isLine := k.Decode(uint8(v)) == contour.Line
			if isLine != b.Decode(uint8(v)) {
				t.Fatalf("p=%v v=%d: kind table and bool table disagree", p, v)
			}
		}
	}
}
