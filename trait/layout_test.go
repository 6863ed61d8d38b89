package trait

import (
	"errors"
	"testing"
)

func TestDefaultLayout(t *testing.T) {
	if err := DefaultLayout.Validate(); err != nil {
		t.Fatal(err)
	}
	if got := DefaultLayout.MinGenes(); got != 53 {
		t.Errorf("MinGenes() = %d, want 53", got)
	}
	if err := DefaultHeadLayout.Validate(); err != nil {
		t.Fatal(err)
	}
	if err := ValidateShared(DefaultLayout, DefaultHeadLayout); err != nil {
		t.Fatal(err)
	}
	if got := DefaultHeadLayout.MinGenes(); got != 57 {
		t.Errorf("head MinGenes() = %d, want 57", got)
	}
}

func TestLayoutInvalid(t *testing.T) {
	overlap := DefaultLayout
	overlap.LowerKind = Range{26, 4}

	short := DefaultLayout
	short.Width = Range{8, 12}

	negative := DefaultLayout.Shift(-1)

	for name, l := range map[string]Layout{
		"overlap":  overlap,
		"short":    short,
		"negative": negative,
	} {
		if err := l.Validate(); !errors.Is(err, ErrInvalidLayout) {
			t.Errorf("%s: got error %v, want %v", name, err, ErrInvalidLayout)
		}
	}

	if err := ValidateShared(DefaultLayout, DefaultHeadLayout.Shift(-10)); !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("shared overlap: got error %v", err)
	}
	dup := HeadLayout{WidthRatio: 60, JawOffset: 60, ChinSide: 61, CrownPull: 62}
	if err := dup.Validate(); !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("duplicate head gene: got error %v", err)
	}
}

func TestLayoutShift(t *testing.T) {
	l := DefaultLayout.Shift(100)
	if err := l.Validate(); err != nil {
		t.Fatal(err)
	}
	if got := l.MinGenes(); got != 153 {
		t.Errorf("MinGenes() = %d, want 153", got)
	}
	diff(t, Range{108, 16}, l.Width)
	diff(t, Range{152, 1}, l.Highlight)
}
