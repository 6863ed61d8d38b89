package trait

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidLayout is returned when a gene layout has ranges of the wrong
// size, negative indices or overlapping ranges.
var ErrInvalidLayout = errors.New("invalid gene layout")

// Range is a contiguous run of gene indices.
type Range struct {
	Start int
	Len   int
}

// End returns the index one past the last gene of r.
func (r Range) End() int { return r.Start + r.Len }

// Index returns the genome index of the i'th gene of r.
func (r Range) Index(i int) int { return r.Start + i }

func (r Range) overlaps(o Range) bool {
	return r.Start < o.End() && o.Start < r.End()
}

// Layout assigns gene index ranges to eye traits.
type Layout struct {
	UpperDelta Range `yaml:"upper_delta"`
	LowerDelta Range `yaml:"lower_delta"`
	// Width holds four genes per segment, segment-major.
	Width        Range `yaml:"width"`
	UpperKind    Range `yaml:"upper_kind"`
	LowerKind    Range `yaml:"lower_kind"`
	UpperTension Range `yaml:"upper_tension"`
	LowerTension Range `yaml:"lower_tension"`
	IrisRed      Range `yaml:"iris_red"`
	IrisGreen    Range `yaml:"iris_green"`
	IrisBlue     Range `yaml:"iris_blue"`
	Highlight    Range `yaml:"highlight"`
}

// DefaultLayout is the layout of a standalone eye genome.
var DefaultLayout = Layout{
	UpperDelta:   Range{0, 4},
	LowerDelta:   Range{4, 4},
	Width:        Range{8, 16},
	UpperKind:    Range{24, 4},
	LowerKind:    Range{28, 4},
	UpperTension: Range{32, 4},
	LowerTension: Range{36, 4},
	IrisRed:      Range{40, 4},
	IrisGreen:    Range{44, 4},
	IrisBlue:     Range{48, 4},
	Highlight:    Range{52, 1},
}

type namedRange struct {
	name string
	r    Range
	want int
}

func (l Layout) ranges() []namedRange {
	return []namedRange{
		{"upper delta", l.UpperDelta, 4},
		{"lower delta", l.LowerDelta, 4},
		{"width", l.Width, 16},
		{"upper kind", l.UpperKind, 4},
		{"lower kind", l.LowerKind, 4},
		{"upper tension", l.UpperTension, 4},
		{"lower tension", l.LowerTension, 4},
		{"iris red", l.IrisRed, 4},
		{"iris green", l.IrisGreen, 4},
		{"iris blue", l.IrisBlue, 4},
		{"highlight", l.Highlight, 1},
	}
}

// Validate checks that every range has its required size, starts at a
// non-negative index and is disjoint from all others.
func (l Layout) Validate() error {
	return validate(l.ranges())
}

// MinGenes returns the smallest genome length covering every range.
func (l Layout) MinGenes() int {
	return minGenes(l.ranges())
}

// Shift returns l with every range moved by n genes.
func (l Layout) Shift(n int) Layout {
	for _, r := range []*Range{
		&l.UpperDelta, &l.LowerDelta, &l.Width,
		&l.UpperKind, &l.LowerKind, &l.UpperTension, &l.LowerTension,
		&l.IrisRed, &l.IrisGreen, &l.IrisBlue, &l.Highlight,
	} {
		r.Start += n
	}
	return l
}

// HeadLayout assigns gene indices to head traits.
type HeadLayout struct {
	WidthRatio int `yaml:"width_ratio"`
	JawOffset  int `yaml:"jaw_offset"`
	ChinSide   int `yaml:"chin_side"`
	CrownPull  int `yaml:"crown_pull"`
}

// DefaultHeadLayout follows [DefaultLayout], so that a single genome can
// drive both a head and an eye.
var DefaultHeadLayout = HeadLayout{
	WidthRatio: 53,
	JawOffset:  54,
	ChinSide:   55,
	CrownPull:  56,
}

func (l HeadLayout) ranges() []namedRange {
	return []namedRange{
		{"head width ratio", Range{l.WidthRatio, 1}, 1},
		{"head jaw offset", Range{l.JawOffset, 1}, 1},
		{"head chin side", Range{l.ChinSide, 1}, 1},
		{"head crown pull", Range{l.CrownPull, 1}, 1},
	}
}

// Validate reports an error wrapping [ErrInvalidLayout] if l is malformed.
func (l HeadLayout) Validate() error { return validate(l.ranges()) }

// MinGenes returns the genome length l needs.
func (l HeadLayout) MinGenes() int { return minGenes(l.ranges()) }

// Shift returns l with every index moved by n.
func (l HeadLayout) Shift(n int) HeadLayout {
	l.WidthRatio += n
	l.JawOffset += n
	l.ChinSide += n
	l.CrownPull += n
	return l
}

// ValidateShared checks that an eye and a head layout can share a genome.
func ValidateShared(eye Layout, head HeadLayout) error {
	return validate(slices.Concat(eye.ranges(), head.ranges()))
}

func validate(rs []namedRange) error {
	for i, a := range rs {
		if a.r.Len != a.want {
			return fmt.Errorf("%w: %s has %d genes, want %d", ErrInvalidLayout, a.name, a.r.Len, a.want)
		}
		if a.r.Start < 0 {
			return fmt.Errorf("%w: %s starts at %d", ErrInvalidLayout, a.name, a.r.Start)
		}
		for _, b := range rs[:i] {
			if a.r.overlaps(b.r) {
				return fmt.Errorf("%w: %s overlaps %s", ErrInvalidLayout, a.name, b.name)
			}
		}
	}
	return nil
}

func minGenes(rs []namedRange) int {
	n := 0
	for _, nr := range rs {
		n = max(n, nr.r.End())
	}
	return n
}
