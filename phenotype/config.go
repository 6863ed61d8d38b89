package phenotype

import (
	"errors"
	"fmt"
	"slices"

	"honnef.co/go/tender/contour"
	"honnef.co/go/tender/trait"
)

// ErrInvalidConfig is returned for configurations with non-positive sizes or
// out of range ratios.
var ErrInvalidConfig = errors.New("invalid configuration")

// KindWeight is one entry of a segment kind weight table.
type KindWeight struct {
	Kind   contour.Kind `yaml:"kind"`
	Weight float64      `yaml:"weight"`
}

// EyeConfig holds the numeric constants of an eye.
type EyeConfig struct {
	// Width is the total horizontal extent of the lids.
	Width float64 `yaml:"width"`
	// BaseY is the height of the inner corner, where all lids start.
	BaseY float64 `yaml:"base_y"`
	// FoldRatio places the lid crease FoldRatio*Width above the upper lid.
	FoldRatio    float64 `yaml:"fold_ratio"`
	TensionRatio float64 `yaml:"tension_ratio"`
	IrisRadius   float64 `yaml:"iris_radius"`
	PupilRadius  float64 `yaml:"pupil_radius"`
	StrokeWidth  float64 `yaml:"stroke_width"`
	// The highlight is a regular polygon of HighlightSides sides with a
	// radius of HighlightRatio*IrisRadius.
	HighlightSides int     `yaml:"highlight_sides"`
	HighlightRatio float64 `yaml:"highlight_ratio"`
	// LightenFactor blends the iris color toward white for the highlight.
	LightenFactor float64           `yaml:"lighten_factor"`
	KindWeights   []KindWeight      `yaml:"kind_weights"`
	DeltaRanges   trait.DeltaRanges `yaml:"delta_ranges"`
	Layout        trait.Layout      `yaml:"layout"`
	// Normalize scales the finished eye by 1/Width.
	Normalize bool `yaml:"normalize"`
}

var defaultKindWeights = []KindWeight{
	{contour.Line, 0.25},
	{contour.Cubic, 0.35},
	{contour.Quad, 0.20},
	{contour.SmoothCubic, 0.10},
	{contour.SmoothQuad, 0.10},
}

// DefaultEyeConfig returns the configuration of a 140 unit wide eye.
func DefaultEyeConfig() EyeConfig {
	return EyeConfig{
		Width:          140,
		BaseY:          72,
		FoldRatio:      0.06,
		TensionRatio:   contour.DefaultTensionRatio,
		IrisRadius:     36,
		PupilRadius:    16,
		StrokeWidth:    1,
		HighlightSides: 12,
		HighlightRatio: 0.55,
		LightenFactor:  0.45,
		KindWeights:    slices.Clone(defaultKindWeights),
		DeltaRanges:    trait.DefaultDeltaRanges,
		Layout:         trait.DefaultLayout,
	}
}

// scaled returns the default eye with every length multiplied by f.
func scaled(f float64) EyeConfig {
	cfg := DefaultEyeConfig()
	cfg.Width *= f
	cfg.BaseY *= f
	cfg.IrisRadius *= f
	cfg.PupilRadius *= f
	cfg.DeltaRanges = cfg.DeltaRanges.Scale(f)
	return cfg
}

var presets = map[string]func() EyeConfig{
	"default": DefaultEyeConfig,
	"large":   func() EyeConfig { return scaled(1.3) },
	"small":   func() EyeConfig { return scaled(0.7) },
}

// Preset returns the named eye configuration.
func Preset(name string) (EyeConfig, bool) {
	fn, ok := presets[name]
	if !ok {
		return EyeConfig{}, false
	}
	return fn(), true
}

// PresetNames returns the names accepted by [Preset], sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// KindTable builds the categorical decoder of the configured weights. Kinds
// other than those in [contour.Kinds] are rejected.
func (cfg EyeConfig) KindTable() (trait.Categorical[contour.Kind], error) {
	table := make([]trait.Weighted[contour.Kind], len(cfg.KindWeights))
	for i, kw := range cfg.KindWeights {
		if !slices.Contains(contour.Kinds[:], kw.Kind) {
			return trait.Categorical[contour.Kind]{}, fmt.Errorf("%w: entry %d has undefined segment kind %d", trait.ErrInvalidWeightTable, i, int(kw.Kind))
		}
		table[i] = trait.Weighted[contour.Kind]{Value: kw.Kind, Weight: kw.Weight}
	}
	return trait.NewCategorical(table...)
}

// Validate reports the first invalid field of cfg.
func (cfg EyeConfig) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"width", cfg.Width},
		{"tension ratio", cfg.TensionRatio},
		{"iris radius", cfg.IrisRadius},
		{"pupil radius", cfg.PupilRadius},
		{"stroke width", cfg.StrokeWidth},
		{"highlight ratio", cfg.HighlightRatio},
	}
	for _, p := range positive {
		if !(p.v > 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}
	if cfg.PupilRadius > cfg.IrisRadius {
		return fmt.Errorf("%w: pupil radius %v exceeds iris radius %v", ErrInvalidConfig, cfg.PupilRadius, cfg.IrisRadius)
	}
	if cfg.HighlightSides < 3 {
		return fmt.Errorf("%w: highlight needs at least 3 sides, got %d", ErrInvalidConfig, cfg.HighlightSides)
	}
	if cfg.LightenFactor < 0 || cfg.LightenFactor > 1 {
		return fmt.Errorf("%w: lighten factor %v not in [0, 1]", ErrInvalidConfig, cfg.LightenFactor)
	}
	if cfg.FoldRatio < 0 {
		return fmt.Errorf("%w: negative fold ratio %v", ErrInvalidConfig, cfg.FoldRatio)
	}
	if _, err := cfg.KindTable(); err != nil {
		return err
	}
	return cfg.Layout.Validate()
}

// HeadConfig holds the proportions of a head. Ratios are fractions of the
// head's height unless noted otherwise.
type HeadConfig struct {
	CenterX float64 `yaml:"center_x"`
	Top     float64 `yaml:"top"`
	Height  float64 `yaml:"height"`
	// WidthRatio is the head's width as a fraction of its height.
	WidthRatio float64 `yaml:"width_ratio"`
	EarTop     float64 `yaml:"ear_top"`
	EarBottom  float64 `yaml:"ear_bottom"`
	Jaw        float64 `yaml:"jaw"`
	// JawOffset and ChinSideOffset are fractions of half the head's width.
	JawOffset      float64 `yaml:"jaw_offset"`
	ChinSide       float64 `yaml:"chin_side"`
	ChinSideOffset float64 `yaml:"chin_side_offset"`
	// CrownPull places the crown's first control point CrownPull*halfWidth
	// beside the top; CrownDrop lifts the second one above the ear.
	CrownPull float64 `yaml:"crown_pull"`
	CrownDrop float64 `yaml:"crown_drop"`
	// Variation is the largest relative change a head gene can apply to
	// WidthRatio, JawOffset, ChinSideOffset and CrownPull.
	Variation   float64          `yaml:"variation"`
	StrokeWidth float64          `yaml:"stroke_width"`
	Layout      trait.HeadLayout `yaml:"layout"`
}

// DefaultHeadConfig returns a 360 unit tall head centered at x = 200.
func DefaultHeadConfig() HeadConfig {
	return HeadConfig{
		CenterX:        200,
		Top:            60,
		Height:         360,
		WidthRatio:     0.65,
		EarTop:         0.25,
		EarBottom:      0.55,
		Jaw:            0.75,
		JawOffset:      0.85,
		ChinSide:       0.88,
		ChinSideOffset: 0.45,
		CrownPull:      0.5,
		CrownDrop:      40.0 / 360,
		Variation:      0.15,
		StrokeWidth:    1,
		Layout:         trait.DefaultHeadLayout,
	}
}

// Validate reports the first invalid field of cfg.
func (cfg HeadConfig) Validate() error {
	if !(cfg.Height > 0) || !(cfg.WidthRatio > 0) {
		return fmt.Errorf("%w: head height and width ratio must be positive", ErrInvalidConfig)
	}
	if !(cfg.StrokeWidth > 0) {
		return fmt.Errorf("%w: stroke width must be positive, got %v", ErrInvalidConfig, cfg.StrokeWidth)
	}
	if cfg.Variation < 0 || cfg.Variation >= 1 {
		return fmt.Errorf("%w: variation %v not in [0, 1)", ErrInvalidConfig, cfg.Variation)
	}
	if !(cfg.EarTop < cfg.EarBottom && cfg.EarBottom < cfg.Jaw && cfg.Jaw < cfg.ChinSide && cfg.ChinSide < 1) {
		return fmt.Errorf("%w: head landmarks out of order", ErrInvalidConfig)
	}
	return cfg.Layout.Validate()
}

// FaceConfig places two eyes on a head.
type FaceConfig struct {
	Eye  EyeConfig  `yaml:"eye"`
	Head HeadConfig `yaml:"head"`
	// EyeWidthRatio and EyeSpacingRatio are fractions of the head's width,
	// EyeYRatio of its height.
	EyeWidthRatio   float64 `yaml:"eye_width_ratio"`
	EyeYRatio       float64 `yaml:"eye_y_ratio"`
	EyeSpacingRatio float64 `yaml:"eye_spacing_ratio"`
}

// DefaultFaceConfig returns a 120 unit tall face in a 130×160 canvas.
func DefaultFaceConfig() FaceConfig {
	head := DefaultHeadConfig()
	head.CenterX = 65
	head.Top = 20
	head.Height = 120
	head.StrokeWidth = 0.5
	return FaceConfig{
		Eye:             DefaultEyeConfig(),
		Head:            head,
		EyeWidthRatio:   0.28,
		EyeYRatio:       0.42,
		EyeSpacingRatio: 0.18,
	}
}
