package contour_test

import (
	"fmt"

	"honnef.co/go/tender/contour"
	"honnef.co/go/tender/curve"
)

func ExampleSynthesizer_Build() {
	s := contour.Synthesizer{TensionRatio: contour.DefaultTensionRatio}
	p := s.Build(curve.Pt(0, 72), contour.Segments{
		{Kind: contour.Line, DX: 35, DY: -30},
		{Kind: contour.Cubic, DX: 35, DY: 0, Tension: 1},
		{Kind: contour.Quad, DX: 35, DY: 10, Tension: -1},
		{Kind: contour.SmoothQuad, DX: 35, DY: 20},
	})
	fmt.Println(p.SVG(curve.SVGOptions{Relative: true, MaxPrecision: 2}))
	// Output:
	// m0,72 l35,-30 c8.75,8.75 26.25,8.75 35,0 q17.5,-3.75 35,10 t35,20
}

func ExampleBalance() {
	upper := [4]float64{-30, 0, 5, 10}
	lower := [4]float64{15, 4, 6, 5}
	fmt.Println(contour.Balance(upper, lower))
	// Output:
	// [15 4 -9 -25]
}
