package phenotype

import (
	"fmt"

	"honnef.co/go/tender/curve"
	"honnef.co/go/tender/genome"
	"honnef.co/go/tender/trait"
)

// Face is a head with two eyes, all driven by one genome.
type Face struct {
	Head     Head
	LeftEye  Eye
	RightEye Eye
	// ViewBox is the canvas the face was laid out in.
	ViewBox curve.Rect
}

// NewFace builds a face. The eye is synthesized once, normalized, and
// placed twice; the left copy is mirrored. Unlike [NewHead], g must not be
// nil: there is no base eye.
func NewFace(g *genome.Genome, cfg FaceConfig) (Face, error) {
	if g == nil {
		return Face{}, fmt.Errorf("face needs a genome: %w", genome.ErrIndexOutOfRange)
	}
	if err := trait.ValidateShared(cfg.Eye.Layout, cfg.Head.Layout); err != nil {
		return Face{}, fmt.Errorf("face layout: %w", err)
	}
	head, err := NewHead(g, cfg.Head)
	if err != nil {
		return Face{}, err
	}
	eyeCfg := cfg.Eye
	eyeCfg.Normalize = true
	eye, err := NewEye(g, eyeCfg)
	if err != nil {
		return Face{}, err
	}

	eyeWidth := head.Width * cfg.EyeWidthRatio
	eyeY := head.Top + head.Height*cfg.EyeYRatio
	spacing := head.Width * cfg.EyeSpacingRatio
	leftX := head.CenterX - spacing - eyeWidth/2
	rightX := head.CenterX + spacing - eyeWidth/2

	right := curve.Scale(eyeWidth, eyeWidth).ThenTranslate(curve.Vec(rightX, eyeY))
	left := curve.FlipX.ThenScale(eyeWidth, eyeWidth).ThenTranslate(curve.Vec(leftX+eyeWidth, eyeY))

	return Face{
		Head:     head,
		LeftEye:  eye.Transform(left),
		RightEye: eye.Transform(right),
		ViewBox: curve.Rect{
			X0: 0,
			Y0: 0,
			X1: 2 * cfg.Head.CenterX,
			Y1: 2*cfg.Head.Top + cfg.Head.Height,
		},
	}, nil
}

// MinGenes returns the genome length a face needs.
func (cfg FaceConfig) MinGenes() int {
	return max(cfg.Eye.Layout.MinGenes(), cfg.Head.Layout.MinGenes())
}
