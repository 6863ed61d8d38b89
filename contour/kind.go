package contour

import (
	"fmt"
)

// Kind is the drawing command of a segment.
type Kind int

const (
	// Line is a straight segment.
	Line Kind = iota
	// Cubic is a cubic Bézier with both control points explicit.
	Cubic
	// Quad is a quadratic Bézier.
	Quad
	// SmoothCubic is a cubic Bézier whose first control point continues the
	// previous segment.
	SmoothCubic
	// SmoothQuad is a quadratic Bézier whose control point continues the
	// previous segment.
	SmoothQuad
)

// Kinds lists all kinds in declaration order.
var Kinds = [...]Kind{Line, Cubic, Quad, SmoothCubic, SmoothQuad}

var kindLetters = [...]string{
	Line:        "l",
	Cubic:       "c",
	Quad:        "q",
	SmoothCubic: "s",
	SmoothQuad:  "t",
}

// String returns the SVG path command letter of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindLetters) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindLetters[k]
}

// ParseKind is the inverse of [Kind.String].
func ParseKind(s string) (Kind, error) {
	for i, l := range kindLetters {
		if l == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown segment kind %q", s)
}

// MarshalText encodes k as its command letter.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindLetters) {
		return nil, fmt.Errorf("invalid segment kind %d", int(k))
	}
	return []byte(kindLetters[k]), nil
}

// UnmarshalText decodes a command letter.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
