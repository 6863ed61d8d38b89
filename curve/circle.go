package curve

import (
	"math"
)

type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether pt lies strictly inside the circle.
func (c Circle) Contains(pt Point) bool {
	return pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

// Transform applies aff to the circle. The result is only a circle for
// similarity transforms; the radius is scaled by [Affine.LinearScale].
func (c Circle) Transform(aff Affine) Circle {
	return Circle{
		Center: c.Center.Transform(aff),
		Radius: c.Radius * aff.LinearScale(),
	}
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	x := c.Center.X
	y := c.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}

// Polygon returns the vertices of a regular polygon with the given number of
// sides inscribed in the circle. The first vertex lies on the positive x axis
// and vertices advance in the positive angle direction.
func (c Circle) Polygon(sides int) []Point {
	if sides < 3 {
		return nil
	}
	pts := make([]Point, sides)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(sides)
		pts[i] = c.Center.Translate(VecFromAngle(th).Mul(c.Radius))
	}
	return pts
}
