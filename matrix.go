package vfill

import (
	"math"

	"github.com/soypat/vfill/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// m33 is a 3x3 matrix for 2D affine transforms in row major order.
type m33 struct {
	x00, x01, x02 float64
	x10, x11, x12 float64
	x20, x21, x22 float64
}

// Identity2d returns the identity transform.
func Identity2d() m33 {
	return m33{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Translate2D returns a translation by v.
func Translate2D(v r2.Vec) m33 {
	return m33{
		1, 0, v.X,
		0, 1, v.Y,
		0, 0, 1,
	}
}

// Scale2D returns a per-axis scaling transform.
func Scale2D(v r2.Vec) m33 {
	return m33{
		v.X, 0, 0,
		0, v.Y, 0,
		0, 0, 1,
	}
}

// Rotate returns an anticlockwise rotation by theta radians.
func Rotate(theta float64) m33 {
	c := math.Cos(theta)
	s := math.Sin(theta)
	return m33{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Mul multiplies two transforms, a then applied after b.
func (a m33) Mul(b m33) m33 {
	return m33{
		a.x00*b.x00 + a.x01*b.x10 + a.x02*b.x20,
		a.x00*b.x01 + a.x01*b.x11 + a.x02*b.x21,
		a.x00*b.x02 + a.x01*b.x12 + a.x02*b.x22,
		a.x10*b.x00 + a.x11*b.x10 + a.x12*b.x20,
		a.x10*b.x01 + a.x11*b.x11 + a.x12*b.x21,
		a.x10*b.x02 + a.x11*b.x12 + a.x12*b.x22,
		a.x20*b.x00 + a.x21*b.x10 + a.x22*b.x20,
		a.x20*b.x01 + a.x21*b.x11 + a.x22*b.x21,
		a.x20*b.x02 + a.x21*b.x12 + a.x22*b.x22,
	}
}

// MulPosition multiplies an r2.Vec position by a rotate/translate matrix.
func (a m33) MulPosition(b r2.Vec) r2.Vec {
	return r2.Vec{
		X: a.x00*b.X + a.x01*b.Y + a.x02,
		Y: a.x10*b.X + a.x11*b.Y + a.x12,
	}
}

// MulBox rotates/translates a 2d bounding box and resizes for axis-alignment.
func (a m33) MulBox(box r2.Box) r2.Box {
	// http://dev.theomader.com/transform-bounding-boxes/
	r := r2.Vec{X: a.x00, Y: a.x10}
	u := r2.Vec{X: a.x01, Y: a.x11}
	t := r2.Vec{X: a.x02, Y: a.x12}
	xa := r2.Scale(box.Min.X, r)
	xb := r2.Scale(box.Max.X, r)
	ya := r2.Scale(box.Min.Y, u)
	yb := r2.Scale(box.Max.Y, u)
	xa, xb = d2.MinElem(xa, xb), d2.MaxElem(xa, xb)
	ya, yb = d2.MinElem(ya, yb), d2.MaxElem(ya, yb)
	return r2.Box{
		Min: r2.Add(r2.Add(xa, ya), t),
		Max: r2.Add(r2.Add(xb, yb), t),
	}
}

// Determinant returns the determinant of the matrix.
func (a m33) Determinant() float64 {
	return a.x00*(a.x11*a.x22-a.x12*a.x21) -
		a.x01*(a.x10*a.x22-a.x12*a.x20) +
		a.x02*(a.x10*a.x21-a.x11*a.x20)
}

// Inverse returns the inverse of the matrix.
func (a m33) Inverse() m33 {
	d := 1 / a.Determinant()
	return m33{
		(a.x11*a.x22 - a.x12*a.x21) * d,
		(a.x21*a.x02 - a.x01*a.x22) * d,
		(a.x01*a.x12 - a.x11*a.x02) * d,
		(a.x12*a.x20 - a.x22*a.x10) * d,
		(a.x22*a.x00 - a.x20*a.x02) * d,
		(a.x02*a.x10 - a.x12*a.x00) * d,
		(a.x10*a.x21 - a.x20*a.x11) * d,
		(a.x20*a.x01 - a.x00*a.x21) * d,
		(a.x00*a.x11 - a.x01*a.x10) * d,
	}
}
