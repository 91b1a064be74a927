package must2

import (
	"github.com/soypat/vfill/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	sqrtHalf  = 0.7071067811865476
	tolerance = 1e-9
)

// 2D Circle

// circle is the 2d signed distance object for a circle.
type circle struct {
	radius float64
	bb     r2.Box
}

// Circle returns the SDF2 for a 2d circle.
func Circle(radius float64) *circle {
	if radius < 0 {
		panic("radius < 0")
	}
	s := circle{}
	s.radius = radius
	d := r2.Vec{X: radius, Y: radius}
	s.bb = r2.Box{Min: r2.Scale(-1, d), Max: d}
	return &s
}

// Evaluate returns the minimum distance to a 2d circle.
func (s *circle) Evaluate(p r2.Vec) float64 {
	return r2.Norm(p) - s.radius
}

// Bounds returns the bounding box of a 2d circle.
func (s *circle) Bounds() r2.Box {
	return s.bb
}

// 2D Box (rounded corners with round > 0)

// box is the 2d signed distance object for a rectangular box.
type box struct {
	size  r2.Vec
	round float64
	bb    r2.Box
}

// Box returns a 2d box centered on the origin.
func Box(size r2.Vec, round float64) *box {
	size = r2.Scale(0.5, size)
	s := box{}
	s.size = r2.Sub(size, d2.Elem(round))
	s.round = round
	s.bb = r2.Box{Min: r2.Scale(-1, size), Max: size}
	return &s
}

// Evaluate returns the minimum distance to a 2d box.
func (s *box) Evaluate(p r2.Vec) float64 {
	return sdfBox2d(p, s.size) - s.round
}

func sdfBox2d(p, s r2.Vec) float64 {
	p = d2.AbsElem(p)
	d := r2.Sub(p, s)
	k := s.Y - s.X
	if d.X > 0 && d.Y > 0 {
		return r2.Norm(d)
	}
	if p.Y-p.X > k {
		return d.Y
	}
	return d.X
}

// Bounds returns the bounding box for a 2d box.
func (s *box) Bounds() r2.Box {
	return s.bb
}

// 2D Capsule

// capsule is the 2d signed distance object for a line segment with
// semicircular caps of a given radius.
type capsule struct {
	a, b   r2.Vec
	v      r2.Vec  // unit vector a to b
	l      float64 // segment length
	radius float64
	bb     r2.Box
}

// Capsule returns the stroke of the segment from a to b with the given
// radius: all points within radius of the segment. It is the primitive the
// pattern package thickens Voronoi cell walls with, the round caps give
// wall junctions their fillets.
func Capsule(a, b r2.Vec, radius float64) *capsule {
	if radius < 0 {
		panic("radius < 0")
	}
	s := capsule{a: a, b: b, radius: radius}
	ab := r2.Sub(b, a)
	s.l = r2.Norm(ab)
	if s.l > 0 {
		s.v = r2.Scale(1/s.l, ab)
	}
	bb := d2.Box{Min: d2.MinElem(a, b), Max: d2.MaxElem(a, b)}
	s.bb = r2.Box(bb.Enlarge(d2.Elem(2 * radius)))
	return &s
}

// Evaluate returns the minimum distance to a 2d capsule.
func (s *capsule) Evaluate(p r2.Vec) float64 {
	pa := r2.Sub(p, s.a)
	t := r2.Dot(pa, s.v)
	if t < 0 {
		return r2.Norm(pa) - s.radius
	}
	if t > s.l {
		return r2.Norm(r2.Sub(p, s.b)) - s.radius
	}
	return r2.Norm(r2.Sub(pa, r2.Scale(t, s.v))) - s.radius
}

// Bounds returns the bounding box of a 2d capsule.
func (s *capsule) Bounds() r2.Box {
	return s.bb
}

// 2D Line

// line is the 2d signed distance object for a line.
type line struct {
	l     float64 // line length
	round float64 // rounding
	bb    r2.Box  // bounding box
}

// Line returns a line from (-l/2,0) to (l/2,0).
func Line(l, round float64) *line {
	s := line{}
	s.l = l / 2
	s.round = round
	s.bb = r2.Box{Min: r2.Vec{X: -s.l - round, Y: -round}, Max: r2.Vec{X: s.l + round, Y: round}}
	return &s
}

// Evaluate returns the minimum distance to a 2d line.
func (s *line) Evaluate(p r2.Vec) float64 {
	p = d2.AbsElem(p)
	if p.X <= s.l {
		return p.Y - s.round
	}
	return r2.Norm(p.Sub(r2.Vec{X: s.l})) - s.round
}

// Bounds returns the bounding box for a 2d line.
func (s *line) Bounds() r2.Box {
	return s.bb
}
