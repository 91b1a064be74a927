package vfill_test

import (
	"math"
	"testing"

	"github.com/soypat/vfill"
	"github.com/soypat/vfill/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

const tol = 1e-12

func TestIntersect2D(t *testing.T) {
	// a circle of radius 2 and a tall box: the intersection keeps only
	// points inside both.
	s := vfill.Intersect2D(must2.Circle(2), must2.Box(r2.Vec{X: 1, Y: 6}, 0))
	cases := []struct {
		p      r2.Vec
		inside bool
	}{
		{r2.Vec{}, true},
		{r2.Vec{X: 0, Y: 1.5}, true},
		{r2.Vec{X: 1.5, Y: 0}, false}, // inside the circle, outside the box
		{r2.Vec{X: 0, Y: 2.5}, false}, // inside the box, outside the circle
	}
	for _, c := range cases {
		if d := s.Evaluate(c.p); (d < 0) != c.inside {
			t.Errorf("Evaluate(%v) = %v, want inside=%v", c.p, d, c.inside)
		}
	}
}

func TestTransform2DIdentity(t *testing.T) {
	circle := must2.Circle(1.5)
	s := vfill.Transform2D(circle, vfill.Identity2d())
	for _, p := range []r2.Vec{{}, {X: 1, Y: 1}, {X: -3, Y: 0.5}} {
		if got, want := s.Evaluate(p), circle.Evaluate(p); math.Abs(got-want) > tol {
			t.Errorf("Evaluate(%v) = %v, want %v", p, got, want)
		}
	}
}

func TestTransform2DRotate(t *testing.T) {
	// a 4x2 box rotated a quarter turn becomes a 2x4 box.
	s := vfill.Transform2D(must2.Box(r2.Vec{X: 4, Y: 2}, 0), vfill.Rotate(math.Pi/2))
	if d := s.Evaluate(r2.Vec{X: 0, Y: 1.9}); d >= 0 {
		t.Errorf("Evaluate inside rotated box = %v, want negative", d)
	}
	if d := s.Evaluate(r2.Vec{X: 1.9, Y: 0}); d <= 0 {
		t.Errorf("Evaluate outside rotated box = %v, want positive", d)
	}
}

func TestScaleUniform2D(t *testing.T) {
	s := vfill.ScaleUniform2D(must2.Circle(1), 3)
	if d := s.Evaluate(r2.Vec{}); math.Abs(d+3) > tol {
		t.Errorf("center distance = %v, want -3", d)
	}
	// distance is preserved under uniform scaling.
	if d := s.Evaluate(r2.Vec{X: 6, Y: 0}); math.Abs(d-3) > tol {
		t.Errorf("outside distance = %v, want 3", d)
	}
	bb := s.Bounds()
	if math.Abs(bb.Min.X+3) > tol || math.Abs(bb.Max.Y-3) > tol {
		t.Errorf("bounds = %v, want [-3,3]^2", bb)
	}
}

func TestCenter2D(t *testing.T) {
	off := vfill.Transform2D(must2.Circle(1), vfill.Translate2D(r2.Vec{X: 3, Y: 4}))
	s := vfill.Center2D(off)
	c := center(s.Bounds())
	if math.Abs(c.X) > tol || math.Abs(c.Y) > tol {
		t.Errorf("bounds center = %v, want origin", c)
	}
	if d := s.Evaluate(r2.Vec{}); math.Abs(d+1) > tol {
		t.Errorf("center distance = %v, want -1", d)
	}
}

func center(b r2.Box) r2.Vec {
	return r2.Scale(0.5, r2.Add(b.Min, b.Max))
}
