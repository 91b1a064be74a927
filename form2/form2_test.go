package form2_test

import (
	"math"
	"testing"

	"github.com/soypat/vfill/form2"
	"gonum.org/v1/gonum/spatial/r2"
)

const tol = 1e-12

// The wrappers trade the panics of must2 for error returns. Check both
// directions: valid shapes evaluate sensibly, invalid arguments surface
// as errors instead of panics.

func TestCircle(t *testing.T) {
	s, err := form2.Circle(2)
	if err != nil {
		t.Fatal(err)
	}
	if d := s.Evaluate(r2.Vec{}); math.Abs(d+2) > tol {
		t.Errorf("center distance = %v, want -2", d)
	}
	if _, err := form2.Circle(-1); err == nil {
		t.Error("expected error for negative radius")
	}
}

func TestBox(t *testing.T) {
	s, err := form2.Box(r2.Vec{X: 4, Y: 2}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if d := s.Evaluate(r2.Vec{}); math.Abs(d+1) > tol {
		t.Errorf("center distance = %v, want -1", d)
	}
	if d := s.Evaluate(r2.Vec{X: 3, Y: 0}); math.Abs(d-1) > tol {
		t.Errorf("outside distance = %v, want 1", d)
	}
}

func TestCapsule(t *testing.T) {
	a, b := r2.Vec{X: -1, Y: 0}, r2.Vec{X: 1, Y: 0}
	s, err := form2.Capsule(a, b, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if d := s.Evaluate(r2.Vec{}); math.Abs(d+0.5) > tol {
		t.Errorf("midpoint distance = %v, want -0.5", d)
	}
	if _, err := form2.Capsule(a, b, -0.5); err == nil {
		t.Error("expected error for negative radius")
	}
}

func TestLine(t *testing.T) {
	s, err := form2.Line(4, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if d := s.Evaluate(r2.Vec{}); math.Abs(d+0.5) > tol {
		t.Errorf("midpoint distance = %v, want -0.5", d)
	}
	if d := s.Evaluate(r2.Vec{X: 3, Y: 0}); math.Abs(d-0.5) > tol {
		t.Errorf("endpoint distance = %v, want 0.5", d)
	}
}

func TestPolygon(t *testing.T) {
	s, err := form2.Polygon([]r2.Vec{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}})
	if err != nil {
		t.Fatal(err)
	}
	if d := s.Evaluate(r2.Vec{X: 1, Y: 1}); d >= 0 {
		t.Errorf("interior distance = %v, want negative", d)
	}
	if _, err := form2.Polygon([]r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}}); err == nil {
		t.Error("expected error for a two vertex polygon")
	}
}

func TestNewPolygonBuilder(t *testing.T) {
	b := form2.NewPolygon()
	b.Add(0, 0)
	b.Add(3, 0).Rel()
	b.Add(0, 3).Rel()
	b.Close()
	if got := b.Vertices(); len(got) != 3 {
		t.Fatalf("got %d vertices, want 3", len(got))
	}
}

func TestNagon(t *testing.T) {
	v, err := form2.Nagon(6, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(v) != 6 {
		t.Fatalf("got %d vertices, want 6", len(v))
	}
	for i, p := range v {
		if math.Abs(r2.Norm(p)-1) > tol {
			t.Errorf("vertex %d %v not on the unit circle", i, p)
		}
	}
}
