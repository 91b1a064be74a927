// Package render converts 2D regions produced by the pattern package to
// interchange formats: vector outlines (SVG, DXF) and extruded triangle
// meshes (STL). Meshing is streamed through the Renderer interface so large
// models never need to be resident in memory all at once.
package render

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer reads triangles from a tesselated model, io.Reader style. It
// returns io.EOF when the model is exhausted.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

// Triangle3 is a 3D triangle.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the normal vector to the plane defined by the triangle
// following the right hand rule on the vertex winding.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Degenerate returns true if the triangle thins to a segment or a point
// within tolerance tol.
func (t Triangle3) Degenerate(tol float64) bool {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Norm(r3.Cross(e1, e2)) <= tol
}
