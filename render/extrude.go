package render

import (
	"fmt"
	"io"

	"github.com/rclancey/earcut"
	"github.com/soypat/vfill"
	"github.com/soypat/vfill/clip"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// prism streams the triangles of a 2D region extruded along z.
type prism struct {
	unwritten triangle3Buffer
}

// NewPrismExtruder tesselates the region s extruded from z=0 to z=height.
// The outline is sampled by marching squares with cells grid cells along
// the longest side of the region bounds, so cells bounds the geometric
// fidelity of the result. The returned Renderer yields the triangles of
// both caps and the side walls.
func NewPrismExtruder(s vfill.SDF2, height float64, cells int) (Renderer, error) {
	if height <= 0 {
		return nil, fmt.Errorf("prism height must be positive, got %g", height)
	}
	loops, err := Contours(s, cells)
	if err != nil {
		return nil, err
	}
	p := &prism{
		unwritten: triangle3Buffer{buf: make([]Triangle3, 0, 1024)},
	}
	for _, loop := range loops {
		p.walls(loop, height)
	}
	if err := p.caps(loops, height); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *prism) ReadTriangles(dst []Triangle3) (int, error) {
	if p.unwritten.Len() == 0 {
		return 0, io.EOF
	}
	return p.unwritten.Read(dst), nil
}

// walls emits the side quads of one outline. Outer loops run
// counterclockwise and holes clockwise, so the same winding yields
// outward facing normals for both.
func (p *prism) walls(loop []r2.Vec, height float64) {
	for i := range loop {
		a := loop[i]
		b := loop[(i+1)%len(loop)]
		a0 := r3.Vec{X: a.X, Y: a.Y}
		b0 := r3.Vec{X: b.X, Y: b.Y}
		a1 := r3.Vec{X: a.X, Y: a.Y, Z: height}
		b1 := r3.Vec{X: b.X, Y: b.Y, Z: height}
		p.unwritten.Write([]Triangle3{
			{V: [3]r3.Vec{a0, b0, b1}},
			{V: [3]r3.Vec{a0, b1, a1}},
		})
	}
}

// caps triangulates the top and bottom faces. Holes are matched to the
// outer loop containing them and passed to the ear clipper as hole rings.
func (p *prism) caps(loops [][]r2.Vec, height float64) error {
	var outers, holes [][]r2.Vec
	for _, loop := range loops {
		if clip.IsCCW(loop) {
			outers = append(outers, loop)
		} else {
			holes = append(holes, loop)
		}
	}
	for _, outer := range outers {
		rings := [][]r2.Vec{outer}
		for _, h := range holes {
			if clip.Contains(outer, h[0]) {
				rings = append(rings, h)
			}
		}
		if err := p.cap(rings, height); err != nil {
			return err
		}
	}
	return nil
}

func (p *prism) cap(rings [][]r2.Vec, height float64) error {
	var coords []float64
	var holeIndices []int
	for i, ring := range rings {
		if i > 0 {
			holeIndices = append(holeIndices, len(coords)/2)
		}
		for _, v := range ring {
			coords = append(coords, v.X, v.Y)
		}
	}
	indices, err := earcut.Earcut(coords, holeIndices, 2)
	if err != nil {
		return fmt.Errorf("cap triangulation: %w", err)
	}
	vert := func(i int, z float64) r3.Vec {
		return r3.Vec{X: coords[2*i], Y: coords[2*i+1], Z: z}
	}
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		// top cap faces +z, bottom cap mirrors the winding to face -z.
		p.unwritten.Write([]Triangle3{
			{V: [3]r3.Vec{vert(i0, height), vert(i1, height), vert(i2, height)}},
			{V: [3]r3.Vec{vert(i0, 0), vert(i2, 0), vert(i1, 0)}},
		})
	}
	return nil
}
