package render

import (
	"fmt"
	"math"

	"github.com/soypat/vfill"
	"github.com/soypat/vfill/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Contours extracts the outline of a 2D region as closed polylines using
// marching squares with linear interpolation of the distance field. cells
// is the number of grid cells along the longest side of the region bounds.
// Outlines enclosing material run counterclockwise and holes clockwise.
//
// The sampling grid is enlarged by one cell on every side so outlines
// touching the region bounds still close.
func Contours(s vfill.SDF2, cells int) ([][]r2.Vec, error) {
	if cells < 2 {
		return nil, fmt.Errorf("contour grid needs at least 2 cells, got %d", cells)
	}
	bb := d2.Box(s.Bounds())
	size := bb.Size()
	long := math.Max(size.X, size.Y)
	if long <= 0 {
		return nil, nil
	}
	step := long / float64(cells)
	bb = bb.Enlarge(d2.Elem(step))

	nx := int(math.Ceil(bb.Size().X/step)) + 1
	ny := int(math.Ceil(bb.Size().Y/step)) + 1

	// sample the field on the grid.
	field := make([]float64, nx*ny)
	at := func(ix, iy int) r2.Vec {
		return r2.Vec{X: bb.Min.X + float64(ix)*step, Y: bb.Min.Y + float64(iy)*step}
	}
	for iy := 0; iy < ny; iy++ {
		for ix := 0; ix < nx; ix++ {
			field[iy*nx+ix] = s.Evaluate(at(ix, iy))
		}
	}

	m := marcher{step: step}
	for iy := 0; iy < ny-1; iy++ {
		for ix := 0; ix < nx-1; ix++ {
			// corner values, counterclockwise from bottom left.
			v0 := field[iy*nx+ix]
			v1 := field[iy*nx+ix+1]
			v2 := field[(iy+1)*nx+ix+1]
			v3 := field[(iy+1)*nx+ix]
			m.cell(at(ix, iy), v0, v1, v2, v3, s)
		}
	}
	return m.chain(), nil
}

// marcher accumulates oriented zero crossing segments and chains them into
// closed loops. Segments keep material on their left so chained loops come
// out counterclockwise around material.
type marcher struct {
	step float64
	segs []segment
}

type segment struct {
	a, b r2.Vec
}

// cell emits the crossing segments of one marching squares cell. Corners
// are ordered counterclockwise from the cell origin p.
func (m *marcher) cell(p r2.Vec, v0, v1, v2, v3 float64, s vfill.SDF2) {
	idx := 0
	if v0 < 0 {
		idx |= 1
	}
	if v1 < 0 {
		idx |= 2
	}
	if v2 < 0 {
		idx |= 4
	}
	if v3 < 0 {
		idx |= 8
	}
	if idx == 0 || idx == 15 {
		return
	}

	c0 := p
	c1 := r2.Vec{X: p.X + m.step, Y: p.Y}
	c2 := r2.Vec{X: p.X + m.step, Y: p.Y + m.step}
	c3 := r2.Vec{X: p.X, Y: p.Y + m.step}
	// edge midcrossings: bottom, right, top, left.
	eb := cross(c0, c1, v0, v1)
	er := cross(c1, c2, v1, v2)
	et := cross(c2, c3, v2, v3)
	el := cross(c3, c0, v3, v0)

	switch idx {
	case 1:
		m.emit(eb, el)
	case 2:
		m.emit(er, eb)
	case 3:
		m.emit(er, el)
	case 4:
		m.emit(et, er)
	case 6:
		m.emit(et, eb)
	case 7:
		m.emit(et, el)
	case 8:
		m.emit(el, et)
	case 9:
		m.emit(eb, et)
	case 11:
		m.emit(er, et)
	case 12:
		m.emit(el, er)
	case 13:
		m.emit(eb, er)
	case 14:
		m.emit(el, eb)
	case 5, 10:
		// saddle. Disambiguate with a center sample.
		center := r2.Vec{X: p.X + m.step/2, Y: p.Y + m.step/2}
		inside := s.Evaluate(center) < 0
		if idx == 5 {
			if inside {
				m.emit(eb, er)
				m.emit(et, el)
			} else {
				m.emit(eb, el)
				m.emit(et, er)
			}
		} else {
			if inside {
				m.emit(el, eb)
				m.emit(er, et)
			} else {
				m.emit(er, eb)
				m.emit(el, et)
			}
		}
	}
}

func (m *marcher) emit(a, b r2.Vec) {
	if r2.Norm(r2.Sub(b, a)) < 1e-12 {
		return
	}
	m.segs = append(m.segs, segment{a: a, b: b})
}

// cross interpolates the zero crossing on the edge between corners a and b
// with field values va and vb of opposite sign.
func cross(a, b r2.Vec, va, vb float64) r2.Vec {
	t := va / (va - vb)
	return r2.Add(a, r2.Scale(t, r2.Sub(b, a)))
}

// chain links segments end to start into closed loops. Endpoints are
// quantized so floating point noise between neighboring cells does not
// break the chain.
func (m *marcher) chain() [][]r2.Vec {
	if len(m.segs) == 0 {
		return nil
	}
	quant := m.step * 1e-6
	key := func(v r2.Vec) [2]int64 {
		return [2]int64{int64(math.Round(v.X / quant)), int64(math.Round(v.Y / quant))}
	}
	// next segment by start point.
	starts := make(map[[2]int64]int, len(m.segs))
	for i, s := range m.segs {
		starts[key(s.a)] = i
	}

	used := make([]bool, len(m.segs))
	var loops [][]r2.Vec
	for i := range m.segs {
		if used[i] {
			continue
		}
		var loop []r2.Vec
		j := i
		for !used[j] {
			used[j] = true
			loop = append(loop, m.segs[j].a)
			next, ok := starts[key(m.segs[j].b)]
			if !ok {
				break
			}
			j = next
		}
		if len(loop) >= 3 && j == i {
			loops = append(loops, loop)
		}
	}
	return loops
}
