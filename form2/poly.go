package form2

import (
	"runtime/debug"

	"github.com/soypat/vfill"
	"github.com/soypat/vfill/form2/must2"
	"github.com/soypat/vfill/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Polygon returns an SDF2 made from a closed set of line segments.
func Polygon(vertex []r2.Vec) (s vfill.SDF2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Polygon(vertex), err
}

// NewPolygon returns an empty polygon builder.
func NewPolygon() *must2.PolygonBuilder {
	return must2.NewPolygon()
}

// Nagon return the vertices of a N sided regular polygon.
func Nagon(n int, radius float64) (s d2.Set, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Nagon(n, radius), err
}
