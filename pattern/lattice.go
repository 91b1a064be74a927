package pattern

import (
	"math"

	"github.com/soypat/vfill"
	"github.com/soypat/vfill/form2/must2"
	"github.com/soypat/vfill/voronoi"
	"gonum.org/v1/gonum/spatial/r2"
)

// latticeSDF builds the thickened wall region of a Voronoi diagram. Each
// interior wall becomes a capsule of width thickness and the capsules are
// unioned with a fillet of radius round at the joints. The diagram lives
// on the unit square, so the capsules are built with parameters divided by
// the domain side l and the union is mapped into pattern space with a
// uniform scale and a translation. Uniform scaling preserves the distance
// field exactly and RoundMin is homogeneous, so the mapped fillet radius
// is round again.
//
// A diagram with no interior walls (a single cell) and a zero thickness
// both yield an empty region so the pattern degenerates to the full
// border.
func latticeSDF(dia *voronoi.Diagram, origin r2.Vec, l, thickness, round float64, center r2.Vec) vfill.SDF2 {
	walls := dia.Walls()
	if len(walls) == 0 || thickness <= 0 {
		return vfill.Empty2D(center)
	}
	caps := make([]vfill.SDF2, len(walls))
	minLen := math.Inf(1)
	for i, w := range walls {
		caps[i] = must2.Capsule(w.A, w.B, thickness/(2*l))
		if wl := r2.Norm(r2.Sub(w.B, w.A)); wl < minLen {
			minLen = wl
		}
	}
	lattice := vfill.Union2D(caps...)
	if round > 0 {
		// fillet arcs longer than the wall would swallow it.
		lattice.SetMin(vfill.RoundMin(math.Min(round/l, minLen/2)))
	}
	return vfill.Transform2D(vfill.ScaleUniform2D(lattice, l), vfill.Translate2D(origin))
}
