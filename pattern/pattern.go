// Package pattern fills arbitrary simple polygons with a Voronoi cell
// lattice. The entry point Fill composes the stages of the pipeline: seeded
// site generation, bounded Voronoi construction, wall thickening and
// filleting, clipping against the border polygon and an optional inset
// border band. The result is a 2D region (vfill.SDF2) consumable by the
// render package or any other region consumer.
package pattern

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/soypat/vfill"
	"github.com/soypat/vfill/clip"
	"github.com/soypat/vfill/form2/must2"
	"github.com/soypat/vfill/internal/d2"
	"github.com/soypat/vfill/voronoi"
	"gonum.org/v1/gonum/spatial/r2"
)

// Options are the style parameters of a Voronoi fill. The zero value is
// valid and means: no lattice (N=0, Thickness=0), no band (Edging=0) and a
// point sequence drawn from the process entropy source (Seed=nil).
type Options struct {
	// N is the number of Voronoi nuclei.
	N int
	// Thickness is the width of the lattice walls. Zero renders no
	// visible lattice.
	Thickness float64
	// Round is the fillet radius applied where walls join. It is clamped
	// to half the shortest wall so fillet arcs cannot self-intersect.
	Round float64
	// Edging is the width of the solid band along the border. Zero
	// disables the band.
	Edging float64
	// Seed seeds the site generator. A nil Seed draws a seed from the
	// process entropy source, making the pattern non-reproducible.
	Seed *int64
}

// DefaultOptions returns the canonical fill style.
func DefaultOptions() Options {
	return Options{
		N:         30,
		Thickness: 1.7,
		Round:     1.0,
		Edging:    3.0,
	}
}

// PolygonError reports an unusable border polygon.
type PolygonError struct {
	Reason string
}

func (e *PolygonError) Error() string {
	return "invalid border polygon: " + e.Reason
}

// BoundingBoxError reports a degenerate bounding box whose corners
// coincide, leaving the domain scale undefined.
type BoundingBoxError struct {
	Corner r2.Vec
}

func (e *BoundingBoxError) Error() string {
	return fmt.Sprintf("invalid bounding box: corners coincide at (%g, %g)", e.Corner.X, e.Corner.Y)
}

// ParameterError reports a negative style parameter and names the field.
type ParameterError struct {
	Field string
	Value float64
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %g < 0", e.Field, e.Value)
}

// NormalizeBox returns the bounding box of the two corner points with
// Min <= Max componentwise. It accepts the corners in any order and is
// idempotent: normalizing a normalized box returns it unchanged.
func NormalizeBox(a, b r2.Vec) r2.Box {
	return r2.Box{Min: d2.MinElem(a, b), Max: d2.MaxElem(a, b)}
}

// Fill returns the border polygon filled with a Voronoi lattice pattern:
// the region of border minus the thickened cell walls, unioned with the
// inset border band when Edging > 0. It is a pure function of its
// arguments; identical inputs with a non-nil seed produce identical
// regions.
//
// Self-intersecting borders are not rejected: the region is clipped
// best-effort by winding number, matching the permissive behavior of the
// polygon primitive.
func Fill(border []r2.Vec, bbox [2]r2.Vec, opts Options) (vfill.SDF2, error) {
	if err := validate(border, opts); err != nil {
		return nil, err
	}
	box := NormalizeBox(bbox[0], bbox[1])
	size := d2.Box(box).Size()
	if size.X <= 0 && size.Y <= 0 {
		return nil, &BoundingBoxError{Corner: box.Min}
	}

	// The lattice is generated on the unit square and mapped onto a
	// square domain of the longer bbox side centered on the bbox.
	l := math.Max(size.X, size.Y)
	center := d2.Box(box).Center()
	origin := r2.Sub(center, d2.Elem(l/2))

	borderSDF := must2.Polygon(border)

	var base vfill.SDF2
	if opts.N == 0 {
		// no cells: the pattern degenerates to the band alone.
		base = vfill.Empty2D(center)
	} else {
		dia := voronoi.Compute(sites(opts), 1)
		lattice := latticeSDF(dia, origin, l, opts.Thickness, opts.Round, center)
		base = vfill.Difference2D(borderSDF, lattice)
	}

	if opts.Edging > 0 {
		inset := vfill.Offset2D(borderSDF, -opts.Edging)
		band := vfill.Difference2D(borderSDF, inset)
		return vfill.Union2D(base, band), nil
	}
	return base, nil
}

// FillDefault fills border with the canonical style of DefaultOptions.
func FillDefault(border []r2.Vec, bbox [2]r2.Vec) (vfill.SDF2, error) {
	return Fill(border, bbox, DefaultOptions())
}

// Cells returns the Voronoi cell polygons of the fill clipped against the
// border polygon. Cells straddling a concave border may be split into
// several polygons. The same options produce the same cells Fill renders
// walls for.
func Cells(border []r2.Vec, bbox [2]r2.Vec, opts Options) ([][]r2.Vec, error) {
	if err := validate(border, opts); err != nil {
		return nil, err
	}
	box := NormalizeBox(bbox[0], bbox[1])
	size := d2.Box(box).Size()
	if size.X <= 0 && size.Y <= 0 {
		return nil, &BoundingBoxError{Corner: box.Min}
	}
	if opts.N == 0 {
		return nil, nil
	}
	l := math.Max(size.X, size.Y)
	center := d2.Box(box).Center()
	origin := r2.Sub(center, d2.Elem(l/2))

	dia := voronoi.Compute(sites(opts), 1)
	var out [][]r2.Vec
	for _, c := range dia.Cells {
		poly := mapToDomain(c.Vertices, l, origin)
		out = append(out, clip.Intersect(poly, border)...)
	}
	return out, nil
}

func validate(border []r2.Vec, opts Options) error {
	switch {
	case opts.N < 0:
		return &ParameterError{Field: "n", Value: float64(opts.N)}
	case opts.Thickness < 0:
		return &ParameterError{Field: "thickness", Value: opts.Thickness}
	case opts.Round < 0:
		return &ParameterError{Field: "round", Value: opts.Round}
	case opts.Edging < 0:
		return &ParameterError{Field: "edging", Value: opts.Edging}
	}
	if len(border) < 3 {
		return &PolygonError{Reason: fmt.Sprintf("%d vertices < 3", len(border))}
	}
	if math.Abs(clip.Area(border)) <= 1e-12 {
		return &PolygonError{Reason: "zero area"}
	}
	return nil
}

// sites draws the nucleus set for the fill on the unit square, seeded or
// from entropy.
func sites(opts Options) d2.Set {
	var rng *rand.Rand
	if opts.Seed != nil {
		rng = rand.New(rand.NewSource(*opts.Seed))
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return voronoi.Sites(opts.N, 1, rng)
}

// mapToDomain maps unit-square coordinates into pattern space, the
// polygon counterpart of the scale and translation latticeSDF applies.
func mapToDomain(p []r2.Vec, l float64, origin r2.Vec) []r2.Vec {
	q := make([]r2.Vec, len(p))
	for i, v := range p {
		q[i] = r2.Add(r2.Scale(l, v), origin)
	}
	return q
}
