// Package voronoi computes planar Voronoi diagrams bounded to a square
// domain. Cells are built by clipping the domain against the perpendicular
// bisector half-plane of every rival site, an O(n²) construction whose
// output exactly tiles the domain: each point of the square belongs to the
// cell of its nearest site and cells share only boundary edges.
package voronoi

import (
	"math"
	"math/rand"
	"sort"

	"github.com/soypat/vfill/clip"
	"github.com/soypat/vfill/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// siteEpsilon is the distance below which two sites are considered
	// coincident and merged.
	siteEpsilon = 1e-9
	// wallEpsilon quantizes wall endpoints when deduplicating the edges
	// shared by neighboring cells.
	wallEpsilon = 1e-7
)

// Sites returns n pseudo random nuclei uniformly distributed over the
// square [0,l]x[0,l]. The point sequence is fully determined by the state
// of rng, so generation is reproducible given a seeded source.
func Sites(n int, l float64, rng *rand.Rand) d2.Set {
	if n < 0 {
		panic("negative site count")
	}
	bb := d2.Box{Max: d2.Elem(l)}
	return bb.RandomSet(n, rng)
}

// Cell is the convex region of the diagram domain closer to Site than to
// any other site.
type Cell struct {
	Site r2.Vec
	// Vertices are the cell polygon corners in counterclockwise order.
	Vertices []r2.Vec
}

// Area returns the cell polygon area.
func (c *Cell) Area() float64 {
	return clip.Area(c.Vertices)
}

// Wall is a finite diagram edge separating two cells.
type Wall struct {
	A, B r2.Vec
}

// Diagram is a Voronoi diagram bounded to the square [0,L]x[0,L].
type Diagram struct {
	L     float64
	Cells []Cell
}

// Compute builds the Voronoi diagram of the sites bounded to the square
// [0,l]x[0,l]. Sites within siteEpsilon of an earlier site are merged, so
// len(Cells) can be smaller than len(sites); aside from merging, Cells[i]
// corresponds to the i-th surviving site in input order. Cocircular site
// configurations produce the same topology on every run since clipping
// order follows input order.
func Compute(sites d2.Set, l float64) *Diagram {
	if l <= 0 {
		panic("non-positive domain size")
	}
	kept := mergeCoincident(sites)
	dia := &Diagram{L: l, Cells: make([]Cell, len(kept))}
	square := []r2.Vec{
		{},
		{X: l},
		{X: l, Y: l},
		{Y: l},
	}
	for i, site := range kept {
		poly := square
		for j, rival := range kept {
			if j == i {
				continue
			}
			// keep the side of the perpendicular bisector nearer to site.
			n := r2.Sub(rival, site)
			mid := r2.Scale(0.5, r2.Add(site, rival))
			poly = clip.Halfplane(poly, n, r2.Dot(mid, n))
			if len(poly) == 0 {
				break
			}
		}
		dia.Cells[i] = Cell{Site: site, Vertices: poly}
	}
	return dia
}

// mergeCoincident drops sites within siteEpsilon of a surviving earlier
// site, keeping input order.
func mergeCoincident(sites d2.Set) d2.Set {
	kept := make(d2.Set, 0, len(sites))
	for _, s := range sites {
		dup := false
		for _, k := range kept {
			if d2.EqualWithin(s, k, siteEpsilon) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, s)
		}
	}
	return kept
}

// Walls returns the interior edges of the diagram: the finite walls
// separating pairs of cells, excluding the domain square boundary. Each
// shared edge is reported once. The result is ordered lexicographically so
// downstream consumers are deterministic.
func (d *Diagram) Walls() []Wall {
	type key struct {
		ax, ay, bx, by int64
	}
	quant := func(v r2.Vec) (int64, int64) {
		return int64(math.Round(v.X / wallEpsilon)), int64(math.Round(v.Y / wallEpsilon))
	}
	seen := make(map[key]struct{})
	var walls []Wall
	for _, c := range d.Cells {
		n := len(c.Vertices)
		for i := 0; i < n; i++ {
			a := c.Vertices[i]
			b := c.Vertices[(i+1)%n]
			if d.onBoundary(a, b) {
				continue
			}
			// canonical endpoint order so both incident cells produce
			// the same key.
			if d2.Lexicographic(b, a) {
				a, b = b, a
			}
			ax, ay := quant(a)
			bx, by := quant(b)
			k := key{ax, ay, bx, by}
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			walls = append(walls, Wall{A: a, B: b})
		}
	}
	sort.Slice(walls, func(i, j int) bool {
		if !d2.EqualWithin(walls[i].A, walls[j].A, wallEpsilon) {
			return d2.Lexicographic(walls[i].A, walls[j].A)
		}
		return d2.Lexicographic(walls[i].B, walls[j].B)
	})
	return walls
}

// onBoundary reports whether the segment ab lies on the domain square
// boundary.
func (d *Diagram) onBoundary(a, b r2.Vec) bool {
	onEdge := func(x, y float64) bool {
		return (x < wallEpsilon && y < wallEpsilon) ||
			(x > d.L-wallEpsilon && y > d.L-wallEpsilon)
	}
	return onEdge(a.X, b.X) || onEdge(a.Y, b.Y)
}
