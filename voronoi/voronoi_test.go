package voronoi

import (
	"math"
	"math/rand"
	"testing"

	"github.com/soypat/vfill/clip"
	"github.com/soypat/vfill/internal/d2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestSites(t *testing.T) {
	const l = 10.0
	sites := Sites(50, l, rand.New(rand.NewSource(1)))
	require.Len(t, sites, 50)
	for _, s := range sites {
		assert.True(t, s.X >= 0 && s.X <= l, "site %v outside domain", s)
		assert.True(t, s.Y >= 0 && s.Y <= l, "site %v outside domain", s)
	}
	again := Sites(50, l, rand.New(rand.NewSource(1)))
	assert.Equal(t, sites, again, "same source state must yield same sites")
	other := Sites(50, l, rand.New(rand.NewSource(2)))
	assert.NotEqual(t, sites, other)
}

func TestComputeSingleSite(t *testing.T) {
	const l = 7.0
	dia := Compute(d2.Set{{X: 3, Y: 2}}, l)
	require.Len(t, dia.Cells, 1)
	cell := dia.Cells[0]
	assert.InDelta(t, l*l, cell.Area(), 1e-9, "single cell must cover the whole domain")
	assert.Empty(t, dia.Walls(), "single cell has no interior walls")
}

func TestComputeTwoSites(t *testing.T) {
	const l = 10.0
	dia := Compute(d2.Set{{X: 2.5, Y: 5}, {X: 7.5, Y: 5}}, l)
	require.Len(t, dia.Cells, 2)
	// vertical bisector at x=5 splits the domain in half.
	for _, c := range dia.Cells {
		assert.InDelta(t, l*l/2, c.Area(), 1e-9)
	}
	walls := dia.Walls()
	require.Len(t, walls, 1)
	w := walls[0]
	assert.InDelta(t, 5.0, w.A.X, 1e-9)
	assert.InDelta(t, 5.0, w.B.X, 1e-9)
	assert.InDelta(t, l, r2.Norm(r2.Sub(w.B, w.A)), 1e-9)
}

func TestComputeTiling(t *testing.T) {
	const l = 20.0
	sites := Sites(25, l, rand.New(rand.NewSource(42)))
	dia := Compute(sites, l)
	require.Len(t, dia.Cells, 25)

	var total float64
	for _, c := range dia.Cells {
		require.NotEmpty(t, c.Vertices, "bounded diagram cells are never empty")
		assert.True(t, clip.IsCCW(c.Vertices), "cell winding must be counterclockwise")
		assert.True(t, clip.ContainsWithin(c.Vertices, c.Site, 1e-9), "cell must contain its site")
		total += c.Area()
	}
	assert.InDelta(t, l*l, total, 1e-6, "cells must tile the domain")

	// cells only share boundary: pairwise intersection has zero area.
	for i := 0; i < len(dia.Cells); i++ {
		for j := i + 1; j < len(dia.Cells); j++ {
			overlap := clip.Convex(dia.Cells[i].Vertices, dia.Cells[j].Vertices)
			if overlap != nil {
				assert.InDelta(t, 0, math.Abs(clip.Area(overlap)), 1e-6,
					"cells %d and %d overlap", i, j)
			}
		}
	}
}

func TestComputeNearestSite(t *testing.T) {
	const l = 15.0
	sites := Sites(12, l, rand.New(rand.NewSource(3)))
	dia := Compute(sites, l)
	rng := rand.New(rand.NewSource(99))
	for k := 0; k < 200; k++ {
		p := r2.Vec{X: rng.Float64() * l, Y: rng.Float64() * l}
		nearest := 0
		best := math.Inf(1)
		for i, s := range sites {
			if d := r2.Norm2(r2.Sub(p, s)); d < best {
				best = d
				nearest = i
			}
		}
		assert.True(t, clip.ContainsWithin(dia.Cells[nearest].Vertices, p, 1e-7),
			"point %v belongs to cell of its nearest site", p)
	}
}

func TestComputeMergesCoincidentSites(t *testing.T) {
	const l = 5.0
	sites := d2.Set{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 4, Y: 4}}
	dia := Compute(sites, l)
	assert.Len(t, dia.Cells, 2)
}

func TestWallsDeterminism(t *testing.T) {
	const l = 20.0
	sites := Sites(30, l, rand.New(rand.NewSource(7)))
	first := Compute(sites, l).Walls()
	second := Compute(sites, l).Walls()
	require.Equal(t, first, second)
	// canonical ordering: endpoints are lexicographic within each wall
	// and walls are sorted between themselves.
	for i, w := range first {
		assert.True(t, d2.Lexicographic(w.A, w.B), "wall %d endpoints out of order", i)
		if i > 0 {
			prev := first[i-1]
			assert.False(t, d2.Lexicographic(w.A, prev.A) && !d2.EqualWithin(w.A, prev.A, 1e-7),
				"walls out of order at %d", i)
		}
	}
}

func TestWallsNoDuplicates(t *testing.T) {
	// Each interior edge is computed once per incident cell with float
	// noise between the two runs, so endpoints can land arbitrarily
	// close to a quantization bucket boundary. Scan several diagrams
	// for walls that survived deduplication twice.
	const l = 20.0
	for seed := int64(0); seed < 20; seed++ {
		walls := Compute(Sites(40, l, rand.New(rand.NewSource(seed))), l).Walls()
		for i := 0; i < len(walls); i++ {
			for j := i + 1; j < len(walls); j++ {
				same := d2.EqualWithin(walls[i].A, walls[j].A, wallEpsilon) &&
					d2.EqualWithin(walls[i].B, walls[j].B, wallEpsilon)
				require.False(t, same, "seed %d: duplicate wall %v", seed, walls[i])
			}
		}
	}
}

func TestComputePanics(t *testing.T) {
	assert.Panics(t, func() { Compute(d2.Set{{X: 1, Y: 1}}, 0) })
	assert.Panics(t, func() { Sites(-1, 1, rand.New(rand.NewSource(1))) })
}
