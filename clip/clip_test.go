package clip

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

var unitSquare = []r2.Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}}

func reversed(p []r2.Vec) []r2.Vec {
	q := make([]r2.Vec, len(p))
	for i, v := range p {
		q[len(p)-1-i] = v
	}
	return q
}

func TestArea(t *testing.T) {
	assert.InDelta(t, 1.0, Area(unitSquare), 1e-12)
	assert.InDelta(t, -1.0, Area(reversed(unitSquare)), 1e-12)
	tri := []r2.Vec{{}, {X: 2}, {Y: 2}}
	assert.InDelta(t, 2.0, Area(tri), 1e-12)
}

func TestCCW(t *testing.T) {
	assert.True(t, IsCCW(unitSquare))
	cw := reversed(unitSquare)
	assert.False(t, IsCCW(cw))
	fixed := CCW(cw)
	assert.True(t, IsCCW(fixed))
	// input untouched.
	assert.False(t, IsCCW(cw))
	assert.Equal(t, unitSquare, CCW(unitSquare))
}

func TestCentroid(t *testing.T) {
	c := Centroid(unitSquare)
	assert.InDelta(t, 0.5, c.X, 1e-12)
	assert.InDelta(t, 0.5, c.Y, 1e-12)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains(unitSquare, r2.Vec{X: 0.5, Y: 0.5}))
	assert.False(t, Contains(unitSquare, r2.Vec{X: 1.5, Y: 0.5}))
	assert.False(t, Contains(unitSquare, r2.Vec{X: -0.1, Y: 0.1}))
	// concave L shape: notch points are outside.
	l := []r2.Vec{{}, {X: 2}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {Y: 2}}
	assert.True(t, Contains(l, r2.Vec{X: 0.5, Y: 1.5}))
	assert.False(t, Contains(l, r2.Vec{X: 1.5, Y: 1.5}))
}

func TestContainsWithin(t *testing.T) {
	onEdge := r2.Vec{X: 0.5, Y: 1}
	assert.True(t, ContainsWithin(unitSquare, onEdge, 1e-9))
	nearEdge := r2.Vec{X: 0.5, Y: 1 + 1e-10}
	assert.True(t, ContainsWithin(unitSquare, nearEdge, 1e-9))
	assert.False(t, ContainsWithin(unitSquare, r2.Vec{X: 0.5, Y: 1.1}, 1e-9))
}

func TestHalfplane(t *testing.T) {
	// keep x <= 0.5.
	got := Halfplane(unitSquare, r2.Vec{X: 1}, 0.5)
	require.NotNil(t, got)
	assert.InDelta(t, 0.5, math.Abs(Area(got)), 1e-12)
	for _, v := range got {
		assert.LessOrEqual(t, v.X, 0.5+1e-12)
	}
	// whole polygon kept.
	got = Halfplane(unitSquare, r2.Vec{X: 1}, 2)
	assert.InDelta(t, 1.0, math.Abs(Area(got)), 1e-12)
	// whole polygon discarded.
	assert.Nil(t, Halfplane(unitSquare, r2.Vec{X: 1}, -1))
}

func TestConvex(t *testing.T) {
	big := []r2.Vec{{X: -1, Y: -1}, {X: 2, Y: -1}, {X: 2, Y: 2}, {X: -1, Y: 2}}
	got := Convex(big, unitSquare)
	assert.InDelta(t, 1.0, math.Abs(Area(got)), 1e-9)

	// concave subject against convex window.
	l := []r2.Vec{{}, {X: 2}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {Y: 2}}
	window := []r2.Vec{{X: 0.5, Y: 0.5}, {X: 2.5, Y: 0.5}, {X: 2.5, Y: 2.5}, {X: 0.5, Y: 2.5}}
	got = Convex(l, window)
	// l has area 3, the window cuts it to 1.25.
	assert.InDelta(t, 1.25, math.Abs(Area(got)), 1e-9)

	// winding of the clip window must not matter.
	got = Convex(l, reversed(window))
	assert.InDelta(t, 1.25, math.Abs(Area(got)), 1e-9)
}

func TestIntersectOverlap(t *testing.T) {
	other := []r2.Vec{{X: 0.5, Y: 0.5}, {X: 1.5, Y: 0.5}, {X: 1.5, Y: 1.5}, {X: 0.5, Y: 1.5}}
	got := Intersect(unitSquare, other)
	require.Len(t, got, 1)
	assert.InDelta(t, 0.25, Area(got[0]), 1e-9)
	for _, v := range got[0] {
		assert.True(t, ContainsWithin(unitSquare, v, 1e-9))
		assert.True(t, ContainsWithin(other, v, 1e-9))
	}
}

func TestIntersectContained(t *testing.T) {
	small := []r2.Vec{{X: 0.25, Y: 0.25}, {X: 0.75, Y: 0.25}, {X: 0.75, Y: 0.75}, {X: 0.25, Y: 0.75}}
	got := Intersect(small, unitSquare)
	require.Len(t, got, 1)
	assert.InDelta(t, 0.25, Area(got[0]), 1e-9)
	// symmetric.
	got = Intersect(unitSquare, small)
	require.Len(t, got, 1)
	assert.InDelta(t, 0.25, Area(got[0]), 1e-9)
}

func TestIntersectDisjoint(t *testing.T) {
	far := []r2.Vec{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}
	assert.Nil(t, Intersect(unitSquare, far))
}

func TestIntersectIdentical(t *testing.T) {
	got := Intersect(unitSquare, unitSquare)
	require.Len(t, got, 1)
	assert.InDelta(t, 1.0, Area(got[0]), 1e-9)
}

func TestIntersectConcaveSplit(t *testing.T) {
	// u-shaped subject straddling a bar: the intersection is two pieces.
	u := []r2.Vec{
		{}, {X: 3}, {X: 3, Y: 3}, {X: 2, Y: 3}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 3}, {Y: 3},
	}
	bar := []r2.Vec{{X: -1, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 2.5}, {X: -1, Y: 2.5}}
	got := Intersect(u, bar)
	require.Len(t, got, 2)
	total := 0.0
	for _, p := range got {
		total += math.Abs(Area(p))
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestIntersectDegenerate(t *testing.T) {
	assert.Nil(t, Intersect(unitSquare, []r2.Vec{{}, {X: 1}}))
	line := []r2.Vec{{}, {X: 1}, {X: 2}}
	assert.Nil(t, Intersect(unitSquare, line))
}
