// Package clip implements 2D polygon clipping primitives: half-plane and
// convex clipping for the voronoi cell kernel, and a general boolean
// intersection of simple polygons for clipping cells against arbitrary,
// possibly concave borders.
//
// Polygons are ordered vertex slices, implicitly closed. Holes are not
// supported. Winding may be either direction unless stated otherwise.
package clip

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// tolerance below which points are considered coincident and areas zero.
const tolerance = 1e-9

// Area returns the signed area of the polygon, positive for
// counterclockwise winding.
func Area(p []r2.Vec) float64 {
	var sum float64
	n := len(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return sum / 2
}

// Centroid returns the area centroid of the polygon.
func Centroid(p []r2.Vec) r2.Vec {
	var cx, cy, a float64
	n := len(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		w := p[i].X*p[j].Y - p[j].X*p[i].Y
		cx += (p[i].X + p[j].X) * w
		cy += (p[i].Y + p[j].Y) * w
		a += w
	}
	if math.Abs(a) < tolerance {
		return p[0]
	}
	return r2.Vec{X: cx / (3 * a), Y: cy / (3 * a)}
}

// IsCCW reports whether the polygon winds counterclockwise.
func IsCCW(p []r2.Vec) bool {
	return Area(p) > 0
}

// CCW returns the polygon with counterclockwise winding, reversing the
// vertex order if needed. The input is not modified.
func CCW(p []r2.Vec) []r2.Vec {
	if IsCCW(p) {
		return p
	}
	q := make([]r2.Vec, len(p))
	for i, v := range p {
		q[len(p)-1-i] = v
	}
	return q
}

// Contains reports whether q lies strictly inside the polygon by ray
// crossing. Points on the boundary may be classified either way.
func Contains(p []r2.Vec, q r2.Vec) bool {
	inside := false
	n := len(p)
	j := n - 1
	for i := 0; i < n; i++ {
		if (p[i].Y > q.Y) != (p[j].Y > q.Y) &&
			q.X < (p[j].X-p[i].X)*(q.Y-p[i].Y)/(p[j].Y-p[i].Y)+p[i].X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// ContainsWithin reports whether q lies inside the polygon or within tol of
// its boundary.
func ContainsWithin(p []r2.Vec, q r2.Vec, tol float64) bool {
	if Contains(p, q) {
		return true
	}
	n := len(p)
	for i := 0; i < n; i++ {
		if distToSegment(q, p[i], p[(i+1)%n]) <= tol {
			return true
		}
	}
	return false
}

func distToSegment(q, a, b r2.Vec) float64 {
	ab := r2.Sub(b, a)
	l2 := r2.Norm2(ab)
	if l2 == 0 {
		return r2.Norm(r2.Sub(q, a))
	}
	t := r2.Dot(r2.Sub(q, a), ab) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return r2.Norm(r2.Sub(q, r2.Add(a, r2.Scale(t, ab))))
}

// Halfplane clips the polygon to the half-plane {p : dot(p,n) <= c}.
// This is one pass of Sutherland-Hodgman clipping and is the workhorse of
// voronoi cell construction, where n is the direction from a site to a
// rival site and c places the boundary on their perpendicular bisector.
func Halfplane(poly []r2.Vec, n r2.Vec, c float64) []r2.Vec {
	if len(poly) == 0 {
		return nil
	}
	out := make([]r2.Vec, 0, len(poly)+1)
	prev := poly[len(poly)-1]
	dPrev := r2.Dot(prev, n) - c
	for _, cur := range poly {
		dCur := r2.Dot(cur, n) - c
		switch {
		case dPrev <= 0 && dCur <= 0:
			out = append(out, cur)
		case dPrev <= 0 && dCur > 0:
			t := dPrev / (dPrev - dCur)
			out = append(out, r2.Add(prev, r2.Scale(t, r2.Sub(cur, prev))))
		case dPrev > 0 && dCur <= 0:
			t := dPrev / (dPrev - dCur)
			out = append(out, r2.Add(prev, r2.Scale(t, r2.Sub(cur, prev))))
			out = append(out, cur)
		}
		prev = cur
		dPrev = dCur
	}
	return dedupe(out)
}

// Convex clips the subject polygon against a convex polygon. The subject
// may be concave. The convex polygon may use either winding.
func Convex(subject, convex []r2.Vec) []r2.Vec {
	cc := CCW(convex)
	out := subject
	n := len(cc)
	for i := 0; i < n && len(out) > 0; i++ {
		a := cc[i]
		b := cc[(i+1)%n]
		// interior is to the left of a->b: clip to cross(b-a, p-a) >= 0,
		// expressed as a half-plane with the right-hand normal of the edge.
		e := r2.Sub(b, a)
		nrm := r2.Vec{X: e.Y, Y: -e.X}
		out = Halfplane(out, nrm, r2.Dot(a, nrm))
	}
	return out
}

// dedupe removes consecutive vertices closer than tolerance, including the
// wraparound pair, and drops the polygon entirely if fewer than 3 distinct
// vertices remain.
func dedupe(p []r2.Vec) []r2.Vec {
	if len(p) == 0 {
		return nil
	}
	out := p[:0:0]
	for _, v := range p {
		if len(out) == 0 || r2.Norm(r2.Sub(v, out[len(out)-1])) > tolerance {
			out = append(out, v)
		}
	}
	for len(out) > 1 && r2.Norm(r2.Sub(out[0], out[len(out)-1])) <= tolerance {
		out = out[:len(out)-1]
	}
	if len(out) < 3 {
		return nil
	}
	return out
}
