package clip

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// bnode is a vertex of an augmented polygon ring. Intersection nodes appear
// in both rings and are linked through neighbor.
type bnode struct {
	p         r2.Vec
	next      *bnode
	intersect bool
	visited   bool
	entry     bool // path after this node lies inside the other polygon
	neighbor  *bnode
}

// Intersect computes the boolean intersection of two simple polygons using
// a Weiler-Atherton boundary traversal. The subject may be concave, either
// polygon may use either winding and the result may consist of several
// polygons. Holes are not supported. Vertices touching the other boundary
// without crossing it are treated best-effort: the crossing is ignored and
// the containment fallback decides.
func Intersect(subject, clip []r2.Vec) [][]r2.Vec {
	if len(subject) < 3 || len(clip) < 3 {
		return nil
	}
	if math.Abs(Area(subject)) < tolerance || math.Abs(Area(clip)) < tolerance {
		return nil
	}
	s := CCW(subject)
	c := CCW(clip)

	sRing, cRing, nx := buildRings(s, c)
	if nx == 0 {
		// no boundary crossings: one polygon contains the other or they
		// are disjoint.
		if allWithin(s, c) {
			return [][]r2.Vec{s}
		}
		if allWithin(c, s) {
			return [][]r2.Vec{c}
		}
		return nil
	}

	classify(sRing, c)
	classify(cRing, s)

	var out [][]r2.Vec
	maxSteps := 4 * (len(s) + len(c) + 2*nx)
	for _, start := range entries(sRing) {
		poly := traverse(start, maxSteps)
		poly = dedupe(poly)
		if poly != nil && math.Abs(Area(poly)) > tolerance {
			out = append(out, poly)
		}
	}
	return out
}

// allWithin reports whether every vertex of p lies inside q or on its
// boundary.
func allWithin(p, q []r2.Vec) bool {
	for _, v := range p {
		if !ContainsWithin(q, v, tolerance) {
			return false
		}
	}
	return true
}

// xrec records a crossing on one edge of a ring.
type xrec struct {
	t    float64
	node *bnode
}

// buildRings constructs the circular vertex rings for both polygons with
// intersection nodes inserted in edge order, and returns the rings along
// with the number of crossings found.
func buildRings(s, c []r2.Vec) (sRing, cRing *bnode, nx int) {
	sx := make([][]xrec, len(s))
	cx := make([][]xrec, len(c))
	for i := range s {
		a1 := s[i]
		a2 := s[(i+1)%len(s)]
		for j := range c {
			b1 := c[j]
			b2 := c[(j+1)%len(c)]
			p, t, u, ok := segIntersect(a1, a2, b1, b2)
			if !ok {
				continue
			}
			ns := &bnode{p: p, intersect: true}
			nc := &bnode{p: p, intersect: true}
			ns.neighbor = nc
			nc.neighbor = ns
			sx[i] = append(sx[i], xrec{t: t, node: ns})
			cx[j] = append(cx[j], xrec{t: u, node: nc})
			nx++
		}
	}
	sRing = makeRing(s, sx)
	cRing = makeRing(c, cx)
	return sRing, cRing, nx
}

// makeRing links polygon vertices and their per-edge crossings, sorted
// along each edge, into a circular list.
func makeRing(p []r2.Vec, edgeXs [][]xrec) *bnode {
	var head, tail *bnode
	link := func(n *bnode) {
		if head == nil {
			head = n
			tail = n
			return
		}
		tail.next = n
		tail = n
	}
	for i, v := range p {
		link(&bnode{p: v})
		xs := edgeXs[i]
		sort.Slice(xs, func(a, b int) bool { return xs[a].t < xs[b].t })
		for _, x := range xs {
			link(x.node)
		}
	}
	tail.next = head
	return head
}

// classify sets the entry flag on ring intersections: a crossing is an
// entry if the path immediately after it lies inside other.
func classify(ring *bnode, other []r2.Vec) {
	n := ring
	for {
		if n.intersect {
			mid := r2.Scale(0.5, r2.Add(n.p, n.next.p))
			n.entry = Contains(other, mid)
		}
		n = n.next
		if n == ring {
			return
		}
	}
}

// entries returns the entry crossings of a ring in ring order. Traversal of
// one result polygon marks the crossings it consumes, so each remaining
// entry seeds a distinct output polygon.
func entries(ring *bnode) []*bnode {
	var ns []*bnode
	n := ring
	for {
		if n.intersect && n.entry {
			ns = append(ns, n)
		}
		n = n.next
		if n == ring {
			return ns
		}
	}
}

// traverse walks one output polygon starting from an entry crossing,
// following each ring while inside the other polygon and switching rings at
// every crossing. Both rings wind counterclockwise so forward motion always
// borders the intersection region.
func traverse(start *bnode, maxSteps int) []r2.Vec {
	if start.visited {
		return nil
	}
	poly := []r2.Vec{start.p}
	mark(start)
	cur := start
	for steps := 0; steps < maxSteps; steps++ {
		cur = cur.next
		if cur == start || cur.neighbor == start {
			return poly
		}
		poly = append(poly, cur.p)
		if cur.intersect {
			mark(cur)
			cur = cur.neighbor
		}
	}
	// traversal failed to close, typically a near-degenerate crossing.
	return nil
}

func mark(n *bnode) {
	n.visited = true
	if n.neighbor != nil {
		n.neighbor.visited = true
	}
}

// segIntersect returns the proper crossing of segments p1p2 and q1q2 with
// its parameters along each segment. Parallel segments and crossings at
// segment endpoints report no intersection.
func segIntersect(p1, p2, q1, q2 r2.Vec) (pt r2.Vec, t, u float64, ok bool) {
	r := r2.Sub(p2, p1)
	s := r2.Sub(q2, q1)
	denom := r2.Cross(r, s)
	if math.Abs(denom) < 1e-12 {
		return pt, 0, 0, false
	}
	qp := r2.Sub(q1, p1)
	t = r2.Cross(qp, s) / denom
	u = r2.Cross(qp, r) / denom
	const eps = 1e-9
	if t <= eps || t >= 1-eps || u <= eps || u >= 1-eps {
		return pt, 0, 0, false
	}
	return r2.Add(p1, r2.Scale(t, r)), t, u, true
}
