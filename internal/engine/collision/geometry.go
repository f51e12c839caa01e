package collision

import (
	"github.com/Faultbox/stride/pkg/math"
)

// epsilon is both the "effectively touching" distance threshold and the
// minimum squared length before a vector counts as degenerate.
const epsilon = 1e-6

func clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// closestPtPointSegment returns the point on segment ab closest to p.
func closestPtPointSegment(p, a, b math.Vec3) math.Vec3 {
	ab := b.Sub(a)
	denom := ab.Dot(ab)
	if denom <= epsilon {
		return a
	}
	t := clamp01(p.Sub(a).Dot(ab) / denom)
	return a.Add(ab.Scale(t))
}

// closestPtSegmentSegment returns the closest pair of points between
// segments p1q1 and p2q2, solving the 2x2 system for the two segment
// parameters with guards for degenerate (point-like) segments.
func closestPtSegmentSegment(p1, q1, p2, q2 math.Vec3) (math.Vec3, math.Vec3) {
	d1 := q1.Sub(p1)
	d2 := q2.Sub(p2)
	r := p1.Sub(p2)
	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	var s, t float32
	switch {
	case a <= epsilon && e <= epsilon:
		// both segments are points
		return p1, p2
	case a <= epsilon:
		t = clamp01(f / e)
	case e <= epsilon:
		s = clamp01(-d1.Dot(r) / a)
	default:
		c := d1.Dot(r)
		b := d1.Dot(d2)
		denom := a*e - b*b
		if denom > epsilon {
			s = clamp01((b*f - c*e) / denom)
		}
		t = (b*s + f) / e
		if t < 0 {
			t = 0
			s = clamp01(-c / a)
		} else if t > 1 {
			t = 1
			s = clamp01((b - c) / a)
		}
	}
	return p1.Add(d1.Scale(s)), p2.Add(d2.Scale(t))
}

// closestPtPointTriangle returns the point on triangle abc closest to p,
// classifying p against the triangle's Voronoi regions.
func closestPtPointTriangle(p, a, b, c math.Vec3) math.Vec3 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	if ab.Cross(ac).LengthSq() <= epsilon {
		// zero-area triangle: the Voronoi walk divides by zero, so
		// reduce to the nearest edge instead
		return closestPtDegenerateTriangle(p, a, b, c)
	}

	ap := p.Sub(a)
	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := p.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		return a.Add(ab.Scale(d1 / (d1 - d3)))
	}

	cp := p.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		return a.Add(ac.Scale(d2 / (d2 - d6)))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		return b.Add(c.Sub(b).Scale((d4 - d3) / ((d4 - d3) + (d5 - d6))))
	}

	sum := va + vb + vc
	v := vb / sum
	w := vc / sum
	return a.Add(ab.Scale(v)).Add(ac.Scale(w))
}

func closestPtDegenerateTriangle(p, a, b, c math.Vec3) math.Vec3 {
	best := closestPtPointSegment(p, a, b)
	bestSq := p.Sub(best).LengthSq()
	if q := closestPtPointSegment(p, b, c); p.Sub(q).LengthSq() < bestSq {
		best = q
		bestSq = p.Sub(q).LengthSq()
	}
	if q := closestPtPointSegment(p, c, a); p.Sub(q).LengthSq() < bestSq {
		best = q
	}
	return best
}

// pointInTriangle reports whether p, assumed to lie on the plane of
// triangle abc with normal n, is inside the triangle.
func pointInTriangle(p, a, b, c, n math.Vec3) bool {
	if b.Sub(a).Cross(p.Sub(a)).Dot(n) < 0 {
		return false
	}
	if c.Sub(b).Cross(p.Sub(b)).Dot(n) < 0 {
		return false
	}
	return a.Sub(c).Cross(p.Sub(c)).Dot(n) >= 0
}

// closestPtSegmentTriangle returns the closest pair of points between
// segment pq and triangle abc.
//
// When the segment endpoints straddle the triangle's plane and the
// crossing point lies inside the triangle, the pair is that crossing
// point twice (the segment pierces the face, distance zero). Otherwise
// the minimum is over each endpoint against the face and the segment
// against each of the three edges.
func closestPtSegmentTriangle(p, q, a, b, c math.Vec3) (math.Vec3, math.Vec3) {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.LengthSq() > epsilon {
		dp := p.Sub(a).Dot(n)
		dq := q.Sub(a).Dot(n)
		if (dp < 0 && dq > 0) || (dp > 0 && dq < 0) {
			x := p.Lerp(q, dp/(dp-dq))
			if pointInTriangle(x, a, b, c, n) {
				return x, x
			}
		}
	}

	bestSeg := p
	bestTri := closestPtPointTriangle(p, a, b, c)
	bestSq := bestSeg.Sub(bestTri).LengthSq()

	if onTri := closestPtPointTriangle(q, a, b, c); q.Sub(onTri).LengthSq() < bestSq {
		bestSeg, bestTri = q, onTri
		bestSq = q.Sub(onTri).LengthSq()
	}

	edges := [3][2]math.Vec3{{a, b}, {b, c}, {c, a}}
	for _, e := range edges {
		onSeg, onEdge := closestPtSegmentSegment(p, q, e[0], e[1])
		if onSeg.Sub(onEdge).LengthSq() < bestSq {
			bestSeg, bestTri = onSeg, onEdge
			bestSq = onSeg.Sub(onEdge).LengthSq()
		}
	}
	return bestSeg, bestTri
}
