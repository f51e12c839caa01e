package collision

import (
	"github.com/Faultbox/stride/pkg/math"
)

// Ray is a world-space ray with a normalized direction.
type Ray struct {
	Origin math.Vec3
	Dir    math.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// intersectAABB clips the ray against the box slabs. It returns the
// entry distance, zero when the origin is already inside, and whether
// the ray hits at all.
func (r Ray) intersectAABB(box AABB) (float32, bool) {
	tmin := float32(-1e30)
	tmax := float32(1e30)

	origins := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dirs := [3]float32{r.Dir.X, r.Dir.Y, r.Dir.Z}
	mins := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	maxs := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if dirs[axis] > -epsilon && dirs[axis] < epsilon {
			if origins[axis] < mins[axis] || origins[axis] > maxs[axis] {
				return 0, false
			}
			continue
		}
		t1 := (mins[axis] - origins[axis]) / dirs[axis]
		t2 := (maxs[axis] - origins[axis]) / dirs[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return 0, true
	}
	return tmin, true
}

// rayTriangle is the Moller-Trumbore ray/triangle intersection. It
// returns the hit distance along the ray, rejecting backward hits and
// rays parallel to the triangle plane.
func rayTriangle(orig, dir, a, b, c math.Vec3) (float32, bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := dir.Cross(e2)
	det := e1.Dot(p)
	if det > -epsilon && det < epsilon {
		return 0, false
	}
	inv := 1 / det

	s := orig.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(e1)
	v := dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := e2.Dot(q) * inv
	if t < epsilon {
		return 0, false
	}
	return t, true
}

// Raycast returns the distance to the nearest triangle hit within
// maxDist, and whether anything was hit. The chase camera uses it to
// keep world geometry from blocking the view.
func (m *Mesh) Raycast(r Ray, maxDist float32) (float32, bool) {
	if m == nil || len(m.indices) < 3 || m.bounds.IsEmpty() {
		return 0, false
	}
	if entry, ok := r.intersectAABB(m.bounds); !ok || entry > maxDist {
		return 0, false
	}

	best := maxDist
	found := false
	for i := 0; i+2 < len(m.indices); i += 3 {
		a := m.vertex(m.indices[i])
		b := m.vertex(m.indices[i+1])
		c := m.vertex(m.indices[i+2])
		if t, ok := rayTriangle(r.Origin, r.Dir, a, b, c); ok && t <= best {
			best = t
			found = true
		}
	}
	return best, found
}
