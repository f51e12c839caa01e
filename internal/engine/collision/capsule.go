package collision

import (
	"github.com/Faultbox/stride/pkg/math"
)

// Capsule is a swept sphere: the medial segment Start-End plus Radius.
// Start sits near the feet and End near the head, both inset from the
// true body extents by Radius. Radius stays constant for the lifetime
// of a controller; only the segment moves.
type Capsule struct {
	Start  math.Vec3
	End    math.Vec3
	Radius float32
}

// Set replaces the capsule's segment and radius.
func (c *Capsule) Set(start, end math.Vec3, radius float32) {
	c.Start = start
	c.End = end
	c.Radius = radius
}

// CopyFrom copies the other capsule into this one.
func (c *Capsule) CopyFrom(other *Capsule) {
	c.Start = other.Start
	c.End = other.End
	c.Radius = other.Radius
}

// Translate moves both segment endpoints by delta. Used to apply one
// frame's positional correction.
func (c *Capsule) Translate(delta math.Vec3) {
	c.Start = c.Start.Add(delta)
	c.End = c.End.Add(delta)
}

// Center returns the midpoint of the medial segment.
func (c *Capsule) Center() math.Vec3 {
	return c.Start.Add(c.End).Scale(0.5)
}

// Bounds returns the capsule's AABB: the segment's box grown by Radius
// on every axis.
func (c *Capsule) Bounds() AABB {
	return AABB{
		Min: c.Start.Min(c.End),
		Max: c.Start.Max(c.End),
	}.ExpandBy(c.Radius)
}

// IntersectsBox tests the capsule against a box using three independent
// 2D segment/rectangle overlap tests (XY, XZ, YZ projections), each
// expanded by Radius. Any failing projection rejects cheaply before the
// next one runs.
func (c *Capsule) IntersectsBox(box AABB) bool {
	r := c.Radius
	if !segmentOverlapsRect(
		c.Start.X, c.Start.Y, c.End.X, c.End.Y,
		box.Min.X-r, box.Min.Y-r, box.Max.X+r, box.Max.Y+r) {
		return false
	}
	if !segmentOverlapsRect(
		c.Start.X, c.Start.Z, c.End.X, c.End.Z,
		box.Min.X-r, box.Min.Z-r, box.Max.X+r, box.Max.Z+r) {
		return false
	}
	return segmentOverlapsRect(
		c.Start.Y, c.Start.Z, c.End.Y, c.End.Z,
		box.Min.Y-r, box.Min.Z-r, box.Max.Y+r, box.Max.Z+r)
}

// segmentOverlapsRect reports whether the 2D segment (ax,ay)-(bx,by)
// touches the rectangle [minX,maxX]x[minY,maxY], by clipping the
// segment's parameter range against each slab.
func segmentOverlapsRect(ax, ay, bx, by, minX, minY, maxX, maxY float32) bool {
	t0, t1 := float32(0), float32(1)
	if !clipSlab(ax, bx-ax, minX, maxX, &t0, &t1) {
		return false
	}
	if !clipSlab(ay, by-ay, minY, maxY, &t0, &t1) {
		return false
	}
	return t0 <= t1
}

func clipSlab(origin, dir, lo, hi float32, t0, t1 *float32) bool {
	if dir > -epsilon && dir < epsilon {
		return origin >= lo && origin <= hi
	}
	ta := (lo - origin) / dir
	tb := (hi - origin) / dir
	if ta > tb {
		ta, tb = tb, ta
	}
	if ta > *t0 {
		*t0 = ta
	}
	if tb < *t1 {
		*t1 = tb
	}
	return *t0 <= *t1
}
