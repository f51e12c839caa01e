// Package collision implements the capsule collision engine: a merged
// world-space triangle soup extracted from the scene graph and the
// capsule penetration queries run against it.
package collision

import (
	gomath "math"

	"github.com/Faultbox/stride/pkg/math"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// EmptyAABB returns an inverted box that contains nothing. Extending it
// with any point produces a box around that point.
func EmptyAABB() AABB {
	inf := float32(gomath.Inf(1))
	return AABB{
		Min: math.Vec3{X: inf, Y: inf, Z: inf},
		Max: math.Vec3{X: -inf, Y: -inf, Z: -inf},
	}
}

// IsEmpty reports whether the box contains nothing.
func (b AABB) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// ExtendPoint grows the box to contain p.
func (b *AABB) ExtendPoint(p math.Vec3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// ExpandBy returns the box grown by r on every axis.
func (b AABB) ExpandBy(r float32) AABB {
	d := math.Vec3{X: r, Y: r, Z: r}
	return AABB{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}

// Overlaps reports whether the two boxes share any volume.
func (b AABB) Overlaps(other AABB) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

// Center returns the midpoint of the box.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}
