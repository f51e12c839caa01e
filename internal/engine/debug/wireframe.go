// Package debug generates wireframe line geometry for the collider
// overlay: boxes around the avatar capsule and the world mesh so the
// walkthrough can show what the collision engine sees.
package debug

import (
	"github.com/Faultbox/stride/internal/engine/collision"
)

// BoxVertexCount is the number of line-list vertices per wireframe box
// (12 edges, 2 endpoints each).
const BoxVertexCount = 24

// AppendWireframeBox appends line-list vertices tracing the twelve
// edges of box to dst and returns the extended slice.
func AppendWireframeBox(dst []float32, box collision.AABB) []float32 {
	if box.IsEmpty() {
		return dst
	}
	n, x := box.Min, box.Max
	return append(dst,
		// bottom rectangle
		n.X, n.Y, n.Z, x.X, n.Y, n.Z,
		x.X, n.Y, n.Z, x.X, n.Y, x.Z,
		x.X, n.Y, x.Z, n.X, n.Y, x.Z,
		n.X, n.Y, x.Z, n.X, n.Y, n.Z,
		// top rectangle
		n.X, x.Y, n.Z, x.X, x.Y, n.Z,
		x.X, x.Y, n.Z, x.X, x.Y, x.Z,
		x.X, x.Y, x.Z, n.X, x.Y, x.Z,
		n.X, x.Y, x.Z, n.X, x.Y, n.Z,
		// verticals
		n.X, n.Y, n.Z, n.X, x.Y, n.Z,
		x.X, n.Y, n.Z, x.X, x.Y, n.Z,
		x.X, n.Y, x.Z, x.X, x.Y, x.Z,
		n.X, n.Y, x.Z, n.X, x.Y, x.Z,
	)
}

// CapsuleWireframe returns the overlay lines for a capsule: its
// bounding box plus a segment marking the medial axis.
func CapsuleWireframe(c *collision.Capsule) []float32 {
	lines := AppendWireframeBox(nil, c.Bounds())
	return append(lines,
		c.Start.X, c.Start.Y, c.Start.Z,
		c.End.X, c.End.Y, c.End.Z,
	)
}
