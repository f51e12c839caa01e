package collision

import (
	"go.uber.org/zap"

	"github.com/Faultbox/stride/internal/engine/scene"
	"github.com/Faultbox/stride/internal/logger"
	"github.com/Faultbox/stride/pkg/math"
)

// Contact is the single deepest-penetration contact found by one
// capsule query. Normal points from the surface toward the capsule;
// Depth is how far the capsule must move along Normal to separate.
type Contact struct {
	Normal math.Vec3
	Depth  float32
}

// Mesh owns the merged, world-space triangle soup extracted from a
// scene graph snapshot. It is immutable between Refresh calls, so
// concurrent CapsuleIntersect readers are safe as long as no rebuild
// runs at the same time.
type Mesh struct {
	positions []float32
	indices   []uint32
	bounds    AABB
}

// BuildFromScene extracts every collidable triangle under root into a
// single world-space mesh. A root with no collidable geometry yields an
// empty mesh whose queries always report no contact.
func BuildFromScene(root *scene.Node) *Mesh {
	m := &Mesh{}
	m.Refresh(root)
	return m
}

// Refresh rebuilds the mesh wholesale from the scene. There is no
// incremental update: call it on discrete world edits, not every frame.
func (m *Mesh) Refresh(root *scene.Node) {
	m.positions = m.positions[:0]
	m.indices = m.indices[:0]

	if root != nil {
		root.Walk(func(node *scene.Node, world math.Mat4, collidable bool) {
			if !collidable || node.Geometry == nil {
				return
			}
			if len(node.Instances) > 0 {
				for _, inst := range node.Instances {
					m.appendGeometry(node.Geometry, world.Mul(inst))
				}
			} else {
				m.appendGeometry(node.Geometry, world)
			}
		})
	}

	m.bounds = EmptyAABB()
	for i := 0; i+2 < len(m.positions); i += 3 {
		m.bounds.ExtendPoint(math.Vec3{X: m.positions[i], Y: m.positions[i+1], Z: m.positions[i+2]})
	}

	if logger.Log != nil {
		logger.Debug("collision mesh rebuilt",
			zap.Int("triangles", m.TriangleCount()),
			zap.Int("vertices", len(m.positions)/3),
		)
	}
}

// appendGeometry bakes world into g's positions and concatenates them,
// rebasing indices onto the combined buffer. Non-indexed geometry gets
// consecutive indices so queries iterate one way.
func (m *Mesh) appendGeometry(g *scene.Geometry, world math.Mat4) {
	base := uint32(len(m.positions) / 3)
	for i := 0; i+2 < len(g.Positions); i += 3 {
		p := world.TransformPoint([3]float32{g.Positions[i], g.Positions[i+1], g.Positions[i+2]})
		m.positions = append(m.positions, p[0], p[1], p[2])
	}
	if g.Indices != nil {
		for _, idx := range g.Indices {
			m.indices = append(m.indices, base+idx)
		}
	} else {
		for i := 0; i < len(g.Positions)/3; i++ {
			m.indices = append(m.indices, base+uint32(i))
		}
	}
}

// TriangleCount returns the number of triangles in the merged mesh.
func (m *Mesh) TriangleCount() int {
	if m == nil {
		return 0
	}
	return len(m.indices) / 3
}

// Bounds returns the merged mesh's bounding box.
func (m *Mesh) Bounds() AABB {
	if m == nil {
		return EmptyAABB()
	}
	return m.bounds
}

// CapsuleIntersect returns the deepest penetration contact between the
// capsule and the mesh, or nil when they do not touch. All overlapping
// triangles collapse into the single strongest normal+depth pair.
func (m *Mesh) CapsuleIntersect(c *Capsule) *Contact {
	if m == nil || len(m.indices) < 3 || m.bounds.IsEmpty() {
		return nil
	}

	if !c.IntersectsBox(m.bounds) {
		return nil
	}
	capBox := c.Bounds()

	var best Contact
	found := false

	for i := 0; i+2 < len(m.indices); i += 3 {
		ta := m.vertex(m.indices[i])
		tb := m.vertex(m.indices[i+1])
		tc := m.vertex(m.indices[i+2])

		// per-triangle broad phase: tight AABB grown by the radius
		triBox := AABB{Min: ta.Min(tb).Min(tc), Max: ta.Max(tb).Max(tc)}.ExpandBy(c.Radius)
		if !triBox.Overlaps(capBox) {
			continue
		}

		onSeg, onTri := closestPtSegmentTriangle(c.Start, c.End, ta, tb, tc)
		sep := onSeg.Sub(onTri)
		dist := sep.Length()
		if dist >= c.Radius-epsilon {
			continue
		}

		var normal math.Vec3
		if sep.LengthSq() > epsilon {
			normal = sep.Scale(1 / dist)
		} else {
			// closest points coincide: use the face normal instead of
			// normalizing a near-zero vector
			n := tb.Sub(ta).Cross(tc.Sub(ta))
			if n.LengthSq() <= epsilon {
				continue
			}
			normal = n.Normalize()
		}

		depth := c.Radius - dist
		if !found || depth > best.Depth {
			best = Contact{Normal: normal, Depth: depth}
			found = true
		}
	}

	if !found {
		return nil
	}
	return &best
}

func (m *Mesh) vertex(idx uint32) math.Vec3 {
	i := idx * 3
	return math.Vec3{X: m.positions[i], Y: m.positions[i+1], Z: m.positions[i+2]}
}
