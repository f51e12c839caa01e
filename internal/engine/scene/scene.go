// Package scene provides the static scene graph that world geometry
// hangs from. Nodes carry local transforms, optional position-only
// geometry, optional instance transform lists, and a collidability tag
// that the collision builder resolves once per traversal.
package scene

import (
	"github.com/Faultbox/stride/pkg/math"
)

// Geometry is position-only triangle geometry in node-local space.
// Positions are packed x,y,z triples. Indices is optional; when nil,
// consecutive position triples form triangles.
type Geometry struct {
	Positions []float32
	Indices   []uint32
}

// TriangleCount returns the number of triangles in the geometry.
func (g *Geometry) TriangleCount() int {
	if g == nil {
		return 0
	}
	if g.Indices != nil {
		return len(g.Indices) / 3
	}
	return len(g.Positions) / 9
}

// Node is one element of the scene hierarchy.
type Node struct {
	Name string

	// Transform is the node-local transform relative to the parent.
	Transform math.Mat4

	// NonCollidable excludes this node and its entire subtree from
	// collision extraction. Rendering is unaffected.
	NonCollidable bool

	// Geometry is the mesh attached to this node, if any.
	Geometry *Geometry

	// Instances replicates the node's geometry once per transform.
	// Each instance transform is relative to this node.
	Instances []math.Mat4

	parent   *Node
	children []*Node
}

// New creates a named node with an identity transform.
func New(name string) *Node {
	return &Node{
		Name:      name,
		Transform: math.Identity(),
	}
}

// AddChild attaches child to n and returns the child for chaining.
func (n *Node) AddChild(child *Node) *Node {
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// Children returns the node's direct children.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// WorldMatrix composes the transforms from the root down to this node.
func (n *Node) WorldMatrix() math.Mat4 {
	if n.parent == nil {
		return n.Transform
	}
	return n.parent.WorldMatrix().Mul(n.Transform)
}

// Walk visits the subtree rooted at n depth-first. Each node is passed
// with its accumulated world matrix and the resolved collidable flag,
// so visitors never re-walk ancestors to answer "is this collidable".
func (n *Node) Walk(fn func(node *Node, world math.Mat4, collidable bool)) {
	start := math.Identity()
	if n.parent != nil {
		start = n.parent.WorldMatrix()
	}
	n.walk(start, true, fn)
}

func (n *Node) walk(parentWorld math.Mat4, parentCollidable bool, fn func(*Node, math.Mat4, bool)) {
	world := parentWorld.Mul(n.Transform)
	collidable := parentCollidable && !n.NonCollidable
	fn(n, world, collidable)
	for _, child := range n.children {
		child.walk(world, collidable, fn)
	}
}
