package scene

import (
	"testing"

	"github.com/Faultbox/stride/pkg/math"
)

func TestWorldMatrixComposes(t *testing.T) {
	root := New("root")
	root.Transform = math.Translate(10, 0, 0)

	child := root.AddChild(New("child"))
	child.Transform = math.Translate(0, 5, 0)

	grandchild := child.AddChild(New("grandchild"))
	grandchild.Transform = math.Translate(0, 0, 2)

	w := grandchild.WorldMatrix()
	p := w.TransformPoint([3]float32{0, 0, 0})
	want := [3]float32{10, 5, 2}
	if p != want {
		t.Errorf("composed origin: got %v, want %v", p, want)
	}
}

func TestWalkResolvesCollidability(t *testing.T) {
	root := New("root")

	root.AddChild(New("solid"))
	ghost := root.AddChild(New("ghost"))
	ghost.NonCollidable = true
	ghost.AddChild(New("nested"))

	got := map[string]bool{}
	root.Walk(func(n *Node, _ math.Mat4, collidable bool) {
		got[n.Name] = collidable
	})

	if len(got) != 4 {
		t.Fatalf("visited %d nodes, want 4", len(got))
	}
	if !got["root"] || !got["solid"] {
		t.Error("root and solid should be collidable")
	}
	if got["ghost"] {
		t.Error("ghost should not be collidable")
	}
	if got["nested"] {
		t.Error("children of non-collidable nodes must inherit the exclusion")
	}
}

func TestWalkWorldMatrices(t *testing.T) {
	root := New("root")
	root.Transform = math.Translate(1, 0, 0)
	child := root.AddChild(New("child"))
	child.Transform = math.Translate(0, 2, 0)

	var childWorld math.Mat4
	root.Walk(func(n *Node, world math.Mat4, _ bool) {
		if n.Name == "child" {
			childWorld = world
		}
	})

	p := childWorld.TransformPoint([3]float32{0, 0, 0})
	if want := ([3]float32{1, 2, 0}); p != want {
		t.Errorf("child world origin: got %v, want %v", p, want)
	}
}

func TestParentChild(t *testing.T) {
	root := New("root")
	child := root.AddChild(New("child"))

	if child.Parent() != root {
		t.Error("child parent should be root")
	}
	if root.Parent() != nil {
		t.Error("root parent should be nil")
	}
	if len(root.Children()) != 1 || root.Children()[0] != child {
		t.Errorf("root children: got %v", root.Children())
	}
}

func TestShapeTriangleCounts(t *testing.T) {
	tests := []struct {
		name string
		g    *Geometry
		want int
	}{
		{"plane 1x1", NewPlane(10, 10, 1), 2},
		{"plane 4x4", NewPlane(10, 10, 4), 32},
		{"box", NewBox(1, 2, 3), 12},
		{"ramp", NewRamp(4, 2, 6), 2},
		{"nil geometry", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.TriangleCount(); got != tt.want {
				t.Errorf("TriangleCount: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewPlaneExtents(t *testing.T) {
	g := NewPlane(20, 10, 2)

	minX, maxX := float32(0), float32(0)
	minZ, maxZ := float32(0), float32(0)
	for i := 0; i+2 < len(g.Positions); i += 3 {
		x, y, z := g.Positions[i], g.Positions[i+1], g.Positions[i+2]
		if y != 0 {
			t.Fatalf("plane vertex off y=0: %f", y)
		}
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if z < minZ {
			minZ = z
		}
		if z > maxZ {
			maxZ = z
		}
	}
	if minX != -10 || maxX != 10 || minZ != -5 || maxZ != 5 {
		t.Errorf("plane extents: x %f..%f, z %f..%f", minX, maxX, minZ, maxZ)
	}
}

func TestNewRampRises(t *testing.T) {
	g := NewRamp(4, 2, 6)
	for i := 0; i+2 < len(g.Positions); i += 3 {
		y, z := g.Positions[i+1], g.Positions[i+2]
		if z < 0 && y != 0 {
			t.Errorf("ramp low edge should sit at y=0, got %f", y)
		}
		if z > 0 && y != 2 {
			t.Errorf("ramp high edge should reach y=2, got %f", y)
		}
	}
}
