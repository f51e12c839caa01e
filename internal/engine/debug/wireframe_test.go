package debug

import (
	"testing"

	"github.com/Faultbox/stride/internal/engine/collision"
	"github.com/Faultbox/stride/pkg/math"
)

func TestAppendWireframeBox(t *testing.T) {
	box := collision.AABB{
		Min: math.Vec3{X: -1, Y: 0, Z: -2},
		Max: math.Vec3{X: 1, Y: 3, Z: 2},
	}

	lines := AppendWireframeBox(nil, box)
	if got, want := len(lines), BoxVertexCount*3; got != want {
		t.Fatalf("vertex floats: got %d, want %d", got, want)
	}

	// every vertex must sit on a box corner
	for i := 0; i+2 < len(lines); i += 3 {
		x, y, z := lines[i], lines[i+1], lines[i+2]
		if (x != box.Min.X && x != box.Max.X) ||
			(y != box.Min.Y && y != box.Max.Y) ||
			(z != box.Min.Z && z != box.Max.Z) {
			t.Fatalf("vertex (%f, %f, %f) is not a corner of %v", x, y, z, box)
		}
	}
}

func TestAppendWireframeBoxSkipsEmpty(t *testing.T) {
	lines := AppendWireframeBox(nil, collision.EmptyAABB())
	if len(lines) != 0 {
		t.Errorf("empty box should add no lines, got %d floats", len(lines))
	}
}

func TestCapsuleWireframe(t *testing.T) {
	var c collision.Capsule
	c.Set(math.Vec3{Y: 0.35}, math.Vec3{Y: 1.45}, 0.35)

	lines := CapsuleWireframe(&c)
	// box edges plus the medial axis segment
	if got, want := len(lines), (BoxVertexCount+2)*3; got != want {
		t.Fatalf("vertex floats: got %d, want %d", got, want)
	}

	axisStart := lines[len(lines)-6:]
	if axisStart[1] != 0.35 || axisStart[4] != 1.45 {
		t.Errorf("medial axis endpoints: got y=%f..%f, want 0.35..1.45", axisStart[1], axisStart[4])
	}
}
