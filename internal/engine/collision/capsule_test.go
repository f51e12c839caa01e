package collision

import (
	"testing"

	"github.com/Faultbox/stride/pkg/math"
)

func TestCapsuleCenter(t *testing.T) {
	var c Capsule
	c.Set(math.Vec3{Y: 0.35}, math.Vec3{Y: 1.45}, 0.35)

	center := c.Center()
	want := math.Vec3{Y: 0.9}
	if center.Sub(want).Length() > 1e-6 {
		t.Errorf("Center: got %v, want %v", center, want)
	}
}

func TestCapsuleTranslate(t *testing.T) {
	var c Capsule
	c.Set(math.Vec3{Y: 0.35}, math.Vec3{Y: 1.45}, 0.35)
	c.Translate(math.Vec3{X: 2, Y: 1, Z: -3})

	if got, want := c.Start, (math.Vec3{X: 2, Y: 1.35, Z: -3}); got != want {
		t.Errorf("Start: got %v, want %v", got, want)
	}
	if got, want := c.End, (math.Vec3{X: 2, Y: 2.45, Z: -3}); got != want {
		t.Errorf("End: got %v, want %v", got, want)
	}
	if c.Radius != 0.35 {
		t.Errorf("Radius changed by Translate: got %f", c.Radius)
	}
}

func TestCapsuleBounds(t *testing.T) {
	var c Capsule
	c.Set(math.Vec3{X: 1, Y: 0.35, Z: 1}, math.Vec3{X: 1, Y: 1.45, Z: 1}, 0.35)

	b := c.Bounds()
	wantMin := math.Vec3{X: 0.65, Y: 0, Z: 0.65}
	wantMax := math.Vec3{X: 1.35, Y: 1.8, Z: 1.35}
	if b.Min.Sub(wantMin).Length() > 1e-6 {
		t.Errorf("Bounds.Min: got %v, want %v", b.Min, wantMin)
	}
	if b.Max.Sub(wantMax).Length() > 1e-6 {
		t.Errorf("Bounds.Max: got %v, want %v", b.Max, wantMax)
	}
}

func TestCapsuleIntersectsBox(t *testing.T) {
	var c Capsule
	c.Set(math.Vec3{Y: 0.35}, math.Vec3{Y: 1.45}, 0.35)

	tests := []struct {
		name string
		box  AABB
		want bool
	}{
		{
			name: "surrounding box",
			box:  AABB{Min: math.Vec3{X: -5, Y: -5, Z: -5}, Max: math.Vec3{X: 5, Y: 5, Z: 5}},
			want: true,
		},
		{
			name: "touching within radius",
			box:  AABB{Min: math.Vec3{X: 0.2, Y: 0, Z: -1}, Max: math.Vec3{X: 2, Y: 2, Z: 1}},
			want: true,
		},
		{
			name: "separated on x",
			box:  AABB{Min: math.Vec3{X: 2, Y: 0, Z: -1}, Max: math.Vec3{X: 3, Y: 2, Z: 1}},
			want: false,
		},
		{
			name: "separated below",
			box:  AABB{Min: math.Vec3{X: -1, Y: -3, Z: -1}, Max: math.Vec3{X: 1, Y: -1, Z: 1}},
			want: false,
		},
		{
			name: "separated on z",
			box:  AABB{Min: math.Vec3{X: -1, Y: 0, Z: 1}, Max: math.Vec3{X: 1, Y: 2, Z: 2}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IntersectsBox(tt.box); got != tt.want {
				t.Errorf("IntersectsBox(%v): got %v, want %v", tt.box, got, tt.want)
			}
		})
	}
}

func TestCapsuleIntersectsBoxDiagonal(t *testing.T) {
	// a diagonal segment whose endpoints are both outside the box but
	// whose middle passes through it
	var c Capsule
	c.Set(math.Vec3{X: -2, Y: -2, Z: 0}, math.Vec3{X: 2, Y: 2, Z: 0}, 0.1)

	box := AABB{Min: math.Vec3{X: -0.5, Y: -0.5, Z: -0.5}, Max: math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}}
	if !c.IntersectsBox(box) {
		t.Error("diagonal segment through box should intersect")
	}
}
