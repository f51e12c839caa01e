package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, -4, 2}
	got := a.Lerp(b, 0.5)
	want := Vec3{5, -2, 1}
	if got != want {
		t.Errorf("Vec3.Lerp() = %v, want %v", got, want)
	}
	if a.Lerp(b, 0) != a {
		t.Error("Vec3.Lerp(0) should return the receiver")
	}
	if a.Lerp(b, 1) != b {
		t.Error("Vec3.Lerp(1) should return the other vector")
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, 5, -3}
	b := Vec3{2, -1, 0}
	if got, want := a.Min(b), (Vec3{1, -1, -3}); got != want {
		t.Errorf("Vec3.Min() = %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Vec3{2, 5, 0}); got != want {
		t.Errorf("Vec3.Max() = %v, want %v", got, want)
	}
}

func TestVec3LengthSq(t *testing.T) {
	v := Vec3{3, 4, 0}
	if got := v.LengthSq(); got != 25 {
		t.Errorf("Vec3.LengthSq() = %v, want 25", got)
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !(Vec3{1, 2, 3}).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	nan := float32(math.NaN())
	if (Vec3{nan, 0, 0}).IsFinite() {
		t.Error("NaN component reported finite")
	}
	inf := float32(math.Inf(1))
	if (Vec3{0, inf, 0}).IsFinite() {
		t.Error("Inf component reported finite")
	}
}
