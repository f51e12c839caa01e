// Package camera provides the third-person chase camera that follows
// the avatar.
package camera

import (
	gomath "math"

	"github.com/Faultbox/stride/pkg/math"
)

// ChaseCamera sits behind the look direction at a fixed distance and
// height, and eases toward that spot instead of snapping, so fast
// contact resolution never jerks the view.
type ChaseCamera struct {
	Yaw   float32 // horizontal look angle, radians
	Pitch float32 // vertical look angle, radians, clamped

	MinPitch float32
	MaxPitch float32

	Distance float32 // distance behind the target
	Height   float32 // extra height above the target
	Damping  float32 // exponential follow rate, per second

	pos    math.Vec3
	target math.Vec3
	placed bool
}

// NewChaseCamera returns a chase camera with walkthrough defaults.
func NewChaseCamera() *ChaseCamera {
	return &ChaseCamera{
		Pitch:    0.3,
		MinPitch: -1.2,
		MaxPitch: 1.2,
		Distance: 6.0,
		Height:   1.5,
		Damping:  8.0,
	}
}

// AddLook accumulates a look increment, clamping pitch so the camera
// cannot flip over.
func (c *ChaseCamera) AddLook(yaw, pitch float32) {
	c.Yaw += yaw
	c.Pitch += pitch
	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// ForwardFlat returns the look direction flattened to the ground plane.
func (c *ChaseCamera) ForwardFlat() math.Vec3 {
	return math.Vec3{
		X: float32(gomath.Sin(float64(c.Yaw))),
		Z: float32(gomath.Cos(float64(c.Yaw))),
	}
}

// RightFlat returns the ground-plane right direction.
func (c *ChaseCamera) RightFlat() math.Vec3 {
	return math.Vec3{
		X: -float32(gomath.Cos(float64(c.Yaw))),
		Z: float32(gomath.Sin(float64(c.Yaw))),
	}
}

// Follow updates the camera toward its spot behind target. The first
// call places the camera directly; later calls ease exponentially.
func (c *ChaseCamera) Follow(target math.Vec3, dt float32) {
	c.target = target
	want := c.desiredPosition(target)
	if !c.placed {
		c.pos = want
		c.placed = true
		return
	}
	blend := 1 - float32(gomath.Exp(float64(-c.Damping*dt)))
	c.pos = c.pos.Lerp(want, blend)
}

func (c *ChaseCamera) desiredPosition(target math.Vec3) math.Vec3 {
	horiz := c.Distance * float32(gomath.Cos(float64(c.Pitch)))
	lift := c.Height + c.Distance*float32(gomath.Sin(float64(c.Pitch)))
	return target.Sub(c.ForwardFlat().Scale(horiz)).Add(math.Vec3{Y: lift})
}

// SetPosition overrides the eased position outright. The controller's
// obstruction clamp uses it to keep world geometry out of the view
// line; easing resumes from the new position.
func (c *ChaseCamera) SetPosition(pos math.Vec3) {
	c.pos = pos
	c.placed = true
}

// Position returns the camera's current (damped) position.
func (c *ChaseCamera) Position() math.Vec3 {
	return c.pos
}

// Target returns the point the camera looks at.
func (c *ChaseCamera) Target() math.Vec3 {
	return c.target
}

// ViewMatrix returns the view matrix looking from the camera at its
// target.
func (c *ChaseCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{Y: 1}
	return math.LookAt(c.pos, c.target, up)
}
