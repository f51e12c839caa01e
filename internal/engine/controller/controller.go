// Package controller implements the avatar movement integrator: it
// turns polled input into a desired velocity, integrates gravity and
// damping, resolves capsule penetration against the collision mesh,
// classifies footing against the slope limit, and drives the chase
// camera.
package controller

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/stride/internal/engine/camera"
	"github.com/Faultbox/stride/internal/engine/collision"
	"github.com/Faultbox/stride/internal/engine/input"
	"github.com/Faultbox/stride/internal/logger"
	"github.com/Faultbox/stride/pkg/math"
)

var worldUp = math.Vec3{Y: 1}

// Source is the polled input contract the controller consumes each
// frame.
type Source interface {
	State() input.State
	ConsumeLookDelta(dt float32) (yaw, pitch float32)
	ConsumeFlyToggle() bool
}

// Controller owns the avatar's body capsule and kinematic state.
type Controller struct {
	capsule collision.Capsule
	world   *collision.Mesh
	source  Source
	cam     *camera.ChaseCamera
	tuning  Tuning

	velocity     math.Vec3
	groundNormal math.Vec3
	grounded     bool
	flying       bool
	jumpLocked   bool
}

// New creates a controller moving through world, driven by source.
// A nil world degrades to free fall: every query reports no contact.
func New(world *collision.Mesh, source Source, tuning Tuning) *Controller {
	return &Controller{
		world:        world,
		source:       source,
		cam:          camera.NewChaseCamera(),
		tuning:       tuning,
		groundNormal: worldUp,
	}
}

// Spawn places the capsule so its feet rest at pos. The medial segment
// is inset from the body extents by radius at both ends.
func (c *Controller) Spawn(pos math.Vec3, height, radius float32) {
	c.capsule.Set(
		pos.Add(math.Vec3{Y: radius}),
		pos.Add(math.Vec3{Y: height - radius}),
		radius,
	)
	c.velocity = math.Vec3{}
	c.grounded = false
	c.groundNormal = worldUp
}

// SetWorld swaps the collision mesh the controller resolves against.
func (c *Controller) SetWorld(world *collision.Mesh) {
	c.world = world
}

// Capsule returns the avatar's body capsule.
func (c *Controller) Capsule() *collision.Capsule {
	return &c.capsule
}

// Position returns the avatar's anchor position, derived from the
// capsule center: the bottom of the medial segment, one radius above
// the feet.
func (c *Controller) Position() math.Vec3 {
	half := c.capsule.End.Sub(c.capsule.Start).Length() / 2
	return c.capsule.Center().Sub(math.Vec3{Y: half})
}

// Camera returns the chase camera rig.
func (c *Controller) Camera() *camera.ChaseCamera {
	return c.cam
}

// Velocity returns the current velocity.
func (c *Controller) Velocity() math.Vec3 {
	return c.velocity
}

// GroundNormal returns the last standable contact normal.
func (c *Controller) GroundNormal() math.Vec3 {
	return c.groundNormal
}

// Grounded reports whether a standable contact was found this frame.
func (c *Controller) Grounded() bool {
	return c.grounded
}

// Flying reports whether flight mode is active.
func (c *Controller) Flying() bool {
	return c.flying
}

// Update advances the avatar by one frame. A non-positive or non-finite
// dt is ignored outright: state carries over unchanged.
func (c *Controller) Update(dt float32) {
	if dt <= 0 || gomath.IsNaN(float64(dt)) || gomath.IsInf(float64(dt), 0) {
		return
	}

	if c.source.ConsumeFlyToggle() {
		c.flying = !c.flying
		c.grounded = false
		c.velocity.Y = 0
		// the press that flipped the mode must not also trigger ascent
		c.jumpLocked = true
		if logger.Log != nil {
			logger.Debug("flight toggled", zap.Bool("flying", c.flying))
		}
	}

	yaw, pitch := c.source.ConsumeLookDelta(dt)
	c.cam.AddLook(yaw, pitch)

	in := c.source.State()
	if !in.Jump && !in.FlyUp {
		c.jumpLocked = false
	}

	speed := c.tuning.BaseSpeed
	if in.Sprint {
		speed *= c.tuning.SprintMultiplier
	}
	desired := c.desiredVelocity(in, speed)

	c.dampVelocity(desired, dt)

	if !c.flying {
		switch {
		case c.grounded && in.Jump && !c.jumpLocked:
			c.velocity.Y = c.tuning.JumpSpeed
			c.grounded = false
			c.jumpLocked = true
		case c.grounded:
			// press lightly into the floor so resting contact is
			// re-detected next frame instead of flickering; a steeper
			// descent from sliding stays as is or the capsule lifts
			// off the surface it is following
			if c.velocity.Y > -c.tuning.GroundStick {
				c.velocity.Y = -c.tuning.GroundStick
			}
		default:
			c.velocity.Y -= c.tuning.Gravity * dt
		}
	}

	c.capsule.Translate(c.velocity.Scale(dt))
	c.resolveContacts()
	c.cam.Follow(c.capsule.Center(), dt)
	c.clampCameraToView()
}

// clampCameraToView pulls the camera in front of any geometry sitting
// between the avatar and the eased camera position.
func (c *Controller) clampCameraToView() {
	target := c.capsule.Center()
	toCam := c.cam.Position().Sub(target)
	dist := toCam.Length()
	if dist < 0.01 {
		return
	}
	ray := collision.Ray{Origin: target, Dir: toCam.Scale(1 / dist)}
	if t, hit := c.world.Raycast(ray, dist); hit {
		// sit slightly in front of the hit so the near plane clears it
		c.cam.SetPosition(ray.At(t * 0.9))
	}
}

// desiredVelocity builds the camera-relative movement intent.
func (c *Controller) desiredVelocity(in input.State, speed float32) math.Vec3 {
	forward := c.cam.ForwardFlat()
	right := c.cam.RightFlat()

	var move math.Vec3
	if in.Forward {
		move = move.Add(forward)
	}
	if in.Back {
		move = move.Sub(forward)
	}
	if in.Right {
		move = move.Add(right)
	}
	if in.Left {
		move = move.Sub(right)
	}
	if move.LengthSq() > 0 {
		move = move.Normalize().Scale(speed)
	}

	if c.flying {
		var lift float32
		if in.FlyUp && !c.jumpLocked {
			lift++
		}
		if in.FlyDown {
			lift--
		}
		move.Y = lift * speed
	}
	return move
}

// dampVelocity eases the actual velocity toward the desired one. The
// rate depends on state: brisk on the ground, loose in the air, and a
// slow decay while hovering with no input so flight glides.
func (c *Controller) dampVelocity(desired math.Vec3, dt float32) {
	var rate float32
	switch {
	case c.grounded:
		rate = c.tuning.GroundDamping
	case c.flying && desired.LengthSq() == 0:
		rate = c.tuning.FlyIdleDamping
	default:
		rate = c.tuning.AirDamping
	}

	blend := 1 - float32(gomath.Exp(float64(-rate*dt)))
	c.velocity.X += (desired.X - c.velocity.X) * blend
	c.velocity.Z += (desired.Z - c.velocity.Z) * blend
	if c.flying {
		c.velocity.Y += (desired.Y - c.velocity.Y) * blend
	}
}

// resolveContacts pushes the capsule out of the world and re-proves
// footing. The iteration cap bounds per-frame cost; anything left after
// that is accepted as residual penetration for this frame.
func (c *Controller) resolveContacts() {
	c.grounded = false
	slopeCos := float32(gomath.Cos(float64(c.tuning.SlopeLimitDeg) * gomath.Pi / 180))

	for i := 0; i < c.tuning.ResolveIterations; i++ {
		contact := c.world.CapsuleIntersect(&c.capsule)
		if contact == nil {
			break
		}

		c.capsule.Translate(contact.Normal.Scale(contact.Depth))

		// remove only the inward velocity component: slide along the
		// surface, never reflect
		if vn := c.velocity.Dot(contact.Normal); vn < 0 {
			c.velocity = c.velocity.Sub(contact.Normal.Scale(vn))
		}

		if !c.flying && contact.Normal.Y >= slopeCos {
			c.grounded = true
			c.groundNormal = contact.Normal
		}
	}
}
