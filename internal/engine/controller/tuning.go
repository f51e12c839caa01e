package controller

// Tuning holds the movement constants. Everything the integrator
// hard-codes elsewhere in spirit lives here so hosts can load it from
// configuration.
type Tuning struct {
	// BaseSpeed is the walking speed in units per second.
	BaseSpeed float32
	// SprintMultiplier scales BaseSpeed while sprint is held.
	SprintMultiplier float32
	// JumpSpeed is the vertical takeoff speed.
	JumpSpeed float32
	// Gravity is the downward acceleration in units per second squared.
	Gravity float32
	// SlopeLimitDeg is the steepest contact angle from world-up, in
	// degrees, that still counts as standable ground.
	SlopeLimitDeg float32

	// GroundDamping, AirDamping, and FlyIdleDamping are the exponential
	// rates easing velocity toward the desired velocity per state.
	GroundDamping  float32
	AirDamping     float32
	FlyIdleDamping float32

	// GroundStick is the small downward speed applied while grounded so
	// resting contact is re-detected every frame.
	GroundStick float32

	// ResolveIterations caps penetration-resolution passes per frame.
	// Residual penetration past the cap is accepted for that frame.
	ResolveIterations int
}

// DefaultTuning returns the walkthrough defaults.
func DefaultTuning() Tuning {
	return Tuning{
		BaseSpeed:         6.0,
		SprintMultiplier:  1.8,
		JumpSpeed:         5.5,
		Gravity:           12.0,
		SlopeLimitDeg:     50.0,
		GroundDamping:     12.0,
		AirDamping:        2.5,
		FlyIdleDamping:    1.5,
		GroundStick:       0.5,
		ResolveIterations: 3,
	}
}
