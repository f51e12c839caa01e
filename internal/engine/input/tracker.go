// Package input turns keyboard events into the polled movement intent
// the character controller consumes. The Tracker keeps held-key state
// and is free of SDL so the controller and tests share one contract;
// the SDL layer in this package feeds it.
package input

// State is one frame's snapshot of level-triggered movement intent.
type State struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Sprint  bool
	Jump    bool
	FlyUp   bool
	FlyDown bool
}

// Action identifies one bindable control.
type Action int

const (
	ActionForward Action = iota
	ActionBack
	ActionLeft
	ActionRight
	ActionSprint
	ActionJump // doubles as fly-up while flying
	ActionFlyDown
	ActionFlyToggle
	ActionLookLeft
	ActionLookRight
	ActionLookUp
	ActionLookDown

	actionCount
)

// DefaultLookSpeed is the angular look speed in radians per second.
const DefaultLookSpeed = 2.0

// Tracker keeps per-action held state and the one-shot flight toggle.
type Tracker struct {
	// LookSpeed scales held look keys into radians per second.
	LookSpeed float32

	held         [actionCount]bool
	toggleQueued bool
}

// NewTracker returns a tracker with the default look speed.
func NewTracker() *Tracker {
	return &Tracker{LookSpeed: DefaultLookSpeed}
}

// Press marks an action as held. A fly-toggle press queues exactly one
// toggle; holding the key does not queue more.
func (t *Tracker) Press(a Action) {
	if a == ActionFlyToggle && !t.held[a] {
		t.toggleQueued = true
	}
	t.held[a] = true
}

// Release marks an action as no longer held.
func (t *Tracker) Release(a Action) {
	t.held[a] = false
}

// Held reports whether the action is currently held.
func (t *Tracker) Held(a Action) bool {
	return t.held[a]
}

// State snapshots the held movement actions.
func (t *Tracker) State() State {
	return State{
		Forward: t.held[ActionForward],
		Back:    t.held[ActionBack],
		Left:    t.held[ActionLeft],
		Right:   t.held[ActionRight],
		Sprint:  t.held[ActionSprint],
		Jump:    t.held[ActionJump],
		FlyUp:   t.held[ActionJump],
		FlyDown: t.held[ActionFlyDown],
	}
}

// ConsumeLookDelta returns this frame's look increment from the held
// look keys, scaled by dt and the angular speed.
func (t *Tracker) ConsumeLookDelta(dt float32) (yaw, pitch float32) {
	step := t.LookSpeed * dt
	if t.held[ActionLookLeft] {
		yaw += step
	}
	if t.held[ActionLookRight] {
		yaw -= step
	}
	if t.held[ActionLookUp] {
		pitch -= step
	}
	if t.held[ActionLookDown] {
		pitch += step
	}
	return yaw, pitch
}

// ConsumeFlyToggle reports a queued flight toggle and clears it, so it
// returns true at most once per discrete press.
func (t *Tracker) ConsumeFlyToggle() bool {
	queued := t.toggleQueued
	t.toggleQueued = false
	return queued
}
