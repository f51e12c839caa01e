package input

import "testing"

func TestTrackerStateMapping(t *testing.T) {
	tr := NewTracker()

	tr.Press(ActionForward)
	tr.Press(ActionSprint)
	tr.Press(ActionJump)

	s := tr.State()
	if !s.Forward || !s.Sprint || !s.Jump {
		t.Errorf("held actions missing from state: %+v", s)
	}
	if s.Back || s.Left || s.Right || s.FlyDown {
		t.Errorf("unheld actions present in state: %+v", s)
	}
	// the jump key doubles as fly-up
	if !s.FlyUp {
		t.Error("jump should also report fly-up")
	}

	tr.Release(ActionJump)
	s = tr.State()
	if s.Jump || s.FlyUp {
		t.Errorf("released jump still held: %+v", s)
	}
}

func TestTrackerFlyToggleEdge(t *testing.T) {
	tr := NewTracker()

	if tr.ConsumeFlyToggle() {
		t.Fatal("toggle queued before any press")
	}

	tr.Press(ActionFlyToggle)
	if !tr.ConsumeFlyToggle() {
		t.Fatal("press should queue one toggle")
	}
	if tr.ConsumeFlyToggle() {
		t.Fatal("toggle consumed twice for one press")
	}

	// pressing again while still held must not re-queue
	tr.Press(ActionFlyToggle)
	if tr.ConsumeFlyToggle() {
		t.Fatal("held key re-queued a toggle")
	}

	tr.Release(ActionFlyToggle)
	tr.Press(ActionFlyToggle)
	if !tr.ConsumeFlyToggle() {
		t.Fatal("release and re-press should queue again")
	}
}

func TestTrackerLookDelta(t *testing.T) {
	tr := NewTracker()
	tr.LookSpeed = 2

	yaw, pitch := tr.ConsumeLookDelta(0.5)
	if yaw != 0 || pitch != 0 {
		t.Errorf("no keys held: got yaw=%f pitch=%f", yaw, pitch)
	}

	tr.Press(ActionLookLeft)
	tr.Press(ActionLookUp)
	yaw, pitch = tr.ConsumeLookDelta(0.5)
	if yaw != 1 {
		t.Errorf("look left yaw: got %f, want 1", yaw)
	}
	if pitch != -1 {
		t.Errorf("look up pitch: got %f, want -1", pitch)
	}

	// opposing keys cancel
	tr.Press(ActionLookRight)
	yaw, _ = tr.ConsumeLookDelta(0.5)
	if yaw != 0 {
		t.Errorf("opposing look keys should cancel, got yaw=%f", yaw)
	}
}
