package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// defaultBindings maps SDL scancodes to actions: WASD to move, shift to
// sprint, space to jump/fly-up, ctrl to fly-down, F to toggle flight,
// arrows to look.
var defaultBindings = map[sdl.Scancode]Action{
	sdl.SCANCODE_W:      ActionForward,
	sdl.SCANCODE_S:      ActionBack,
	sdl.SCANCODE_A:      ActionLeft,
	sdl.SCANCODE_D:      ActionRight,
	sdl.SCANCODE_LSHIFT: ActionSprint,
	sdl.SCANCODE_SPACE:  ActionJump,
	sdl.SCANCODE_LCTRL:  ActionFlyDown,
	sdl.SCANCODE_F:      ActionFlyToggle,
	sdl.SCANCODE_LEFT:   ActionLookLeft,
	sdl.SCANCODE_RIGHT:  ActionLookRight,
	sdl.SCANCODE_UP:     ActionLookUp,
	sdl.SCANCODE_DOWN:   ActionLookDown,
}

// Input polls SDL events and feeds the tracker.
type Input struct {
	tracker  *Tracker
	bindings map[sdl.Scancode]Action

	resized       bool
	width, height int
}

// New creates an input handler with the default bindings.
func New() *Input {
	return &Input{
		tracker:  NewTracker(),
		bindings: defaultBindings,
	}
}

// Tracker returns the held-state tracker the controller polls.
func (i *Input) Tracker() *Tracker {
	return i.tracker
}

// Poll drains pending SDL events. Returns true when the host should
// quit. Key repeats are ignored so held keys do not re-trigger edges.
func (i *Input) Poll() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.resized = true
				i.width = int(e.Data1)
				i.height = int(e.Data2)
			}

		case *sdl.KeyboardEvent:
			if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				if e.Type == sdl.KEYDOWN {
					return true
				}
				continue
			}
			action, ok := i.bindings[e.Keysym.Scancode]
			if !ok {
				continue
			}
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				i.tracker.Press(action)
			} else if e.Type == sdl.KEYUP {
				i.tracker.Release(action)
			}
		}
	}
	return false
}

// TakeResize returns and clears a pending window resize.
func (i *Input) TakeResize() (width, height int, ok bool) {
	if !i.resized {
		return 0, 0, false
	}
	i.resized = false
	return i.width, i.height, true
}
