// Package game wires the window, input, demo scene, collision mesh,
// and character controller into the walkthrough loop.
package game

import (
	"fmt"
	"time"

	"github.com/Faultbox/stride/internal/config"
	"github.com/Faultbox/stride/internal/engine/collision"
	"github.com/Faultbox/stride/internal/engine/controller"
	"github.com/Faultbox/stride/internal/engine/debug"
	"github.com/Faultbox/stride/internal/engine/input"
	"github.com/Faultbox/stride/internal/engine/renderer"
	"github.com/Faultbox/stride/internal/engine/scene"
	"github.com/Faultbox/stride/internal/engine/window"
	"github.com/Faultbox/stride/internal/logger"
	"github.com/Faultbox/stride/pkg/math"
)

// avatar body dimensions for the walkthrough
const (
	avatarHeight = 1.8
	avatarRadius = 0.35
)

// Game is the demo walkthrough instance.
type Game struct {
	cfg      *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	world    *scene.Node
	collider *collision.Mesh
	player   *controller.Controller

	running bool
}

// New creates the walkthrough from config.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{cfg: cfg}

	var err error
	g.window, err = window.New(window.Config{
		Title:      "stride",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	g.renderer, err = renderer.New(cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	g.input = input.New()
	g.input.Tracker().LookSpeed = cfg.Camera.LookSpeed

	g.world = BuildDemoScene()
	g.collider = collision.BuildFromScene(g.world)
	g.renderer.UploadScene(g.world)

	g.player = controller.New(g.collider, g.input.Tracker(), tuningFromConfig(cfg.Movement))
	g.player.Spawn(math.Vec3{Y: 2}, avatarHeight, avatarRadius)

	cam := g.player.Camera()
	cam.Distance = cfg.Camera.Distance
	cam.Height = cfg.Camera.Height
	cam.Pitch = cfg.Camera.Pitch
	cam.MinPitch = cfg.Camera.MinPitch
	cam.MaxPitch = cfg.Camera.MaxPitch
	cam.Damping = cfg.Camera.Damping

	return g, nil
}

func tuningFromConfig(m config.MovementConfig) controller.Tuning {
	return controller.Tuning{
		BaseSpeed:         m.BaseSpeed,
		SprintMultiplier:  m.SprintMultiplier,
		JumpSpeed:         m.JumpSpeed,
		Gravity:           m.Gravity,
		SlopeLimitDeg:     m.SlopeLimitDeg,
		GroundDamping:     m.GroundDamping,
		AirDamping:        m.AirDamping,
		FlyIdleDamping:    m.FlyIdleDamping,
		GroundStick:       m.GroundStick,
		ResolveIterations: m.ResolveIterations,
	}
}

// Run starts the main loop and blocks until quit.
func (g *Game) Run() error {
	g.running = true
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting walkthrough loop")

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if g.input.Poll() {
			g.running = false
			break
		}
		if w, h, ok := g.input.TakeResize(); ok {
			g.renderer.Resize(w, h)
		}

		g.player.Update(dt)

		if g.cfg.Graphics.ShowColliders {
			lines := debug.CapsuleWireframe(g.player.Capsule())
			lines = debug.AppendWireframeBox(lines, g.collider.Bounds())
			g.renderer.SetOverlay(lines)
		}

		g.renderer.Render(g.player.Camera().ViewMatrix())
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Sugar.Debugw("frame stats",
				"fps", frameCount,
				"pos", g.player.Position(),
				"grounded", g.player.Grounded(),
				"flying", g.player.Flying(),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases resources.
func (g *Game) Close() {
	if g.renderer != nil {
		g.renderer.Destroy()
	}
	if g.window != nil {
		g.window.Close()
	}
}

// BuildDemoScene assembles the walkthrough world: a floor grid, a few
// boxes, a climbable ramp, a steep wall, an instanced pillar row, and a
// non-collidable marker the avatar walks through.
func BuildDemoScene() *scene.Node {
	root := scene.New("world")

	floor := scene.New("floor")
	floor.Geometry = scene.NewPlane(60, 60, 12)
	root.AddChild(floor)

	crate := scene.New("crate")
	crate.Geometry = scene.NewBox(2, 2, 2)
	crate.Transform = math.Translate(6, 1, 4)
	root.AddChild(crate)

	ledge := scene.New("ledge")
	ledge.Geometry = scene.NewBox(6, 1, 6)
	ledge.Transform = math.Translate(-8, 0.5, -6)
	root.AddChild(ledge)

	ramp := scene.New("ramp")
	ramp.Geometry = scene.NewRamp(4, 2, 6)
	ramp.Transform = math.Translate(0, 0, -12)
	root.AddChild(ramp)

	wall := scene.New("wall")
	wall.Geometry = scene.NewBox(0.5, 4, 16)
	wall.Transform = math.Translate(14, 2, 0)
	root.AddChild(wall)

	pillars := scene.New("pillars")
	pillars.Geometry = scene.NewBox(1, 5, 1)
	for i := 0; i < 5; i++ {
		pillars.Instances = append(pillars.Instances,
			math.Translate(-14, 2.5, float32(-10+i*5)))
	}
	root.AddChild(pillars)

	// purely visual: the collider skips this whole subtree
	marker := scene.New("spawn-marker")
	marker.NonCollidable = true
	marker.Geometry = scene.NewBox(0.6, 0.1, 0.6)
	marker.Transform = math.Translate(0, 0.05, 2)
	root.AddChild(marker)

	return root
}
