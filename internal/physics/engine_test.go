package physics

import (
	"errors"
	"testing"

	"github.com/vovakirdan/marble-maze/internal/config"
	"github.com/vovakirdan/marble-maze/internal/core"
	"github.com/vovakirdan/marble-maze/internal/games/maze"
)

const dt = 1.0 / 60

func testConfig() config.PhysicsConfig {
	return config.PhysicsConfig{GravityScale: 150, LinearDamping: 0.5, Restitution: 0.2, MaxSpeed: 900}
}

func playerBody(pos core.Vec2) maze.Body {
	return maze.Body{ID: maze.PlayerID, Kind: maze.KindPlayer, Position: pos, Spec: maze.BodySpecFor(maze.KindPlayer, 48)}
}

// loadInto registers every entity of the level text with a new engine.
func loadInto(t *testing.T, text string, cfg config.PhysicsConfig) (*Engine, *maze.Level) {
	t.Helper()
	level := maze.ParseLevel("test", text, 64)
	e := New(level.Size(), cfg)
	for _, ent := range level.Entities {
		if err := e.AddBody(maze.Body{ID: ent.ID, Kind: ent.Kind, Position: ent.Position, Spec: ent.Body}); err != nil {
			t.Fatalf("AddBody(%d) error: %v", ent.ID, err)
		}
	}
	return e, level
}

func entityOf(t *testing.T, level *maze.Level, k maze.Kind) maze.Entity {
	t.Helper()
	for _, e := range level.Entities {
		if e.Kind == k {
			return e
		}
	}
	t.Fatalf("no %s in level", k)
	return maze.Entity{}
}

func TestAddBodyRejectsDuplicates(t *testing.T) {
	e := New(core.V(256, 256), testConfig())
	if err := e.AddBody(playerBody(core.V(64, 64))); err != nil {
		t.Fatal(err)
	}
	if err := e.AddBody(playerBody(core.V(64, 64))); !errors.Is(err, ErrDuplicateBody) {
		t.Errorf("second AddBody() error = %v, expected ErrDuplicateBody", err)
	}
	if err := e.AddBody(maze.Body{ID: 7}); err == nil {
		t.Error("AddBody() without a category should fail")
	}
}

func TestZeroGravityKeepsStill(t *testing.T) {
	e := New(core.V(256, 256), testConfig())
	start := core.V(128, 128)
	if err := e.AddBody(playerBody(start)); err != nil {
		t.Fatal(err)
	}
	for range 60 {
		e.Step(dt)
	}
	if got := e.Position(maze.PlayerID); got != start {
		t.Errorf("player drifted to %v with zero field", got)
	}
}

func TestGravityAccelerates(t *testing.T) {
	e := New(core.V(1024, 1024), testConfig())
	start := core.V(512, 512)
	if err := e.AddBody(playerBody(start)); err != nil {
		t.Fatal(err)
	}
	e.SetGravity(core.V(1, 0))

	e.Step(dt)
	v1 := e.Velocity(maze.PlayerID)
	for range 9 {
		e.Step(dt)
	}
	v10 := e.Velocity(maze.PlayerID)

	if v1.X <= 0 || v10.X <= v1.X {
		t.Errorf("velocity should grow along the field: v1=%v v10=%v", v1, v10)
	}
	if v10.Y != 0 {
		t.Errorf("velocity picked up a Y component: %v", v10)
	}
	if got := e.Position(maze.PlayerID); got.X <= start.X || got.Y != start.Y {
		t.Errorf("player at %v, expected to move right from %v", got, start)
	}
}

func TestDampingSlowsBall(t *testing.T) {
	e := New(core.V(4096, 4096), testConfig())
	if err := e.AddBody(playerBody(core.V(2048, 2048))); err != nil {
		t.Fatal(err)
	}
	e.SetGravity(core.V(1, 0))
	for range 30 {
		e.Step(dt)
	}
	e.SetGravity(core.Vec2{})
	before := e.Velocity(maze.PlayerID).Len()
	for range 30 {
		e.Step(dt)
	}
	if after := e.Velocity(maze.PlayerID).Len(); after >= before {
		t.Errorf("speed %v -> %v, expected damping to slow the ball", before, after)
	}
}

func TestMaxSpeed(t *testing.T) {
	cfg := testConfig()
	cfg.MaxSpeed = 100
	cfg.LinearDamping = 0
	e := New(core.V(8192, 8192), cfg)
	if err := e.AddBody(playerBody(core.V(4096, 4096))); err != nil {
		t.Fatal(err)
	}
	e.SetGravity(core.V(10, 10))
	for range 30 {
		e.Step(dt)
	}
	if speed := e.Velocity(maze.PlayerID).Len(); speed > 100+1e-9 {
		t.Errorf("speed = %v, expected cap at 100", speed)
	}
}

func TestWallStopsBall(t *testing.T) {
	e, _ := loadInto(t, "...\n...\nxxx", testConfig())
	if err := e.AddBody(playerBody(core.V(96, 120))); err != nil {
		t.Fatal(err)
	}
	e.SetGravity(core.V(0, -10))

	for range 120 {
		e.Step(dt)
	}

	// Wall tops are at y=64 and the ball radius is 24.
	got := e.Position(maze.PlayerID)
	if got.Y < 88 {
		t.Errorf("ball sank into the wall: y=%v", got.Y)
	}
	if got.Y > 100 {
		t.Errorf("ball did not fall: y=%v", got.Y)
	}
}

func TestWallIsNotAContact(t *testing.T) {
	e, _ := loadInto(t, "x", testConfig())
	if err := e.AddBody(playerBody(core.V(32, 80))); err != nil {
		t.Fatal(err)
	}
	if contacts := e.Step(dt); len(contacts) != 0 {
		t.Errorf("Step() = %v, walls should not report contacts", contacts)
	}
}

func TestContactBeginsOnce(t *testing.T) {
	e, level := loadInto(t, "...\n.s.\n...", testConfig())
	star := entityOf(t, level, maze.KindStar)
	if err := e.AddBody(playerBody(star.Position)); err != nil {
		t.Fatal(err)
	}

	contacts := e.Step(dt)
	if len(contacts) != 1 {
		t.Fatalf("Step() = %v, expected one contact", contacts)
	}
	if other, ok := contacts[0].Other(maze.PlayerID); !ok || other != star.ID {
		t.Errorf("contact = %+v, expected player with star %d", contacts[0], star.ID)
	}

	if contacts := e.Step(dt); len(contacts) != 0 {
		t.Errorf("Step() = %v, an ongoing overlap should not be reported again", contacts)
	}

	e.Teleport(maze.PlayerID, core.V(32, 32))
	if contacts := e.Step(dt); len(contacts) != 0 {
		t.Errorf("Step() after leaving = %v", contacts)
	}
	e.Teleport(maze.PlayerID, star.Position)
	if contacts := e.Step(dt); len(contacts) != 1 {
		t.Errorf("Step() after re-entering = %v, expected a new contact", contacts)
	}
}

func TestDisabledBody(t *testing.T) {
	e, level := loadInto(t, "...\n.v.\n...", testConfig())
	vortex := entityOf(t, level, maze.KindVortex)
	if err := e.AddBody(playerBody(vortex.Position)); err != nil {
		t.Fatal(err)
	}
	e.SetEnabled(maze.PlayerID, false)
	e.SetGravity(core.V(0, -5))

	for range 10 {
		if contacts := e.Step(dt); len(contacts) != 0 {
			t.Fatalf("disabled body reported %v", contacts)
		}
	}
	if got := e.Position(maze.PlayerID); got != vortex.Position {
		t.Errorf("disabled body moved to %v", got)
	}

	e.Teleport(maze.PlayerID, vortex.Position)
	e.SetEnabled(maze.PlayerID, true)
	if contacts := e.Step(dt); len(contacts) != 1 {
		t.Errorf("re-enabled body inside a vortex reported %v, expected one contact", contacts)
	}
}

func TestRemovedBodyHasNoContacts(t *testing.T) {
	e, level := loadInto(t, "...\n.s.\n...", testConfig())
	star := entityOf(t, level, maze.KindStar)
	e.RemoveBody(star.ID)
	e.RemoveBody(star.ID) // unknown ids are ignored

	if err := e.AddBody(playerBody(star.Position)); err != nil {
		t.Fatal(err)
	}
	if contacts := e.Step(dt); len(contacts) != 0 {
		t.Errorf("Step() = %v, removed star should not report", contacts)
	}
	if got := e.Position(star.ID); !got.IsZero() {
		t.Errorf("Position() of a removed body = %v", got)
	}
}
