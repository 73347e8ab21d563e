package physics

import (
	"testing"

	"github.com/vovakirdan/marble-maze/internal/core"
	"github.com/vovakirdan/marble-maze/internal/games/maze"
)

// shaft drops the ball from the top of a one-tile-wide shaft onto whatever
// sits in the bottom cell.
func shaft(bottom rune) string {
	return "xxx\nx.x\nx.x\nx" + string(bottom) + "x\nxxx"
}

type constSteering core.Vec2

func (s constSteering) Sample(core.Vec2) core.Vec2 { return core.Vec2(s) }

func runShaft(t *testing.T, bottom rune, ticks int) *maze.World {
	t.Helper()
	level := maze.ParseLevel("shaft", shaft(bottom), 64, maze.WithSprites(maze.Sprites{Player: 48}))
	w, err := maze.NewWorld(level, Factory(testConfig())(level), constSteering(core.V(0, -1)), maze.WorldOptions{
		Spawn:        core.V(96, 224),
		RespawnDelay: 15,
	})
	if err != nil {
		t.Fatalf("NewWorld() error: %v", err)
	}
	for range ticks {
		w.Tick(dt)
	}
	return w
}

func TestBallCollectsStar(t *testing.T) {
	w := runShaft(t, 's', 300)

	if got := w.Session().Score; got != 1 {
		t.Errorf("Score = %d, expected the falling ball to collect the star", got)
	}
	if w.StarsLeft() != 0 {
		t.Errorf("StarsLeft() = %d", w.StarsLeft())
	}
	if y := w.Player().Position.Y; y < 88 || y > 100 {
		t.Errorf("ball should rest on the floor, y=%v", y)
	}
}

func TestBallReachesFinish(t *testing.T) {
	w := runShaft(t, 'f', 300)
	if w.Session().State != maze.StateWon {
		t.Errorf("State = %s, expected Won", w.Session().State)
	}
}

func TestBallFallsIntoVortexAndRespawns(t *testing.T) {
	w := runShaft(t, 'v', 300)

	if w.Session().Deaths == 0 {
		t.Fatal("ball should have fallen into the vortex")
	}
	if w.Session().State != maze.StatePlaying {
		t.Errorf("State = %s, expected Playing after soft deaths", w.Session().State)
	}
}

func TestSimulationDeterministic(t *testing.T) {
	a := runShaft(t, 'v', 200).Snapshot()
	b := runShaft(t, 'v', 200).Snapshot()
	if a.Hash() != b.Hash() {
		t.Errorf("snapshots differ: %+v vs %+v", a, b)
	}
}
