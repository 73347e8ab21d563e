package maze

import (
	"fmt"

	"github.com/vovakirdan/marble-maze/internal/core"
)

// fakeEngine replays scripted contacts and records what the core asks of it.
type fakeEngine struct {
	bodies      map[EntityID]Body
	enabled     map[EntityID]bool
	pos         map[EntityID]core.Vec2
	gravity     core.Vec2
	gravitySets int
	removed     []EntityID
	teleports   []core.Vec2
	script      [][]Contact
	steps       int
}

func newFakeEngine(script ...[]Contact) *fakeEngine {
	return &fakeEngine{
		bodies:  make(map[EntityID]Body),
		enabled: make(map[EntityID]bool),
		pos:     make(map[EntityID]core.Vec2),
		script:  script,
	}
}

func (f *fakeEngine) AddBody(b Body) error {
	if b.Spec.Category == 0 {
		return fmt.Errorf("body %d has no category", b.ID)
	}
	f.bodies[b.ID] = b
	f.enabled[b.ID] = true
	f.pos[b.ID] = b.Position
	return nil
}

func (f *fakeEngine) RemoveBody(id EntityID) {
	f.removed = append(f.removed, id)
	delete(f.bodies, id)
}

func (f *fakeEngine) SetGravity(g core.Vec2) {
	f.gravity = g
	f.gravitySets++
}

func (f *fakeEngine) SetEnabled(id EntityID, enabled bool) {
	f.enabled[id] = enabled
}

func (f *fakeEngine) Teleport(id EntityID, p core.Vec2) {
	f.teleports = append(f.teleports, p)
	f.pos[id] = p
}

func (f *fakeEngine) Position(id EntityID) core.Vec2 {
	return f.pos[id]
}

func (f *fakeEngine) Step(float64) []Contact {
	defer func() { f.steps++ }()
	if f.steps < len(f.script) {
		return f.script[f.steps]
	}
	return nil
}

// fixedSteering always returns the same vector.
type fixedSteering core.Vec2

func (s fixedSteering) Sample(core.Vec2) core.Vec2 {
	return core.Vec2(s)
}

// mapSource serves levels from memory.
type mapSource map[string]string

func (m mapSource) ReadLevel(name string) (string, error) {
	text, ok := m[name]
	if !ok {
		return "", fmt.Errorf("level %q: %w", name, ErrLevelNotFound)
	}
	return text, nil
}

func firstOf(t interface{ Fatalf(string, ...any) }, l *Level, k Kind) Entity {
	for _, e := range l.Entities {
		if e.Kind == k {
			return e
		}
	}
	t.Fatalf("level %q has no %s", l.Name, k)
	return Entity{}
}

func touch(id EntityID) Contact {
	return Contact{A: PlayerID, B: id}
}
