// Package physics is the reference rigid-body engine behind the maze core.
// It keeps body positions in a resolv spatial hash for broad-phase queries,
// integrates the player under the ambient gravity field, stops it at walls
// and reports contact-begin events for overlapping sensor bodies.
package physics

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/marble-maze/internal/config"
	"github.com/vovakirdan/marble-maze/internal/core"
	"github.com/vovakirdan/marble-maze/internal/games/maze"
)

// spatialCell is the resolv cell size in world units.
const spatialCell = 16

// ErrDuplicateBody is returned when a body id is registered twice.
var ErrDuplicateBody = errors.New("physics: duplicate body")

type body struct {
	id      maze.EntityID
	spec    maze.BodySpec
	obj     *resolv.Object
	pos     core.Vec2 // Centre
	vel     core.Vec2
	enabled bool
}

func (b *body) box() core.Box {
	return core.BoxAt(b.pos, b.spec.Width, b.spec.Height)
}

type pair struct {
	a, b maze.EntityID
}

func pairOf(a, b maze.EntityID) pair {
	if a > b {
		a, b = b, a
	}
	return pair{a, b}
}

// Engine implements maze.Engine.
type Engine struct {
	space    *resolv.Space
	cfg      config.PhysicsConfig
	gravity  core.Vec2
	bodies   map[maze.EntityID]*body
	order    []maze.EntityID // Registration order
	touching map[pair]struct{}
}

// New creates an engine covering a world of the given size.
func New(size core.Vec2, cfg config.PhysicsConfig) *Engine {
	w := int(math.Ceil(size.X)) + spatialCell
	h := int(math.Ceil(size.Y)) + spatialCell
	return &Engine{
		space:    resolv.NewSpace(w, h, spatialCell, spatialCell),
		cfg:      cfg,
		bodies:   make(map[maze.EntityID]*body),
		touching: make(map[pair]struct{}),
	}
}

// Factory returns a maze.EngineFactory that sizes a new engine per level.
func Factory(cfg config.PhysicsConfig) maze.EngineFactory {
	return func(level *maze.Level) maze.Engine {
		return New(level.Size(), cfg)
	}
}

func tag(c maze.Category) string {
	return strings.ToLower(c.String())
}

// tags lists one resolv tag per category bit in mask.
func tags(mask maze.Category) []string {
	out := make([]string, 0, 3)
	for bit := maze.CategoryPlayer; bit <= maze.CategoryFinish; bit <<= 1 {
		if mask&bit != 0 {
			out = append(out, tag(bit))
		}
	}
	return out
}

// AddBody registers a body at its position.
func (e *Engine) AddBody(b maze.Body) error {
	if _, ok := e.bodies[b.ID]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateBody, b.ID)
	}
	if !b.Spec.Category.Single() {
		return fmt.Errorf("physics: body %d has category %s, want exactly one", b.ID, b.Spec.Category)
	}

	spec := b.Spec
	if spec.Shape == maze.ShapeCircle {
		spec.Width, spec.Height = 2*spec.Radius, 2*spec.Radius
	}
	nb := &body{id: b.ID, spec: spec, pos: b.Position, enabled: true}
	nb.obj = resolv.NewObject(b.Position.X-spec.Width/2, b.Position.Y-spec.Height/2, spec.Width, spec.Height, tag(spec.Category))
	nb.obj.Data = b.ID
	e.space.Add(nb.obj)

	e.bodies[b.ID] = nb
	e.order = append(e.order, b.ID)
	return nil
}

// RemoveBody drops a body. Unknown ids are ignored.
func (e *Engine) RemoveBody(id maze.EntityID) {
	b, ok := e.bodies[id]
	if !ok {
		return
	}
	e.space.Remove(b.obj)
	delete(e.bodies, id)
	e.order = slices.DeleteFunc(e.order, func(x maze.EntityID) bool { return x == id })
	for p := range e.touching {
		if p.a == id || p.b == id {
			delete(e.touching, p)
		}
	}
}

// SetGravity sets the ambient field in steering units. It is scaled by
// GravityScale during integration.
func (e *Engine) SetGravity(g core.Vec2) {
	e.gravity = g
}

// SetEnabled turns a body on or off. Disabled bodies neither move nor take
// part in contacts.
func (e *Engine) SetEnabled(id maze.EntityID, enabled bool) {
	if b, ok := e.bodies[id]; ok {
		b.enabled = enabled
	}
}

// Teleport moves a body to pos and zeroes its velocity.
func (e *Engine) Teleport(id maze.EntityID, pos core.Vec2) {
	b, ok := e.bodies[id]
	if !ok {
		return
	}
	b.pos = pos
	b.vel = core.Vec2{}
	e.sync(b)
}

// Position returns the centre of a body, or zero for unknown ids.
func (e *Engine) Position(id maze.EntityID) core.Vec2 {
	if b, ok := e.bodies[id]; ok {
		return b.pos
	}
	return core.Vec2{}
}

// Velocity returns the velocity of a body in world units per second.
func (e *Engine) Velocity(id maze.EntityID) core.Vec2 {
	if b, ok := e.bodies[id]; ok {
		return b.vel
	}
	return core.Vec2{}
}

// Step integrates every enabled dynamic body and returns the contacts that
// began during the step.
func (e *Engine) Step(dt float64) []maze.Contact {
	for _, id := range e.order {
		b := e.bodies[id]
		if b.spec.Static || !b.enabled {
			continue
		}
		e.integrate(b, dt)
	}
	return e.contacts()
}

func (e *Engine) integrate(b *body, dt float64) {
	acc := e.gravity.Scale(e.cfg.GravityScale)
	b.vel = b.vel.Add(acc.Scale(dt))
	if d := e.cfg.LinearDamping; d > 0 {
		b.vel = b.vel.Scale(1 / (1 + d*dt))
	}
	if limit := e.cfg.MaxSpeed; limit > 0 {
		if speed := b.vel.Len(); speed > limit {
			b.vel = b.vel.Scale(limit / speed)
		}
	}

	move := b.vel.Scale(dt)
	if move.IsZero() {
		return
	}

	// Sub-step so a fast ball cannot tunnel through a wall.
	maxStep := math.Max(b.spec.Radius/2, 1)
	steps := max(1, int(math.Ceil(move.Len()/maxStep)))
	sub := move.Scale(1 / float64(steps))

	for range steps {
		if sub.X != 0 {
			next := core.V(b.pos.X+sub.X, b.pos.Y)
			if e.blocked(b, next) {
				b.vel.X = -b.vel.X * e.cfg.Restitution
				sub.X = 0
			} else {
				b.pos = next
			}
		}
		if sub.Y != 0 {
			next := core.V(b.pos.X, b.pos.Y+sub.Y)
			if e.blocked(b, next) {
				b.vel.Y = -b.vel.Y * e.cfg.Restitution
				sub.Y = 0
			} else {
				b.pos = next
			}
		}
	}
	e.sync(b)
}

// blocked reports whether b placed at next would overlap a body it
// collides with.
func (e *Engine) blocked(b *body, next core.Vec2) bool {
	if b.spec.Collision == 0 {
		return false
	}
	dx := next.X - (b.obj.X + b.obj.W/2)
	dy := next.Y - (b.obj.Y + b.obj.H/2)
	hit := b.obj.Check(dx, dy, tags(b.spec.Collision)...)
	if hit == nil {
		return false
	}
	moved := *b
	moved.pos = next
	for _, o := range hit.Objects {
		other := e.lookup(o)
		if other == nil || !other.enabled {
			continue
		}
		if overlaps(&moved, other) {
			return true
		}
	}
	return false
}

// contacts finds overlapping sensor pairs and reports those that were not
// overlapping after the previous step.
func (e *Engine) contacts() []maze.Contact {
	now := make(map[pair]struct{}, len(e.touching))
	var begun []maze.Contact

	for _, id := range e.order {
		b := e.bodies[id]
		if b.spec.Static || !b.enabled || b.spec.Contact == 0 {
			continue
		}
		hit := b.obj.Check(0, 0, tags(b.spec.Contact)...)
		if hit == nil {
			continue
		}

		others := make([]*body, 0, len(hit.Objects))
		for _, o := range hit.Objects {
			other := e.lookup(o)
			if other == nil || other == b || !other.enabled || slices.Contains(others, other) {
				continue
			}
			if overlaps(b, other) {
				others = append(others, other)
			}
		}
		slices.SortFunc(others, func(x, y *body) int { return cmp.Compare(x.id, y.id) })

		for _, other := range others {
			p := pairOf(b.id, other.id)
			now[p] = struct{}{}
			if _, was := e.touching[p]; !was {
				begun = append(begun, maze.Contact{A: b.id, B: other.id})
			}
		}
	}

	e.touching = now
	return begun
}

func (e *Engine) lookup(o *resolv.Object) *body {
	id, ok := o.Data.(maze.EntityID)
	if !ok {
		return nil
	}
	return e.bodies[id]
}

// sync moves the resolv object to the body position.
func (e *Engine) sync(b *body) {
	b.obj.X = b.pos.X - b.spec.Width/2
	b.obj.Y = b.pos.Y - b.spec.Height/2
	b.obj.Update()
}

func overlaps(a, b *body) bool {
	switch {
	case a.spec.Shape == maze.ShapeCircle && b.spec.Shape == maze.ShapeCircle:
		return core.CirclesOverlap(a.pos, a.spec.Radius, b.pos, b.spec.Radius)
	case a.spec.Shape == maze.ShapeCircle:
		return core.CircleBoxOverlap(a.pos, a.spec.Radius, b.box())
	case b.spec.Shape == maze.ShapeCircle:
		return core.CircleBoxOverlap(b.pos, b.spec.Radius, a.box())
	default:
		return a.box().Intersects(b.box())
	}
}
