package maze

import "github.com/vovakirdan/marble-maze/internal/core"

// Body is what the core hands to the engine for each entity.
type Body struct {
	ID       EntityID
	Kind     Kind
	Position core.Vec2
	Spec     BodySpec
}

// Contact is a contact-begin event between two bodies.
type Contact struct {
	A, B EntityID
}

// Other returns the body in the contact that is not id, and whether id took
// part at all.
func (c Contact) Other(id EntityID) (EntityID, bool) {
	switch id {
	case c.A:
		return c.B, true
	case c.B:
		return c.A, true
	default:
		return 0, false
	}
}

// Engine is the physics collaborator. It owns body positions and
// velocities, integrates motion under the ambient gravity field, resolves
// solid collisions itself and reports contact-begin events for bodies whose
// contact masks match.
type Engine interface {
	AddBody(b Body) error
	RemoveBody(id EntityID)
	SetGravity(g core.Vec2)
	SetEnabled(id EntityID, enabled bool)
	// Teleport moves a body and zeroes its velocity.
	Teleport(id EntityID, pos core.Vec2)
	Position(id EntityID) core.Vec2
	// Step advances the simulation by dt seconds and returns the contacts
	// that began during the step, in engine order.
	Step(dt float64) []Contact
}

// EngineFactory creates an engine sized for a level.
type EngineFactory func(level *Level) Engine
