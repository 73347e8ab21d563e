package maze

import "github.com/vovakirdan/marble-maze/internal/core"

// Driver writes the steering vector into the engine's gravity field. The
// vector is a field, not an impulse: zero input means zero field.
type Driver struct {
	engine Engine
	last   core.Vec2
}

// NewDriver drives the given engine.
func NewDriver(engine Engine) *Driver {
	return &Driver{engine: engine}
}

// Apply sets the engine gravity to steering.
func (d *Driver) Apply(steering core.Vec2) {
	d.last = steering
	d.engine.SetGravity(steering)
}

// Gravity returns the last applied field.
func (d *Driver) Gravity() core.Vec2 {
	return d.last
}
