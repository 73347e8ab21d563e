package maze

import (
	"math"

	"github.com/vovakirdan/marble-maze/internal/core"
)

// EntityID identifies a body in the world and in the engine.
type EntityID uint32

// PlayerID is reserved for the player ball. Level entities start at 1.
const PlayerID EntityID = 0

// Entity is a tile-derived object placed in the world at level load.
type Entity struct {
	ID       EntityID
	Kind     Kind
	Col      int // Tile column
	Row      int // Tile row counted from the bottom
	Position core.Vec2
	Body     BodySpec
}

// Category returns the single category bit of the entity.
func (e Entity) Category() Category {
	return e.Body.Category
}

// Static reports whether the entity never moves.
func (e Entity) Static() bool {
	return e.Body.Static
}

// CollidesPhysically reports whether the player bounces off this entity.
func (e Entity) CollidesPhysically() bool {
	return BodySpecFor(KindPlayer, 0).CollidesWith(e.Body.Category)
}

// ReportsContact reports whether touching this entity produces a gameplay event.
func (e Entity) ReportsContact() bool {
	return e.Body.ContactsWith(CategoryPlayer)
}

// Spin returns the cosmetic rotation of a vortex in radians at the given
// tick: one full turn per second of game time. Other kinds do not spin.
func (e Entity) Spin(tick uint64, tickRate int) float64 {
	if e.Kind != KindVortex || tickRate <= 0 {
		return 0
	}
	turns := float64(tick%uint64(tickRate)) / float64(tickRate) //#nosec G115 -- tick rate is positive
	return turns * 2 * math.Pi
}

// Player is the controlled ball. Its position is owned by the engine and
// mirrored here once per tick.
type Player struct {
	Position core.Vec2
	Spawn    core.Vec2
	Radius   float64
	Alive    bool
	Steering core.Vec2 // Last vector written into the engine's gravity field
}
