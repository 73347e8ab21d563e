// Package maze implements the marble maze gameplay core: level parsing into
// typed entities, the input-to-force mapping, and the contact rules that
// decide score, respawn and win transitions.
//
// The physics simulation and the renderer are collaborators. The core hands
// body specs to an Engine, writes the steering vector into its gravity field
// every tick and reacts to the contact-begin events the Engine reports.
package maze

// TileKind is the kind of one character cell of a level.
type TileKind uint8

const (
	TileEmpty TileKind = iota
	TileWall
	TileVortex
	TileStar
	TileFinish
)

// ParseTile maps a level character to its tile kind. Anything that is not
// one of x, v, s, f is open floor.
func ParseTile(r rune) TileKind {
	switch r {
	case 'x':
		return TileWall
	case 'v':
		return TileVortex
	case 's':
		return TileStar
	case 'f':
		return TileFinish
	default:
		return TileEmpty
	}
}

// String returns a human-readable name for the tile kind.
func (t TileKind) String() string {
	return Kind(t).String()
}

// Kind is the kind of an entity: one of the non-empty tile kinds or the player.
type Kind uint8

const (
	KindWall   = Kind(TileWall)
	KindVortex = Kind(TileVortex)
	KindStar   = Kind(TileStar)
	KindFinish = Kind(TileFinish)
	KindPlayer = Kind(TileFinish + 1)
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Kind(TileEmpty):
		return "Empty"
	case KindWall:
		return "Wall"
	case KindVortex:
		return "Vortex"
	case KindStar:
		return "Star"
	case KindFinish:
		return "Finish"
	case KindPlayer:
		return "Player"
	default:
		return "Unknown"
	}
}
