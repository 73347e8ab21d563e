package maze

import "strings"

// Category is a collision category bit. Values match the original level
// geometry assumptions and must not be renumbered.
type Category uint32

const (
	CategoryPlayer Category = 1
	CategoryWall   Category = 2
	CategoryStar   Category = 4
	CategoryVortex Category = 8
	CategoryFinish Category = 16
)

// Single reports whether exactly one bit is set.
func (c Category) Single() bool {
	return c != 0 && c&(c-1) == 0
}

// String lists the set bits, e.g. "Star|Vortex".
func (c Category) String() string {
	if c == 0 {
		return "None"
	}
	names := []struct {
		bit  Category
		name string
	}{
		{CategoryPlayer, "Player"},
		{CategoryWall, "Wall"},
		{CategoryStar, "Star"},
		{CategoryVortex, "Vortex"},
		{CategoryFinish, "Finish"},
	}
	parts := make([]string, 0, 2)
	for _, n := range names {
		if c&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Shape is the physics shape of a body.
type Shape uint8

const (
	ShapeCircle Shape = iota
	ShapeRect
)

// String returns the shape name.
func (s Shape) String() string {
	if s == ShapeRect {
		return "rect"
	}
	return "circle"
}

// BodySpec is the physics configuration handed to the engine when an
// entity is constructed.
type BodySpec struct {
	Shape     Shape
	Width     float64 // Sprite width; rect bodies are Width x Height
	Height    float64
	Radius    float64 // Circle radius, half the sprite width
	Static    bool
	Category  Category
	Contact   Category // Categories that produce contact events with this body
	Collision Category // Categories this body physically bounces off
}

// BodySpecFor returns the fixed configuration for a kind. spriteWidth is the
// width of the sprite that represents the entity.
func BodySpecFor(k Kind, spriteWidth float64) BodySpec {
	circle := BodySpec{
		Shape:  ShapeCircle,
		Width:  spriteWidth,
		Height: spriteWidth,
		Radius: spriteWidth / 2,
		Static: true,
	}

	switch k {
	case KindWall:
		return BodySpec{
			Shape:    ShapeRect,
			Width:    spriteWidth,
			Height:   spriteWidth,
			Static:   true,
			Category: CategoryWall,
		}
	case KindVortex:
		circle.Category = CategoryVortex
		circle.Contact = CategoryPlayer
	case KindStar:
		circle.Category = CategoryStar
		circle.Contact = CategoryPlayer
	case KindFinish:
		circle.Category = CategoryFinish
		circle.Contact = CategoryPlayer
	case KindPlayer:
		circle.Static = false
		circle.Category = CategoryPlayer
		circle.Contact = CategoryStar | CategoryVortex | CategoryFinish
		circle.Collision = CategoryWall
	default:
		return BodySpec{}
	}
	return circle
}

// CollidesWith reports whether this body bounces off bodies of category c.
func (s BodySpec) CollidesWith(c Category) bool {
	return s.Collision&c != 0
}

// ContactsWith reports whether touching a body of category c is reported.
func (s BodySpec) ContactsWith(c Category) bool {
	return s.Contact&c != 0
}
