package maze

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/vovakirdan/marble-maze/internal/config"
	"github.com/vovakirdan/marble-maze/internal/core"
)

// DefaultCellSize is the edge length of one tile in world units.
const DefaultCellSize = 64

// ErrLevelNotFound is matched by errors.Is when a level resource is missing.
var ErrLevelNotFound = fs.ErrNotExist

// Sprites holds the sprite width of every kind. Zero widths fall back to
// the cell size.
type Sprites struct {
	Wall   float64
	Vortex float64
	Star   float64
	Finish float64
	Player float64
}

// SpritesFrom copies the configured sprite widths.
func SpritesFrom(c config.SpriteConfig) Sprites {
	return Sprites{Wall: c.Wall, Vortex: c.Vortex, Star: c.Star, Finish: c.Finish, Player: c.Player}
}

func (s Sprites) width(k Kind, cell float64) float64 {
	var w float64
	switch k {
	case KindWall:
		w = s.Wall
	case KindVortex:
		w = s.Vortex
	case KindStar:
		w = s.Star
	case KindFinish:
		w = s.Finish
	case KindPlayer:
		w = s.Player
	}
	if w <= 0 {
		return cell
	}
	return w
}

// Level is a parsed, immutable tile map.
type Level struct {
	Name     string
	Rows     int
	Cols     int
	CellSize float64
	Sprites  Sprites
	Entities []Entity // Ordered by row from the bottom, then column
}

// TileCenter returns the world coordinate of the centre of a tile.
func (l *Level) TileCenter(col, row int) core.Vec2 {
	return TileCenter(col, row, l.CellSize)
}

// Size returns the world extent of the level.
func (l *Level) Size() core.Vec2 {
	return core.V(float64(l.Cols)*l.CellSize, float64(l.Rows)*l.CellSize)
}

// Count returns the number of entities of the given kind.
func (l *Level) Count(k Kind) int {
	n := 0
	for _, e := range l.Entities {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// TileCenter maps a tile (column, row from the bottom) to world space.
func TileCenter(col, row int, cell float64) core.Vec2 {
	return core.V(cell*float64(col)+cell/2, cell*float64(row)+cell/2)
}

// ParseOption customizes ParseLevel.
type ParseOption func(*Level)

// WithSprites sets the sprite widths used for body specs.
func WithSprites(s Sprites) ParseOption {
	return func(l *Level) {
		l.Sprites = s
	}
}

// ParseLevel converts level text into entities. The last line of the text is
// row 0 so that the level reads top-down while the world grows upwards.
// Lines are split on "\n" only, so a trailing newline yields an empty bottom
// row. Unknown characters are floor; parsing never fails.
func ParseLevel(name, text string, cellSize float64, opts ...ParseOption) *Level {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}

	lines := strings.Split(text, "\n")
	level := &Level{
		Name:     name,
		Rows:     len(lines),
		CellSize: cellSize,
	}
	for _, opt := range opts {
		opt(level)
	}

	next := PlayerID + 1
	for row := range len(lines) {
		line := []rune(lines[len(lines)-1-row])
		if len(line) > level.Cols {
			level.Cols = len(line)
		}
		for col, r := range line {
			tile := ParseTile(r)
			if tile == TileEmpty {
				continue
			}
			kind := Kind(tile)
			level.Entities = append(level.Entities, Entity{
				ID:       next,
				Kind:     kind,
				Col:      col,
				Row:      row,
				Position: TileCenter(col, row, cellSize),
				Body:     BodySpecFor(kind, level.Sprites.width(kind, cellSize)),
			})
			next++
		}
	}

	return level
}

// LevelSource locates level text by name.
type LevelSource interface {
	ReadLevel(name string) (string, error)
}

// LevelLoadError reports a level resource that could not be located or read.
type LevelLoadError struct {
	Name string
	Err  error
}

func (e *LevelLoadError) Error() string {
	return fmt.Sprintf("maze: load level %q: %v", e.Name, e.Err)
}

func (e *LevelLoadError) Unwrap() error {
	return e.Err
}

// LoadLevel reads the named level from src and parses it. No partial level
// is returned on failure.
func LoadLevel(src LevelSource, name string, cellSize float64, opts ...ParseOption) (*Level, error) {
	if src == nil {
		return nil, &LevelLoadError{Name: name, Err: errors.New("no level source")}
	}
	text, err := src.ReadLevel(name)
	if err != nil {
		return nil, &LevelLoadError{Name: name, Err: err}
	}
	return ParseLevel(name, text, cellSize, opts...), nil
}
