package maze

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/marble-maze/internal/core"
)

func TestParseTile(t *testing.T) {
	tests := []struct {
		r        rune
		expected TileKind
	}{
		{'x', TileWall},
		{'v', TileVortex},
		{'s', TileStar},
		{'f', TileFinish},
		{'.', TileEmpty},
		{' ', TileEmpty},
		{'X', TileEmpty},
		{'\r', TileEmpty},
		{'é', TileEmpty},
	}

	for _, tc := range tests {
		if got := ParseTile(tc.r); got != tc.expected {
			t.Errorf("ParseTile(%q) = %s, expected %s", tc.r, got, tc.expected)
		}
	}
}

func TestParseLevelThreeByThree(t *testing.T) {
	level := ParseLevel("example", "x..\n.s.\n..f", 64)

	if level.Rows != 3 || level.Cols != 3 {
		t.Fatalf("grid = %dx%d, expected 3x3", level.Cols, level.Rows)
	}
	if len(level.Entities) != 3 {
		t.Fatalf("got %d entities, expected 3", len(level.Entities))
	}

	expected := map[Kind]core.Vec2{
		KindWall:   core.V(32, 160),
		KindStar:   core.V(96, 96),
		KindFinish: core.V(160, 32),
	}
	for k, pos := range expected {
		if got := firstOf(t, level, k).Position; got != pos {
			t.Errorf("%s at %v, expected %v", k, got, pos)
		}
	}
}

func TestParseLevelVerticalInversion(t *testing.T) {
	level := ParseLevel("inv", "s\n.\nv", 64)

	star := firstOf(t, level, KindStar)
	vortex := firstOf(t, level, KindVortex)
	if vortex.Row != 0 || vortex.Position.Y != 32 {
		t.Errorf("last line should be row 0 at y=32, got row %d y=%v", vortex.Row, vortex.Position.Y)
	}
	if star.Row != 2 || star.Position.Y != 160 {
		t.Errorf("first line should be row 2 at y=160, got row %d y=%v", star.Row, star.Position.Y)
	}
}

func TestParseLevelDeterministic(t *testing.T) {
	text := "xxxxx\nx.s.x\nxv.fx\nxxxxx"
	a := ParseLevel("a", text, 64)
	b := ParseLevel("a", text, 64)
	if !reflect.DeepEqual(a, b) {
		t.Error("parsing the same text twice should produce identical levels")
	}

	for i, e := range a.Entities {
		if e.ID != EntityID(i+1) {
			t.Errorf("entity %d has id %d, expected ids to follow parse order", i, e.ID)
		}
	}
}

func TestParseLevelEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		rows     int
		cols     int
		entities int
	}{
		{name: "empty text", text: "", rows: 1, cols: 0, entities: 0},
		{name: "unknown characters are floor", text: "abc\n?#!", rows: 2, cols: 3, entities: 0},
		{name: "ragged lines use the longest", text: "x\nxxxx\nxx", rows: 3, cols: 4, entities: 7},
		{name: "trailing newline adds an empty row", text: "xx\nxx\n", rows: 3, cols: 2, entities: 4},
		{name: "carriage return is an ignored cell", text: "x\r\nx", rows: 2, cols: 2, entities: 2},
		{name: "runes count as one column", text: "éx", rows: 1, cols: 2, entities: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level := ParseLevel("edge", tc.text, 64)
			if level.Rows != tc.rows || level.Cols != tc.cols {
				t.Errorf("grid = %dx%d, expected %dx%d", level.Cols, level.Rows, tc.cols, tc.rows)
			}
			if len(level.Entities) != tc.entities {
				t.Errorf("got %d entities, expected %d", len(level.Entities), tc.entities)
			}
		})
	}
}

func TestParseLevelTrailingNewlineShiftsRows(t *testing.T) {
	level := ParseLevel("shift", "x\n", 64)
	wall := firstOf(t, level, KindWall)
	if wall.Row != 1 || wall.Position != core.V(32, 96) {
		t.Errorf("wall at row %d %v, expected row 1 (32, 96)", wall.Row, wall.Position)
	}
}

func TestParseLevelCategoryInvariant(t *testing.T) {
	level := ParseLevel("all", "xvsf\nxvsf", 64)
	for _, e := range level.Entities {
		if !e.Category().Single() {
			t.Errorf("%s entity %d has category %s, expected exactly one bit", e.Kind, e.ID, e.Category())
		}
	}
}

func TestParseLevelSprites(t *testing.T) {
	level := ParseLevel("s", "xv", 64, WithSprites(Sprites{Vortex: 40}))

	wall := firstOf(t, level, KindWall)
	if wall.Body.Width != 64 {
		t.Errorf("wall width = %v, expected the cell size when no sprite width is set", wall.Body.Width)
	}
	vortex := firstOf(t, level, KindVortex)
	if vortex.Body.Radius != 20 {
		t.Errorf("vortex radius = %v, expected 20", vortex.Body.Radius)
	}
}

func TestParseLevelCellSize(t *testing.T) {
	level := ParseLevel("c", "s", 32)
	if got := level.Entities[0].Position; got != core.V(16, 16) {
		t.Errorf("star at %v, expected (16, 16)", got)
	}
	if got := ParseLevel("d", "s", 0).CellSize; got != DefaultCellSize {
		t.Errorf("CellSize = %v, expected default %d", got, DefaultCellSize)
	}
}

func TestLoadLevel(t *testing.T) {
	src := mapSource{"one": "x.s"}

	level, err := LoadLevel(src, "one", 64)
	if err != nil {
		t.Fatalf("LoadLevel() error: %v", err)
	}
	if level.Name != "one" || len(level.Entities) != 2 {
		t.Errorf("loaded %q with %d entities", level.Name, len(level.Entities))
	}

	level, err = LoadLevel(src, "missing", 64)
	if level != nil {
		t.Error("LoadLevel() should not return a partial level on error")
	}
	var loadErr *LevelLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error %v is not a *LevelLoadError", err)
	}
	if loadErr.Name != "missing" {
		t.Errorf("LevelLoadError.Name = %q", loadErr.Name)
	}
	if !errors.Is(err, ErrLevelNotFound) {
		t.Error("missing level should match ErrLevelNotFound")
	}

	if _, err := LoadLevel(nil, "one", 64); err == nil {
		t.Error("LoadLevel() with no source should fail")
	}
}
