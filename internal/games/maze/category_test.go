package maze

import (
	"math"
	"testing"
)

func TestBodySpecFor(t *testing.T) {
	tests := []struct {
		kind      Kind
		shape     Shape
		static    bool
		category  Category
		contact   Category
		collision Category
	}{
		{KindWall, ShapeRect, true, CategoryWall, 0, 0},
		{KindVortex, ShapeCircle, true, CategoryVortex, CategoryPlayer, 0},
		{KindStar, ShapeCircle, true, CategoryStar, CategoryPlayer, 0},
		{KindFinish, ShapeCircle, true, CategoryFinish, CategoryPlayer, 0},
		{KindPlayer, ShapeCircle, false, CategoryPlayer, CategoryStar | CategoryVortex | CategoryFinish, CategoryWall},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			spec := BodySpecFor(tc.kind, 64)
			if spec.Shape != tc.shape || spec.Static != tc.static {
				t.Errorf("shape/static = %s/%v, expected %s/%v", spec.Shape, spec.Static, tc.shape, tc.static)
			}
			if spec.Category != tc.category {
				t.Errorf("Category = %s, expected %s", spec.Category, tc.category)
			}
			if spec.Contact != tc.contact {
				t.Errorf("Contact = %s, expected %s", spec.Contact, tc.contact)
			}
			if spec.Collision != tc.collision {
				t.Errorf("Collision = %s, expected %s", spec.Collision, tc.collision)
			}
			if spec.Shape == ShapeCircle && spec.Radius != 32 {
				t.Errorf("Radius = %v, expected half the sprite width", spec.Radius)
			}
		})
	}
}

func TestCategoryValues(t *testing.T) {
	if CategoryPlayer != 1 || CategoryWall != 2 || CategoryStar != 4 || CategoryVortex != 8 || CategoryFinish != 16 {
		t.Error("category bit values changed")
	}
	if (CategoryStar | CategoryVortex).String() != "Star|Vortex" {
		t.Errorf("String() = %q", (CategoryStar | CategoryVortex).String())
	}
	if (CategoryStar | CategoryVortex).Single() {
		t.Error("two bits should not be Single()")
	}
}

func TestEntityFlags(t *testing.T) {
	level := ParseLevel("flags", "xvsf", 64)

	for _, e := range level.Entities {
		wantSolid := e.Kind == KindWall
		if e.CollidesPhysically() != wantSolid {
			t.Errorf("%s CollidesPhysically() = %v", e.Kind, e.CollidesPhysically())
		}
		if e.ReportsContact() == wantSolid {
			t.Errorf("%s ReportsContact() = %v", e.Kind, e.ReportsContact())
		}
		if !e.Static() {
			t.Errorf("%s should be static", e.Kind)
		}
	}
}

func TestVortexSpin(t *testing.T) {
	level := ParseLevel("spin", "vs", 64)
	vortex := firstOf(t, level, KindVortex)
	star := firstOf(t, level, KindStar)

	if got := vortex.Spin(15, 60); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Errorf("Spin(15, 60) = %v, expected a quarter turn", got)
	}
	if got := vortex.Spin(60, 60); got != 0 {
		t.Errorf("Spin(60, 60) = %v, expected a full turn to wrap to 0", got)
	}
	if star.Spin(15, 60) != 0 {
		t.Error("only vortices spin")
	}
}
