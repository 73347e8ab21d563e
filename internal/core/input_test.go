package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionTiltLeft)
	f.Pointer = PointerState{Col: 3, Row: 4, Active: true}
	if !f.Has(ActionTiltLeft) {
		t.Error("Set action should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionTiltLeft) {
		t.Error("Clear should drop actions")
	}
	if !f.Pointer.Active {
		t.Error("Clear must keep pointer state")
	}
}

func TestActionString(t *testing.T) {
	if ActionTiltRight.String() != "TiltRight" {
		t.Errorf("String() = %q", ActionTiltRight.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown actions should stringify as Unknown")
	}
}
