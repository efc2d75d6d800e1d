package core

import "testing"

func TestInputFrameActionsAndHeld(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Hold(ActionJump)

	if !f.Has(ActionPause) || f.Has(ActionJump) {
		t.Error("Has should only report triggered actions")
	}
	if !f.IsHeld(ActionJump) || f.IsHeld(ActionPause) {
		t.Error("IsHeld should only report held actions")
	}

	c := f.Clone()
	f.Clear()
	if f.Has(ActionPause) || f.IsHeld(ActionJump) {
		t.Error("Clear should reset both sets")
	}
	if !c.Has(ActionPause) || !c.IsHeld(ActionJump) {
		t.Error("Clone should not share maps with the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) || f.IsHeld(ActionJump) {
		t.Error("zero frame should be empty")
	}
	f.Set(ActionJump)
	f.Hold(ActionJump)
	if !f.Has(ActionJump) || !f.IsHeld(ActionJump) {
		t.Error("Set and Hold should allocate on a zero frame")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionJump:    "Jump",
		ActionConfirm: "Confirm",
		ActionRestart: "Restart",
		ActionQuit:    "Quit",
		ActionPause:   "Pause",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, want %q", int(a), got, want)
		}
	}
}
